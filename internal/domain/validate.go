package domain

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a fixture set that breaks a cross-record rule.
var ErrInvariant = errors.New("snapshot invariant violated")

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Validate checks every record and cross-record reference and reports all
// violations at once.
func Validate(sites []Site, assets []Asset, tickets []Ticket, logs []MaintenanceLog) error {
	var errs []error

	siteNames := make(map[string]string, len(sites))
	for _, s := range sites {
		if s.ID == "" {
			errs = append(errs, violation("site %q has empty id", s.Name))
			continue
		}
		if _, dup := siteNames[s.ID]; dup {
			errs = append(errs, violation("duplicate site id %s", s.ID))
		}
		siteNames[s.ID] = s.Name
		if !s.Status.Valid() {
			errs = append(errs, violation("site %s: status %q", s.ID, s.Status))
		}
		if s.Efficiency < 0 || s.Efficiency > 100 {
			errs = append(errs, violation("site %s: efficiency %.2f outside [0,100]", s.ID, s.Efficiency))
		}
		if s.PowerOutput < 0 {
			errs = append(errs, violation("site %s: negative power output", s.ID))
		}
		if s.Alerts < 0 {
			errs = append(errs, violation("site %s: negative alert count", s.ID))
		}
	}

	assetNames := make(map[string]string, len(assets))
	for _, a := range assets {
		if a.ID == "" {
			errs = append(errs, violation("asset %q has empty id", a.Name))
			continue
		}
		if _, dup := assetNames[a.ID]; dup {
			errs = append(errs, violation("duplicate asset id %s", a.ID))
		}
		assetNames[a.ID] = a.Name
		if !a.Status.Valid() {
			errs = append(errs, violation("asset %s: status %q", a.ID, a.Status))
		}
		if _, ok := siteNames[a.SiteID]; !ok {
			errs = append(errs, violation("asset %s references unknown site %s", a.ID, a.SiteID))
		}
	}

	ticketIDs := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		if t.ID == "" {
			errs = append(errs, violation("ticket %q has empty id", t.Title))
			continue
		}
		if _, dup := ticketIDs[t.ID]; dup {
			errs = append(errs, violation("duplicate ticket id %s", t.ID))
		}
		ticketIDs[t.ID] = struct{}{}
		if !t.Priority.Valid() {
			errs = append(errs, violation("ticket %s: priority %q", t.ID, t.Priority))
		}
		if !t.Status.Valid() {
			errs = append(errs, violation("ticket %s: status %q", t.ID, t.Status))
		}
		name, ok := siteNames[t.SiteID]
		switch {
		case !ok:
			errs = append(errs, violation("ticket %s references unknown site %s", t.ID, t.SiteID))
		case name != t.SiteName:
			errs = append(errs, violation("ticket %s: site name %q does not match %q", t.ID, t.SiteName, name))
		}
	}

	for _, l := range logs {
		if !l.Status.Valid() {
			errs = append(errs, violation("maintenance log %s: status %q", l.ID, l.Status))
		}
		name, ok := assetNames[l.AssetID]
		switch {
		case !ok:
			errs = append(errs, violation("maintenance log %s references unknown asset %s", l.ID, l.AssetID))
		case name != l.AssetName:
			errs = append(errs, violation("maintenance log %s: asset name %q does not match %q", l.ID, l.AssetName, name))
		}
	}

	return errors.Join(errs...)
}
