// Package navigation defines the closed set of screens the application can
// move to and the parameters each one requires. It validates requests; it does
// not render or keep history.
package navigation

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDestination = errors.New("unknown destination")
	ErrMissingParameter   = errors.New("missing required parameter")
)

// MissingParameterError names the destination and the absent parameter.
type MissingParameterError struct {
	Destination Destination
	Param       string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Destination, ErrMissingParameter, e.Param)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

type Destination string

const (
	DestLogin             Destination = "Login"
	DestMainTabs          Destination = "MainTabs"
	DestSiteDetails       Destination = "SiteDetails"
	DestAssetDetails      Destination = "AssetDetails"
	DestTicketDetails     Destination = "TicketDetails"
	DestCreateTicket      Destination = "CreateTicket"
	DestUploadMaintenance Destination = "UploadMaintenance"
)

// Tab is a screen inside MainTabs.
type Tab string

const (
	TabDashboard  Tab = "Dashboard"
	TabSites      Tab = "Sites"
	TabTickets    Tab = "Tickets"
	TabStatistics Tab = "Statistics"
	TabProfile    Tab = "Profile"
)

var AllTabs = []Tab{TabDashboard, TabSites, TabTickets, TabStatistics, TabProfile}

func (t Tab) Valid() bool {
	switch t {
	case TabDashboard, TabSites, TabTickets, TabStatistics, TabProfile:
		return true
	}
	return false
}

// Parameter names used in requests.
const (
	ParamSiteID   = "siteId"
	ParamAssetID  = "assetId"
	ParamTicketID = "ticketId"
)

// Route is one navigation target with its payload. The set of
// implementations is closed.
type Route interface {
	Destination() Destination
	route()
}

type Login struct{}

type MainTabs struct{}

type SiteDetails struct{ SiteID string }

type AssetDetails struct{ AssetID string }

type TicketDetails struct{ TicketID string }

// CreateTicket optionally pre-fills the site.
type CreateTicket struct{ SiteID string }

type UploadMaintenance struct{ AssetID string }

// TabRoute switches MainTabs to one of its tabs.
type TabRoute struct{ Tab Tab }

func (Login) Destination() Destination             { return DestLogin }
func (MainTabs) Destination() Destination          { return DestMainTabs }
func (SiteDetails) Destination() Destination       { return DestSiteDetails }
func (AssetDetails) Destination() Destination      { return DestAssetDetails }
func (TicketDetails) Destination() Destination     { return DestTicketDetails }
func (CreateTicket) Destination() Destination      { return DestCreateTicket }
func (UploadMaintenance) Destination() Destination { return DestUploadMaintenance }
func (r TabRoute) Destination() Destination        { return Destination(r.Tab) }

func (Login) route()             {}
func (MainTabs) route()          {}
func (SiteDetails) route()       {}
func (AssetDetails) route()      {}
func (TicketDetails) route()     {}
func (CreateTicket) route()      {}
func (UploadMaintenance) route() {}
func (TabRoute) route()          {}

func missing(d Destination, param string) error {
	return &MissingParameterError{Destination: d, Param: param}
}

func NewSiteDetails(siteID string) (SiteDetails, error) {
	r := SiteDetails{SiteID: siteID}
	return r, Validate(r)
}

func NewAssetDetails(assetID string) (AssetDetails, error) {
	r := AssetDetails{AssetID: assetID}
	return r, Validate(r)
}

func NewTicketDetails(ticketID string) (TicketDetails, error) {
	r := TicketDetails{TicketID: ticketID}
	return r, Validate(r)
}

func NewUploadMaintenance(assetID string) (UploadMaintenance, error) {
	r := UploadMaintenance{AssetID: assetID}
	return r, Validate(r)
}

// Validate rejects a route whose required identifier is empty. Whether the
// identifier names an existing record is left to the destination screen.
func Validate(r Route) error {
	switch r := r.(type) {
	case Login, MainTabs, CreateTicket:
		return nil
	case SiteDetails:
		if r.SiteID == "" {
			return missing(DestSiteDetails, ParamSiteID)
		}
	case AssetDetails:
		if r.AssetID == "" {
			return missing(DestAssetDetails, ParamAssetID)
		}
	case TicketDetails:
		if r.TicketID == "" {
			return missing(DestTicketDetails, ParamTicketID)
		}
	case UploadMaintenance:
		if r.AssetID == "" {
			return missing(DestUploadMaintenance, ParamAssetID)
		}
	case TabRoute:
		if !r.Tab.Valid() {
			return fmt.Errorf("%w: tab %q", ErrUnknownDestination, r.Tab)
		}
	case nil:
		return fmt.Errorf("%w: nil route", ErrUnknownDestination)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownDestination, r)
	}
	return nil
}

// Navigator resolves validated routes, typically by rendering a screen.
type Navigator interface {
	Navigate(r Route) error
}

// Dispatch validates r and hands it to n. Invalid routes never reach n.
func Dispatch(n Navigator, r Route) error {
	if err := Validate(r); err != nil {
		return err
	}
	return n.Navigate(r)
}
