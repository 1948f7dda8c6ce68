package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSiteStatus        = errors.New("invalid site status")
	ErrInvalidAssetStatus       = errors.New("invalid asset status")
	ErrInvalidTicketPriority    = errors.New("invalid ticket priority")
	ErrInvalidTicketStatus      = errors.New("invalid ticket status")
	ErrInvalidMaintenanceStatus = errors.New("invalid maintenance status")
	ErrInvalidRole              = errors.New("invalid role")
)

type SiteStatus string

const (
	SiteOnline      SiteStatus = "online"
	SiteOffline     SiteStatus = "offline"
	SiteWarning     SiteStatus = "warning"
	SiteMaintenance SiteStatus = "maintenance"
)

// AllSiteStatuses lists every site status in display order.
var AllSiteStatuses = []SiteStatus{SiteOnline, SiteOffline, SiteWarning, SiteMaintenance}

func (s SiteStatus) Valid() bool {
	switch s {
	case SiteOnline, SiteOffline, SiteWarning, SiteMaintenance:
		return true
	}
	return false
}

func (s SiteStatus) String() string { return string(s) }

func (s *SiteStatus) UnmarshalText(b []byte) error {
	v, err := ParseSiteStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSiteStatus matches the exact lowercase value.
func ParseSiteStatus(raw string) (SiteStatus, error) {
	s := SiteStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSiteStatus, raw)
	}
	return s, nil
}

type AssetStatus string

const (
	AssetOperational AssetStatus = "operational"
	AssetMaintenance AssetStatus = "maintenance"
	AssetOffline     AssetStatus = "offline"
)

var AllAssetStatuses = []AssetStatus{AssetOperational, AssetMaintenance, AssetOffline}

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetOperational, AssetMaintenance, AssetOffline:
		return true
	}
	return false
}

func (s AssetStatus) String() string { return string(s) }

func (s *AssetStatus) UnmarshalText(b []byte) error {
	v, err := ParseAssetStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseAssetStatus(raw string) (AssetStatus, error) {
	s := AssetStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetStatus, raw)
	}
	return s, nil
}

type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

var AllTicketPriorities = []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (p TicketPriority) String() string { return string(p) }

func (p *TicketPriority) UnmarshalText(b []byte) error {
	v, err := ParseTicketPriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func ParseTicketPriority(raw string) (TicketPriority, error) {
	p := TicketPriority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicketPriority, raw)
	}
	return p, nil
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

var AllTicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

func (s TicketStatus) String() string { return string(s) }

func (s *TicketStatus) UnmarshalText(b []byte) error {
	v, err := ParseTicketStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseTicketStatus(raw string) (TicketStatus, error) {
	s := TicketStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicketStatus, raw)
	}
	return s, nil
}

type MaintenanceStatus string

const (
	MaintenanceCompleted MaintenanceStatus = "completed"
	MaintenanceScheduled MaintenanceStatus = "scheduled"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceCompleted, MaintenanceScheduled:
		return true
	}
	return false
}

func (s *MaintenanceStatus) UnmarshalText(b []byte) error {
	v := MaintenanceStatus(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMaintenanceStatus, string(b))
	}
	*s = v
	return nil
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTechnician:
		return true
	}
	return false
}

func (r *Role) UnmarshalText(b []byte) error {
	v := Role(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, string(b))
	}
	*r = v
	return nil
}
