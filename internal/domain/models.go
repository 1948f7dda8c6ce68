package domain

import "time"

type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Site is a monitored energy-generation location.
type Site struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Location    string      `json:"location" yaml:"location"`
	Status      SiteStatus  `json:"status" yaml:"status"`
	LastUpdated time.Time   `json:"last_updated" yaml:"last_updated"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	PowerOutput float64     `json:"power_output" yaml:"power_output"` // kW
	Efficiency  float64     `json:"efficiency" yaml:"efficiency"`     // percent
	Alerts      int         `json:"alerts" yaml:"alerts"`
	AssetIDs    []string    `json:"asset_ids" yaml:"-"`
}

type Asset struct {
	ID              string      `json:"id" yaml:"id"`
	Name            string      `json:"name" yaml:"name"`
	Type            string      `json:"type" yaml:"type"`
	Status          AssetStatus `json:"status" yaml:"status"`
	LastMaintenance time.Time   `json:"last_maintenance" yaml:"last_maintenance"`
	NextMaintenance time.Time   `json:"next_maintenance" yaml:"next_maintenance"`
	SiteID          string      `json:"site_id" yaml:"site_id"`
	Images          []string    `json:"images,omitempty" yaml:"images,omitempty"`
}

// Ticket is a support or maintenance issue raised against a site. SiteName
// is denormalized from the owning site.
type Ticket struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Priority    TicketPriority `json:"priority" yaml:"priority"`
	Status      TicketStatus   `json:"status" yaml:"status"`
	SiteID      string         `json:"site_id" yaml:"site_id"`
	SiteName    string         `json:"site_name" yaml:"site_name"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" yaml:"updated_at"`
	AssignedTo  string         `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

type MaintenanceLog struct {
	ID          string            `json:"id" yaml:"id"`
	AssetID     string            `json:"asset_id" yaml:"asset_id"`
	AssetName   string            `json:"asset_name" yaml:"asset_name"`
	Date        time.Time         `json:"date" yaml:"date"`
	Technician  string            `json:"technician" yaml:"technician"`
	Description string            `json:"description" yaml:"description"`
	Images      []string          `json:"images" yaml:"images"`
	Status      MaintenanceStatus `json:"status" yaml:"status"`
}

type User struct {
	ID     string `json:"id" yaml:"id"`
	Email  string `json:"email" yaml:"email"`
	Name   string `json:"name" yaml:"name"`
	Role   Role   `json:"role" yaml:"role"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Statistics is computed from the site and ticket collections, never stored.
type Statistics struct {
	TotalSites        int     `json:"total_sites"`
	ActiveSites       int     `json:"active_sites"`
	TotalPowerOutput  float64 `json:"total_power_output"`
	AverageEfficiency float64 `json:"average_efficiency"`
	OpenTickets       int     `json:"open_tickets"`
	CriticalAlerts    int     `json:"critical_alerts"`
	Uptime            float64 `json:"uptime"`
}

// MaintenanceOutlook is the projected service state of an asset at a given
// instant. Risks are percentages.
type MaintenanceOutlook struct {
	AssetID           string    `json:"asset_id"`
	NextService       time.Time `json:"next_service"`
	DaysUntilService  int       `json:"days_until_service"`
	Overdue           bool      `json:"overdue"`
	FailureRisk30Days float64   `json:"failure_risk_30_days"`
	FailureRisk90Days float64   `json:"failure_risk_90_days"`
	Recommendation    string    `json:"recommendation"`
}
