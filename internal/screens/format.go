package screens

import (
	"github.com/shopspring/decimal"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// Percent renders v with at most one decimal, e.g. "56.7%". Rounding is half away
// from zero on the decimal value, not the binary float.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String() + "%"
}

// Power renders a kW figure with at most one decimal.
func Power(kw float64) string {
	return decimal.NewFromFloat(kw).Round(1).String() + " kW"
}

// Badge is the icon and tone a status is drawn with.
type Badge struct {
	Icon string `json:"icon"`
	Tone string `json:"tone"`
}

func SiteBadge(s domain.SiteStatus) Badge {
	switch s {
	case domain.SiteOnline:
		return Badge{Icon: "checkmark-circle", Tone: "online"}
	case domain.SiteOffline:
		return Badge{Icon: "close-circle", Tone: "offline"}
	case domain.SiteWarning:
		return Badge{Icon: "warning", Tone: "warning"}
	case domain.SiteMaintenance:
		return Badge{Icon: "construct", Tone: "maintenance"}
	}
	return Badge{Icon: "help-circle", Tone: "disabled"}
}

func AssetBadge(s domain.AssetStatus) Badge {
	switch s {
	case domain.AssetOperational:
		return Badge{Icon: "checkmark-circle", Tone: "success"}
	case domain.AssetMaintenance:
		return Badge{Icon: "construct", Tone: "warning"}
	case domain.AssetOffline:
		return Badge{Icon: "close-circle", Tone: "error"}
	}
	return Badge{Icon: "help-circle", Tone: "disabled"}
}

func PriorityBadge(p domain.TicketPriority) Badge {
	switch p {
	case domain.PriorityCritical:
		return Badge{Icon: "alert-circle", Tone: "error"}
	case domain.PriorityHigh:
		return Badge{Icon: "arrow-up-circle", Tone: "warning"}
	case domain.PriorityMedium:
		return Badge{Icon: "remove-circle", Tone: "info"}
	case domain.PriorityLow:
		return Badge{Icon: "arrow-down-circle", Tone: "success"}
	}
	return Badge{Icon: "help-circle", Tone: "disabled"}
}

func TicketStatusBadge(s domain.TicketStatus) Badge {
	switch s {
	case domain.TicketOpen:
		return Badge{Icon: "ellipse", Tone: "error"}
	case domain.TicketInProgress:
		return Badge{Icon: "time", Tone: "warning"}
	case domain.TicketResolved:
		return Badge{Icon: "checkmark-circle", Tone: "success"}
	case domain.TicketClosed:
		return Badge{Icon: "lock-closed", Tone: "disabled"}
	}
	return Badge{Icon: "help-circle", Tone: "disabled"}
}

var siteLabels = map[domain.SiteStatus]string{
	domain.SiteOnline:      "Online",
	domain.SiteOffline:     "Offline",
	domain.SiteWarning:     "Warning",
	domain.SiteMaintenance: "Maintenance",
}

var ticketLabels = map[domain.TicketStatus]string{
	domain.TicketOpen:       "Open",
	domain.TicketInProgress: "In Progress",
	domain.TicketResolved:   "Resolved",
	domain.TicketClosed:     "Closed",
}
