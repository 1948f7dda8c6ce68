// Package stats computes summary figures over the site and ticket
// collections. Inputs are never modified and results depend on nothing but
// the inputs.
package stats

import (
	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/aggregator"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// Compute derives the dashboard statistics. Uptime is the share of online
// sites in percent; an empty site collection yields zero for every ratio.
func Compute(sites []domain.Site, tickets []domain.Ticket) domain.Statistics {
	st := domain.Statistics{TotalSites: len(sites)}

	power := make([]aggregator.Point, len(sites))
	efficiency := make([]aggregator.Point, len(sites))
	for i, s := range sites {
		if s.Status == domain.SiteOnline {
			st.ActiveSites++
		}
		power[i] = aggregator.Point{Value: s.PowerOutput, Timestamp: s.LastUpdated}
		efficiency[i] = aggregator.Point{Value: s.Efficiency, Timestamp: s.LastUpdated}
	}

	for _, t := range tickets {
		if t.Status == domain.TicketOpen {
			st.OpenTickets++
		}
		if t.Priority == domain.PriorityCritical {
			st.CriticalAlerts++
		}
	}

	if len(sites) == 0 {
		return st
	}
	st.TotalPowerOutput = aggregator.Sum(power)
	st.AverageEfficiency = aggregator.Average(efficiency)
	st.Uptime = float64(st.ActiveSites) / float64(st.TotalSites) * 100
	return st
}

type StatusShare struct {
	Status domain.SiteStatus `json:"status"`
	Count  int               `json:"count"`
}

// StatusDistribution counts sites per status, one entry per status in
// domain.AllSiteStatuses order, zero counts included.
func StatusDistribution(sites []domain.Site) []StatusShare {
	counts := make(map[domain.SiteStatus]int, len(domain.AllSiteStatuses))
	for _, s := range sites {
		counts[s.Status]++
	}
	out := make([]StatusShare, 0, len(domain.AllSiteStatuses))
	for _, st := range domain.AllSiteStatuses {
		out = append(out, StatusShare{Status: st, Count: counts[st]})
	}
	return out
}

type SiteEfficiency struct {
	SiteID     string  `json:"site_id"`
	Name       string  `json:"name"`
	Efficiency float64 `json:"efficiency"`
}

func EfficiencyBySite(sites []domain.Site) []SiteEfficiency {
	out := make([]SiteEfficiency, 0, len(sites))
	for _, s := range sites {
		out = append(out, SiteEfficiency{SiteID: s.ID, Name: s.Name, Efficiency: s.Efficiency})
	}
	return out
}
