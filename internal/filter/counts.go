package filter

import "github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"

// CategoryCount is the number of records a category selects from the
// unfiltered collection.
type CategoryCount[S comparable] struct {
	Category Category[S]
	Count    int
}

func countBy[T any, S comparable](items []T, values []S, key func(T) S) []CategoryCount[S] {
	out := make([]CategoryCount[S], 0, len(values)+1)
	out = append(out, CategoryCount[S]{Category: All[S](), Count: len(items)})
	for _, v := range values {
		n := 0
		for _, it := range items {
			if key(it) == v {
				n++
			}
		}
		out = append(out, CategoryCount[S]{Category: Only(v), Count: n})
	}
	return out
}

// SiteCounts returns the "all" count followed by one count per status in
// domain.AllSiteStatuses order.
func SiteCounts(sites []domain.Site) []CategoryCount[domain.SiteStatus] {
	return countBy(sites, domain.AllSiteStatuses, func(s domain.Site) domain.SiteStatus { return s.Status })
}

func TicketCounts(tickets []domain.Ticket) []CategoryCount[domain.TicketStatus] {
	return countBy(tickets, domain.AllTicketStatuses, func(t domain.Ticket) domain.TicketStatus { return t.Status })
}
