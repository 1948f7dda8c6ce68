// Package filter derives list views from record collections by free-text
// query and categorical status. Every function is pure and preserves the
// input order.
package filter

import (
	"strings"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// Apply returns the items for which keep is true, in input order. The result
// is never nil.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Contains reports whether needle occurs in haystack ignoring case. Folding is
// simple lower-casing, not locale aware. An empty needle matches everything.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Category selects either every record or those with one enum value.
// The zero value selects every record.
type Category[S comparable] struct {
	value S
	set   bool
}

func All[S comparable]() Category[S] { return Category[S]{} }

func Only[S comparable](v S) Category[S] { return Category[S]{value: v, set: true} }

func (c Category[S]) IsAll() bool { return !c.set }

// Value returns the selected enum value, false for the "all" sentinel.
func (c Category[S]) Value() (S, bool) { return c.value, c.set }

func (c Category[S]) Matches(v S) bool { return !c.set || c.value == v }

// AllSentinel is the raw value that selects every record.
const AllSentinel = "all"

func parseCategory[S comparable](raw string, parse func(string) (S, error)) Category[S] {
	if raw == "" || raw == AllSentinel {
		return All[S]()
	}
	v, err := parse(raw)
	if err != nil {
		return All[S]()
	}
	return Only(v)
}

// ParseSiteCategory maps "", "all" and unrecognised values to All.
func ParseSiteCategory(raw string) Category[domain.SiteStatus] {
	return parseCategory(raw, domain.ParseSiteStatus)
}

func ParseTicketCategory(raw string) Category[domain.TicketStatus] {
	return parseCategory(raw, domain.ParseTicketStatus)
}

func ParsePriorityCategory(raw string) Category[domain.TicketPriority] {
	return parseCategory(raw, domain.ParseTicketPriority)
}

func ParseAssetCategory(raw string) Category[domain.AssetStatus] {
	return parseCategory(raw, domain.ParseAssetStatus)
}

type SiteQuery struct {
	Text   string
	Status Category[domain.SiteStatus]
}

// Sites matches Text against name and location.
func Sites(sites []domain.Site, q SiteQuery) []domain.Site {
	return Apply(sites, func(s domain.Site) bool {
		return (Contains(s.Name, q.Text) || Contains(s.Location, q.Text)) && q.Status.Matches(s.Status)
	})
}

type TicketQuery struct {
	Text     string
	Status   Category[domain.TicketStatus]
	Priority Category[domain.TicketPriority]
}

// Tickets matches Text against the title only.
func Tickets(tickets []domain.Ticket, q TicketQuery) []domain.Ticket {
	return Apply(tickets, func(t domain.Ticket) bool {
		return Contains(t.Title, q.Text) && q.Status.Matches(t.Status) && q.Priority.Matches(t.Priority)
	})
}

// AssetQuery with an empty SiteID matches assets of every site.
type AssetQuery struct {
	SiteID string
	Status Category[domain.AssetStatus]
}

func Assets(assets []domain.Asset, q AssetQuery) []domain.Asset {
	return Apply(assets, func(a domain.Asset) bool {
		return (q.SiteID == "" || a.SiteID == q.SiteID) && q.Status.Matches(a.Status)
	})
}
