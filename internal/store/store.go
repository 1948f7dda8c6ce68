// Package store holds the immutable record snapshot every screen reads from.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// ErrNotFound is returned by the Must* lookups when no record has the id.
var ErrNotFound = errors.New("not found")

// Loader reads each record collection from a data source.
type Loader interface {
	LoadSites(ctx context.Context) ([]domain.Site, error)
	LoadAssets(ctx context.Context) ([]domain.Asset, error)
	LoadTickets(ctx context.Context) ([]domain.Ticket, error)
	LoadMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error)
	LoadUsers(ctx context.Context) ([]domain.User, error)
}

// Snapshot is read-only after Build returns. Collection accessors hand out
// copies so callers cannot reach the backing arrays.
type Snapshot struct {
	sites   []domain.Site
	assets  []domain.Asset
	tickets []domain.Ticket
	logs    []domain.MaintenanceLog
	users   []domain.User

	siteIdx   map[string]int
	assetIdx  map[string]int
	ticketIdx map[string]int
	userIdx   map[string]int
}

// Build loads every collection once, validates the cross-record invariants and
// links assets to their sites.
func Build(ctx context.Context, l Loader) (*Snapshot, error) {
	sites, err := l.LoadSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sites: %w", err)
	}
	assets, err := l.LoadAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	tickets, err := l.LoadTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	logs, err := l.LoadMaintenanceLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load maintenance logs: %w", err)
	}
	users, err := l.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return New(sites, assets, tickets, logs, users)
}

// New validates and indexes the given collections. Inputs are copied.
func New(sites []domain.Site, assets []domain.Asset, tickets []domain.Ticket, logs []domain.MaintenanceLog, users []domain.User) (*Snapshot, error) {
	if err := domain.Validate(sites, assets, tickets, logs); err != nil {
		return nil, err
	}

	s := &Snapshot{
		sites:     slices.Clone(sites),
		assets:    slices.Clone(assets),
		tickets:   slices.Clone(tickets),
		logs:      slices.Clone(logs),
		users:     slices.Clone(users),
		siteIdx:   make(map[string]int, len(sites)),
		assetIdx:  make(map[string]int, len(assets)),
		ticketIdx: make(map[string]int, len(tickets)),
		userIdx:   make(map[string]int, len(users)),
	}
	for i := range s.sites {
		s.siteIdx[s.sites[i].ID] = i
		s.sites[i].AssetIDs = nil
	}
	for i, a := range s.assets {
		s.assetIdx[a.ID] = i
		site := &s.sites[s.siteIdx[a.SiteID]]
		site.AssetIDs = append(site.AssetIDs, a.ID)
	}
	for i, t := range s.tickets {
		s.ticketIdx[t.ID] = i
	}
	for i, u := range s.users {
		s.userIdx[u.ID] = i
	}
	return s, nil
}

func (s *Snapshot) Sites() []domain.Site {
	out := slices.Clone(s.sites)
	for i := range out {
		out[i].AssetIDs = slices.Clone(out[i].AssetIDs)
	}
	return out
}

func (s *Snapshot) Assets() []domain.Asset                   { return slices.Clone(s.assets) }
func (s *Snapshot) Tickets() []domain.Ticket                 { return slices.Clone(s.tickets) }
func (s *Snapshot) MaintenanceLogs() []domain.MaintenanceLog { return slices.Clone(s.logs) }
func (s *Snapshot) Users() []domain.User                     { return slices.Clone(s.users) }

func (s *Snapshot) Site(id string) (domain.Site, bool) {
	i, ok := s.siteIdx[id]
	if !ok {
		return domain.Site{}, false
	}
	site := s.sites[i]
	site.AssetIDs = slices.Clone(site.AssetIDs)
	return site, true
}

func (s *Snapshot) Asset(id string) (domain.Asset, bool) {
	i, ok := s.assetIdx[id]
	if !ok {
		return domain.Asset{}, false
	}
	return s.assets[i], true
}

func (s *Snapshot) Ticket(id string) (domain.Ticket, bool) {
	i, ok := s.ticketIdx[id]
	if !ok {
		return domain.Ticket{}, false
	}
	return s.tickets[i], true
}

func (s *Snapshot) User(id string) (domain.User, bool) {
	i, ok := s.userIdx[id]
	if !ok {
		return domain.User{}, false
	}
	return s.users[i], true
}

// MustSite is Site with ErrNotFound for callers that report errors instead of
// rendering a fallback.
func (s *Snapshot) MustSite(id string) (domain.Site, error) {
	site, ok := s.Site(id)
	if !ok {
		return domain.Site{}, fmt.Errorf("site %s: %w", id, ErrNotFound)
	}
	return site, nil
}

// AssetsForSite returns the site's assets in snapshot order.
func (s *Snapshot) AssetsForSite(siteID string) []domain.Asset {
	out := []domain.Asset{}
	for _, a := range s.assets {
		if a.SiteID == siteID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Snapshot) LogsForAsset(assetID string) []domain.MaintenanceLog {
	out := []domain.MaintenanceLog{}
	for _, l := range s.logs {
		if l.AssetID == assetID {
			out = append(out, l)
		}
	}
	return out
}
