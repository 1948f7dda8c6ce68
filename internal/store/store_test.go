package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

type stubLoader struct {
	sites   []domain.Site
	assets  []domain.Asset
	tickets []domain.Ticket
	err     error
}

func (l *stubLoader) LoadSites(context.Context) ([]domain.Site, error) { return l.sites, l.err }
func (l *stubLoader) LoadAssets(context.Context) ([]domain.Asset, error) {
	return l.assets, nil
}
func (l *stubLoader) LoadTickets(context.Context) ([]domain.Ticket, error) {
	return l.tickets, nil
}
func (l *stubLoader) LoadMaintenanceLogs(context.Context) ([]domain.MaintenanceLog, error) {
	return nil, nil
}
func (l *stubLoader) LoadUsers(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: "u1", Name: "Tech", Role: domain.RoleTechnician}}, nil
}

func newStub() *stubLoader {
	return &stubLoader{
		sites: []domain.Site{
			{ID: "s1", Name: "Alpha", Status: domain.SiteOnline},
			{ID: "s2", Name: "Beta", Status: domain.SiteOffline},
		},
		assets: []domain.Asset{
			{ID: "a1", Name: "Inverter", Status: domain.AssetOperational, SiteID: "s2"},
			{ID: "a2", Name: "Panel", Status: domain.AssetOffline, SiteID: "s1"},
			{ID: "a3", Name: "Meter", Status: domain.AssetMaintenance, SiteID: "s2"},
		},
		tickets: []domain.Ticket{
			{ID: "t1", Title: "Fault", Priority: domain.PriorityLow, Status: domain.TicketOpen, SiteID: "s1", SiteName: "Alpha"},
		},
	}
}

func TestBuild_LinksAssetsToSites(t *testing.T) {
	snap, err := Build(context.Background(), newStub())
	require.NoError(t, err)

	s2, ok := snap.Site("s2")
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "a3"}, s2.AssetIDs)

	assets := snap.AssetsForSite("s2")
	require.Len(t, assets, 2)
	assert.Equal(t, "a1", assets[0].ID)
	assert.Equal(t, "a3", assets[1].ID)

	assert.Empty(t, snap.AssetsForSite("nope"))
	assert.NotNil(t, snap.AssetsForSite("nope"))
}

func TestBuild_PropagatesLoaderError(t *testing.T) {
	l := newStub()
	l.err = errors.New("boom")
	_, err := Build(context.Background(), l)
	assert.ErrorContains(t, err, "load sites: boom")
}

func TestBuild_RejectsBrokenInvariants(t *testing.T) {
	l := newStub()
	l.tickets[0].SiteID = "s9"
	_, err := Build(context.Background(), l)
	assert.ErrorIs(t, err, domain.ErrInvariant)
}

func TestSnapshot_LookupNotFound(t *testing.T) {
	snap, err := Build(context.Background(), newStub())
	require.NoError(t, err)

	_, ok := snap.Ticket("missing")
	assert.False(t, ok)
	_, ok = snap.Asset("missing")
	assert.False(t, ok)

	_, err = snap.MustSite("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	u, ok := snap.User("u1")
	assert.True(t, ok)
	assert.Equal(t, "Tech", u.Name)
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	snap, err := Build(context.Background(), newStub())
	require.NoError(t, err)

	sites := snap.Sites()
	sites[0].Name = "mutated"
	sites[1].AssetIDs[0] = "mutated"

	again := snap.Sites()
	assert.Equal(t, "Alpha", again[0].Name)
	assert.Equal(t, "a1", again[1].AssetIDs[0])
}
