package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSiteStatus(t *testing.T) {
	for _, s := range AllSiteStatuses {
		got, err := ParseSiteStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSiteStatus("Online")
	assert.ErrorIs(t, err, ErrInvalidSiteStatus, "enum match is case-sensitive")
	_, err = ParseSiteStatus("")
	assert.ErrorIs(t, err, ErrInvalidSiteStatus)
}

func TestTicketEnumsRejectUnknownValuesOnDecode(t *testing.T) {
	var tk Ticket
	err := json.Unmarshal([]byte(`{"id":"t1","priority":"urgent","status":"open"}`), &tk)
	assert.ErrorIs(t, err, ErrInvalidTicketPriority)

	err = json.Unmarshal([]byte(`{"id":"t1","priority":"low","status":"in-progress"}`), &tk)
	require.NoError(t, err)
	assert.Equal(t, PriorityLow, tk.Priority)
	assert.Equal(t, TicketInProgress, tk.Status)
}

func validFixture() ([]Site, []Asset, []Ticket, []MaintenanceLog) {
	sites := []Site{
		{ID: "s1", Name: "Solar Farm Alpha", Status: SiteOnline, Efficiency: 94.5, PowerOutput: 2500},
	}
	assets := []Asset{
		{ID: "a1", Name: "Inverter A", Status: AssetOperational, SiteID: "s1"},
	}
	tickets := []Ticket{
		{ID: "t1", Title: "Inverter fault", Priority: PriorityHigh, Status: TicketOpen, SiteID: "s1", SiteName: "Solar Farm Alpha"},
	}
	logs := []MaintenanceLog{
		{ID: "m1", AssetID: "a1", AssetName: "Inverter A", Status: MaintenanceCompleted},
	}
	return sites, assets, tickets, logs
}

func TestValidate_AcceptsConsistentSnapshot(t *testing.T) {
	sites, assets, tickets, logs := validFixture()
	assert.NoError(t, Validate(sites, assets, tickets, logs))
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	sites, assets, tickets, logs := validFixture()
	sites[0].Efficiency = 101
	assets[0].SiteID = "missing"
	tickets[0].SiteName = "Renamed"
	logs[0].AssetID = "ghost"

	err := Validate(sites, assets, tickets, logs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant))

	msg := err.Error()
	assert.Contains(t, msg, "efficiency")
	assert.Contains(t, msg, "unknown site missing")
	assert.Contains(t, msg, `site name "Renamed"`)
	assert.Contains(t, msg, "unknown asset ghost")
}

func TestValidate_NegativeCountsAndDuplicates(t *testing.T) {
	sites, assets, tickets, logs := validFixture()
	sites = append(sites, Site{ID: "s1", Name: "Copy", Status: SiteOffline, Alerts: -1, PowerOutput: -3})

	err := Validate(sites, assets, tickets, logs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate site id s1")
	assert.Contains(t, err.Error(), "negative alert count")
	assert.Contains(t, err.Error(), "negative power output")
}

func TestValidate_EmptyCollections(t *testing.T) {
	assert.NoError(t, Validate(nil, nil, nil, nil))
}

func TestValidate_EmptyIDs(t *testing.T) {
	sites, assets, tickets, logs := validFixture()
	assets = append(assets, Asset{Name: "Nameplate only", Status: AssetOperational, SiteID: "s1"})
	tickets = append(tickets, Ticket{Title: "Orphan", Priority: PriorityLow, Status: TicketOpen, SiteID: "s1", SiteName: "Solar Farm Alpha"})

	err := Validate(sites, assets, tickets, logs)
	require.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), `asset "Nameplate only" has empty id`)
	assert.Contains(t, err.Error(), `ticket "Orphan" has empty id`)
}
