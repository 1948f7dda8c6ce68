package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/store"
)

const schema = `
CREATE TABLE sites (
	id TEXT PRIMARY KEY, name TEXT, location TEXT, status TEXT, last_updated DATETIME,
	latitude REAL, longitude REAL, power_output REAL, efficiency REAL, alerts INTEGER
);
CREATE TABLE assets (
	id TEXT PRIMARY KEY, name TEXT, type TEXT, status TEXT, last_maintenance DATETIME,
	next_maintenance DATETIME, site_id TEXT, images TEXT
);
CREATE TABLE tickets (
	id TEXT PRIMARY KEY, title TEXT, description TEXT, priority TEXT, status TEXT, site_id TEXT,
	created_at DATETIME, updated_at DATETIME, assigned_to TEXT
);
CREATE TABLE maintenance_logs (
	id TEXT PRIMARY KEY, asset_id TEXT, date DATETIME, technician TEXT, description TEXT,
	images TEXT, status TEXT
);
CREATE TABLE users (id TEXT PRIMARY KEY, email TEXT, name TEXT, role TEXT, avatar TEXT);
`

func setupRepositoryTest(t *testing.T) (*sqlx.DB, *Repos) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	db.MustExec(schema)

	ts := time.Date(2024, 3, 18, 9, 42, 0, 0, time.UTC)
	db.MustExec(`INSERT INTO sites VALUES (?,?,?,?,?,?,?,?,?,?)`,
		"site-002", "Wind Park Beta", "Amarillo, Texas", "warning", ts, 35.2, -101.8, 1820.0, 87.2, 3)
	db.MustExec(`INSERT INTO sites VALUES (?,?,?,?,?,?,?,?,?,?)`,
		"site-001", "Solar Farm Alpha", "Phoenix, Arizona", "online", ts, 33.4, -112.0, 2450.5, 94.5, 0)
	db.MustExec(`INSERT INTO assets VALUES (?,?,?,?,?,?,?,?)`,
		"asset-001", "Central Inverter 1", "Inverter", "operational", ts, ts.AddDate(0, 6, 0), "site-001", "a.jpg,b.jpg")
	db.MustExec(`INSERT INTO assets VALUES (?,?,?,?,?,?,?,NULL)`,
		"asset-002", "Turbine T-07", "Wind Turbine", "maintenance", ts, ts, "site-002")
	db.MustExec(`INSERT INTO tickets VALUES (?,?,?,?,?,?,?,?,NULL)`,
		"ticket-001", "Inverter fault", "desc", "critical", "open", "site-002", ts, ts)
	db.MustExec(`INSERT INTO maintenance_logs VALUES (?,?,?,?,?,?,?)`,
		"log-001", "asset-001", ts, "John Carter", "Firmware update", "", "completed")
	db.MustExec(`INSERT INTO users VALUES (?,?,?,?,NULL)`, "u-001", "tech@example.com", "John Carter", "technician")

	return db, New(db)
}

func TestRepos_LoadSnapshot(t *testing.T) {
	_, repos := setupRepositoryTest(t)

	snap, err := store.Build(context.Background(), repos)
	require.NoError(t, err)

	sites := snap.Sites()
	require.Len(t, sites, 2)
	assert.Equal(t, "site-001", sites[0].ID, "ordered by id")
	assert.Equal(t, domain.SiteOnline, sites[0].Status)
	assert.InDelta(t, 33.4, sites[0].Coordinates.Latitude, 1e-9)
	assert.Equal(t, []string{"asset-001"}, sites[0].AssetIDs)

	a, ok := snap.Asset("asset-001")
	require.True(t, ok)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, a.Images)
	a2, _ := snap.Asset("asset-002")
	assert.Nil(t, a2.Images)

	tk, ok := snap.Ticket("ticket-001")
	require.True(t, ok)
	assert.Equal(t, "Wind Park Beta", tk.SiteName, "site name is joined from sites")
	assert.Equal(t, domain.PriorityCritical, tk.Priority)
	assert.Empty(t, tk.AssignedTo)

	logs := snap.LogsForAsset("asset-001")
	require.Len(t, logs, 1)
	assert.Equal(t, "Central Inverter 1", logs[0].AssetName)
	assert.Nil(t, logs[0].Images)

	u, ok := snap.User("u-001")
	require.True(t, ok)
	assert.Equal(t, domain.RoleTechnician, u.Role)
}

func TestRepos_RejectsUnknownStatus(t *testing.T) {
	db, repos := setupRepositoryTest(t)
	db.MustExec(`UPDATE sites SET status = 'exploded' WHERE id = 'site-001'`)

	_, err := repos.LoadSites(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidSiteStatus)
}

func TestRepos_MissingTable(t *testing.T) {
	db, repos := setupRepositoryTest(t)
	db.MustExec(`DROP TABLE users`)

	_, err := repos.LoadUsers(context.Background())
	assert.ErrorContains(t, err, "select users")
}

func TestRepos_UnscheduledMaintenanceIsZero(t *testing.T) {
	db, repos := setupRepositoryTest(t)
	db.MustExec(`UPDATE assets SET next_maintenance = NULL WHERE id = 'asset-001'`)

	assets, err := repos.LoadAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.True(t, assets[0].NextMaintenance.IsZero())
	assert.False(t, assets[0].LastMaintenance.IsZero())
	assert.False(t, assets[1].NextMaintenance.IsZero())
}
