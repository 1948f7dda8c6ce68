package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/fixtures"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/navigation"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--source", "mock"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSitesCommand(t *testing.T) {
	out, err := run(t, "sites", "--status", "warning")
	require.NoError(t, err)

	var v struct {
		Sites []struct{ ID string } `json:"sites"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v.Sites, 1)
	assert.Equal(t, "site-002", v.Sites[0].ID)
}

func TestTicketsCommand(t *testing.T) {
	out, err := run(t, "tickets", "-q", "inverter")
	require.NoError(t, err)
	assert.Contains(t, out, "ticket-001")
	assert.NotContains(t, out, `"id": "ticket-002"`)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, `"uptime": "60%"`)
}

func TestSiteCommand_NotFound(t *testing.T) {
	_, err := run(t, "site", "site-999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNavigateCommand(t *testing.T) {
	out, err := run(t, "navigate", "AssetDetails", "assetId=asset-002")
	require.NoError(t, err)
	assert.Contains(t, out, `"path": "/screens/assets/asset-002"`)

	_, err = run(t, "navigate", "AssetDetails")
	assert.ErrorIs(t, err, navigation.ErrMissingParameter)

	_, err = run(t, "navigate", "SiteDetails", "siteId")
	assert.ErrorContains(t, err, "key=value")
}

func TestExportCommand(t *testing.T) {
	out, err := run(t, "export")
	require.NoError(t, err)

	var doc fixtures.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Sites, 5)
	assert.Len(t, doc.MaintenanceLogs, 3)
}
