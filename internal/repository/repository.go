package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// Repos loads the record collections from SQL tables. It only reads.
type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

type siteRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Location    string    `db:"location"`
	Status      string    `db:"status"`
	LastUpdated time.Time `db:"last_updated"`
	Latitude    float64   `db:"latitude"`
	Longitude   float64   `db:"longitude"`
	PowerOutput float64   `db:"power_output"`
	Efficiency  float64   `db:"efficiency"`
	Alerts      int       `db:"alerts"`
}

type assetRow struct {
	ID              string       `db:"id"`
	Name            string       `db:"name"`
	Type            string       `db:"type"`
	Status          string       `db:"status"`
	LastMaintenance sql.NullTime `db:"last_maintenance"`
	NextMaintenance sql.NullTime `db:"next_maintenance"`
	SiteID          string       `db:"site_id"`
	Images          string       `db:"images"`
}

type ticketRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
	SiteID      string    `db:"site_id"`
	SiteName    string    `db:"site_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	AssignedTo  string    `db:"assigned_to"`
}

type logRow struct {
	ID          string    `db:"id"`
	AssetID     string    `db:"asset_id"`
	AssetName   string    `db:"asset_name"`
	Date        time.Time `db:"date"`
	Technician  string    `db:"technician"`
	Description string    `db:"description"`
	Images      string    `db:"images"`
	Status      string    `db:"status"`
}

type userRow struct {
	ID     string `db:"id"`
	Email  string `db:"email"`
	Name   string `db:"name"`
	Role   string `db:"role"`
	Avatar string `db:"avatar"`
}

// splitImages reads the comma-separated image column.
func splitImages(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// nullTime reads an unscheduled (NULL) date as the zero time.
func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func (r *Repos) LoadSites(ctx context.Context) ([]domain.Site, error) {
	var rows []siteRow
	err := r.db.SelectContext(ctx, &rows, `SELECT id, name, location, status, last_updated, latitude, longitude,
		power_output, efficiency, alerts FROM sites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select sites: %w", err)
	}
	out := make([]domain.Site, 0, len(rows))
	for _, row := range rows {
		status, err := domain.ParseSiteStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", row.ID, err)
		}
		out = append(out, domain.Site{
			ID:          row.ID,
			Name:        row.Name,
			Location:    row.Location,
			Status:      status,
			LastUpdated: row.LastUpdated,
			Coordinates: domain.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
			PowerOutput: row.PowerOutput,
			Efficiency:  row.Efficiency,
			Alerts:      row.Alerts,
		})
	}
	return out, nil
}

func (r *Repos) LoadAssets(ctx context.Context) ([]domain.Asset, error) {
	var rows []assetRow
	err := r.db.SelectContext(ctx, &rows, `SELECT id, name, type, status, last_maintenance, next_maintenance,
		site_id, COALESCE(images, '') AS images FROM assets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select assets: %w", err)
	}
	out := make([]domain.Asset, 0, len(rows))
	for _, row := range rows {
		status, err := domain.ParseAssetStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", row.ID, err)
		}
		out = append(out, domain.Asset{
			ID:              row.ID,
			Name:            row.Name,
			Type:            row.Type,
			Status:          status,
			LastMaintenance: nullTime(row.LastMaintenance),
			NextMaintenance: nullTime(row.NextMaintenance),
			SiteID:          row.SiteID,
			Images:          splitImages(row.Images),
		})
	}
	return out, nil
}

func (r *Repos) LoadTickets(ctx context.Context) ([]domain.Ticket, error) {
	var rows []ticketRow
	err := r.db.SelectContext(ctx, &rows, `SELECT t.id, t.title, t.description, t.priority, t.status, t.site_id,
		s.name AS site_name, t.created_at, t.updated_at, COALESCE(t.assigned_to, '') AS assigned_to
		FROM tickets t JOIN sites s ON s.id = t.site_id ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("select tickets: %w", err)
	}
	out := make([]domain.Ticket, 0, len(rows))
	for _, row := range rows {
		priority, err := domain.ParseTicketPriority(row.Priority)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", row.ID, err)
		}
		status, err := domain.ParseTicketStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", row.ID, err)
		}
		out = append(out, domain.Ticket{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Priority:    priority,
			Status:      status,
			SiteID:      row.SiteID,
			SiteName:    row.SiteName,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			AssignedTo:  row.AssignedTo,
		})
	}
	return out, nil
}

func (r *Repos) LoadMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	var rows []logRow
	err := r.db.SelectContext(ctx, &rows, `SELECT l.id, l.asset_id, a.name AS asset_name, l.date, l.technician,
		l.description, COALESCE(l.images, '') AS images, l.status
		FROM maintenance_logs l JOIN assets a ON a.id = l.asset_id ORDER BY l.id`)
	if err != nil {
		return nil, fmt.Errorf("select maintenance logs: %w", err)
	}
	out := make([]domain.MaintenanceLog, 0, len(rows))
	for _, row := range rows {
		var status domain.MaintenanceStatus
		if err := status.UnmarshalText([]byte(row.Status)); err != nil {
			return nil, fmt.Errorf("maintenance log %s: %w", row.ID, err)
		}
		out = append(out, domain.MaintenanceLog{
			ID:          row.ID,
			AssetID:     row.AssetID,
			AssetName:   row.AssetName,
			Date:        row.Date,
			Technician:  row.Technician,
			Description: row.Description,
			Images:      splitImages(row.Images),
			Status:      status,
		})
	}
	return out, nil
}

func (r *Repos) LoadUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, `SELECT id, email, name, role, COALESCE(avatar, '') AS avatar FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		var role domain.Role
		if err := role.UnmarshalText([]byte(row.Role)); err != nil {
			return nil, fmt.Errorf("user %s: %w", row.ID, err)
		}
		out = append(out, domain.User{ID: row.ID, Email: row.Email, Name: row.Name, Role: role, Avatar: row.Avatar})
	}
	return out, nil
}
