package cloud

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

// DynamoDBLoader reads each collection from its own table
// (<prefix>Sites, <prefix>Assets, ...). Tables are scanned in full and the
// records sorted by id, since scans carry no order.
type DynamoDBLoader struct {
	svc    dynamodb.ScanAPIClient
	prefix string
}

// NewDynamoDBClient creates a loader backed by the AWS SDK default credential chain.
func NewDynamoDBClient(ctx context.Context, region, prefix string) (*DynamoDBLoader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewDynamoDBLoader(dynamodb.NewFromConfig(cfg), prefix), nil
}

func NewDynamoDBLoader(svc dynamodb.ScanAPIClient, prefix string) *DynamoDBLoader {
	return &DynamoDBLoader{svc: svc, prefix: prefix}
}

// Table record shapes. Instants are unix seconds.
type siteRecord struct {
	SiteID      string  `dynamodbav:"siteId"`
	Name        string  `dynamodbav:"name"`
	Location    string  `dynamodbav:"location"`
	Status      string  `dynamodbav:"status"`
	LastUpdated int64   `dynamodbav:"lastUpdated"`
	Latitude    float64 `dynamodbav:"latitude"`
	Longitude   float64 `dynamodbav:"longitude"`
	PowerKW     float64 `dynamodbav:"powerKw"`
	Efficiency  float64 `dynamodbav:"efficiency"`
	Alerts      int     `dynamodbav:"alerts"`
}

type assetRecord struct {
	AssetID         string   `dynamodbav:"assetId"`
	Name            string   `dynamodbav:"name"`
	Type            string   `dynamodbav:"type"`
	Status          string   `dynamodbav:"status"`
	LastMaintenance int64    `dynamodbav:"lastMaintenance"`
	NextMaintenance int64    `dynamodbav:"nextMaintenance"`
	SiteID          string   `dynamodbav:"siteId"`
	Images          []string `dynamodbav:"images,omitempty"`
}

type ticketRecord struct {
	TicketID    string `dynamodbav:"ticketId"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Priority    string `dynamodbav:"priority"`
	Status      string `dynamodbav:"status"`
	SiteID      string `dynamodbav:"siteId"`
	SiteName    string `dynamodbav:"siteName"`
	CreatedAt   int64  `dynamodbav:"createdAt"`
	UpdatedAt   int64  `dynamodbav:"updatedAt"`
	AssignedTo  string `dynamodbav:"assignedTo,omitempty"`
}

type logRecord struct {
	LogID       string   `dynamodbav:"logId"`
	AssetID     string   `dynamodbav:"assetId"`
	AssetName   string   `dynamodbav:"assetName"`
	Date        int64    `dynamodbav:"date"`
	Technician  string   `dynamodbav:"technician"`
	Description string   `dynamodbav:"description"`
	Images      []string `dynamodbav:"images,omitempty"`
	Status      string   `dynamodbav:"status"`
}

type userRecord struct {
	UserID string `dynamodbav:"userId"`
	Email  string `dynamodbav:"email"`
	Name   string `dynamodbav:"name"`
	Role   string `dynamodbav:"role"`
	Avatar string `dynamodbav:"avatar,omitempty"`
}

// unix maps a missing (zero) attribute to the zero time.
func unix(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

func scanAll[T any](ctx context.Context, svc dynamodb.ScanAPIClient, table string) ([]T, error) {
	var out []T
	paginator := dynamodb.NewScanPaginator(svc, &dynamodb.ScanInput{TableName: aws.String(table)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", table, err)
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (c *DynamoDBLoader) LoadSites(ctx context.Context) ([]domain.Site, error) {
	recs, err := scanAll[siteRecord](ctx, c.svc, c.prefix+"Sites")
	if err != nil {
		return nil, err
	}
	slices.SortFunc(recs, func(a, b siteRecord) int { return cmp.Compare(a.SiteID, b.SiteID) })

	sites := make([]domain.Site, len(recs))
	for i, r := range recs {
		status, err := domain.ParseSiteStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", r.SiteID, err)
		}
		sites[i] = domain.Site{
			ID:          r.SiteID,
			Name:        r.Name,
			Location:    r.Location,
			Status:      status,
			LastUpdated: unix(r.LastUpdated),
			Coordinates: domain.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
			PowerOutput: r.PowerKW,
			Efficiency:  r.Efficiency,
			Alerts:      r.Alerts,
		}
	}
	return sites, nil
}

func (c *DynamoDBLoader) LoadAssets(ctx context.Context) ([]domain.Asset, error) {
	recs, err := scanAll[assetRecord](ctx, c.svc, c.prefix+"Assets")
	if err != nil {
		return nil, err
	}
	slices.SortFunc(recs, func(a, b assetRecord) int { return cmp.Compare(a.AssetID, b.AssetID) })

	assets := make([]domain.Asset, len(recs))
	for i, r := range recs {
		status, err := domain.ParseAssetStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", r.AssetID, err)
		}
		assets[i] = domain.Asset{
			ID:              r.AssetID,
			Name:            r.Name,
			Type:            r.Type,
			Status:          status,
			LastMaintenance: unix(r.LastMaintenance),
			NextMaintenance: unix(r.NextMaintenance),
			SiteID:          r.SiteID,
			Images:          r.Images,
		}
	}
	return assets, nil
}

func (c *DynamoDBLoader) LoadTickets(ctx context.Context) ([]domain.Ticket, error) {
	recs, err := scanAll[ticketRecord](ctx, c.svc, c.prefix+"Tickets")
	if err != nil {
		return nil, err
	}
	slices.SortFunc(recs, func(a, b ticketRecord) int { return cmp.Compare(a.TicketID, b.TicketID) })

	tickets := make([]domain.Ticket, len(recs))
	for i, r := range recs {
		priority, err := domain.ParseTicketPriority(r.Priority)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", r.TicketID, err)
		}
		status, err := domain.ParseTicketStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", r.TicketID, err)
		}
		tickets[i] = domain.Ticket{
			ID:          r.TicketID,
			Title:       r.Title,
			Description: r.Description,
			Priority:    priority,
			Status:      status,
			SiteID:      r.SiteID,
			SiteName:    r.SiteName,
			CreatedAt:   unix(r.CreatedAt),
			UpdatedAt:   unix(r.UpdatedAt),
			AssignedTo:  r.AssignedTo,
		}
	}
	return tickets, nil
}

func (c *DynamoDBLoader) LoadMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	recs, err := scanAll[logRecord](ctx, c.svc, c.prefix+"MaintenanceLogs")
	if err != nil {
		return nil, err
	}
	slices.SortFunc(recs, func(a, b logRecord) int { return cmp.Compare(a.LogID, b.LogID) })

	logs := make([]domain.MaintenanceLog, len(recs))
	for i, r := range recs {
		var status domain.MaintenanceStatus
		if err := status.UnmarshalText([]byte(r.Status)); err != nil {
			return nil, fmt.Errorf("maintenance log %s: %w", r.LogID, err)
		}
		logs[i] = domain.MaintenanceLog{
			ID:          r.LogID,
			AssetID:     r.AssetID,
			AssetName:   r.AssetName,
			Date:        unix(r.Date),
			Technician:  r.Technician,
			Description: r.Description,
			Images:      r.Images,
			Status:      status,
		}
	}
	return logs, nil
}

func (c *DynamoDBLoader) LoadUsers(ctx context.Context) ([]domain.User, error) {
	recs, err := scanAll[userRecord](ctx, c.svc, c.prefix+"Users")
	if err != nil {
		return nil, err
	}
	slices.SortFunc(recs, func(a, b userRecord) int { return cmp.Compare(a.UserID, b.UserID) })

	users := make([]domain.User, len(recs))
	for i, r := range recs {
		var role domain.Role
		if err := role.UnmarshalText([]byte(r.Role)); err != nil {
			return nil, fmt.Errorf("user %s: %w", r.UserID, err)
		}
		users[i] = domain.User{ID: r.UserID, Email: r.Email, Name: r.Name, Role: role, Avatar: r.Avatar}
	}
	return users, nil
}
