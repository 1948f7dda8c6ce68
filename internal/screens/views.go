package screens

import (
	"fmt"
	"time"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/filter"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/navigation"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/stats"
)

const dashboardSiteLimit = 3

type SiteRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	Badge      Badge  `json:"badge"`
	Power      string `json:"power"`
	Efficiency string `json:"efficiency"`
	Alerts     int    `json:"alerts"`
	Open       Action `json:"open"`
}

type TicketRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	SiteName    string `json:"site_name"`
	Priority    string `json:"priority"`
	PriorityTag Badge  `json:"priority_badge"`
	Status      string `json:"status"`
	StatusTag   Badge  `json:"status_badge"`
	CreatedAt   string `json:"created_at"`
	Open        Action `json:"open"`
}

type AssetRow struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Badge           Badge  `json:"badge"`
	NextMaintenance string `json:"next_maintenance"`
	Open            Action `json:"open"`
}

// FilterOption is one filter button, labelled with its count over the
// unfiltered collection.
type FilterOption struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

func siteRow(s domain.Site) SiteRow {
	return SiteRow{
		ID:         s.ID,
		Name:       s.Name,
		Location:   s.Location,
		Status:     s.Status.String(),
		Badge:      SiteBadge(s.Status),
		Power:      Power(s.PowerOutput),
		Efficiency: Percent(s.Efficiency),
		Alerts:     s.Alerts,
		Open:       action(s.Name, navigation.SiteDetails{SiteID: s.ID}),
	}
}

func ticketRow(t domain.Ticket) TicketRow {
	return TicketRow{
		ID:          t.ID,
		Title:       t.Title,
		SiteName:    t.SiteName,
		Priority:    t.Priority.String(),
		PriorityTag: PriorityBadge(t.Priority),
		Status:      t.Status.String(),
		StatusTag:   TicketStatusBadge(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.DateOnly),
		Open:        action(t.Title, navigation.TicketDetails{TicketID: t.ID}),
	}
}

func assetRow(a domain.Asset) AssetRow {
	return AssetRow{
		ID:              a.ID,
		Name:            a.Name,
		Type:            a.Type,
		Status:          string(a.Status),
		Badge:           AssetBadge(a.Status),
		NextMaintenance: a.NextMaintenance.Format(time.DateOnly),
		Open:            action(a.Name, navigation.AssetDetails{AssetID: a.ID}),
	}
}

func mapRows[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}

type DashboardView struct {
	Statistics      domain.Statistics `json:"statistics"`
	ActiveSites     string            `json:"active_sites"`
	TotalPower      string            `json:"total_power"`
	OpenTickets     string            `json:"open_tickets"`
	AvgEfficiency   string            `json:"average_efficiency"`
	CriticalTickets []TicketRow       `json:"critical_tickets"`
	RecentSites     []SiteRow         `json:"recent_sites"`
	QuickActions    []Action          `json:"quick_actions"`
}

func (b *Builder) Dashboard() DashboardView {
	sites, tickets := b.snap.Sites(), b.snap.Tickets()
	st := stats.Compute(sites, tickets)

	critical := filter.Tickets(tickets, filter.TicketQuery{Priority: filter.Only(domain.PriorityCritical)})
	online := filter.Sites(sites, filter.SiteQuery{Status: filter.Only(domain.SiteOnline)})
	if len(online) > dashboardSiteLimit {
		online = online[:dashboardSiteLimit]
	}

	return DashboardView{
		Statistics:      st,
		ActiveSites:     fmt.Sprint(st.ActiveSites),
		TotalPower:      Power(st.TotalPowerOutput),
		OpenTickets:     fmt.Sprint(st.OpenTickets),
		AvgEfficiency:   Percent(st.AverageEfficiency),
		CriticalTickets: mapRows(critical, ticketRow),
		RecentSites:     mapRows(online, siteRow),
		QuickActions: []Action{
			action("Create Ticket", navigation.CreateTicket{}),
			action("View Sites", navigation.TabRoute{Tab: navigation.TabSites}),
			action("Statistics", navigation.TabRoute{Tab: navigation.TabStatistics}),
		},
	}
}

type SitesView struct {
	Query   string         `json:"query"`
	Filters []FilterOption `json:"filters"`
	Sites   []SiteRow      `json:"sites"`
}

// Sites lists sites matching query in name or location. rawCategory is a
// status name or "all"; anything else shows every site.
func (b *Builder) Sites(query, rawCategory string) SitesView {
	all := b.snap.Sites()
	cat := filter.ParseSiteCategory(rawCategory)
	matched := filter.Sites(all, filter.SiteQuery{Text: query, Status: cat})

	opts := make([]FilterOption, 0, len(domain.AllSiteStatuses)+1)
	for _, c := range filter.SiteCounts(all) {
		label, value := "All", filter.AllSentinel
		if s, ok := c.Category.Value(); ok {
			label, value = siteLabels[s], s.String()
		}
		opts = append(opts, FilterOption{Label: label, Value: value, Count: c.Count, Active: c.Category == cat})
	}

	return SitesView{Query: query, Filters: opts, Sites: mapRows(matched, siteRow)}
}

type TicketsView struct {
	Query   string         `json:"query"`
	Filters []FilterOption `json:"filters"`
	Tickets []TicketRow    `json:"tickets"`
	Create  Action         `json:"create"`
}

func (b *Builder) Tickets(query, rawStatus, rawPriority string) TicketsView {
	all := b.snap.Tickets()
	status := filter.ParseTicketCategory(rawStatus)
	matched := filter.Tickets(all, filter.TicketQuery{
		Text:     query,
		Status:   status,
		Priority: filter.ParsePriorityCategory(rawPriority),
	})

	opts := make([]FilterOption, 0, len(domain.AllTicketStatuses)+1)
	for _, c := range filter.TicketCounts(all) {
		label, value := "All", filter.AllSentinel
		if s, ok := c.Category.Value(); ok {
			label, value = ticketLabels[s], s.String()
		}
		opts = append(opts, FilterOption{Label: label, Value: value, Count: c.Count, Active: c.Category == status})
	}

	return TicketsView{
		Query:   query,
		Filters: opts,
		Tickets: mapRows(matched, ticketRow),
		Create:  action("New Ticket", navigation.CreateTicket{}),
	}
}

type SiteDetailsView struct {
	Found        bool                `json:"found"`
	SiteID       string              `json:"site_id"`
	Site         *SiteRow            `json:"site,omitempty"`
	LastUpdated  string              `json:"last_updated,omitempty"`
	Coordinates  *domain.Coordinates `json:"coordinates,omitempty"`
	Assets       []AssetRow          `json:"assets"`
	CreateTicket *Action             `json:"create_ticket,omitempty"`
	Back         Action              `json:"back"`
}

// SiteDetails never fails: an unknown id yields Found false and the
// "Site not found" fallback.
func (b *Builder) SiteDetails(siteID string) SiteDetailsView {
	v := SiteDetailsView{
		SiteID: siteID,
		Assets: []AssetRow{},
		Back:   action("Back", navigation.TabRoute{Tab: navigation.TabSites}),
	}
	s, ok := b.snap.Site(siteID)
	if !ok {
		return v
	}
	row := siteRow(s)
	coords := s.Coordinates
	create := action("Create Ticket", navigation.CreateTicket{SiteID: s.ID})

	v.Found = true
	v.Site = &row
	v.LastUpdated = s.LastUpdated.Format(time.RFC3339)
	v.Coordinates = &coords
	v.Assets = mapRows(b.snap.AssetsForSite(s.ID), assetRow)
	v.CreateTicket = &create
	return v
}

type LogRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Technician  string `json:"technician"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Images      int    `json:"images"`
}

type AssetDetailsView struct {
	Found     bool                       `json:"found"`
	AssetID   string                     `json:"asset_id"`
	Asset     *AssetRow                  `json:"asset,omitempty"`
	SiteName  string                     `json:"site_name,omitempty"`
	Logs      []LogRow                   `json:"logs"`
	Outlook   *domain.MaintenanceOutlook `json:"outlook,omitempty"`
	Upload    *Action                    `json:"upload_maintenance,omitempty"`
	OwnerSite *Action                    `json:"site,omitempty"`
}

func (b *Builder) AssetDetails(assetID string) AssetDetailsView {
	v := AssetDetailsView{AssetID: assetID, Logs: []LogRow{}}
	a, ok := b.snap.Asset(assetID)
	if !ok {
		return v
	}
	row := assetRow(a)
	upload := action("Upload Maintenance", navigation.UploadMaintenance{AssetID: a.ID})

	v.Found = true
	v.Asset = &row
	v.Upload = &upload
	if s, ok := b.snap.Site(a.SiteID); ok {
		owner := action(s.Name, navigation.SiteDetails{SiteID: s.ID})
		v.SiteName = s.Name
		v.OwnerSite = &owner
	}
	v.Logs = mapRows(b.snap.LogsForAsset(a.ID), func(l domain.MaintenanceLog) LogRow {
		return LogRow{
			ID:          l.ID,
			Date:        l.Date.Format(time.DateOnly),
			Technician:  l.Technician,
			Description: l.Description,
			Status:      string(l.Status),
			Images:      len(l.Images),
		}
	})
	if b.forecast != nil {
		o := b.forecast.Outlook(a, b.now())
		v.Outlook = &o
	}
	return v
}

type TicketDetailsView struct {
	Found       bool       `json:"found"`
	TicketID    string     `json:"ticket_id"`
	Ticket      *TicketRow `json:"ticket,omitempty"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
	Site        *Action    `json:"site,omitempty"`
}

func (b *Builder) TicketDetails(ticketID string) TicketDetailsView {
	v := TicketDetailsView{TicketID: ticketID}
	t, ok := b.snap.Ticket(ticketID)
	if !ok {
		return v
	}
	row := ticketRow(t)
	site := action(t.SiteName, navigation.SiteDetails{SiteID: t.SiteID})

	v.Found = true
	v.Ticket = &row
	v.Description = t.Description
	v.AssignedTo = t.AssignedTo
	if v.AssignedTo == "" {
		v.AssignedTo = "Unassigned"
	}
	v.UpdatedAt = t.UpdatedAt.Format(time.RFC3339)
	v.Site = &site
	return v
}

type Choice struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type CreateTicketView struct {
	Sites      []Choice `json:"sites"`
	Priorities []Choice `json:"priorities"`
	Prefilled  bool     `json:"prefilled"`
}

// CreateTicket lists the form options. A siteID matching no site leaves the
// site unselected.
func (b *Builder) CreateTicket(siteID string) CreateTicketView {
	sites := b.snap.Sites()
	v := CreateTicketView{
		Sites:      make([]Choice, 0, len(sites)),
		Priorities: make([]Choice, 0, len(domain.AllTicketPriorities)),
	}
	for _, s := range sites {
		sel := s.ID == siteID
		v.Prefilled = v.Prefilled || sel
		v.Sites = append(v.Sites, Choice{Label: s.Name, Value: s.ID, Selected: sel})
	}
	for _, p := range domain.AllTicketPriorities {
		v.Priorities = append(v.Priorities, Choice{
			Label:    p.String(),
			Value:    p.String(),
			Selected: p == domain.PriorityMedium,
		})
	}
	return v
}

type UploadMaintenanceView struct {
	Found      bool     `json:"found"`
	AssetID    string   `json:"asset_id"`
	AssetName  string   `json:"asset_name,omitempty"`
	Technician string   `json:"technician,omitempty"`
	Statuses   []Choice `json:"statuses"`
	Cancel     Action   `json:"cancel"`
}

func (b *Builder) UploadMaintenance(assetID string) UploadMaintenanceView {
	v := UploadMaintenanceView{
		AssetID: assetID,
		Statuses: []Choice{
			{Label: "Completed", Value: string(domain.MaintenanceCompleted), Selected: true},
			{Label: "Scheduled", Value: string(domain.MaintenanceScheduled)},
		},
		Cancel: action("Cancel", navigation.AssetDetails{AssetID: assetID}),
	}
	a, ok := b.snap.Asset(assetID)
	if !ok {
		return v
	}
	v.Found = true
	v.AssetName = a.Name
	if u, ok := b.snap.User(b.profileUserID); ok {
		v.Technician = u.Name
	}
	return v
}

type DistributionSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Badge Badge  `json:"badge"`
}

type StatisticsView struct {
	Overview     domain.Statistics      `json:"overview"`
	Uptime       string                 `json:"uptime"`
	ActiveRatio  string                 `json:"active_ratio"`
	TotalPower   string                 `json:"total_power"`
	Efficiency   string                 `json:"average_efficiency"`
	Distribution []DistributionSlice    `json:"distribution"`
	BySite       []stats.SiteEfficiency `json:"efficiency_by_site"`
}

func (b *Builder) Statistics() StatisticsView {
	sites := b.snap.Sites()
	st := stats.Compute(sites, b.snap.Tickets())

	dist := mapRows(stats.StatusDistribution(sites), func(s stats.StatusShare) DistributionSlice {
		return DistributionSlice{Label: siteLabels[s.Status], Count: s.Count, Badge: SiteBadge(s.Status)}
	})

	return StatisticsView{
		Overview:     st,
		Uptime:       Percent(st.Uptime),
		ActiveRatio:  fmt.Sprintf("%d / %d", st.ActiveSites, st.TotalSites),
		TotalPower:   Power(st.TotalPowerOutput),
		Efficiency:   Percent(st.AverageEfficiency),
		Distribution: dist,
		BySite:       stats.EfficiencyBySite(sites),
	}
}
