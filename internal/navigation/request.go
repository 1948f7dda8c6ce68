package navigation

import (
	"fmt"
	"net/url"
)

// Request is the untyped wire form of a route used by the HTTP and CLI
// boundaries. Replace asks the navigator to swap the current screen instead
// of pushing a new one.
type Request struct {
	Destination Destination       `json:"destination"`
	Params      map[string]string `json:"params,omitempty"`
	Replace     bool              `json:"replace,omitempty"`
}

// Parse turns a request into a validated Route.
func Parse(req Request) (Route, error) {
	p := req.Params
	var r Route
	switch req.Destination {
	case DestLogin:
		r = Login{}
	case DestMainTabs:
		r = MainTabs{}
	case DestSiteDetails:
		r = SiteDetails{SiteID: p[ParamSiteID]}
	case DestAssetDetails:
		r = AssetDetails{AssetID: p[ParamAssetID]}
	case DestTicketDetails:
		r = TicketDetails{TicketID: p[ParamTicketID]}
	case DestCreateTicket:
		r = CreateTicket{SiteID: p[ParamSiteID]}
	case DestUploadMaintenance:
		r = UploadMaintenance{AssetID: p[ParamAssetID]}
	default:
		tab := Tab(req.Destination)
		if !tab.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDestination, req.Destination)
		}
		r = TabRoute{Tab: tab}
	}
	if err := Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Encode is the inverse of Parse.
func Encode(r Route) Request {
	req := Request{Destination: r.Destination()}
	set := func(k, v string) {
		if v != "" {
			req.Params = map[string]string{k: v}
		}
	}
	switch r := r.(type) {
	case SiteDetails:
		set(ParamSiteID, r.SiteID)
	case AssetDetails:
		set(ParamAssetID, r.AssetID)
	case TicketDetails:
		set(ParamTicketID, r.TicketID)
	case CreateTicket:
		set(ParamSiteID, r.SiteID)
	case UploadMaintenance:
		set(ParamAssetID, r.AssetID)
	case Login, MainTabs, TabRoute:
	}
	return req
}

// Path is the render-boundary location of a route's screen.
func Path(r Route) string {
	switch r := r.(type) {
	case Login:
		return "/login"
	case MainTabs:
		return "/screens/dashboard"
	case SiteDetails:
		return "/screens/sites/" + url.PathEscape(r.SiteID)
	case AssetDetails:
		return "/screens/assets/" + url.PathEscape(r.AssetID)
	case TicketDetails:
		return "/screens/tickets/" + url.PathEscape(r.TicketID)
	case CreateTicket:
		if r.SiteID == "" {
			return "/screens/tickets/new"
		}
		return "/screens/tickets/new?site_id=" + url.QueryEscape(r.SiteID)
	case UploadMaintenance:
		return "/screens/assets/" + url.PathEscape(r.AssetID) + "/maintenance/new"
	case TabRoute:
		switch r.Tab {
		case TabDashboard:
			return "/screens/dashboard"
		case TabSites:
			return "/screens/sites"
		case TabTickets:
			return "/screens/tickets"
		case TabStatistics:
			return "/screens/statistics"
		case TabProfile:
			return "/screens/profile"
		}
	}
	return ""
}
