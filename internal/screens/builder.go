// Package screens builds the data each screen renders. Views are plain values
// recomputed from the snapshot on every call; rendering them is left to the
// caller.
package screens

import (
	"context"
	"time"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/navigation"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/store"
)

// Forecaster projects an asset's maintenance outlook.
type Forecaster interface {
	Outlook(a domain.Asset, now time.Time) domain.MaintenanceOutlook
}

type Builder struct {
	snap          *store.Snapshot
	forecast      Forecaster
	now           func() time.Time
	loginDelay    time.Duration
	profileUserID string
}

type Option func(*Builder)

func WithClock(now func() time.Time) Option { return func(b *Builder) { b.now = now } }
func WithForecaster(f Forecaster) Option     { return func(b *Builder) { b.forecast = f } }
func WithLoginDelay(d time.Duration) Option  { return func(b *Builder) { b.loginDelay = d } }
func WithProfileUser(id string) Option       { return func(b *Builder) { b.profileUserID = id } }

func New(snap *store.Snapshot, opts ...Option) *Builder {
	b := &Builder{snap: snap, now: time.Now}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Action is a navigation the user can trigger from a screen.
type Action struct {
	Label string `json:"label"`
	navigation.Request
	Path string `json:"path"`
}

func action(label string, r navigation.Route) Action {
	return Action{Label: label, Request: navigation.Encode(r), Path: navigation.Path(r)}
}

// Login stands in for a sign-in call: it waits the configured delay and then
// asks to replace the login screen with the main tabs.
func (b *Builder) Login(ctx context.Context) (navigation.Request, error) {
	if b.loginDelay > 0 {
		t := time.NewTimer(b.loginDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return navigation.Request{}, ctx.Err()
		case <-t.C:
		}
	}
	req := navigation.Encode(navigation.MainTabs{})
	req.Replace = true
	return req, nil
}

type ProfileView struct {
	Found  bool         `json:"found"`
	User   *domain.User `json:"user,omitempty"`
	Logout Action       `json:"logout"`
}

func (b *Builder) Profile() ProfileView {
	logout := action("Logout", navigation.Login{})
	logout.Replace = true
	v := ProfileView{Logout: logout}
	if u, ok := b.snap.User(b.profileUserID); ok {
		v.Found = true
		v.User = &u
	}
	return v
}
