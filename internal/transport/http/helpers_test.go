package http

import (
	"context"
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/app"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/surface"
)

// fakeAuth satisfies the auth-facing handler interfaces. A zero value rejects
// every token; set user/session to accept "token-ok".
type fakeAuth struct {
	user    domain.User
	session domain.Session

	registerErr error
	loginErr    error
	resumeErr   error
	logoutErr   error

	registered []app.RegisterInput
	loggedOut  []string
}

func (f *fakeAuth) Register(ctx context.Context, in app.RegisterInput) (domain.User, domain.Session, error) {
	f.registered = append(f.registered, in)
	if f.registerErr != nil {
		return domain.User{}, domain.Session{}, f.registerErr
	}
	return f.user, f.session, nil
}

func (f *fakeAuth) Login(ctx context.Context, in app.LoginInput) (domain.User, domain.Session, error) {
	if f.loginErr != nil {
		return domain.User{}, domain.Session{}, f.loginErr
	}
	return f.user, f.session, nil
}

func (f *fakeAuth) Resume(ctx context.Context, token string) (domain.User, domain.Session, error) {
	if f.resumeErr != nil {
		return domain.User{}, domain.Session{}, f.resumeErr
	}
	if token == "" || token != f.session.Token {
		return domain.User{}, domain.Session{}, domain.ErrAuthenticationRequired
	}
	return f.user, f.session, nil
}

func (f *fakeAuth) Logout(ctx context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return f.logoutErr
}

func authedFake() *fakeAuth {
	return &fakeAuth{
		user:    domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"},
		session: domain.Session{Token: "token-ok", UserID: "u1", LastActivity: time.Now()},
	}
}

// fakePreferences satisfies every preference-facing handler interface with
// canned per-scope state.
type fakePreferences struct {
	state map[domain.Scope]domain.Preferences

	addEntry      domain.TimeZoneEntry
	addOK         bool
	removeOK      bool
	reorderErr    error
	saveRemoteErr error
	loadRemoteErr error
	remoteFound   bool

	resets []domain.Scope
}

func newFakePreferences() *fakePreferences {
	return &fakePreferences{
		state: map[domain.Scope]domain.Preferences{},
	}
}

func (f *fakePreferences) Load(ctx context.Context, scope domain.Scope) domain.Preferences {
	if prefs, ok := f.state[scope]; ok {
		return prefs
	}
	return domain.DefaultPreferences(domain.TrackedList{
		{ID: "1", City: "Tokyo", Country: "Japan", TimeZone: "Asia/Tokyo", Abbreviation: "JST"},
	})
}

func (f *fakePreferences) UpdateSettings(ctx context.Context, scope domain.Scope, settings domain.DisplaySettings) domain.Preferences {
	prefs := f.Load(ctx, scope)
	prefs.Settings = settings
	f.state[scope] = prefs
	return prefs
}

func (f *fakePreferences) AddTimeZone(ctx context.Context, scope domain.Scope, entry domain.TimeZoneEntry) (domain.TimeZoneEntry, bool) {
	if !f.addOK {
		return domain.TimeZoneEntry{}, false
	}
	return f.addEntry, true
}

func (f *fakePreferences) RemoveTimeZone(ctx context.Context, scope domain.Scope, id string) bool {
	return f.removeOK
}

func (f *fakePreferences) ReorderTimeZones(ctx context.Context, scope domain.Scope, from, to int) error {
	return f.reorderErr
}

func (f *fakePreferences) SaveRemote(ctx context.Context, scope domain.Scope) error {
	return f.saveRemoteErr
}

func (f *fakePreferences) LoadRemote(ctx context.Context, scope domain.Scope) (bool, error) {
	if f.loadRemoteErr != nil {
		return false, f.loadRemoteErr
	}
	return f.remoteFound, nil
}

func (f *fakePreferences) Reset(scope domain.Scope) {
	f.resets = append(f.resets, scope)
}

type fakeHub struct {
	openOK   bool
	opened   []string
	closings []surface.Closing
}

func (f *fakeHub) Open(key string, s surface.Surface, settings domain.DisplaySettings) bool {
	f.opened = append(f.opened, key)
	if f.openOK {
		_ = s.Deliver(surface.UpdateSettings{Settings: settings})
	}
	return f.openOK
}

func (f *fakeHub) NotifyClosing(msg surface.Closing) {
	f.closings = append(f.closings, msg)
}
