package app

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// LocalStore is the per-device preference store, written on every mutation.
type LocalStore interface {
	Load(ctx context.Context, scope domain.Scope) (*domain.Preferences, error)
	Save(ctx context.Context, scope domain.Scope, prefs domain.Preferences) error
}

// RemoteStore is the server-side mirror, written only on explicit request.
type RemoteStore interface {
	Load(ctx context.Context, scope domain.Scope) (*domain.Preferences, error)
	Save(ctx context.Context, scope domain.Scope, prefs domain.Preferences) error
}

// Broadcaster fans a settings snapshot out to open rendering surfaces.
type Broadcaster interface {
	Broadcast(settings domain.DisplaySettings)
}

// PreferenceService owns the current preferences per scope. The in-memory
// state is authoritative for the running session; persistence is best-effort
// and a store failure never invalidates it.
type PreferenceService struct {
	local     LocalStore
	remote    RemoteStore
	broadcast Broadcaster
	defaults  domain.TrackedList
	logger    *log.Logger

	mu    sync.Mutex
	state map[domain.Scope]*domain.Preferences

	savingRemote  atomic.Bool
	loadingRemote atomic.Bool
}

func NewPreferenceService(local LocalStore, remote RemoteStore, broadcast Broadcaster, defaults domain.TrackedList, logger *log.Logger) *PreferenceService {
	if logger == nil {
		logger = log.Default()
	}
	return &PreferenceService{
		local:     local,
		remote:    remote,
		broadcast: broadcast,
		defaults:  defaults,
		logger:    logger,
		state:     make(map[domain.Scope]*domain.Preferences),
	}
}

// Load returns the current preferences for scope: in-memory state if the
// scope is already active, otherwise the local store, otherwise defaults.
func (s *PreferenceService) Load(ctx context.Context, scope domain.Scope) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, scope).Clone()
}

func (s *PreferenceService) loadLocked(ctx context.Context, scope domain.Scope) *domain.Preferences {
	if prefs, ok := s.state[scope]; ok {
		return prefs
	}

	if stored, err := s.local.Load(ctx, scope); err != nil {
		s.logger.Printf("WARN: local load for %s failed: %v", scope, err)
	} else if stored != nil {
		s.state[scope] = stored
		return stored
	}

	prefs := domain.DefaultPreferences(s.defaults)
	s.state[scope] = &prefs
	return &prefs
}

// UpdateSettings replaces the settings for scope, broadcasts the new snapshot
// to every open surface, and persists locally best-effort.
func (s *PreferenceService) UpdateSettings(ctx context.Context, scope domain.Scope, settings domain.DisplaySettings) domain.Preferences {
	s.mu.Lock()
	prefs := s.loadLocked(ctx, scope)
	prefs.Settings = settings
	snapshot := prefs.Clone()
	s.mu.Unlock()

	if s.broadcast != nil {
		s.broadcast.Broadcast(settings)
	}
	s.persistLocal(ctx, scope, snapshot)
	return snapshot
}

// AddTimeZone appends a catalog entry to the tracked list under a fresh ID.
// Duplicate (city, zone) pairs are a no-op and report false.
func (s *PreferenceService) AddTimeZone(ctx context.Context, scope domain.Scope, entry domain.TimeZoneEntry) (domain.TimeZoneEntry, bool) {
	s.mu.Lock()
	prefs := s.loadLocked(ctx, scope)
	added := prefs.TimeZones.Add(newUUID(), entry)
	var result domain.TimeZoneEntry
	if added {
		result = prefs.TimeZones[len(prefs.TimeZones)-1]
	}
	snapshot := prefs.Clone()
	s.mu.Unlock()

	if added {
		s.persistLocal(ctx, scope, snapshot)
	}
	return result, added
}

// RemoveTimeZone drops the entry with the given ID; absent IDs are a no-op.
func (s *PreferenceService) RemoveTimeZone(ctx context.Context, scope domain.Scope, id string) bool {
	s.mu.Lock()
	prefs := s.loadLocked(ctx, scope)
	removed := prefs.TimeZones.Remove(id)
	snapshot := prefs.Clone()
	s.mu.Unlock()

	if removed {
		s.persistLocal(ctx, scope, snapshot)
	}
	return removed
}

// ReorderTimeZones moves the entry at from to position to. Out-of-range
// indices fail with ErrIndexOutOfRange and leave the list unchanged.
func (s *PreferenceService) ReorderTimeZones(ctx context.Context, scope domain.Scope, from, to int) error {
	s.mu.Lock()
	prefs := s.loadLocked(ctx, scope)
	if err := prefs.TimeZones.Reorder(from, to); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := prefs.Clone()
	s.mu.Unlock()

	s.persistLocal(ctx, scope, snapshot)
	return nil
}

// SaveRemote mirrors the scope's current state to the remote store. Requires
// an authenticated scope; a save already in flight is rejected, not queued.
func (s *PreferenceService) SaveRemote(ctx context.Context, scope domain.Scope) error {
	if scope == domain.ScopeAnonymous {
		return domain.ErrAuthenticationRequired
	}
	if !s.savingRemote.CompareAndSwap(false, true) {
		return domain.ErrSyncInProgress
	}
	defer s.savingRemote.Store(false)

	s.mu.Lock()
	snapshot := s.loadLocked(ctx, scope).Clone()
	s.mu.Unlock()

	return s.remote.Save(ctx, scope, snapshot)
}

// LoadRemote replaces the scope's state wholesale with the remote mirror when
// one exists. When nothing is stored it reports found=false with no error and
// leaves local state untouched.
func (s *PreferenceService) LoadRemote(ctx context.Context, scope domain.Scope) (bool, error) {
	if scope == domain.ScopeAnonymous {
		return false, domain.ErrAuthenticationRequired
	}
	if !s.loadingRemote.CompareAndSwap(false, true) {
		return false, domain.ErrSyncInProgress
	}
	defer s.loadingRemote.Store(false)

	stored, err := s.remote.Load(ctx, scope)
	if err != nil {
		return false, err
	}
	if stored == nil {
		return false, nil
	}

	s.mu.Lock()
	s.state[scope] = stored
	snapshot := stored.Clone()
	s.mu.Unlock()

	if s.broadcast != nil {
		s.broadcast.Broadcast(snapshot.Settings)
	}
	s.persistLocal(ctx, scope, snapshot)
	return true, nil
}

// Reset drops the in-memory state for scope, e.g. on logout. The next Load
// re-reads the scope's own partition, so another identity's state can never
// bleed through.
func (s *PreferenceService) Reset(scope domain.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state, scope)
}

func (s *PreferenceService) persistLocal(ctx context.Context, scope domain.Scope, prefs domain.Preferences) {
	if err := s.local.Save(ctx, scope, prefs); err != nil {
		s.logger.Printf("WARN: local save for %s failed: %v", scope, err)
	}
}
