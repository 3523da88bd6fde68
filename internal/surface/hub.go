// Package surface keeps detached rendering surfaces (popup clocks) visually
// consistent with the current display settings. Surfaces never share state;
// each holds its own settings copy and hears about changes only through
// broadcast messages.
package surface

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// Message is one cross-surface protocol message.
type Message interface {
	isMessage()
}

// UpdateSettings carries the full settings snapshot, parent to popup.
type UpdateSettings struct {
	Settings domain.DisplaySettings
}

// Closing announces that a popup is going away, popup to parent.
type Closing struct {
	TimeZoneID string
}

func (UpdateSettings) isMessage() {}
func (Closing) isMessage()        {}

// Surface is one detached rendering target.
type Surface interface {
	// Deliver sends a message best-effort and must not block. A non-nil error
	// means the surface is gone; the hub drops it from tracking.
	Deliver(msg Message) error
	// Closed is the surface's liveness flag, polled by the sweep.
	Closed() bool
	// Focus raises the surface instead of opening a duplicate.
	Focus()
}

// State is the lifecycle of a tracked surface. Closed is terminal.
type State int

const (
	StateOpening State = iota
	StateLive
	StateClosed
)

type handle struct {
	key     string
	surface Surface
	state   State
}

const defaultSweepInterval = 5 * time.Second

// Hub tracks open surfaces keyed by tracked-entry ID and fans settings
// changes out to all of them. Removal is redundant on purpose: delivery
// failure, an explicit closing message, and a periodic sweep each drop dead
// surfaces, since no single mechanism is reliable on its own.
type Hub struct {
	mu         sync.Mutex
	surfaces   map[string]*handle
	logger     *log.Logger
	sweepEvery time.Duration
}

func NewHub(logger *log.Logger, opts ...HubOption) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	h := &Hub{
		surfaces:   make(map[string]*handle),
		logger:     logger,
		sweepEvery: defaultSweepInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type HubOption func(*Hub)

// WithSweepInterval overrides the liveness sweep period.
func WithSweepInterval(d time.Duration) HubOption {
	return func(h *Hub) {
		if d > 0 {
			h.sweepEvery = d
		}
	}
}

// Open tracks a surface for the given entry and delivers the initial settings
// snapshot. If a live surface already exists for the entry it is focused
// instead and Open reports false. A surface whose initial delivery fails is
// never tracked.
func (h *Hub) Open(key string, s Surface, settings domain.DisplaySettings) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.surfaces[key]; ok && existing.state == StateLive && !existing.surface.Closed() {
		existing.surface.Focus()
		return false
	}

	hd := &handle{key: key, surface: s, state: StateOpening}
	if err := s.Deliver(UpdateSettings{Settings: settings}); err != nil {
		h.logger.Printf("WARN: surface %s rejected initial settings: %v", key, err)
		hd.state = StateClosed
		return false
	}
	hd.state = StateLive
	h.surfaces[key] = hd
	return true
}

// Broadcast sends the full settings snapshot to every live surface. Delivery
// is fire-and-forget; a failed send only removes that surface.
func (h *Hub) Broadcast(settings domain.DisplaySettings) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key, hd := range h.surfaces {
		if hd.state != StateLive {
			continue
		}
		if err := hd.surface.Deliver(UpdateSettings{Settings: settings}); err != nil {
			h.logger.Printf("WARN: dropping surface %s: %v", key, err)
			hd.state = StateClosed
			delete(h.surfaces, key)
		}
	}
}

// NotifyClosing handles an explicit closing message from a surface.
func (h *Hub) NotifyClosing(msg Closing) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hd, ok := h.surfaces[msg.TimeZoneID]; ok {
		hd.state = StateClosed
		delete(h.surfaces, msg.TimeZoneID)
	}
}

// Sweep drops every tracked surface whose liveness flag reads closed.
func (h *Hub) Sweep() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key, hd := range h.surfaces {
		if hd.surface.Closed() {
			hd.state = StateClosed
			delete(h.surfaces, key)
		}
	}
}

// Run sweeps periodically until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Sweep()
		}
	}
}

// Tracked reports whether a live surface exists for the entry.
func (h *Hub) Tracked(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	hd, ok := h.surfaces[key]
	return ok && hd.state == StateLive
}

// Len returns the number of tracked surfaces.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.surfaces)
}
