package app

import (
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/clock"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/clockface"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// ClockView is one rendered card: digital text plus analog hand angles.
// Invalid marks entries whose zone identifier could not be resolved; the rest
// of the batch still renders.
type ClockView struct {
	Entry   domain.TimeZoneEntry
	Time    string
	Date    string
	Hands   clockface.HandAngles
	Invalid bool
}

type ClockService struct {
	clock clock.Clock
}

func NewClockService(clk clock.Clock) *ClockService {
	return &ClockService{clock: clk}
}

// RenderAll formats every tracked entry at the given instant (zero instant
// means now). A bad zone flags its entry instead of failing the pass.
func (s *ClockService) RenderAll(list domain.TrackedList, settings domain.DisplaySettings, at time.Time) []ClockView {
	if at.IsZero() {
		at = s.clock.Now()
	}

	views := make([]ClockView, 0, len(list))
	for _, entry := range list {
		view := ClockView{Entry: entry}

		rendering, err := clockface.Render(entry.TimeZone, at, settings.ShowDigitalSeconds)
		if err != nil {
			view.Invalid = true
			views = append(views, view)
			continue
		}
		view.Time = rendering.TimeText
		view.Date = rendering.DateText

		if settings.ShowAnalog {
			if hands, err := clockface.Hands(entry.TimeZone, at); err == nil {
				view.Hands = hands
			}
		}
		views = append(views, view)
	}
	return views
}
