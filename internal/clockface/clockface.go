package clockface

import (
	"fmt"
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// Rendering is the formatted display for one zone at one instant.
type Rendering struct {
	TimeText string
	DateText string
}

// HandAngles are analog hand positions in degrees, clockwise from 12 o'clock.
// Renderers drawing from trigonometric zero apply a -90 degree offset.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Render resolves the wall clock for instant as observed in timeZoneID and
// formats it 24-hour, zero-padded, with an English three-letter weekday.
// Unknown zone identifiers yield ErrInvalidTimeZone; callers rendering a
// batch should skip the entry rather than abort.
func Render(timeZoneID string, instant time.Time, includeSeconds bool) (Rendering, error) {
	local, err := resolve(timeZoneID, instant)
	if err != nil {
		return Rendering{}, err
	}

	timeText := fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())
	if includeSeconds {
		timeText = fmt.Sprintf("%s:%02d", timeText, local.Second())
	}
	dateText := fmt.Sprintf("%04d-%02d-%02d %s",
		local.Year(), int(local.Month()), local.Day(), local.Format("Mon"))

	return Rendering{TimeText: timeText, DateText: dateText}, nil
}

// Hands returns the analog hand angles for instant as observed in timeZoneID.
func Hands(timeZoneID string, instant time.Time) (HandAngles, error) {
	local, err := resolve(timeZoneID, instant)
	if err != nil {
		return HandAngles{}, err
	}
	return anglesFor(local.Hour(), local.Minute(), local.Second()), nil
}

func anglesFor(hour, minute, second int) HandAngles {
	return HandAngles{
		Hour:   float64(hour%12)*30 + float64(minute)*0.5,
		Minute: float64(minute) * 6,
		Second: float64(second) * 6,
	}
}

func resolve(timeZoneID string, instant time.Time) (time.Time, error) {
	// LoadLocation treats "" as UTC and "Local" as the host zone; neither is a
	// valid catalog identifier here.
	if timeZoneID == "" || timeZoneID == "Local" {
		return time.Time{}, domain.ErrInvalidTimeZone
	}
	loc, err := time.LoadLocation(timeZoneID)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTimeZone
	}
	return instant.In(loc), nil
}
