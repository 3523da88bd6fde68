package surface

import (
	"unicode/utf8"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// Geometry is a popup window size in pixels.
type Geometry struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Text width is estimated as characters × font size × 0.6 plus fixed chrome
// padding. The estimate is a heuristic, not a contract; the only guarantee is
// that it grows with the font and analog size settings so content is not
// clipped.
const (
	textWidthFactor = 0.6
	textPadding     = 40
	minPlainWidth   = 280
	analogChrome    = 80
)

// PopupGeometry computes the window size needed to show entry with the given
// settings without clipping.
func PopupGeometry(entry domain.TimeZoneEntry, s domain.DisplaySettings) Geometry {
	width := minPlainWidth
	if s.ShowAnalog {
		width = s.AnalogClockSize + analogChrome
	}
	width = max(width,
		textWidth(entry.Country, s.CountryNameSize),
		textWidth(entry.City, s.CityNameSize),
		textWidth("00:00:00", s.DigitalTimeSize),
	)

	// Body padding plus container padding.
	height := 40 + 48
	height += s.CountryNameSize + 4
	height += s.CityNameSize + 4
	height += s.TimeZoneSize + 16
	height += s.DigitalDateSize + 8
	height += s.DigitalTimeSize
	if s.ShowAnalog {
		height += 20
		height += s.AnalogClockSize + 16 + 32
	}
	height += 40 // safety buffer

	return Geometry{Width: width, Height: height}
}

func textWidth(text string, fontSize int) int {
	return int(float64(utf8.RuneCountInString(text))*float64(fontSize)*textWidthFactor) + textPadding
}
