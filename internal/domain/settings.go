package domain

// DisplaySettings is the closed record of display knobs. Numeric sizes are
// pixel values; bounds are enforced at the input boundary, not here.
type DisplaySettings struct {
	ShowAnalog           bool   `json:"show_analog"`
	FontFamily           string `json:"font_family"`
	CountryNameSize      int    `json:"country_name_size"`
	CityNameSize         int    `json:"city_name_size"`
	TimeZoneSize         int    `json:"time_zone_size"`
	ShowDigitalSeconds   bool   `json:"show_digital_seconds"`
	DigitalDateSize      int    `json:"digital_date_size"`
	DigitalTimeSize      int    `json:"digital_time_size"`
	ShowAnalogSeconds    bool   `json:"show_analog_seconds"`
	AnalogClockSize      int    `json:"analog_clock_size"`
	AnalogClockDesign    string `json:"analog_clock_design"`
	AnalogClockColor     string `json:"analog_clock_color"`
	ShowAnalogNumbers    bool   `json:"show_analog_numbers"`
	AnalogNumberFontSize int    `json:"analog_number_font_size"`
}

// Pixel bounds for the numeric knobs.
const (
	MinTextSize        = 10
	MaxTextSize        = 100
	MinAnalogClockSize = 50
	MaxAnalogClockSize = 500
	MinAnalogNumber    = 10
	MaxAnalogNumber    = 50
)

// DefaultDisplaySettings returns the out-of-the-box display configuration.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		ShowAnalog:           true,
		FontFamily:           "Times New Roman",
		CountryNameSize:      30,
		CityNameSize:         30,
		TimeZoneSize:         30,
		ShowDigitalSeconds:   true,
		DigitalDateSize:      20,
		DigitalTimeSize:      30,
		ShowAnalogSeconds:    true,
		AnalogClockSize:      200,
		AnalogClockDesign:    "Classic Elegance",
		AnalogClockColor:     "silver",
		ShowAnalogNumbers:    true,
		AnalogNumberFontSize: 20,
	}
}

// FontFamilies lists the selectable clock fonts.
var FontFamilies = []string{
	"Times New Roman", "Arial", "Helvetica", "Georgia", "Verdana",
	"Courier New", "Trebuchet MS", "Impact", "Comic Sans MS", "Palatino",
	"Garamond", "Bookman", "Avant Garde", "Optima", "Futura",
	"Gill Sans", "Century Gothic", "Franklin Gothic", "Lucida Console", "Monaco",
}

// AnalogColors lists the selectable hand/border colors.
var AnalogColors = []string{
	"silver", "black", "white", "red", "blue", "green", "yellow", "orange",
	"purple", "pink", "brown", "gray", "gold", "navy", "maroon",
	"olive", "lime", "aqua", "teal", "fuchsia",
}

// AnalogDesigns lists the selectable analog face designs.
var AnalogDesigns = []string{
	"Classic Elegance", "Modern Minimalist", "Vintage Brass", "Ocean Blue",
	"Sunset Gold", "Forest Green", "Royal Purple", "Rose Gold",
	"Midnight Black", "Arctic White", "Copper Glow", "Ruby Red",
	"Sapphire Blue", "Emerald Green", "Amber Warmth", "Platinum Shine",
	"Cherry Blossom", "Deep Ocean", "Golden Hour", "Northern Lights",
}

// Validate reports the first out-of-bounds or unknown-enum problem, or nil.
func (s DisplaySettings) Validate() error {
	textSizes := []int{s.CountryNameSize, s.CityNameSize, s.TimeZoneSize, s.DigitalDateSize, s.DigitalTimeSize}
	for _, size := range textSizes {
		if size < MinTextSize || size > MaxTextSize {
			return ErrSizeOutOfBounds
		}
	}
	if s.AnalogClockSize < MinAnalogClockSize || s.AnalogClockSize > MaxAnalogClockSize {
		return ErrSizeOutOfBounds
	}
	if s.AnalogNumberFontSize < MinAnalogNumber || s.AnalogNumberFontSize > MaxAnalogNumber {
		return ErrSizeOutOfBounds
	}
	if !contains(FontFamilies, s.FontFamily) {
		return ErrUnknownOption
	}
	if !contains(AnalogColors, s.AnalogClockColor) {
		return ErrUnknownOption
	}
	if !contains(AnalogDesigns, s.AnalogClockDesign) {
		return ErrUnknownOption
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
