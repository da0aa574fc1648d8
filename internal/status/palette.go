package status

// Color is a hex color token such as "#F44336".
type Color string

// Tone is the semantic color of a status.
type Tone string

const (
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	ToneGreen  Tone = "green"
)

// Palette holds the colors a badge can be drawn with.
type Palette struct {
	Red    Color `mapstructure:"red" json:"red"`
	Yellow Color `mapstructure:"yellow" json:"yellow"`
	Green  Color `mapstructure:"green" json:"green"`
	Black  Color `mapstructure:"black" json:"black"`
	White  Color `mapstructure:"white" json:"white"`
}

// LightPalette is used when the app is in light mode.
var LightPalette = Palette{
	Red:    "#E53935",
	Yellow: "#FBC02D",
	Green:  "#43A047",
	Black:  "#000000",
	White:  "#FFFFFF",
}

// DarkPalette is used when the app is in dark mode.
var DarkPalette = Palette{
	Red:    "#EF5350",
	Yellow: "#FFD54F",
	Green:  "#66BB6A",
	Black:  "#121212",
	White:  "#FAFAFA",
}

// Merge returns p with every empty color taken from base.
func (p Palette) Merge(base Palette) Palette {
	if p.Red == "" {
		p.Red = base.Red
	}
	if p.Yellow == "" {
		p.Yellow = base.Yellow
	}
	if p.Green == "" {
		p.Green = base.Green
	}
	if p.Black == "" {
		p.Black = base.Black
	}
	if p.White == "" {
		p.White = base.White
	}
	return p
}

// Background returns the badge background for tone.
func (p Palette) Background(tone Tone) Color {
	switch tone {
	case ToneYellow:
		return p.Yellow
	case ToneGreen:
		return p.Green
	default:
		return p.Red
	}
}

// Text returns the badge text color for tone. Yellow badges use black text.
func (p Palette) Text(tone Tone) Color {
	if tone == ToneYellow {
		return p.Black
	}
	return p.White
}
