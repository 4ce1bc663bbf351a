package gamedata

import "github.com/gdamore/tcell/v2"

// PaletteDef holds the hex colors used to draw each role.
type PaletteDef struct {
	Player     string `json:"player"`
	Enemy      string `json:"enemy"`
	Coin       string `json:"coin"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Palette is a PaletteDef resolved to tcell colors.
type Palette struct {
	Player     tcell.Color
	Enemy      tcell.Color
	Coin       tcell.Color
	Background tcell.Color
	Text       tcell.Color
}

// Resolve parses every hex color, falling back to a basic terminal color for bad entries.
func (p *PaletteDef) Resolve() Palette {
	return Palette{
		Player:     hexOr(p.Player, tcell.ColorRed),
		Enemy:      hexOr(p.Enemy, tcell.ColorBlue),
		Coin:       hexOr(p.Coin, tcell.ColorYellow),
		Background: hexOr(p.Background, tcell.ColorSilver),
		Text:       hexOr(p.Text, tcell.ColorWhite),
	}
}

// LoadPalette loads and resolves the embedded palette.json file.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	return def.Resolve(), nil
}

func hexOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
