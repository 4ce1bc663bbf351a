package gamedata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadBindings(t *testing.T) {
	bindings, err := LoadBindings()
	if err != nil {
		t.Fatalf("Failed to load bindings: %v", err)
	}

	if len(bindings) != 2 {
		t.Fatalf("Expected 2 binding sets, got %d", len(bindings))
	}

	p1 := bindings[0]
	if p1.Left != "ArrowLeft" || p1.Up != "ArrowUp" || p1.Right != "ArrowRight" || p1.Down != "ArrowDown" {
		t.Errorf("Player 1 bindings = %+v, want arrow keys", p1)
	}

	p2 := bindings[1]
	if got := p2.Keys(); got != [4]string{"a", "w", "d", "s"} {
		t.Errorf("Player 2 Keys() = %v, want [a w d s]", got)
	}
}

func TestLoadBindingsFSRejectsSharedKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"bindings.json": &fstest.MapFile{Data: []byte(`{"bindings": [
			{"name": "one", "left": "a", "up": "w", "right": "d", "down": "s"},
			{"name": "two", "left": "j", "up": "i", "right": "l", "down": "a"}
		]}`)},
	}

	_, err := LoadBindingsFS(fsys, "bindings.json")
	if err == nil {
		t.Fatal("LoadBindingsFS should reject a key bound twice")
	}
	if !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("error %q should name the shared key", err)
	}
}

func TestBindingDefValidate(t *testing.T) {
	tests := []struct {
		name  string
		def   BindingDef
		valid bool
	}{
		{"complete", BindingDef{Name: "p", Left: "a", Up: "w", Right: "d", Down: "s"}, true},
		{"empty key", BindingDef{Name: "p", Left: "a", Up: "", Right: "d", Down: "s"}, false},
		{"duplicate key", BindingDef{Name: "p", Left: "a", Up: "a", Right: "d", Down: "s"}, false},
	}

	for _, tt := range tests {
		err := tt.def.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() should pass, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: Validate() should fail, got no error", tt.name)
		}
	}
}

func TestLoadFSMissingFile(t *testing.T) {
	_, err := LoadFS[BindingsFile](fstest.MapFS{}, "missing.json")
	if err == nil {
		t.Error("LoadFS should fail for a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#EF4444", true},
		{"EF4444", true},
		{"#3b82f6", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorComponents(t *testing.T) {
	color, err := ParseHexColor("#EF4444")
	if err != nil {
		t.Fatalf("ParseHexColor returned error: %v", err)
	}
	r, g, b := color.RGB()
	if r != 0xEF || g != 0x44 || b != 0x44 {
		t.Errorf("RGB() = (%d, %d, %d), want (239, 68, 68)", r, g, b)
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for name, color := range map[string]tcell.Color{
		"player":     palette.Player,
		"enemy":      palette.Enemy,
		"coin":       palette.Coin,
		"background": palette.Background,
	} {
		if !color.IsRGB() {
			t.Errorf("%s color %v is not an RGB color", name, color)
		}
	}
	if palette.Player == palette.Enemy || palette.Enemy == palette.Coin {
		t.Error("roles should have distinct colors")
	}
}

func TestPaletteResolveFallback(t *testing.T) {
	def := PaletteDef{Player: "nope", Enemy: "#3B82F6"}
	palette := def.Resolve()
	if palette.Player != tcell.ColorRed {
		t.Errorf("Resolve().Player = %v, want fallback %v", palette.Player, tcell.ColorRed)
	}
	if palette.Coin != tcell.ColorYellow {
		t.Errorf("Resolve().Coin = %v, want fallback %v", palette.Coin, tcell.ColorYellow)
	}
}
