package gamedata

import (
	"fmt"
	"io/fs"
)

// BindingDef maps the four movement directions of one player to raw key names.
// Key names follow browser conventions: "ArrowLeft" etc. for arrows, the character otherwise.
type BindingDef struct {
	Name  string `json:"name"`  // Display name (e.g., "Player 1")
	Left  string `json:"left"`  // Key moving the player left
	Up    string `json:"up"`    // Key moving the player up
	Right string `json:"right"` // Key moving the player right
	Down  string `json:"down"`  // Key moving the player down
}

// Keys returns the bound keys in left, up, right, down order.
func (b *BindingDef) Keys() [4]string {
	return [4]string{b.Left, b.Up, b.Right, b.Down}
}

// Validate checks that all four keys are set and distinct.
func (b *BindingDef) Validate() error {
	seen := make(map[string]bool, 4)
	for _, k := range b.Keys() {
		if k == "" {
			return fmt.Errorf("binding %q has an empty key", b.Name)
		}
		if seen[k] {
			return fmt.Errorf("binding %q uses key %q twice", b.Name, k)
		}
		seen[k] = true
	}
	return nil
}

// BindingsFile represents the structure of bindings.json.
type BindingsFile struct {
	Bindings []BindingDef `json:"bindings"`
}

// LoadBindings loads the default key binding sets from the embedded bindings.json file.
func LoadBindings() ([]BindingDef, error) {
	return LoadBindingsFS(dataFS, "bindings.json")
}

// LoadBindingsFS loads binding sets from a JSON file in fsys.
// Binding sets must not share keys, since a key routes to exactly one player.
func LoadBindingsFS(fsys fs.FS, filename string) ([]BindingDef, error) {
	file, err := LoadFS[BindingsFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	if len(file.Bindings) == 0 {
		return nil, fmt.Errorf("no bindings loaded from %s", filename)
	}

	owner := make(map[string]string)
	for i := range file.Bindings {
		b := &file.Bindings[i]
		if err := b.Validate(); err != nil {
			return nil, err
		}
		for _, k := range b.Keys() {
			if other, ok := owner[k]; ok {
				return nil, fmt.Errorf("key %q bound by both %q and %q", k, other, b.Name)
			}
			owner[k] = b.Name
		}
	}
	return file.Bindings, nil
}

// MustLoadBindings loads binding sets, panicking on error.
func MustLoadBindings() []BindingDef {
	bindings, err := LoadBindings()
	if err != nil {
		panic(err)
	}
	return bindings
}
