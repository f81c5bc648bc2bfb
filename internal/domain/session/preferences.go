package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Theme is the persisted UI color preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Preferences persists the theme choice to its own file, separate from the
// token.
type Preferences struct {
	path  string
	theme Theme
}

// LoadPreferences reads the stored theme; a missing file or unknown value
// falls back to dark.
func LoadPreferences(path string) (*Preferences, error) {
	p := &Preferences{path: path, theme: ThemeDark}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}
	if stored := Theme(strings.TrimSpace(string(data))); stored.Valid() {
		p.theme = stored
	}
	return p, nil
}

func (p *Preferences) Theme() Theme {
	return p.theme
}

func (p *Preferences) SetTheme(theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(theme), 0o600); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	p.theme = theme
	return nil
}
