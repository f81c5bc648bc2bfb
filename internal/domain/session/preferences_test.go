package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreferences_DefaultsToDark(t *testing.T) {
	p, err := LoadPreferences(filepath.Join(t.TempDir(), "preferences"))
	require.NoError(t, err)
	require.Equal(t, ThemeDark, p.Theme())
}

func TestPreferences_PersistsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")

	p, err := LoadPreferences(path)
	require.NoError(t, err)
	require.NoError(t, p.SetTheme(ThemeLight))

	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	require.Equal(t, ThemeLight, reloaded.Theme())
}

func TestPreferences_RejectsUnknownTheme(t *testing.T) {
	p, err := LoadPreferences(filepath.Join(t.TempDir(), "preferences"))
	require.NoError(t, err)
	require.Error(t, p.SetTheme("sepia"))
}
