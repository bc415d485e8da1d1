package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	assert.Equal(t, lipgloss.Color(gruvboxRed), NewThemeWithName("gruvbox").Colors.Red)
	assert.Equal(t, lipgloss.Color(kanagawaRed), NewThemeWithName("  Kanagawa ").Colors.Red)
	assert.Equal(t, lipgloss.Color(kanagawaRed), NewThemeWithName("no-such-theme").Colors.Red)
	assert.Equal(t, lipgloss.Color("9"), NewThemeWithName("terminal").Colors.Red)
}

func TestSetASCIIIcons(t *testing.T) {
	t.Cleanup(func() { SetASCIIIcons(false) })

	SetASCIIIcons(true)
	assert.Equal(t, ">", IconArrow)
	assert.Equal(t, "x", IconError)

	SetASCIIIcons(false)
	assert.Equal(t, nerdIconArrow, IconArrow)
}
