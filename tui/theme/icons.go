package theme

import "os"

// Nerd Font Icons (Private Constants)
const (
	nerdIconSuccess = "󰄬" // md-check (U+F012C)
	nerdIconError   = "" // cod-error (U+EA87)
	nerdIconArrow   = "󰁔" // md-arrow_right (U+F0054)
	nerdIconFolder  = "" // fa-folder (U+F07B)
	nerdIconSession = "" // cod-terminal (U+EA85)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconSuccess = "*"
	asciiIconError   = "x"
	asciiIconArrow   = ">"
	asciiIconFolder  = "/"
	asciiIconSession = "#"
)

// Public Icon Variables
var (
	IconSuccess string
	IconError   string
	IconArrow   string
	IconFolder  string
	IconSession string
)

func init() {
	SetASCIIIcons(os.Getenv("ZISM_ICONS") == "ascii")
}

// SetASCIIIcons switches between the Nerd Font and plain ASCII icon sets.
func SetASCIIIcons(ascii bool) {
	if ascii {
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconArrow = asciiIconArrow
		IconFolder = asciiIconFolder
		IconSession = asciiIconSession
		return
	}
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconArrow = nerdIconArrow
	IconFolder = nerdIconFolder
	IconSession = nerdIconSession
}
