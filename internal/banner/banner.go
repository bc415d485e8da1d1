// Package banner prints the zism logo.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var logo = []string{
	" ██████╗ ██╗ ███████╗ ███╗   ███╗",
	" ╚══███║ ╚═╝ ██╔════╝ ████╗ ████║",
	"   ███╔╝ ██╗ ███████╗ ██╔████╔██║",
	"  ███╔╝  ██║ ╚════██║ ██║╚██╔╝██║",
	" ██████╗ ██║ ███████║ ██║ ╚═╝ ██║",
	" ╚═════╝ ╚═╝ ╚══════╝ ╚═╝     ╚═╝",
}

// gradient holds one ANSI 256 color per logo line, blue to spring green.
var gradient = []string{"27", "33", "39", "44", "49", "48"}

// Render returns the logo with version appended to its last line, colored
// for profile. The Ascii profile yields plain text.
func Render(version string, profile termenv.Profile) string {
	var b strings.Builder
	b.WriteString("\n")
	last := len(logo) - 1
	for i, line := range logo {
		b.WriteString(profile.String(line).Foreground(profile.Color(gradient[i])).String())
		if i == last {
			fmt.Fprintf(&b, "  %s", displayVersion(version))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Print writes the banner to w using the color profile w supports.
func Print(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprint(w, Render(version, out.Profile))
}

func displayVersion(version string) string {
	if version == "" {
		return "dev"
	}
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
