package zellij

import "strings"

// ParseSessions turns `list-sessions --short` output into session names.
// Lines are trimmed, blank lines dropped, and order and duplicates preserved.
func ParseSessions(output string) []string {
	sessions := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		sessions = append(sessions, name)
	}
	return sessions
}

// BuildListArgs returns the arguments for a short, unformatted session listing.
func BuildListArgs() []string {
	return []string{"list-sessions", "--short", "--no-formatting"}
}

func BuildCreateArgs(name string) []string {
	return []string{"--session", name}
}

func BuildAttachArgs(name string) []string {
	return []string{"attach", name}
}

func BuildDeleteArgs(name string) []string {
	return []string{"delete-session", "-f", name}
}
