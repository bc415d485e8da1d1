package zellij

import (
	"os"
	"strings"
)

// noSessionsMessage is what zellij prints on stderr, with a failing exit
// status, when there is nothing to list.
const noSessionsMessage = "No active zellij sessions found"

// SessionEnvVar is set by zellij inside every session it manages.
const SessionEnvVar = "ZELLIJ_SESSION_NAME"

// IsNoSessionsMessage reports whether stderr from a failed listing means
// "there are no sessions" rather than a real failure.
func IsNoSessionsMessage(stderr string) bool {
	return strings.Contains(stderr, noSessionsMessage)
}

// CurrentSession returns the name of the session the process runs in, if any.
func CurrentSession() (string, bool) {
	return os.LookupEnv(SessionEnvVar)
}
