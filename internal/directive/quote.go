package directive

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Quote quotes s for a POSIX shell. Strings made only of safe characters
// are returned unchanged.
func Quote(s string) string {
	return shellescape.Quote(s)
}

// QuoteArgs quotes each argument and joins them with spaces.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}
