package main

import (
	"os"
	"strings"

	"grimoire-cli/internal/cli"
)

func isCardID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// rewriteDirectCardLookupArgs makes `grimoire <card-id>` behave like
// `grimoire cards show <card-id>`. Cobra treats the first positional token as
// a subcommand, so argv is rewritten before parsing. Persistent flags may
// precede the id, so we look for the first positional token rather than
// argv[1].
func rewriteDirectCardLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--data":              true,
		"--config-dir":        true,
		"--sounds":            true,
		"--counter":           true,
		"--comments-provider": true,
		"--comments-repo":     true,
		"--format":            true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isCardID(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "cards", "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
				continue
			}
			continue
		}
		if isCardID(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "cards", "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectCardLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
