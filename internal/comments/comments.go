// Package comments builds links into the album's hosted comment threads.
// The embeds themselves are opaque third-party services; the terminal UI
// lists categories and hands the chosen thread URL to the browser.
package comments

import (
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	// ProviderGiscus maps categories onto GitHub Discussions.
	ProviderGiscus Provider = "giscus"
	// ProviderUtterances maps categories onto GitHub Issues.
	ProviderUtterances Provider = "utterances"
)

// DefaultProvider is used unless configured otherwise.
const DefaultProvider = ProviderGiscus

// DefaultRepo is the fixed repository identifier the embeds are bound to.
const DefaultRepo = "grimoire/card-album"

// Config selects the comments backend for a session.
type Config struct {
	Provider Provider
	Repo     string
}

func DefaultConfig() Config {
	return Config{Provider: DefaultProvider, Repo: DefaultRepo}
}

// ThreadURL returns the browser URL for the named category's thread.
func (c Config) ThreadURL(category string) (string, error) {
	repo := strings.TrimSpace(c.Repo)
	if repo == "" {
		return "", fmt.Errorf("comments: no repository configured")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return "", fmt.Errorf("comments: empty category")
	}
	switch c.Provider {
	case ProviderGiscus:
		q := url.Values{}
		q.Set("discussions_q", "category:"+quoteIfSpaced(category))
		return fmt.Sprintf("https://github.com/%s/discussions?%s", repo, q.Encode()), nil
	case ProviderUtterances:
		q := url.Values{}
		q.Set("q", "label:"+quoteIfSpaced(category))
		return fmt.Sprintf("https://github.com/%s/issues?%s", repo, q.Encode()), nil
	default:
		return "", fmt.Errorf("comments: unknown provider %q", c.Provider)
	}
}

func quoteIfSpaced(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
