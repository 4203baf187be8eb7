// Package data loads the startup card document. The document is fetched once
// per session; a failure here is fatal to activation.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"grimoire-cli/internal/model"
)

// LoadError wraps any failure to produce a usable AppData. Callers treat it
// as fatal: the TUI shows a blocking error view, the CLI exits non-zero.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load app data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Fetch reads and validates the app data document. source is an http(s) URL
// or a local file path.
func Fetch(ctx context.Context, source string) (*model.AppData, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &LoadError{Source: "(empty)", Err: fmt.Errorf("no data source configured")}
	}

	var body []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("unexpected status %s", resp.Status)}
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
	} else {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		body = b
	}

	var d model.AppData
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("invalid document: %w", err)}
	}
	if err := validate(&d); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return &d, nil
}

func validate(d *model.AppData) error {
	if len(d.Cards) == 0 {
		return fmt.Errorf("document has no cards")
	}
	seen := make(map[int]bool, len(d.Cards))
	for _, c := range d.Cards {
		if seen[c.ID] {
			return fmt.Errorf("duplicate card id %d", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}
