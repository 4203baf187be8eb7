// Package counter talks to the third-party visit counting service. The call
// is entirely non-critical: a failure only hides the counter display.
package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURL is the hosted counter namespace for this album.
const DefaultBaseURL = "https://api.counterapi.dev/v1/grimoire/album"

// Increment bumps the visit counter and returns the new total.
func Increment(ctx context.Context, baseURL string) (int, error) {
	url := strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/up"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("counter service: unexpected status %s", resp.Status)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}
