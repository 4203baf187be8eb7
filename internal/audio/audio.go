// Package audio provides best-effort sound feedback keyed by named cues.
// Decoding and output are the platform engine's problem; this package only
// owns cue fetching, the mute/volume policy, and failure isolation.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"grimoire-cli/internal/errlog"
)

// Cue names used across the UI.
const (
	CueDeal   = "deal"
	CueFlip   = "flip"
	CueRoll   = "roll"
	CueLog    = "logS"
	CueButton = "button"
)

// CueNames lists every known cue, for the mute toggles in the settings panel.
func CueNames() []string {
	return []string{CueDeal, CueFlip, CueRoll, CueLog, CueButton}
}

// Engine is the platform playback backend. Engines may start suspended until
// a user gesture; Play callers resume first.
type Engine interface {
	Suspended() bool
	Resume() error
	Play(buf []byte, volume float64) error
}

// BellEngine is the default terminal backend: it has no PCM pipeline, so any
// audible cue degrades to the terminal bell.
type BellEngine struct {
	W io.Writer
}

func (e *BellEngine) Suspended() bool { return false }
func (e *BellEngine) Resume() error   { return nil }

func (e *BellEngine) Play(buf []byte, volume float64) error {
	if volume <= 0 {
		return nil
	}
	w := e.W
	if w == nil {
		w = os.Stderr
	}
	_, err := w.Write([]byte{'\a'})
	return err
}

// Prefs supplies the user's current mix on each Play call, so volume and
// mute changes take effect on the next play with no retroactive effect.
type Prefs interface {
	MasterVolume() float64
	Muted(cue string) bool
}

// Service holds decoded cue buffers for the session.
type Service struct {
	engine Engine
	prefs  Prefs
	errors *errlog.Log

	mu      sync.Mutex
	buffers map[string][]byte
}

func NewService(engine Engine, prefs Prefs, errs *errlog.Log) *Service {
	return &Service{
		engine:  engine,
		prefs:   prefs,
		errors:  errs,
		buffers: map[string][]byte{},
	}
}

// LoadAll fetches every cue concurrently and returns once the whole batch
// has settled. A failing cue is recorded and becomes permanently unavailable
// for the session; it never aborts the other fetches or activation.
func (s *Service) LoadAll(ctx context.Context, sources map[string]string) {
	var wg sync.WaitGroup
	for name, url := range sources {
		wg.Add(1)
		go func(name, url string) {
			defer wg.Done()
			buf, err := fetchCue(ctx, url)
			if err != nil {
				s.errors.Record("loadAudio:"+name, err)
				return
			}
			s.mu.Lock()
			s.buffers[name] = buf
			s.mu.Unlock()
		}(name, url)
	}
	wg.Wait()
}

func fetchCue(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return os.ReadFile(url)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Loaded reports whether the named cue is available.
func (s *Service) Loaded(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffers[name]) > 0
}

// Play plays the cue once at the current master volume. It is a no-op when
// the engine is unavailable, the cue never loaded, or the cue is muted.
func (s *Service) Play(name string) {
	if s == nil || s.engine == nil {
		return
	}
	if s.prefs != nil && s.prefs.Muted(name) {
		return
	}
	s.mu.Lock()
	buf := s.buffers[name]
	s.mu.Unlock()
	if len(buf) == 0 {
		return
	}
	if s.engine.Suspended() {
		if err := s.engine.Resume(); err != nil {
			s.errors.Record("audioResume", err)
			return
		}
	}
	vol := 1.0
	if s.prefs != nil {
		vol = s.prefs.MasterVolume()
	}
	if err := s.engine.Play(buf, vol); err != nil {
		s.errors.Record("playSound:"+name, err)
	}
}
