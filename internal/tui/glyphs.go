package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't render card artwork. Instead we choose between Unicode
// and ASCII glyph sets for the card faces and UI affordances, for terminals
// or fonts that don't render some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("GRIMOIRE_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// cardBackPatterns are the three built-in back skins, cycled by gallery
// position unless the user picked a custom skin.
func cardBackPattern(idx int) string {
	if glyphs() == glyphSetASCII {
		switch idx {
		case 1:
			return "::"
		case 2:
			return "xx"
		default:
			return "##"
		}
	}
	switch idx {
	case 1:
		return "░░"
	case 2:
		return "▚▚"
	default:
		return "▒▒"
	}
}

// customBackPattern renders a user-selected skin uniformly.
func customBackPattern() string {
	if glyphs() == glyphSetASCII {
		return "@@"
	}
	return "▓▓"
}

func glyphFeatured() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "✦"
}

func glyphSeen() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "✓"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}
