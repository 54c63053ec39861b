// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	// Explicit override via environment variable
	if env := os.Getenv("FILMFIT_NERD_FONTS"); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	termProgram := os.Getenv("TERM_PROGRAM")
	term := os.Getenv("TERM")
	for _, t := range []string{"iTerm.app", "WezTerm", "kitty", "ghostty", "alacritty"} {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	return os.Getenv("NERD_FONTS") == "1"
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Domain
	Film    = Icon{"\U000f0fce", "▶"} // nf-md-movie_open
	Popular = Icon{"\U000f0238", "✦"} // nf-md-fire
	User    = Icon{"\uf007", "●"}     // nf-fa-user
	Group   = Icon{"\U000f0849", "◎"} // nf-md-account_group
	Heart   = Icon{"\uf004", "♥"}     // nf-fa-heart
	Star    = Icon{"\uf005", "★"}     // nf-fa-star
	Search  = Icon{"\uf002", "⌕"}     // nf-fa-search

	// Status indicators
	CheckOK  = Icon{"\uf058", "✓"} // nf-fa-check_circle
	Warning  = Icon{"\uf071", "⚠"} // nf-fa-warning
	Critical = Icon{"\uf057", "✗"} // nf-fa-times_circle
)
