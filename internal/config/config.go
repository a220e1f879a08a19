// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The two legacy script variants disagreed on several defaults
// (font size, output placement); this package is the single source of truth
// for the collapsed, documented values.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// RGB is a fill color with components in the 0..1 range, the convention the
// PDF engine uses.
type RGB struct {
	R, G, B float64
}

// Config holds all runtime settings for both tools. It is populated by
// [DefaultConfig] and then mutated by flag parsing (and, for pdfstamp, the
// interactive prompts) before being passed by pointer to packages that need
// it. Fields are grouped by concern with defaults documented inline.
type Config struct {
	// Paths.
	InputDir string

	// Stamping.
	FontName     string  // Fixed: "Helvetica" (PDF core font, always available).
	FontSize     int     // Default: 24 points.
	PosX         float64 // Default: 50 pixels from the left edge.
	PosY         float64 // Default: 80 pixels from the top edge.
	Color        RGB     // Default: black.
	OutputSuffix string  // Default: "_titled". Ignored when Overwrite is set.
	Overwrite    bool    // Replace originals instead of writing suffixed copies.

	// Merging.
	OutputName string // Default: "ALL.pdf". Created inside InputDir.

	// Prompting.
	Interactive      bool // Default: true for pdfstamp. Cleared when --dir is given.
	FontConfirmAbove int  // Default: 100. Sizes above this need explicit confirmation.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with the documented defaults. Where the two
// legacy variants drifted apart, the stamping function's own defaults win
// over the ad hoc overrides in its caller.
func DefaultConfig() Config {
	return Config{
		FontName:         "Helvetica",
		FontSize:         24,
		PosX:             50,
		PosY:             80,
		Color:            RGB{0, 0, 0},
		OutputSuffix:     "_titled",
		Overwrite:        false,
		OutputName:       "ALL.pdf",
		Interactive:      true,
		FontConfirmAbove: 100,
		Verbose:          false,
		ColorMode:        ColorAuto,
	}
}

// NormalizeDirArg strips surrounding quotes, whitespace, and trailing slashes
// from a directory path. Paths pasted from file managers often arrive quoted.
// The filesystem root "/" is returned unchanged so we don't produce an empty
// string.
func NormalizeDirArg(path string) string {
	s := strings.TrimSpace(path)
	for _, q := range []string{`"`, `'`} {
		if len(s) >= 2 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			s = s[1 : len(s)-1]
		}
	}
	s = strings.TrimSpace(s)
	if s == "/" {
		return "/"
	}
	return strings.TrimRight(s, "/")
}

// Validate checks field values after flag parsing (and after prompting, for
// pdfstamp). The input directory is checked for existence later, at the
// filesystem boundary.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive (got %d)", c.FontSize)
	}
	if !validComponent(c.Color.R) || !validComponent(c.Color.G) || !validComponent(c.Color.B) {
		return errors.New("color components must be in the 0-1 range")
	}
	if c.OutputName == "" {
		return errors.New("output filename must not be empty")
	}
	if strings.ContainsRune(c.OutputName, '/') {
		return fmt.Errorf("output filename %q must not contain path separators", c.OutputName)
	}
	if !c.Overwrite && c.OutputSuffix == "" {
		return errors.New("output suffix must not be empty unless --overwrite is set")
	}
	return nil
}

func validComponent(v float64) bool {
	return v >= 0 && v <= 1
}
