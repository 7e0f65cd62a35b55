// Package ui provides terminal color themes and styles for CLI output.
package ui

import (
	"os"
	"sync"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	// Uses darker shades that keep contrast on white.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Brown
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;90m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	// Defaults to DarkTheme but can be changed via SetTheme or InitTheme.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme, honoring the NO_COLOR convention
// (https://no-color.org), the application's --no-color flag, and the
// PRIMKIT_THEME environment variable ("dark" or "light").
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
		return
	}
	if os.Getenv("PRIMKIT_THEME") == "light" {
		SetTheme(LightTheme)
		return
	}
	SetTheme(DarkTheme)
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// CurrentTheme returns a copy of the active theme.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// ColorPrimary returns the active primary color code.
func ColorPrimary() string { return CurrentTheme().Primary }

// ColorSecondary returns the active secondary color code.
func ColorSecondary() string { return CurrentTheme().Secondary }

// ColorSuccess returns the active success color code.
func ColorSuccess() string { return CurrentTheme().Success }

// ColorWarning returns the active warning color code.
func ColorWarning() string { return CurrentTheme().Warning }

// ColorError returns the active error color code.
func ColorError() string { return CurrentTheme().Error }

// ColorInfo returns the active info color code.
func ColorInfo() string { return CurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return CurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return CurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return CurrentTheme().Reset }
