package report

import (
	"fmt"

	"github.com/fatih/color"
)

// ColorHelper provides utilities for coloring report output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Muted returns gray colored text
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatStatus returns appropriately colored status text
func (c *ColorHelper) FormatStatus(passed bool) string {
	if passed {
		return c.Success("✓ OK")
	}
	return c.Failure("✗ FAIL")
}

// FormatPassed returns colored passed/total text
func (c *ColorHelper) FormatPassed(passed, total int) string {
	text := fmt.Sprintf("%d/%d", passed, total)
	if passed == total {
		return c.Success(text)
	}
	if passed == 0 {
		return c.Failure(text)
	}
	return c.Warning(text)
}

// FormatSpread colors the max/min ratio of a benchmark. A wide spread
// usually means a noisy measurement.
func (c *ColorHelper) FormatSpread(ratio float64) string {
	text := fmt.Sprintf("%.2fx", ratio)
	if ratio <= 1.5 {
		return c.Success(text)
	}
	if ratio <= 3.0 {
		return c.Warning(text)
	}
	return c.Failure(text)
}
