package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats renders diagram statistics as labeled lines.
func printStats(s model.Stats) {
	fmt.Println(StyleTitle.Render("Diagram"))
	printKeyValue("cells", strconv.Itoa(s.TotalCells))
	printKeyValue("vertices", strconv.Itoa(s.Vertices))
	printKeyValue("edges", strconv.Itoa(s.Edges))
	printKeyValue("groups", strconv.Itoa(s.Groups))
	printKeyValue("layers", strconv.Itoa(s.Layers))
	printKeyValue("with text", strconv.Itoa(s.CellsWithText))
	printKeyValue("without text", strconv.Itoa(s.CellsWithoutText))
	if s.Bounds != nil {
		printKeyValue("bounds", fmt.Sprintf("(%.0f, %.0f) %s (%.0f, %.0f)",
			s.Bounds.MinX, s.Bounds.MinY, iconArrow, s.Bounds.MaxX, s.Bounds.MaxY))
	}
	if len(s.CellsByLayer) > 0 {
		fmt.Println(StyleDim.Render("per layer:"))
		for layer, count := range s.CellsByLayer {
			printKeyValue("  "+layer, strconv.Itoa(count))
		}
	}
}

// summaryLine renders a one-line cells/edges/layers summary.
func summaryLine(s model.Stats) string {
	return fmt.Sprintf("%d cells · %d edges · %d layers", s.TotalCells, s.Edges, s.Layers)
}
