package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. RED and GREEN double as the sheet colours.
var (
	colorAccent = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorAmber  = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorBright = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by the commands and the count picker.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorBright)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorAmber)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(12)

	styleSheet = map[string]lipgloss.Style{
		"RED":   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		"GREEN": lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	}
)

const (
	iconArrow  = "→"
	iconCached = "cached"
	iconFresh  = "fresh"
)

// statusKind selects the icon and colour of a status line.
type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusWarning
	statusInfo
)

var statusIcons = [...]struct {
	icon  string
	color lipgloss.Color
}{
	statusSuccess: {"✓", colorGreen},
	statusError:   {"✗", colorRed},
	statusWarning: {"!", colorAmber},
	statusInfo:    {"›", colorMuted},
}

func statusLine(kind statusKind, msg string) string {
	si := statusIcons[kind]
	if kind == statusWarning {
		msg = StyleWarning.Render(msg)
	}
	return lipgloss.NewStyle().Foreground(si.color).Render(si.icon) + " " + msg
}

func printSuccess(format string, args ...any) {
	fmt.Println(statusLine(statusSuccess, fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Println(statusLine(statusError, fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Println(statusLine(statusWarning, fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(statusLine(statusInfo, fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// cutStats formats the outcome of one cut: the mask, how many pieces it
// added and whether they came from the cache.
func cutStats(maskID, pieces int, cached bool) string {
	origin := StyleDim.Render(iconFresh)
	if cached {
		origin = StyleSuccess.Render(iconCached)
	}
	sep := StyleDim.Render(" · ")
	return "  " + StyleDim.Render(fmt.Sprintf("mask %d", maskID)) + sep +
		StyleDim.Render(fmt.Sprintf("%d pieces", pieces)) + sep + origin
}

func printCutStats(maskID, pieces int, cached bool) {
	fmt.Println(cutStats(maskID, pieces, cached))
}

// sheetStats formats how the positions of one sheet were filled.
func sheetStats(name string, mapped, fallback, skipped, overlays int) string {
	label, ok := styleSheet[name]
	if !ok {
		label = StyleHighlight
	}
	counts := strings.Join([]string{
		fmt.Sprintf("%d mapped", mapped),
		fmt.Sprintf("%d random", fallback),
		fmt.Sprintf("%d empty", skipped),
		fmt.Sprintf("%d overlays", overlays),
	}, " · ")
	return "  " + label.Render(fmt.Sprintf("%-5s", name)) + " " + StyleDim.Render(counts)
}

// printNextStep suggests the command to run next.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
