package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#6C63FF")
	colorAccent  = lipgloss.Color("#2EC4B6")
	colorMuted   = lipgloss.Color("#666666")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorWarning = lipgloss.Color("#F39C12")
	colorSubtle  = lipgloss.Color("#414868")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	barStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// renderTable renders rows under headers with the shared border and styles.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSubtle)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// formatHours renders d as decimal hours, e.g. 7.50h.
func formatHours(d time.Duration) string {
	return strconv.FormatFloat(d.Hours(), 'f', 2, 64) + "h"
}

// formatOffset renders d as signed decimal hours, colored by sign.
func formatOffset(d time.Duration) string {
	if d < 0 {
		return warningStyle.Render(formatHours(d))
	}
	return successStyle.Render("+" + formatHours(d))
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// bar draws n blocks.
func bar(n int) string {
	if n <= 0 {
		return ""
	}
	return barStyle.Render(strings.Repeat("█", n))
}

// formatCategories renders a category palette, naming the empty category.
func formatCategories(categories []string) string {
	names := make([]string, len(categories))
	for i, category := range categories {
		if category == "" {
			names[i] = "(none)"
			continue
		}
		names[i] = category
	}
	return strings.Join(names, ", ")
}
