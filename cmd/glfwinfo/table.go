package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorSubtle  = lipgloss.Color("#6C6C6C")
	colorText    = lipgloss.Color("#DDDDDD")
	colorMuted   = lipgloss.Color("#9B9B9B")

	titleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderTable draws rows with a rounded border and a bold header.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSubtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// renderPairs draws a two-column key/value table.
func renderPairs(pairs [][2]string) string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	return renderTable([]string{"PROPERTY", "VALUE"}, rows)
}
