package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Width(18)
)

func printTitle(s string) {
	fmt.Println(titleStyle.Render(s))
}

func printHeader(s string) {
	fmt.Println()
	fmt.Println(headerStyle.Render(s))
}

// summaryBox renders label/value pairs as an aligned, bordered block.
func summaryBox(pairs ...[2]string) string {
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(p[0]), p[1])
	}
	return summaryBoxStyle.Render(strings.Join(lines, "\n"))
}
