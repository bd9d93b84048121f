package commands

import (
	"fmt"
	"os"
	"strings"
)

// printTable renders a padded column layout. Footers may leave cells empty.
func printTable(headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	for i, header := range headers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(os.Stdout)

	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(os.Stdout)
	}

	for i, footer := range footers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], footer)
	}
	if len(footers) > 0 {
		fmt.Fprintln(os.Stdout)
	}
}

// formatMinutes renders a duration like "2h 15m" or "45m".
func formatMinutes(min int) string {
	h, m := min/60, min%60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// bar scales minutes into a block-character bar of at most width cells.
func bar(minutes, max, width int) string {
	if max <= 0 || minutes <= 0 {
		return ""
	}
	n := minutes * width / max
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
