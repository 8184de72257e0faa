package report

import "github.com/mattn/go-runewidth"

// Column configures one table column. Width > 0 fixes the column;
// Width == 0 makes it flex, sharing whatever space remains.
type Column struct {
	Width    int
	MinWidth int
	MaxWidth int
}

// minColumnWidth guarantees room for at least an ellipsis.
const minColumnWidth = 2

// columnWidths distributes available width across columns using a two-pass
// algorithm:
//
//  1. First pass: allocate fixed widths (columns with Width > 0)
//  2. Second pass: distribute remaining width evenly to flex columns
//  3. Apply MinWidth/MaxWidth constraints to flex columns
//  4. Enforce the global minimum width for every column
//  5. Account for column separators (1 char between each column)
func columnWidths(cols []Column, totalWidth int) []int {
	if len(cols) == 0 {
		return []int{}
	}

	widths := make([]int, len(cols))
	flexCols := []int{}

	separatorSpace := len(cols) - 1
	availableWidth := totalWidth - separatorSpace

	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			availableWidth -= col.Width
		} else {
			flexCols = append(flexCols, i)
		}
	}

	if len(flexCols) > 0 {
		if availableWidth <= 0 {
			for _, i := range flexCols {
				widths[i] = minColumnWidth
			}
		} else {
			perCol := availableWidth / len(flexCols)
			remainder := availableWidth % len(flexCols)

			for j, i := range flexCols {
				w := perCol
				if j < remainder {
					w++
				}

				minW := max(cols[i].MinWidth, minColumnWidth)
				if w < minW {
					w = minW
				}
				if cols[i].MaxWidth > 0 && w > cols[i].MaxWidth {
					w = cols[i].MaxWidth
				}

				widths[i] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	return widths
}

// fit truncates s to the given display width with a trailing ellipsis, and
// pads it to exactly that width.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
