package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	tableCellStyle   = lipgloss.NewStyle()
)

// RenderTable renders rows under headers with a dim border and bold headers.
// Short rows are padded with empty cells.
func RenderTable(headers []string, rows [][]string) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		tbl.Row(cells...)
	}

	return tbl.String()
}
