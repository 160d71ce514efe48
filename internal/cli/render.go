package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}

// formatBreadcrumbs marca a página atual com colchetes e segmentos não resolvidos com "?"
func formatBreadcrumbs(crumbs []domain.Crumb) string {
	parts := make([]string, 0, len(crumbs))
	for i, c := range crumbs {
		switch {
		case c.Navigable():
			parts = append(parts, fmt.Sprintf("%d:%s", i, c.Label))
		case i == len(crumbs)-1:
			parts = append(parts, fmt.Sprintf("[%s]", c.Label))
		default:
			parts = append(parts, c.Label+"?")
		}
	}
	return strings.Join(parts, " > ")
}

func renderLevel(w io.Writer, view *domain.LevelView) {
	fmt.Fprintln(w, formatBreadcrumbs(view.Breadcrumbs))

	if view.NotFound {
		fmt.Fprintf(w, "\nNot found: segment %d of %s does not exist under its parent.\n", view.InvalidAt, view.Path)
		if view.Up != "" {
			fmt.Fprintf(w, "Nearest valid ancestor: %s\n", view.Up)
		}
		return
	}

	fmt.Fprintf(w, "\n%s", view.Title)
	if view.Subtitle != "" {
		fmt.Fprintf(w, " (%s)", view.Subtitle)
	}
	fmt.Fprintln(w)

	if len(view.KPIs) > 0 {
		kpis := newTable(w, []string{"KPI", "Value"})
		for _, k := range view.KPIs {
			kpis.Append([]string{k.Label, k.Value})
		}
		kpis.Render()
	}

	if view.Table == nil {
		return
	}

	fmt.Fprintf(w, "\n%s\n", domain.Level(view.Depth+1).Title()+"s")
	if view.Table.Empty {
		fmt.Fprintln(w, view.Table.EmptyMessage)
		return
	}

	header := []string{"#"}
	for _, c := range view.Table.Columns {
		header = append(header, c.Label)
	}
	rows := newTable(w, header)
	for i, row := range view.Table.Rows {
		line := []string{fmt.Sprint(i + 1)}
		for _, cell := range row.Cells {
			line = append(line, cell.Text)
		}
		rows.Append(line)
	}
	rows.Render()
}

func renderCounts(w io.Writer, snapshot *dataset.Snapshot) {
	table := newTable(w, []string{"Level", "Records"})
	for _, level := range domain.Levels() {
		table.Append([]string{level.Title(), fmt.Sprint(snapshot.Count()[level])})
	}
	table.Render()
}

func renderViolations(w io.Writer, violations []dataset.Violation) {
	sorted := make([]dataset.Violation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Collection < sorted[j].Collection
	})

	table := newTable(w, []string{"Collection", "ID", "Rule", "Detail"})
	for _, v := range sorted {
		table.Append([]string{v.Collection, v.ID, v.Rule, v.Detail})
	}
	table.Render()
}
