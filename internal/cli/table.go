package cli

import (
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ojji/Resub/internal/subtitle"
)

const maxPreviewRunes = 48

// recordTable renders the inspect listing, one row per record.
func recordTable(records []*subtitle.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Shown", "Lines", "Text"})

	for _, r := range records {
		tw.AppendRow(table.Row{
			r.Index,
			r.Start.String(),
			r.End.String(),
			onScreen(r).String(),
			len(r.Lines),
			preview(r.Text()),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

// onScreen is how long r is displayed. Files that list the end before the
// start yield a negative duration, which is shown as is.
func onScreen(r *subtitle.Record) time.Duration {
	return r.End.Duration() - r.Start.Duration()
}

// preview flattens a record body onto one line and truncates it.
func preview(body string) string {
	flat := strings.ReplaceAll(body, "\n", " / ")
	runes := []rune(flat)
	if len(runes) <= maxPreviewRunes {
		return flat
	}
	return string(runes[:maxPreviewRunes-1]) + "…"
}
