package main

import (
	"github.com/handiism/fpscrape/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
)

// summaryTable renders players and photos per position, in collected order.
func summaryTable(results []model.CategoryResult) string {
	type counts struct{ players, photos int }

	var order []string
	byPosition := map[string]*counts{}
	for _, result := range results {
		for _, record := range result {
			c, ok := byPosition[record.Position]
			if !ok {
				c = &counts{}
				byPosition[record.Position] = c
				order = append(order, record.Position)
			}
			c.players++
			if record.HasPhoto() {
				c.photos++
			}
		}
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Position", "Players", "Photos"})

	var players, photos int
	for _, position := range order {
		c := byPosition[position]
		t.AppendRow(table.Row{position, c.players, c.photos})
		players += c.players
		photos += c.photos
	}

	t.AppendFooter(table.Row{"Total", players, photos})
	t.SetStyle(table.StyleRounded)
	return t.Render()
}
