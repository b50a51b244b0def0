package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// report prints the per-rank element counts of the three phases. The
// three totals agree when the exchange conserved every element.
func (c *Coordinator) report() {
	var contributed, assigned, returned int

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Rank", "Contributed", "Assigned", "Returned"})
	for i, st := range c.stats {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(st.contributed),
			strconv.Itoa(st.assigned),
			strconv.Itoa(st.returned),
		})
		contributed += st.contributed
		assigned += st.assigned
		returned += st.returned
	}
	table.SetFooter([]string{
		"Total",
		strconv.Itoa(contributed),
		strconv.Itoa(assigned),
		strconv.Itoa(returned),
	})
	table.Render()
}
