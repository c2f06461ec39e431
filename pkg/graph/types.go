package graph

import "fmt"

// Edge is a directed, weighted edge between two dense vertex ids.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// String renders the edge as "from->to (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d (%g)", e.From, e.To, e.Weight)
}
