// Package bookviz renders the resting book as a colored price ladder.
package bookviz

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

// Level is one aggregated row of the ladder.
type Level struct {
	Price         fpdecimal.Decimal
	TotalQuantity fpdecimal.Decimal
	OrderCount    int
}

// Levels aggregates a book side into per-price rows, ascending by price.
func Levels(side core.BookSide) []Level {
	var levels []Level
	for _, order := range side.GetAllOrders() {
		n := len(levels)
		if n > 0 && levels[n-1].Price.Equal(order.Price()) {
			levels[n-1].TotalQuantity = levels[n-1].TotalQuantity.Add(order.Quantity())
			levels[n-1].OrderCount++
			continue
		}
		levels = append(levels, Level{
			Price:         order.Price(),
			TotalQuantity: order.Quantity(),
			OrderCount:    1,
		})
	}
	return levels
}

// Render writes the ladder for both sides: asks first, best ask at the
// bottom, then bids with the best bid on top.
func Render(w io.Writer, engine *core.MatchingEngine) error {
	cyan := color.New(color.FgCyan).SprintfFunc()
	red := color.New(color.FgRed).SprintfFunc()
	green := color.New(color.FgGreen).SprintfFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%15s|%15s|%15s|%s\n",
		cyan("Price"),
		cyan("Quantity"),
		cyan("Orders"),
		cyan("Side"))
	printSeparator(tw)

	asks := Levels(engine.GetAsks())
	for i := len(asks) - 1; i >= 0; i-- {
		printLevel(tw, asks[i], red("ASK"))
	}

	printSeparator(tw)

	bids := Levels(engine.GetBids())
	for i := len(bids) - 1; i >= 0; i-- {
		printLevel(tw, bids[i], green("BID"))
	}

	return tw.Flush()
}

func printLevel(w io.Writer, level Level, side string) {
	fmt.Fprintf(w, "%15s|%15s|%15d|%s\n",
		level.Price.String(),
		level.TotalQuantity.String(),
		level.OrderCount,
		side)
}

func printSeparator(w io.Writer) {
	fmt.Fprintf(w, "%15s|%15s|%15s|%s\n",
		"---------------",
		"---------------",
		"---------------",
		"----")
}
