// Package testkit builds deterministic synthetic tables for tests.
package testkit

import (
	"math"
	"math/rand"
	"time"

	"datanova/domain/table"
)

var (
	regions  = []string{"North", "South", "East", "West"}
	channels = []string{"web", "store", "phone"}
)

// RetailTable generates a deterministic synthetic retail dataset with the
// column kinds and missing-value patterns the profiling core has to handle:
// numeric with blanks, categorical with blanks, boolean, datetime, and one
// entirely blank column. Same seed and row count, same table.
func RetailTable(seed int64, rows int) *table.Table {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	orderIDs := make([]float64, rows)
	amounts := make([]float64, rows)
	loyalty := make([]bool, rows)
	orderedAt := make([]time.Time, rows)
	region := table.NewBuilder("region", table.KindText)
	notes := table.NewBuilder("notes", table.KindText)
	channelVals := make([]string, rows)

	for i := 0; i < rows; i++ {
		orderIDs[i] = float64(1000 + i)
		amounts[i] = math.Round(rng.Float64()*50000) / 100
		if rng.Float64() < 0.1 {
			amounts[i] = math.NaN()
		}
		loyalty[i] = rng.Float64() < 0.3
		orderedAt[i] = start.Add(time.Duration(i) * time.Hour)
		if rng.Float64() < 0.2 {
			region.AppendNull()
		} else {
			region.AppendString(regions[rng.Intn(len(regions))])
		}
		channelVals[i] = channels[rng.Intn(len(channels))]
		notes.AppendNull()
	}

	t, err := table.New(
		table.NumericColumn("order_id", orderIDs),
		region.Column(),
		table.TextColumn("channel", channelVals),
		table.NumericColumn("amount", amounts),
		table.BoolColumn("loyalty", loyalty),
		table.TimeColumn("ordered_at", orderedAt),
		notes.Column(),
	)
	if err != nil {
		panic(err) // construction is deterministic, this cannot happen
	}
	return t
}

// CountryTable is the small fixture used throughout the aggregator tests:
// one text column with a tie between a real value and the missing sentinel.
func CountryTable() *table.Table {
	country := table.NewBuilder("country", table.KindText)
	for _, v := range []string{"US", "US", "CA"} {
		country.AppendString(v)
	}
	country.AppendNull()
	country.AppendString("US")

	t, err := table.New(country.Column())
	if err != nil {
		panic(err)
	}
	return t
}
