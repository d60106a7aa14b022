package eda

import (
	"strconv"

	"datanova/domain/table"
)

// ColumnSummary is the per-column metadata half of the profile: quality
// counters plus the modal value.
type ColumnSummary struct {
	Name         string     `json:"name"`
	Kind         table.Kind `json:"-"`
	KindLabel    string     `json:"kind"`
	MissingCount int        `json:"missing_count"`
	// BlankPct is the missing fraction rounded to the nearest whole percent.
	// Nil when the table has no rows (the fraction is undefined, not zero).
	BlankPct     *int `json:"blank_pct"`
	UniqueValues int  `json:"unique_values"`
	// MostFrequent is the modal non-missing value in display form. Nil when
	// the column is entirely missing.
	MostFrequent *string `json:"most_frequent"`
}

// ProfileRow joins a column summary with its descriptive statistics. The
// numeric fields are rounded to 2 decimals and nil whenever the statistic is
// undefined for the column (non-numeric kind, no non-missing values, or
// fewer than 2 samples for the standard deviation).
type ProfileRow struct {
	ColumnSummary
	Mean   *float64 `json:"mean"`
	StdDev *float64 `json:"std_dev"`
	Min    *float64 `json:"min"`
	Q25    *float64 `json:"q25"`
	Median *float64 `json:"median"`
	Q75    *float64 `json:"q75"`
	Max    *float64 `json:"max"`
}

// Profile is the full data-quality profile: exactly one row per input
// column, in the dataset's column order.
type Profile struct {
	Rows []ProfileRow `json:"rows"`
}

// ProfileHeader is the serialization header for profile tables.
var ProfileHeader = []string{
	"Variable Name", "Variable Type", "Missing Count", "% Blank",
	"Unique Values", "Most Frequent Value",
	"Mean", "Standard Deviation", "Min", "25%", "Median", "75%", "Max",
}

// Header returns the profile column names in output order.
func (p Profile) Header() []string {
	return append([]string(nil), ProfileHeader...)
}

// Records returns the profile rows as strings, one slice per row, with empty
// cells for undefined statistics.
func (p Profile) Records() [][]string {
	records := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		records = append(records, []string{
			r.Name,
			r.KindLabel,
			strconv.Itoa(r.MissingCount),
			formatIntPtr(r.BlankPct),
			strconv.Itoa(r.UniqueValues),
			formatStringPtr(r.MostFrequent),
			FormatStat(r.Mean),
			FormatStat(r.StdDev),
			FormatStat(r.Min),
			FormatStat(r.Q25),
			FormatStat(r.Median),
			FormatStat(r.Q75),
			FormatStat(r.Max),
		})
	}
	return records
}

// FrequencyRow is one value of a categorical frequency table.
type FrequencyRow struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Cumulative float64 `json:"cumulative_pct"`
}

// FrequencyTable holds the top-N most frequent values of one column. The
// cumulative percentages were accumulated over the full distribution before
// truncation, so the last row reads below 100 when values were cut off.
type FrequencyTable struct {
	Column string         `json:"column"`
	Rows   []FrequencyRow `json:"rows"`
	// TotalRows is the number of cells counted (equals the table row count).
	TotalRows int `json:"total_rows"`
	// DistinctValues is the number of distinct values before truncation.
	DistinctValues int `json:"distinct_values"`
}

// Header returns the frequency table column names: the analyzed column name
// followed by the fixed count/percentage labels.
func (f FrequencyTable) Header() []string {
	return []string{f.Column, "Count", "Percentage", "Cumulative %"}
}

// Records returns the frequency rows as strings.
func (f FrequencyTable) Records() [][]string {
	records := make([][]string, 0, len(f.Rows))
	for _, r := range f.Rows {
		records = append(records, []string{
			r.Value,
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Percentage, 'f', 2, 64),
			strconv.FormatFloat(r.Cumulative, 'f', 2, 64),
		})
	}
	return records
}

// Statistic labels of the numeric summary, in output order.
const (
	StatMin      = "Min"
	StatQ25      = "25% Quartile"
	StatMean     = "Mean"
	StatMedian   = "Median"
	StatQ75      = "75% Quartile"
	StatMax      = "Max"
	StatStdDev   = "Standard Deviation"
	StatRowCount = "Count of Rows"
	StatNotBlank = "Count of Rows Not Blank"
	StatPctBlank = "% Blank"
)

// StatRow pairs a statistic label with its value. A nil value means the
// statistic is undefined for the column (never an error).
type StatRow struct {
	Statistic string   `json:"statistic"`
	Value     *float64 `json:"value"`
}

// NumericSummary is the fixed ten-statistic summary of one numeric column.
type NumericSummary struct {
	Column string    `json:"column"`
	Rows   []StatRow `json:"rows"`
}

// Value looks up a statistic by label.
func (s NumericSummary) Value(statistic string) *float64 {
	for _, r := range s.Rows {
		if r.Statistic == statistic {
			return r.Value
		}
	}
	return nil
}

// Header returns the numeric summary column names.
func (s NumericSummary) Header() []string {
	return []string{"Statistic", "Value"}
}

// Records returns the summary rows as strings.
func (s NumericSummary) Records() [][]string {
	records := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		records = append(records, []string{r.Statistic, FormatStat(r.Value)})
	}
	return records
}

// FormatStat renders a nullable statistic with 2-decimal precision, empty
// when undefined.
func FormatStat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatStringPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
