package loader

import (
	"strconv"
	"strings"
	"time"

	"datanova/domain/table"
)

// Tokens treated as missing cells, compared case-insensitively. "N/A" here
// means categorical aggregation will re-surface those cells under its own
// missing sentinel.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"nan":  true,
	"none": true,
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func isMissingToken(s string) bool {
	return missingTokens[strings.ToLower(s)]
}

// inferColumn decides a column kind from its string cells and materializes
// the typed column. A kind is only chosen when every non-missing cell parses
// as it (boolean, then numeric, then datetime); otherwise the column stays
// text. Mixed columns therefore degrade to text rather than losing cells.
func inferColumn(name string, cells []string) table.Column {
	kind := inferKind(cells)
	b := table.NewBuilder(name, kind)
	for _, cell := range cells {
		if isMissingToken(cell) {
			b.AppendNull()
			continue
		}
		switch kind {
		case table.KindBool:
			v, _ := strconv.ParseBool(strings.ToLower(cell))
			b.AppendBool(v)
		case table.KindNumeric:
			v, _ := strconv.ParseFloat(cell, 64)
			b.AppendFloat(v)
		case table.KindDatetime:
			b.AppendTime(parseTime(cell))
		default:
			b.AppendString(cell)
		}
	}
	return b.Column()
}

func inferKind(cells []string) table.Kind {
	seen := 0
	allBool, allNumeric, allTime := true, true, true
	for _, cell := range cells {
		if isMissingToken(cell) {
			continue
		}
		seen++
		if allBool && !parsesBool(cell) {
			allBool = false
		}
		if allNumeric {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allNumeric = false
			}
		}
		if allTime && parseTime(cell).IsZero() {
			allTime = false
		}
	}
	if seen == 0 {
		return table.KindText
	}
	switch {
	case allBool:
		return table.KindBool
	case allNumeric:
		return table.KindNumeric
	case allTime:
		return table.KindDatetime
	default:
		return table.KindText
	}
}

func parsesBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	default:
		return false
	}
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
