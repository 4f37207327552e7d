// Package render turns posts into display-ready rows.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"hacker-menu/internal/model"
)

const (
	// Placeholder marks an unknown count. It is never "0".
	Placeholder = "—"
	// TitleGlyph stands in for a missing title.
	TitleGlyph = "◆"
)

var compactUnits = []string{"", "K", "M", "B", "T"}

// Compact abbreviates a count the way menu bars do: 999, 1.2K, 12K, 3.4M.
func Compact(n model.Opt[int]) string {
	v, ok := n.Get()
	if !ok {
		return Placeholder
	}
	if v > -1000 && v < 1000 {
		return strconv.Itoa(v)
	}
	// Work on the float magnitude; negating math.MinInt as an int overflows.
	f, sign := float64(v), ""
	if f < 0 {
		f, sign = -f, "-"
	}
	unit := 0
	for unit < len(compactUnits)-1 && roundCompact(f) >= 1000 {
		f /= 1000
		unit++
	}
	return sign + formatCompact(f) + compactUnits[unit]
}

func roundCompact(f float64) float64 {
	if f < 10 {
		s := strconv.FormatFloat(f, 'f', 1, 64)
		r, _ := strconv.ParseFloat(s, 64)
		return r
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 0, 64), 64)
	return r
}

func formatCompact(f float64) string {
	if roundCompact(f) < 10 {
		s := strconv.FormatFloat(f, 'f', 1, 64)
		return strings.TrimSuffix(s, ".0")
	}
	return strconv.FormatFloat(f, 'f', 0, 64)
}

// Relative labels t against now, e.g. "3 hours ago".
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Full renders an exact count with thousands separators, or the placeholder.
func Full(n model.Opt[int]) string {
	v, ok := n.Get()
	if !ok {
		return Placeholder
	}
	return humanize.Comma(int64(v))
}
