package capital

import (
	"fmt"
	"math"

	"recordswitch/utils"
)

// Guard restricts a rule to an inclusive range of years.
type Guard struct {
	Min int
	Max int
}

// Unguarded admits every year.
func Unguarded() Guard {
	return Guard{Min: math.MinInt, Max: math.MaxInt}
}

// Since admits every year >= year.
func Since(year int) Guard {
	return Guard{Min: year, Max: math.MaxInt}
}

// Until admits every year <= year.
func Until(year int) Guard {
	return Guard{Min: math.MinInt, Max: year}
}

// Between admits years in [from, to].
func Between(from, to int) Guard {
	return Guard{Min: from, Max: to}
}

// Admits reports whether year satisfies the guard.
func (g Guard) Admits(year int) bool {
	return utils.IsInRange(g.Min, year, g.Max)
}

// IsEmpty reports whether the guard admits no year at all.
func (g Guard) IsEmpty() bool {
	return g.Min > g.Max
}

// IsUnguarded reports whether the guard admits every year.
func (g Guard) IsUnguarded() bool {
	return g == Unguarded()
}

// Covers reports whether every year admitted by other is admitted by g.
func (g Guard) Covers(other Guard) bool {
	if other.IsEmpty() {
		return true
	}

	return g.Min <= other.Min && other.Max <= g.Max
}

func (g Guard) String() string {
	switch {
	case g.IsUnguarded():
		return "any year"
	case g.IsEmpty():
		return "no year"
	case g.Max == math.MaxInt:
		return fmt.Sprintf("year >= %d", g.Min)
	case g.Min == math.MinInt:
		return fmt.Sprintf("year <= %d", g.Max)
	default:
		return fmt.Sprintf("%d <= year <= %d", g.Min, g.Max)
	}
}
