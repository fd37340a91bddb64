package loads

import (
	"fmt"
	"strings"
)

// Case is an NSCP load type.
type Case string

const (
	Dead       Case = "D"  // Dead load
	Live       Case = "L"  // Live load
	Roof       Case = "Lr" // Roof live load
	Wind       Case = "W"  // Wind load
	Earthquake Case = "E"  // Earthquake load
	Rain       Case = "R"  // Rain load
)

// Cases lists every load type in table order.
var Cases = []Case{Dead, Live, Roof, Wind, Earthquake, Rain}

// ParseCase accepts a load case symbol, case-insensitively. An empty
// string is a dead load.
func ParseCase(s string) (Case, error) {
	if s == "" {
		return Dead, nil
	}
	for _, c := range Cases {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown load case %q (expected one of D, L, Lr, W, E, R)", s)
}

// Combination is one NSCP 2015 Section 203.3 strength design combination:
// a factor per load case. Cases it leaves out have factor 0.
type Combination struct {
	ID          string
	Description string
	Factors     map[Case]float64
}

// Combinations are the basic combinations of NSCP 2015 Section 203.3.1.
var Combinations = []Combination{
	{"1", "1.4D", map[Case]float64{Dead: 1.4}},
	{"2", "1.2D + 1.6L + 0.5(Lr or R)", map[Case]float64{Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5}},
	{"3", "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", map[Case]float64{Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5}},
	{"4", "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", map[Case]float64{Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5}},
	{"5", "1.2D + 1.0E + 1.0L", map[Case]float64{Dead: 1.2, Live: 1.0, Earthquake: 1.0}},
	{"6", "0.9D + 1.0W", map[Case]float64{Dead: 0.9, Wind: 1.0}},
	{"7", "0.9D + 1.0E", map[Case]float64{Dead: 0.9, Earthquake: 1.0}},
}

// SimplifiedCombinations keep the gravity-only rows.
var SimplifiedCombinations = []Combination{
	{"1", "1.4D", map[Case]float64{Dead: 1.4}},
	{"2", "1.2D + 1.6L", map[Case]float64{Dead: 1.2, Live: 1.6}},
}

// Unfactored sums every case at full value.
var Unfactored = Combination{
	ID:          "U",
	Description: "D + L + Lr + W + E + R (unfactored)",
	Factors:     map[Case]float64{Dead: 1, Live: 1, Roof: 1, Wind: 1, Earthquake: 1, Rain: 1},
}

// Factor returns the load factor the combination applies to a case.
func (c Combination) Factor(lc Case) float64 {
	return c.Factors[lc]
}

// Lookup finds a combination by ID in table, or Unfactored for "U".
func Lookup(id string, table []Combination) (Combination, error) {
	if strings.EqualFold(id, Unfactored.ID) {
		return Unfactored, nil
	}
	for _, c := range table {
		if c.ID == id {
			return c, nil
		}
	}
	return Combination{}, fmt.Errorf("unknown load combination %q", id)
}
