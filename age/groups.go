// SPDX-License-Identifier: MIT

package age

import "fmt"

// Group labels one five-year age band, e.g. "25-29".
type Group string

// The fixed bands, youngest first.
const (
	G0to4    Group = "0-4"
	G5to9    Group = "5-9"
	G10to14  Group = "10-14"
	G15to19  Group = "15-19"
	G20to24  Group = "20-24"
	G25to29  Group = "25-29"
	G30to34  Group = "30-34"
	G35to39  Group = "35-39"
	G40to44  Group = "40-44"
	G45to49  Group = "45-49"
	G50to54  Group = "50-54"
	G55to59  Group = "55-59"
	G60to64  Group = "60-64"
	G65to69  Group = "65-69"
	G70to74  Group = "70-74"
	G75to79  Group = "75-79"
	G80to84  Group = "80-84"
	G85to89  Group = "85-89"
	G90to94  Group = "90-94"
	G95to99  Group = "95-99"
	G100Plus Group = "100+"
)

const (
	// Count is the number of bands in the enumeration.
	Count = 21

	// Step is the width of a band in years, and therefore the length of one
	// projection step.
	Step = 5

	// FertilityGroupCount is the number of female bands considered fertile.
	FertilityGroupCount = 4
)

// ordered is the single source of truth for band order. Never mutated.
var ordered = [Count]Group{
	G0to4, G5to9, G10to14, G15to19, G20to24, G25to29, G30to34,
	G35to39, G40to44, G45to49, G50to54, G55to59, G60to64, G65to69,
	G70to74, G75to79, G80to84, G85to89, G90to94, G95to99, G100Plus,
}

var fertility = [FertilityGroupCount]Group{G20to24, G25to29, G30to34, G35to39}

// index maps a label to its position in ordered.
var index = func() map[Group]int {
	m := make(map[Group]int, Count)
	for i, g := range ordered {
		m[g] = i
	}
	return m
}()

// Groups returns the ordered enumeration. The slice is a fresh copy.
// Complexity: O(Count).
func Groups() []Group {
	out := make([]Group, Count)
	copy(out, ordered[:])

	return out
}

// FertilityGroups returns the fertile female bands in ascending order.
func FertilityGroups() []Group {
	out := make([]Group, FertilityGroupCount)
	copy(out, fertility[:])

	return out
}

// At returns the band at position i. It panics when i is out of range,
// like indexing a slice.
func At(i int) Group {
	return ordered[i]
}

// First returns the youngest band (0-4), the one filled by births.
func First() Group { return ordered[0] }

// Last returns the open-ended top band.
func Last() Group { return ordered[Count-1] }

// Valid reports whether g is one of the fixed bands.
func (g Group) Valid() bool {
	_, ok := index[g]
	return ok
}

// String implements fmt.Stringer.
func (g Group) String() string { return string(g) }

// IsOpenEnded reports whether g is the top band, which has no successor.
func (g Group) IsOpenEnded() bool { return g == Last() }

// Parse validates a raw label.
func Parse(s string) (Group, error) {
	g := Group(s)
	if !g.Valid() {
		return "", fmt.Errorf("Parse(%q): %w", s, ErrUnknownGroup)
	}

	return g, nil
}

// Index returns the position of g in the ordered enumeration.
// Complexity: O(1).
func Index(g Group) (int, error) {
	i, ok := index[g]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", g, ErrUnknownGroup)
	}

	return i, nil
}

// Next returns the band that g survives into after one step.
func Next(g Group) (Group, error) {
	i, err := Index(g)
	if err != nil {
		return "", err
	}
	if i == Count-1 {
		return "", fmt.Errorf("Next(%q): %w", g, ErrNoNextGroup)
	}

	return ordered[i+1], nil
}

// Previous returns the band that survives into g after one step.
func Previous(g Group) (Group, error) {
	i, err := Index(g)
	if err != nil {
		return "", err
	}
	if i == 0 {
		return "", fmt.Errorf("Previous(%q): %w", g, ErrNoPreviousGroup)
	}

	return ordered[i-1], nil
}

// IsFertile reports whether g belongs to the fertile female bands.
func IsFertile(g Group) bool {
	for _, f := range fertility {
		if f == g {
			return true
		}
	}

	return false
}
