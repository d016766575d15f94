package timeline

import (
	"math"
	"slices"
)

// Label says which side of the path an item's caption goes.
type Label string

const (
	LabelAbove Label = "above"
	LabelBelow Label = "below"
)

// Dated is anything with a start date that can be placed on the timeline.
type Dated interface {
	StartDate() DateValue
}

// Positioned is an item placed on the timeline.
type Positioned[T Dated] struct {
	Item          T       `json:"item"`
	OriginalIndex int     `json:"originalIndex"`
	Decimal       float64 `json:"decimal"`
	Position
	LabelPosition Label `json:"labelPosition"`
}

// Group is every item sharing one start value, placed as a single marker.
type Group[T Dated] struct {
	Date  DateValue `json:"date"`
	Items []T       `json:"technologies"`
	Position
	LabelPosition Label `json:"labelPosition"`
}

// PositionExperience places items by start date. The result lists the
// bottom row in date order, then the top row in date order. Labels alternate
// within each row, starting below on the bottom row and above on the top row
// so the two rows do not collide at the curve. Items whose start date does
// not parse are left out.
func PositionExperience[T Dated](tl *Timeline, items []T) []Positioned[T] {
	if len(items) == 0 {
		return nil
	}

	var bottom, top []Positioned[T]
	for i, item := range items {
		p := Positioned[T]{Item: item, OriginalIndex: i, Decimal: Decimal(item.StartDate())}
		switch {
		case p.Decimal <= tl.bottomTo:
			bottom = append(bottom, p)
		case p.Decimal > tl.bottomTo:
			top = append(top, p)
		}
	}

	byDecimal := func(a, b Positioned[T]) int { return compareDecimal(a.Decimal, b.Decimal) }
	slices.SortStableFunc(bottom, byDecimal)
	slices.SortStableFunc(top, byDecimal)

	result := make([]Positioned[T], 0, len(bottom)+len(top))
	for i, p := range bottom {
		p.Position = tl.positionForDecimal(p.Decimal)
		p.LabelPosition = alternate(i, LabelBelow, LabelAbove)
		result = append(result, p)
	}
	for i, p := range top {
		p.Position = tl.positionForDecimal(p.Decimal)
		p.LabelPosition = alternate(i, LabelAbove, LabelBelow)
		result = append(result, p)
	}
	return result
}

// GroupTechnologies groups items by exact start value in order of first
// appearance, places one marker per group and returns the groups sorted by
// date. Labels alternate by group order before sorting: even groups go below
// on the bottom row and above on the top row, odd groups the opposite.
func GroupTechnologies[T Dated](tl *Timeline, items []T) []Group[T] {
	if len(items) == 0 {
		return nil
	}

	var groups []Group[T]
	index := make(map[DateValue]int)
	for _, item := range items {
		key := item.StartDate()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[T]{Date: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	for i := range groups {
		g := &groups[i]
		g.Position = tl.PositionForDate(g.Date)
		if g.Row == RowBottom {
			g.LabelPosition = alternate(i, LabelBelow, LabelAbove)
		} else {
			g.LabelPosition = alternate(i, LabelAbove, LabelBelow)
		}
	}

	slices.SortStableFunc(groups, func(a, b Group[T]) int {
		return compareDecimal(Decimal(a.Date), Decimal(b.Date))
	})
	return groups
}

func alternate(i int, even, odd Label) Label {
	if i%2 == 0 {
		return even
	}
	return odd
}

// compareDecimal orders ascending and treats NaN as equal to everything, so
// unparseable dates keep their relative position.
func compareDecimal(a, b float64) int {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Placeable splits items into those whose start date parses and those that
// would land at NaN coordinates.
func Placeable[T Dated](items []T) (ok, skipped []T) {
	for _, item := range items {
		if ParseDate(item.StartDate()).Valid {
			ok = append(ok, item)
		} else {
			skipped = append(skipped, item)
		}
	}
	return ok, skipped
}
