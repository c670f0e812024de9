package season

import "fmt"

// Query is the raw season filter from the request: a single year, a range, or
// nothing. Zero means unset.
type Query struct {
	Year int
	From int
	To   int
}

// Window is an inclusive calendar-year date range.
type Window struct {
	Start string
	End   string
	Label string
}

// Active reports whether the window restricts anything.
func (w Window) Active() bool {
	return w.Start != "" && w.End != ""
}

// Resolve expands a query into a window. A single year overrides the range;
// a one-sided range mirrors to the other bound; an inverted range is swapped.
func Resolve(q Query) Window {
	if q.Year != 0 {
		start, end := yearBounds(q.Year)
		return Window{Start: start, End: end, Label: fmt.Sprintf("Season %d", q.Year)}
	}

	from, to := q.From, q.To
	if from == 0 && to == 0 {
		return Window{Label: "All seasons"}
	}
	if from != 0 && to == 0 {
		to = from
	}
	if to != 0 && from == 0 {
		from = to
	}
	if from > to {
		from, to = to, from
	}

	start, _ := yearBounds(from)
	_, end := yearBounds(to)
	label := fmt.Sprintf("Season %d", from)
	if from != to {
		label = fmt.Sprintf("Seasons %d-%d", from, to)
	}
	return Window{Start: start, End: end, Label: label}
}

func yearBounds(year int) (string, string) {
	return fmt.Sprintf("%d-01-01", year), fmt.Sprintf("%d-12-31", year)
}
