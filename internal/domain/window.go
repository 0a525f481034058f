package domain

import "time"

// Window is a half-open rental interval [From, To).
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewWindow(from, to time.Time) (Window, error) {
	if !from.Before(to) {
		return Window{}, ErrInvalidWindow
	}
	return Window{From: from, To: to}, nil
}

// Overlaps reports whether two half-open windows share any time.
// Windows that merely touch (w.To == o.From) do not overlap, so
// back-to-back rentals are allowed.
func (w Window) Overlaps(o Window) bool {
	return w.From.Before(o.To) && w.To.After(o.From)
}

// Hours returns the billable duration rounded up to whole hours.
func (w Window) Hours() int64 {
	d := w.To.Sub(w.From)
	h := int64(d / time.Hour)
	if d%time.Hour != 0 {
		h++
	}
	return h
}
