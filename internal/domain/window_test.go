package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, from, to time.Time) Window {
	t.Helper()
	w, err := NewWindow(from, to)
	require.NoError(t, err)
	return w
}

func TestNewWindow_Invalid(t *testing.T) {
	now := time.Now()

	_, err := NewWindow(now, now)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(now.Add(time.Hour), now)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name string
		a    Window
		b    Window
		want bool
	}{
		{
			name: "identical windows",
			a:    Window{From: at(0), To: at(2)},
			b:    Window{From: at(0), To: at(2)},
			want: true,
		},
		{
			name: "partial overlap at start",
			a:    Window{From: at(0), To: at(2)},
			b:    Window{From: at(1), To: at(3)},
			want: true,
		},
		{
			name: "one contains the other",
			a:    Window{From: at(0), To: at(4)},
			b:    Window{From: at(1), To: at(2)},
			want: true,
		},
		{
			name: "touching windows do not overlap",
			a:    Window{From: at(0), To: at(2)},
			b:    Window{From: at(2), To: at(4)},
			want: false,
		},
		{
			name: "touching windows reversed",
			a:    Window{From: at(2), To: at(4)},
			b:    Window{From: at(0), To: at(2)},
			want: false,
		},
		{
			name: "disjoint",
			a:    Window{From: at(0), To: at(1)},
			b:    Window{From: at(3), To: at(4)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestWindow_Hours_RoundsUp(t *testing.T) {
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	w := mustWindow(t, base, base.Add(2*time.Hour))
	assert.Equal(t, int64(2), w.Hours())

	w = mustWindow(t, base, base.Add(90*time.Minute))
	assert.Equal(t, int64(2), w.Hours())

	w = mustWindow(t, base, base.Add(time.Minute))
	assert.Equal(t, int64(1), w.Hours())
}
