package season

import "testing"

func TestOf_PartitionsYear(t *testing.T) {
	t.Parallel()

	want := map[int]Season{
		1: Winter, 2: Winter, 12: Winter,
		3: Spring, 4: Spring, 5: Spring,
		6: Summer, 7: Summer, 8: Summer,
		9: Fall, 10: Fall, 11: Fall,
	}

	// Every month maps to exactly one season, no gaps.
	seen := make(map[int]int)
	for m := 1; m <= 12; m++ {
		s := Of(m)
		if s != want[m] {
			t.Errorf("Of(%d) = %s, want %s", m, s, want[m])
		}
		seen[m]++
	}
	if len(seen) != 12 {
		t.Errorf("covered %d months, want 12", len(seen))
	}
}

func TestOf_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	for _, m := range []int{0, 13, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Of(%d) did not panic", m)
				}
			}()
			Of(m)
		}()
	}
}

func TestNextPrev_Cycle(t *testing.T) {
	t.Parallel()

	order := []Season{Winter, Spring, Summer, Fall}
	for i, s := range order {
		next := order[(i+1)%len(order)]
		if got := s.Next(); got != next {
			t.Errorf("%s.Next() = %s, want %s", s, got, next)
		}
		if got := next.Prev(); got != s {
			t.Errorf("%s.Prev() = %s, want %s", next, got, s)
		}
	}

	// Four Next calls return to the start.
	s := Fall
	for i := 0; i < Count; i++ {
		s = s.Next()
	}
	if s != Fall {
		t.Errorf("four Next calls from Fall = %s, want Fall", s)
	}
}

func TestMiddle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		season Season
		want   int
	}{
		{Winter, 1},
		{Spring, 4},
		{Summer, 7},
		{Fall, 10},
	}
	for _, tt := range tests {
		if got := tt.season.Middle(); got != tt.want {
			t.Errorf("%s.Middle() = %d, want %d", tt.season, got, tt.want)
		}
	}
}
