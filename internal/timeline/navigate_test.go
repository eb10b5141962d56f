package timeline

import (
	"errors"
	"testing"
)

func mustAxis(t *testing.T, years ...int) *Axis {
	t.Helper()
	a, err := NewAxis(years, nil)
	if err != nil {
		t.Fatalf("NewAxis(%v): %v", years, err)
	}
	return a
}

func TestAdvanceRetreat_MonthInverse(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2022, 2023, 2024)

	// Retreat(Advance(c)) reproduces c for every (year, month), including
	// across year-wrap boundaries.
	for _, y := range a.Years() {
		for m := 1; m <= 12; m++ {
			c := Cursor{Year: y, Month: m}
			fwd, err := Advance(a, c, ModeMonth)
			if err != nil {
				t.Fatalf("Advance(%+v): %v", c, err)
			}
			back, err := Retreat(a, fwd, ModeMonth)
			if err != nil {
				t.Fatalf("Retreat(%+v): %v", fwd, err)
			}
			if back != c {
				t.Errorf("Retreat(Advance(%+v)) = %+v, want original", c, back)
			}
		}
	}
}

func TestAdvance_TwelveMonthsIsOneYearStep(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2022, 2023, 2024)

	tests := []struct {
		name     string
		start    Cursor
		wantYear int
	}{
		{"mid axis", Cursor{Year: 2022, Month: 5}, 2023},
		{"last year wraps", Cursor{Year: 2024, Month: 11}, 2022},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := tt.start
			var err error
			for i := 0; i < 12; i++ {
				c, err = Advance(a, c, ModeMonth)
				if err != nil {
					t.Fatalf("Advance step %d: %v", i, err)
				}
			}
			if c.Month != tt.start.Month {
				t.Errorf("month after 12 advances = %d, want %d", c.Month, tt.start.Month)
			}
			if c.Year != tt.wantYear {
				t.Errorf("year after 12 advances = %d, want %d", c.Year, tt.wantYear)
			}
		})
	}
}

func TestAdvance_MonthYearBoundary(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2022, 2023, 2024)

	got, err := Advance(a, Cursor{Year: 2023, Month: 12}, ModeMonth)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got != (Cursor{Year: 2024, Month: 1}) {
		t.Errorf("Advance(2023-12) = %+v, want 2024-01", got)
	}

	got, err = Retreat(a, Cursor{Year: 2024, Month: 1}, ModeMonth)
	if err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if got != (Cursor{Year: 2023, Month: 12}) {
		t.Errorf("Retreat(2024-01) = %+v, want 2023-12", got)
	}

	// Circular: last year December advances to first year January.
	got, err = Advance(a, Cursor{Year: 2024, Month: 12}, ModeMonth)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got != (Cursor{Year: 2022, Month: 1}) {
		t.Errorf("Advance(2024-12) = %+v, want wrap to 2022-01", got)
	}
}

func TestAdvance_YearMode(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2021, 2023, 2024) // gap years are fine, axis is a list

	got, err := Advance(a, Cursor{Year: 2021, Month: 6}, ModeYear)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got != (Cursor{Year: 2023, Month: 6}) {
		t.Errorf("Advance year = %+v, want {2023 6} (month untouched)", got)
	}

	got, err = Advance(a, Cursor{Year: 2024}, ModeYear)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.Year != 2021 {
		t.Errorf("Advance from last year = %d, want wrap to 2021", got.Year)
	}

	got, err = Retreat(a, Cursor{Year: 2021}, ModeYear)
	if err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if got.Year != 2024 {
		t.Errorf("Retreat from first year = %d, want wrap to 2024", got.Year)
	}
}

func TestAdvance_SeasonCycle(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2024, 2025)

	// Starting in Fall 2024, four advances walk Winter→Spring→Summer→Fall
	// landing on each season's middle month; the year changes exactly once,
	// on the Fall→Winter transition.
	c := Cursor{Year: 2024, Month: 10}
	want := []Cursor{
		{Year: 2025, Month: 1},
		{Year: 2025, Month: 4},
		{Year: 2025, Month: 7},
		{Year: 2025, Month: 10},
	}
	for i, w := range want {
		var err error
		c, err = Advance(a, c, ModeSeason)
		if err != nil {
			t.Fatalf("Advance step %d: %v", i, err)
		}
		if c != w {
			t.Errorf("season advance %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestRetreat_SeasonCycle(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2024, 2025)

	// Winter→Fall backward is the only transition that retreats the year.
	got, err := Retreat(a, Cursor{Year: 2025, Month: 1}, ModeSeason)
	if err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if got != (Cursor{Year: 2024, Month: 10}) {
		t.Errorf("Retreat(winter) = %+v, want {2024 10}", got)
	}

	// Spring→Winter backward keeps the year.
	got, err = Retreat(a, Cursor{Year: 2025, Month: 4}, ModeSeason)
	if err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if got != (Cursor{Year: 2025, Month: 1}) {
		t.Errorf("Retreat(spring) = %+v, want {2025 1}", got)
	}
}

func TestAdvance_UnsetMonthTreatedAsJanuary(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2024)

	got, err := Advance(a, Cursor{Year: 2024}, ModeMonth)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.Month != 2 {
		t.Errorf("Advance from unset month = %d, want 2", got.Month)
	}

	// Unset month is Winter; next season is Spring.
	got, err = Advance(a, Cursor{Year: 2024}, ModeSeason)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.Month != 4 {
		t.Errorf("season Advance from unset month = %d, want 4", got.Month)
	}
}

func TestAdvance_SingleYearAxisStillWraps(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2022)

	for _, mode := range []Mode{ModeYear, ModeMonth, ModeSeason} {
		got, err := Advance(a, Cursor{Year: 2022, Month: 12}, mode)
		if err != nil {
			t.Fatalf("Advance(%s): %v", mode, err)
		}
		if got.Year != 2022 {
			t.Errorf("Advance(%s) year = %d, want 2022", mode, got.Year)
		}
		got, err = Retreat(a, Cursor{Year: 2022, Month: 1}, mode)
		if err != nil {
			t.Fatalf("Retreat(%s): %v", mode, err)
		}
		if got.Year != 2022 {
			t.Errorf("Retreat(%s) year = %d, want 2022", mode, got.Year)
		}
	}
}

func TestAdvance_Preconditions(t *testing.T) {
	t.Parallel()

	a := mustAxis(t, 2024)

	if _, err := Advance(a, Cursor{Year: 1999, Month: 1}, ModeMonth); !errors.Is(err, ErrUnknownYear) {
		t.Errorf("Advance off-axis year error = %v, want ErrUnknownYear", err)
	}
	if _, err := Advance(a, Cursor{Year: 2024, Month: 13}, ModeMonth); !errors.Is(err, ErrMonthOutOfRange) {
		t.Errorf("Advance month 13 error = %v, want ErrMonthOutOfRange", err)
	}
	if _, err := Retreat(a, Cursor{Year: 2024, Month: -1}, ModeSeason); !errors.Is(err, ErrMonthOutOfRange) {
		t.Errorf("Retreat month -1 error = %v, want ErrMonthOutOfRange", err)
	}
}
