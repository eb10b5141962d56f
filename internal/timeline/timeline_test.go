package timeline

import (
	"errors"
	"testing"
)

func TestNewAxis_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		years   []int
		counts  map[string]int
		wantErr error
	}{
		{
			name:    "empty years",
			years:   nil,
			wantErr: ErrNoYears,
		},
		{
			name:    "years not ascending",
			years:   []int{2023, 2023},
			wantErr: ErrYearsNotAscending,
		},
		{
			name:    "years descending",
			years:   []int{2024, 2023},
			wantErr: ErrYearsNotAscending,
		},
		{
			name:    "negative count",
			years:   []int{2024},
			counts:  map[string]int{"2024-03": -1},
			wantErr: ErrNegativeCount,
		},
		{
			name:    "malformed key",
			years:   []int{2024},
			counts:  map[string]int{"2024/03": 2},
			wantErr: ErrBadBucketKey,
		},
		{
			name:    "month 13 key",
			years:   []int{2024},
			counts:  map[string]int{"2024-13": 2},
			wantErr: ErrBadBucketKey,
		},
		{
			name:   "valid",
			years:  []int{2023, 2024},
			counts: map[string]int{"2024-03": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewAxis(tt.years, tt.counts)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("NewAxis: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewAxis error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAxis_IgnoresKeysOffAxis(t *testing.T) {
	t.Parallel()

	a, err := NewAxis([]int{2024}, map[string]int{
		"2024-06": 9,
		"1999-06": 42, // not on the axis, silently ignored
	})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	if got := a.Count(2024, 6); got != 9 {
		t.Errorf("Count(2024, 6) = %d, want 9", got)
	}
	if got := a.Count(1999, 6); got != 0 {
		t.Errorf("Count(1999, 6) = %d, want 0", got)
	}
}

func TestAxis_MissingBucketIsZero(t *testing.T) {
	t.Parallel()

	a, err := NewAxis([]int{2024}, nil)
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	if got := a.Count(2024, 7); got != 0 {
		t.Errorf("Count on empty axis = %d, want 0", got)
	}
}

func TestParseBucketKey(t *testing.T) {
	t.Parallel()

	b, err := ParseBucketKey("2024-03")
	if err != nil {
		t.Fatalf("ParseBucketKey: %v", err)
	}
	if b.Year != 2024 || b.Month != 3 {
		t.Errorf("ParseBucketKey = %+v, want {2024 3}", b)
	}
	if got := b.Key(); got != "2024-03" {
		t.Errorf("Key() = %q, want 2024-03", got)
	}

	for _, bad := range []string{"", "2024", "2024-", "x-03", "2024-0", "2024-13"} {
		if _, err := ParseBucketKey(bad); err == nil {
			t.Errorf("ParseBucketKey(%q) succeeded, want error", bad)
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Mode
	}{
		{"month", ModeMonth},
		{"Year", ModeYear},
		{" season ", ModeSeason},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("decade"); err == nil {
		t.Error("ParseMode(decade) succeeded, want error")
	}
}
