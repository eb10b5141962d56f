package timeline

import "github.com/fernvale/bloomwatch/internal/season"

// Advance computes the cursor one step forward at the given granularity.
//
// Month mode increments the month, rolling 12→1 and stepping the year
// along the axis (last year wraps to the first). Year mode steps the
// year with the same wraparound and leaves the month untouched. Season
// mode moves to the next season in the fixed cyclic order and lands on
// that season's middle month; the year advances only on the
// Fall→Winter transition.
func Advance(a *Axis, c Cursor, mode Mode) (Cursor, error) {
	if err := c.Validate(a); err != nil {
		return c, err
	}

	switch mode {
	case ModeYear:
		c.Year = a.nextYear(c.Year)
		return c, nil

	case ModeSeason:
		cur := season.Of(c.monthOrJanuary())
		next := cur.Next()
		c.Month = next.Middle()
		if cur == season.Fall {
			c.Year = a.nextYear(c.Year)
		}
		return c, nil

	default: // ModeMonth
		m := c.monthOrJanuary() + 1
		if m > 12 {
			m = 1
			c.Year = a.nextYear(c.Year)
		}
		c.Month = m
		return c, nil
	}
}

// Retreat is the mirror of Advance: month 1 rolls to 12 of the previous
// axis year, the first year wraps to the last, and season mode walks the
// cycle backward with the year retreating only on the Winter→Fall
// transition.
func Retreat(a *Axis, c Cursor, mode Mode) (Cursor, error) {
	if err := c.Validate(a); err != nil {
		return c, err
	}

	switch mode {
	case ModeYear:
		c.Year = a.prevYear(c.Year)
		return c, nil

	case ModeSeason:
		cur := season.Of(c.monthOrJanuary())
		prev := cur.Prev()
		c.Month = prev.Middle()
		if cur == season.Winter {
			c.Year = a.prevYear(c.Year)
		}
		return c, nil

	default: // ModeMonth
		m := c.monthOrJanuary() - 1
		if m < 1 {
			m = 12
			c.Year = a.prevYear(c.Year)
		}
		c.Month = m
		return c, nil
	}
}
