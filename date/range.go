package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Days returns an iterator over every calendar day of the range, in chronological order.
//
// Weekends and holidays are included: the calendar is not aware of trading days.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}

func (r Range) String() string { return fmt.Sprintf("%s_%s", r.From, r.To) }
