package book

import (
	"sort"
	"time"

	"github.com/smileynet/contactbook/internal/contact"
)

// Upcoming is one congratulation due within the look-ahead window.
type Upcoming struct {
	Name               string
	CongratulationDate string // DD.MM.YYYY

	date time.Time
}

// UpcomingBirthdays lists contacts whose next birthday falls between today
// and today plus the window, inclusive. Weekend dates move to the following
// Monday when weekend shifting is on, even if that lands past the window.
// Results are ordered by congratulation date, then name.
func (b *AddressBook) UpcomingBirthdays() []Upcoming {
	today := civilDate(b.now())
	end := today.AddDate(0, 0, b.windowDays)

	var out []Upcoming
	for _, r := range b.records {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		next := occurrence(bd, today.Year())
		if next.Before(today) {
			next = occurrence(bd, today.Year()+1)
		}
		if next.After(end) {
			continue
		}

		if b.shift {
			next = shiftWeekend(next)
		}
		out = append(out, Upcoming{
			Name:               r.Name(),
			CongratulationDate: next.Format(contact.DateLayout),
			date:               next,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].date.Equal(out[j].date) {
			return out[i].date.Before(out[j].date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// civilDate drops the time of day and location, keeping the calendar date
// as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// occurrence returns the birthday's month and day in year. 29 February
// falls on 28 February in non-leap years.
func occurrence(bd contact.Birthday, year int) time.Time {
	m, d := bd.Month(), bd.Day()
	if m == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// shiftWeekend moves Saturday and Sunday forward to Monday by adding
// 7 - weekdayIndex days, where Monday is 0 and Sunday is 6.
func shiftWeekend(t time.Time) time.Time {
	idx := (int(t.Weekday()) + 6) % 7
	if idx < 5 {
		return t
	}
	return t.AddDate(0, 0, 7-idx)
}
