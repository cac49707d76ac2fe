// file: internals/features/school/classes/timetable/service/dates_test.go
package service

import (
	"testing"
	"time"

	"colegio_backend/internals/features/school/classes/timetable/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMatchingDates(t *testing.T) {
	// 2024-09-02 is a Monday, 2024-09-13 a Friday.
	start := day(2024, time.September, 2)
	end := day(2024, time.September, 13)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		weekday int
		want    []time.Time
	}{
		{
			name:    "two Mondays in a two-week window",
			start:   start,
			end:     end,
			weekday: model.WeekdayMonday,
			want:    []time.Time{day(2024, time.September, 2), day(2024, time.September, 9)},
		},
		{
			name:    "two Fridays, including the end bound",
			start:   start,
			end:     end,
			weekday: model.WeekdayFriday,
			want:    []time.Time{day(2024, time.September, 6), day(2024, time.September, 13)},
		},
		{
			name:    "single-day range matching its own weekday",
			start:   day(2024, time.September, 4),
			end:     day(2024, time.September, 4),
			weekday: model.WeekdayWednesday,
			want:    []time.Time{day(2024, time.September, 4)},
		},
		{
			name:    "single-day range on the wrong weekday",
			start:   day(2024, time.September, 4),
			end:     day(2024, time.September, 4),
			weekday: model.WeekdayThursday,
			want:    nil,
		},
		{
			name:    "end before start yields nothing",
			start:   end,
			end:     start,
			weekday: model.WeekdayMonday,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchingDates(tt.start, tt.end, tt.weekday)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d dates, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("date[%d] = %s, want %s",
						i, got[i].Format("2006-01-02"), tt.want[i].Format("2006-01-02"))
				}
			}
		})
	}
}

func TestMatchingDatesEveryResultIsTheRequestedWeekday(t *testing.T) {
	start := day(2025, time.March, 1)
	end := day(2025, time.June, 30)
	for wd := model.WeekdayMonday; wd <= model.WeekdayFriday; wd++ {
		for _, d := range MatchingDates(start, end, wd) {
			if isoWeekday(d) != wd {
				t.Fatalf("%s has weekday %d, want %d", d.Format("2006-01-02"), isoWeekday(d), wd)
			}
			if d.Before(start) || d.After(end) {
				t.Fatalf("%s falls outside [%s, %s]",
					d.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
			}
		}
	}
}

func TestIsoWeekday(t *testing.T) {
	// Sunday must map to 7, not 0.
	sunday := day(2024, time.September, 1)
	if got := isoWeekday(sunday); got != 7 {
		t.Errorf("isoWeekday(Sunday) = %d, want 7", got)
	}
	monday := day(2024, time.September, 2)
	if got := isoWeekday(monday); got != model.WeekdayMonday {
		t.Errorf("isoWeekday(Monday) = %d, want %d", got, model.WeekdayMonday)
	}
}
