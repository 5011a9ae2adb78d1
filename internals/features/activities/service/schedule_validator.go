package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"kidride_backend/internals/features/activities/model"
	helper "kidride_backend/internals/helpers"
)

/* =========================
   Input / output shapes
   ========================= */

// ScheduleInput is the loosely-typed schedule slice of an activity payload.
// Empty strings and nil slices mean "not provided".
type ScheduleInput struct {
	ScheduleType string
	StartDate    string
	EndDate      string
	Timezone     string
	Weekdays     []int
	StartTime    string
	EndTime      string
	DayTimes     []DayTimeInput
}

// DayTimeInput is one raw day_times entry. Pointers distinguish a missing
// field from a zero value.
type DayTimeInput struct {
	Weekday   *int    `json:"weekday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// NormalizedDayTime carries a resolved weekday plus minute-precision times.
type NormalizedDayTime struct {
	Weekday   int
	StartTime time.Time
	EndTime   time.Time
}

// NormalizedSchedule is the canonical form persisted for an activity.
// Weekdays are deduplicated and sorted ascending, 0=Monday .. 6=Sunday.
type NormalizedSchedule struct {
	ScheduleType     string
	StartDate        time.Time
	EndDate          time.Time
	Timezone         string
	Weekdays         []int
	DefaultStartTime *time.Time
	DefaultEndTime   *time.Time
	DayTimes         []NormalizedDayTime
}

/* =========================
   Validator
   ========================= */

// WeekdayIndex maps a calendar date to the 0=Monday .. 6=Sunday convention.
func WeekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// ensureWeekdays resolves the weekday list. Omitted and explicitly empty are
// treated identically: recurring schedules error, one_time schedules default
// to the start date's weekday. Provided entries are range-checked, deduped
// and sorted.
func ensureWeekdays(raw []int, scheduleType string, startDate time.Time) ([]int, error) {
	if len(raw) == 0 {
		if scheduleType == model.ScheduleRecurring {
			return nil, errors.New("weekdays is required for recurring schedules")
		}
		return []int{WeekdayIndex(startDate)}, nil
	}

	seen := map[int]bool{}
	weekdays := make([]int, 0, len(raw))
	for _, w := range raw {
		if w < 0 || w > 6 {
			return nil, errors.New("weekdays must be between 0 (Monday) and 6 (Sunday)")
		}
		if !seen[w] {
			seen[w] = true
			weekdays = append(weekdays, w)
		}
	}
	sort.Ints(weekdays)
	return weekdays, nil
}

// ValidateSchedule validates and normalizes a schedule payload. Pure: no I/O,
// short-circuits on the first failure, never returns a partial result.
func ValidateSchedule(in ScheduleInput) (*NormalizedSchedule, error) {
	scheduleType := strings.ToLower(strings.TrimSpace(in.ScheduleType))
	if scheduleType != model.ScheduleOneTime && scheduleType != model.ScheduleRecurring {
		return nil, errors.New("schedule_type must be 'one_time' or 'recurring'")
	}

	startDate, err := helper.ParseISODate(in.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	endDate := startDate
	if strings.TrimSpace(in.EndDate) != "" {
		endDate, err = helper.ParseISODate(in.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
	}
	if endDate.Before(startDate) {
		return nil, errors.New("end_date cannot be before start_date")
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		return nil, errors.New("timezone is required")
	}

	weekdays, err := ensureWeekdays(in.Weekdays, scheduleType, startDate)
	if err != nil {
		return nil, err
	}

	defaultStart, err := helper.ParseClockTime(in.StartTime, "start_time")
	if err != nil {
		return nil, err
	}
	defaultEnd, err := helper.ParseClockTime(in.EndTime, "end_time")
	if err != nil {
		return nil, err
	}
	if defaultStart != nil && defaultEnd != nil && !defaultEnd.After(*defaultStart) {
		return nil, errors.New("end_time must be after start_time")
	}

	dayTimes := make([]NormalizedDayTime, 0, len(in.DayTimes))
	for _, entry := range in.DayTimes {
		if entry.Weekday == nil {
			return nil, errors.New("weekdays must be integers between 0 and 6")
		}
		if *entry.Weekday < 0 || *entry.Weekday > 6 {
			return nil, errors.New("weekdays must be between 0 (Monday) and 6 (Sunday)")
		}
		var start, end *time.Time
		if entry.StartTime != nil {
			if start, err = helper.ParseClockTime(*entry.StartTime, "day_times.start_time"); err != nil {
				return nil, err
			}
		}
		if entry.EndTime != nil {
			if end, err = helper.ParseClockTime(*entry.EndTime, "day_times.end_time"); err != nil {
				return nil, err
			}
		}
		if start == nil || end == nil {
			return nil, errors.New("Each day_time requires start_time and end_time")
		}
		if !end.After(*start) {
			return nil, errors.New("day_times.end_time must be after day_times.start_time")
		}
		dayTimes = append(dayTimes, NormalizedDayTime{
			Weekday:   *entry.Weekday,
			StartTime: *start,
			EndTime:   *end,
		})
	}

	// re-check for edge interactions between weekday defaulting and day_times
	if scheduleType == model.ScheduleRecurring && len(weekdays) == 0 {
		return nil, errors.New("weekdays is required for recurring schedules")
	}

	hasDefaultPair := defaultStart != nil && defaultEnd != nil
	if !hasDefaultPair && len(dayTimes) == 0 {
		return nil, errors.New("Provide start_time/end_time or per-day day_times")
	}

	if len(dayTimes) > 0 {
		provided := map[int]bool{}
		for _, dt := range dayTimes {
			provided[dt.Weekday] = true
		}
		if len(weekdays) > 0 {
			allowed := map[int]bool{}
			for _, w := range weekdays {
				allowed[w] = true
			}
			for w := range provided {
				if !allowed[w] {
					return nil, errors.New("day_times.weekday must be within weekdays")
				}
			}
		} else {
			// derive weekdays from the day_times themselves
			for w := range provided {
				weekdays = append(weekdays, w)
			}
			sort.Ints(weekdays)
		}
	}

	return &NormalizedSchedule{
		ScheduleType:     scheduleType,
		StartDate:        startDate,
		EndDate:          endDate,
		Timezone:         tz,
		Weekdays:         weekdays,
		DefaultStartTime: defaultStart,
		DefaultEndTime:   defaultEnd,
		DayTimes:         dayTimes,
	}, nil
}
