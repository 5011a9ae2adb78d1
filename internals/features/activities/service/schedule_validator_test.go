package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validRecurringInput() ScheduleInput {
	return ScheduleInput{
		ScheduleType: "recurring",
		StartDate:    "2025-01-06", // a Monday
		EndDate:      "2025-06-27",
		Timezone:     "UTC",
		Weekdays:     []int{0, 2},
		StartTime:    "09:00",
		EndTime:      "10:00",
	}
}

func TestValidateSchedule_RecurringWithDefaults(t *testing.T) {
	out, err := ValidateSchedule(validRecurringInput())
	require.NoError(t, err)

	assert.Equal(t, "recurring", out.ScheduleType)
	assert.Equal(t, []int{0, 2}, out.Weekdays)
	assert.Equal(t, "2025-01-06", out.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-06-27", out.EndDate.Format("2006-01-02"))
	assert.Equal(t, "UTC", out.Timezone)
	require.NotNil(t, out.DefaultStartTime)
	require.NotNil(t, out.DefaultEndTime)
	assert.Equal(t, "09:00", out.DefaultStartTime.Format("15:04"))
	assert.Equal(t, "10:00", out.DefaultEndTime.Format("15:04"))
	assert.Empty(t, out.DayTimes)
}

func TestValidateSchedule_WeekdaysSortedAndDeduped(t *testing.T) {
	in := validRecurringInput()
	in.Weekdays = []int{4, 0, 2, 4, 0}

	out, err := ValidateSchedule(in)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, out.Weekdays)
}

func TestValidateSchedule_OneTimeDefaultsWeekdayFromStartDate(t *testing.T) {
	in := ScheduleInput{
		ScheduleType: "one_time",
		StartDate:    "2025-01-08", // a Wednesday
		Timezone:     "UTC",
		StartTime:    "14:00",
		EndTime:      "15:30",
	}

	out, err := ValidateSchedule(in)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out.Weekdays)
	// end_date falls back to start_date
	assert.Equal(t, out.StartDate, out.EndDate)
}

func TestValidateSchedule_ScheduleTypeNormalizedAndChecked(t *testing.T) {
	in := validRecurringInput()
	in.ScheduleType = " RECURRING "
	out, err := ValidateSchedule(in)
	require.NoError(t, err)
	assert.Equal(t, "recurring", out.ScheduleType)

	in.ScheduleType = "weekly"
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "schedule_type must be 'one_time' or 'recurring'")
}

func TestValidateSchedule_DateErrors(t *testing.T) {
	in := validRecurringInput()
	in.StartDate = ""
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "start_date is required")

	in = validRecurringInput()
	in.StartDate = "06-01-2025"
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "start_date must be ISO date (YYYY-MM-DD)")

	in = validRecurringInput()
	in.EndDate = "2025-01-05"
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "end_date cannot be before start_date")

	// equal dates are fine
	in = validRecurringInput()
	in.EndDate = in.StartDate
	_, err = ValidateSchedule(in)
	require.NoError(t, err)
}

func TestValidateSchedule_TimezoneRequired(t *testing.T) {
	in := validRecurringInput()
	in.Timezone = "  "
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "timezone is required")
}

func TestValidateSchedule_RecurringRequiresWeekdays(t *testing.T) {
	in := validRecurringInput()
	in.Weekdays = nil
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "weekdays is required for recurring schedules")

	// explicitly empty behaves like omitted
	in.Weekdays = []int{}
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "weekdays is required for recurring schedules")
}

func TestValidateSchedule_WeekdayRange(t *testing.T) {
	in := validRecurringInput()
	in.Weekdays = []int{0, 7}
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "weekdays must be between 0 (Monday) and 6 (Sunday)")

	in.Weekdays = []int{-1}
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "weekdays must be between 0 (Monday) and 6 (Sunday)")
}

func TestValidateSchedule_DefaultTimePair(t *testing.T) {
	in := validRecurringInput()
	in.EndTime = "09:00"
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "end_time must be after start_time")

	in = validRecurringInput()
	in.StartTime = "25:00"
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "start_time must be HH:MM (24h)")

	// no time information anywhere
	in = validRecurringInput()
	in.StartTime = ""
	in.EndTime = ""
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "Provide start_time/end_time or per-day day_times")
}

func TestValidateSchedule_SecondsTruncated(t *testing.T) {
	in := validRecurringInput()
	in.StartTime = "09:00:45"
	out, err := ValidateSchedule(in)
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", out.DefaultStartTime.Format("15:04:05"))
}

func TestValidateSchedule_DayTimes(t *testing.T) {
	in := validRecurringInput()
	in.StartTime = ""
	in.EndTime = ""
	in.DayTimes = []DayTimeInput{
		{Weekday: intPtr(0), StartTime: strPtr("08:00"), EndTime: strPtr("09:00")},
		{Weekday: intPtr(2), StartTime: strPtr("16:00"), EndTime: strPtr("17:30")},
	}

	out, err := ValidateSchedule(in)
	require.NoError(t, err)
	require.Len(t, out.DayTimes, 2)
	assert.Equal(t, 0, out.DayTimes[0].Weekday)
	assert.Equal(t, "08:00", out.DayTimes[0].StartTime.Format("15:04"))
	assert.Equal(t, "17:30", out.DayTimes[1].EndTime.Format("15:04"))
	assert.Nil(t, out.DefaultStartTime)
	assert.Nil(t, out.DefaultEndTime)
}

func TestValidateSchedule_DayTimeErrors(t *testing.T) {
	base := validRecurringInput()

	in := base
	in.DayTimes = []DayTimeInput{{Weekday: nil, StartTime: strPtr("08:00"), EndTime: strPtr("09:00")}}
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "weekdays must be integers between 0 and 6")

	in = base
	in.DayTimes = []DayTimeInput{{Weekday: intPtr(9), StartTime: strPtr("08:00"), EndTime: strPtr("09:00")}}
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "weekdays must be between 0 (Monday) and 6 (Sunday)")

	in = base
	in.DayTimes = []DayTimeInput{{Weekday: intPtr(0), StartTime: strPtr("08:00")}}
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "Each day_time requires start_time and end_time")

	in = base
	in.DayTimes = []DayTimeInput{{Weekday: intPtr(0), StartTime: strPtr("09:00"), EndTime: strPtr("09:00")}}
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "day_times.end_time must be after day_times.start_time")
}

func TestValidateSchedule_DayTimeWeekdaySubset(t *testing.T) {
	in := validRecurringInput()
	in.Weekdays = []int{0}
	in.DayTimes = []DayTimeInput{{Weekday: intPtr(1), StartTime: strPtr("08:00"), EndTime: strPtr("09:00")}}
	_, err := ValidateSchedule(in)
	require.EqualError(t, err, "day_times.weekday must be within weekdays")

	// one_time schedules default weekdays from the start date, so the same
	// subset rule applies against that default
	in = ScheduleInput{
		ScheduleType: "one_time",
		StartDate:    "2025-01-06", // a Monday -> weekday 0
		Timezone:     "UTC",
		DayTimes:     []DayTimeInput{{Weekday: intPtr(3), StartTime: strPtr("08:00"), EndTime: strPtr("09:00")}},
	}
	_, err = ValidateSchedule(in)
	require.EqualError(t, err, "day_times.weekday must be within weekdays")
}

func TestValidateSchedule_IdempotentOnNormalizedOutput(t *testing.T) {
	out1, err := ValidateSchedule(validRecurringInput())
	require.NoError(t, err)

	// feed the normalized values back through the validator
	in2 := ScheduleInput{
		ScheduleType: out1.ScheduleType,
		StartDate:    out1.StartDate.Format("2006-01-02"),
		EndDate:      out1.EndDate.Format("2006-01-02"),
		Timezone:     out1.Timezone,
		Weekdays:     out1.Weekdays,
		StartTime:    out1.DefaultStartTime.Format("15:04"),
		EndTime:      out1.DefaultEndTime.Format("15:04"),
	}
	out2, err := ValidateSchedule(in2)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}
