package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidride_backend/internals/features/activities/model"
	kidModel "kidride_backend/internals/features/kids/model"
	"kidride_backend/internals/helpers/dbtime"
)

func tod(h, m int) dbtime.Tod {
	return dbtime.From(time.Date(0, 1, 1, h, m, 0, 0, time.UTC))
}

func sampleActivity() *model.ActivityModel {
	start := tod(9, 0)
	end := tod(10, 0)
	return &model.ActivityModel{
		ID:              uuid.New(),
		HouseholdID:     uuid.New(),
		CreatedByUserID: uuid.New(),
		Name:            "Swim",
		CreatedAt:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Schedule: &model.ActivityScheduleModel{
			ScheduleType:       model.ScheduleRecurring,
			StartDate:          time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			EndDate:            time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC),
			Timezone:           "UTC",
			DefaultStartTime:   &start,
			DefaultEndTime:     &end,
			RecurrenceWeekdays: pq.Int64Array{0, 2},
		},
	}
}

func TestFromActivityModel_SynthesizesDayTimesFromDefaults(t *testing.T) {
	out := FromActivityModel(sampleActivity())

	require.NotNil(t, out.Schedule)
	assert.Equal(t, "recurring", out.Schedule.Type)
	assert.Equal(t, "2025-01-06", out.Schedule.StartDate)
	assert.Equal(t, "2025-06-27", out.Schedule.EndDate)
	assert.Equal(t, []int{0, 2}, out.Schedule.Weekdays)
	require.NotNil(t, out.Schedule.DefaultStartTime)
	assert.Equal(t, "09:00", *out.Schedule.DefaultStartTime)

	require.Len(t, out.Schedule.DayTimes, 2)
	assert.Equal(t, ActivityDayTimeResponse{Weekday: 0, StartTime: "09:00", EndTime: "10:00"}, out.Schedule.DayTimes[0])
	assert.Equal(t, ActivityDayTimeResponse{Weekday: 2, StartTime: "09:00", EndTime: "10:00"}, out.Schedule.DayTimes[1])
}

func TestFromActivityModel_ExplicitDayTimesWin(t *testing.T) {
	activity := sampleActivity()
	activity.Schedule.DayTimes = []model.ActivityDayTimeModel{
		{Weekday: 2, StartTime: tod(16, 0), EndTime: tod(17, 30)},
	}

	out := FromActivityModel(activity)
	require.NotNil(t, out.Schedule)
	require.Len(t, out.Schedule.DayTimes, 1)
	assert.Equal(t, ActivityDayTimeResponse{Weekday: 2, StartTime: "16:00", EndTime: "17:30"}, out.Schedule.DayTimes[0])
}

func TestFromActivityModel_NoTimesNoWeekdays(t *testing.T) {
	activity := sampleActivity()
	activity.Schedule.DefaultStartTime = nil
	activity.Schedule.DefaultEndTime = nil

	out := FromActivityModel(activity)
	require.NotNil(t, out.Schedule)
	assert.Empty(t, out.Schedule.DayTimes)
	assert.Nil(t, out.Schedule.DefaultStartTime)
	assert.Nil(t, out.Schedule.DefaultEndTime)
}

func TestFromActivityModel_MissingScheduleRendersNull(t *testing.T) {
	activity := sampleActivity()
	activity.Schedule = nil

	out := FromActivityModel(activity)
	assert.Nil(t, out.Schedule)
	assert.NotNil(t, out.Kids, "kids renders as [] even when empty")
}

func TestFromActivityModel_Kids(t *testing.T) {
	activity := sampleActivity()
	kidID := uuid.New()
	activity.Enrollments = []model.KidActivityEnrollmentModel{
		{KidID: kidID, Kid: &kidModel.KidModel{ID: kidID, FirstName: "Mia"}},
		{KidID: uuid.New(), Kid: nil}, // dangling reference
	}

	out := FromActivityModel(activity)
	require.Len(t, out.Kids, 2)
	assert.Equal(t, kidID, out.Kids[0].ID)
	require.NotNil(t, out.Kids[0].FirstName)
	assert.Equal(t, "Mia", *out.Kids[0].FirstName)
	assert.Nil(t, out.Kids[1].FirstName)
}

func TestParseActivityBody_TracksPresence(t *testing.T) {
	body := []byte(`{"name":"Swim","provider":null,"weekdays":[2,0],"latitude":"12.5"}`)

	req, present, err := ParseActivityBody(body)
	require.NoError(t, err)

	assert.True(t, present.Has("name"))
	assert.True(t, present.Has("provider"), "explicit null still counts as present")
	assert.True(t, present.Has("weekdays"))
	assert.False(t, present.Has("timezone"))

	require.NotNil(t, req.Name)
	assert.Equal(t, "Swim", *req.Name)
	assert.Nil(t, req.Provider)
	assert.Equal(t, []int{2, 0}, req.Weekdays)
	assert.Equal(t, "12.5", req.Latitude)
}

func TestParseActivityBody_EmptyBody(t *testing.T) {
	req, present, err := ParseActivityBody(nil)
	require.NoError(t, err)
	assert.Empty(t, present)
	assert.Nil(t, req.Name)
}

func TestParseActivityBody_InvalidJSON(t *testing.T) {
	_, _, err := ParseActivityBody([]byte(`{"name":`))
	require.Error(t, err)
}

func TestToInput(t *testing.T) {
	name := "Swim"
	req := ActivityRequest{
		Name:         &name,
		KidIDs:       []string{"a", "b"},
		ScheduleType: "one_time",
		StartDate:    "2025-01-08",
		Timezone:     "UTC",
		StartTime:    "14:00",
		EndTime:      "15:00",
	}

	in := req.ToInput()
	assert.Equal(t, "Swim", in.Name)
	assert.Equal(t, []string{"a", "b"}, in.KidIDs)
	assert.Equal(t, "one_time", in.Schedule.ScheduleType)
	assert.Equal(t, "14:00", in.Schedule.StartTime)
}
