package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	kidModel "kidride_backend/internals/features/kids/model"
	"kidride_backend/internals/helpers/dbtime"
)

// ScheduleType enum: one_time | recurring.
const (
	ScheduleOneTime   = "one_time"
	ScheduleRecurring = "recurring"
)

// ActivityModel is one scheduled program a household's kid(s) may attend.
// household_id and created_by_user_id are immutable after creation.
type ActivityModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HouseholdID     uuid.UUID `gorm:"type:uuid;not null" json:"household_id"`
	CreatedByUserID uuid.UUID `gorm:"column:created_by_user_id;type:uuid;not null" json:"created_by_user_id"`
	Provider        *string   `gorm:"size:255" json:"provider,omitempty"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Address         *string   `gorm:"size:255" json:"address,omitempty"`
	Location        *string   `gorm:"type:text" json:"location,omitempty"`
	Latitude        *float64  `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude       *float64  `gorm:"type:double precision" json:"longitude,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Schedule    *ActivityScheduleModel       `gorm:"foreignKey:ActivityID" json:"schedule,omitempty"`
	Enrollments []KidActivityEnrollmentModel `gorm:"foreignKey:ActivityID" json:"enrollments,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }

// ActivityScheduleModel is the temporal definition of an Activity (1:1).
// recurrence_weekdays holds weekday indices 0 (Monday) .. 6 (Sunday),
// deduplicated and sorted ascending.
type ActivityScheduleModel struct {
	ID                 uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ActivityID         uuid.UUID     `gorm:"type:uuid;not null;unique" json:"activity_id"`
	ScheduleType       string        `gorm:"size:16;not null" json:"schedule_type"`
	StartDate          time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate            time.Time     `gorm:"type:date;not null" json:"end_date"`
	Timezone           string        `gorm:"size:64;not null" json:"timezone"`
	DefaultStartTime   *dbtime.Tod   `gorm:"type:time" json:"default_start_time,omitempty"`
	DefaultEndTime     *dbtime.Tod   `gorm:"type:time" json:"default_end_time,omitempty"`
	RecurrenceWeekdays pq.Int64Array `gorm:"column:recurrence_weekdays;type:int[]" json:"recurrence_weekdays"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"created_at"`

	DayTimes []ActivityDayTimeModel `gorm:"foreignKey:ScheduleID" json:"day_times,omitempty"`
}

func (ActivityScheduleModel) TableName() string { return "activity_schedules" }

// ActivityDayTimeModel is a per-weekday time window override.
// Unique per (schedule_id, weekday); replaced wholesale on update.
type ActivityDayTimeModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScheduleID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_schedule_weekday" json:"schedule_id"`
	Weekday    int        `gorm:"not null;uniqueIndex:uq_schedule_weekday" json:"weekday"`
	StartTime  dbtime.Tod `gorm:"type:time;not null" json:"start_time"`
	EndTime    dbtime.Tod `gorm:"type:time;not null" json:"end_time"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityDayTimeModel) TableName() string { return "activity_day_times" }

// KidActivityEnrollmentModel links a Kid to an Activity, unique per pair.
// Replaced wholesale on update; deleting it never deletes the kid.
type KidActivityEnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	KidID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_kid_activity" json:"kid_id"`
	ActivityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_kid_activity" json:"activity_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Kid *kidModel.KidModel `gorm:"foreignKey:KidID" json:"kid,omitempty"`
}

func (KidActivityEnrollmentModel) TableName() string { return "kid_activity_enrollments" }
