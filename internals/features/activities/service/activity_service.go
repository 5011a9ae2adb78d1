package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kidride_backend/internals/features/activities/model"
	kidModel "kidride_backend/internals/features/kids/model"
	kidService "kidride_backend/internals/features/kids/service"
	helper "kidride_backend/internals/helpers"
	"kidride_backend/internals/helpers/dbtime"
)

// scheduleFieldKeys are the payload keys that trigger schedule revalidation
// on a partial update.
var scheduleFieldKeys = []string{
	"schedule_type", "start_date", "end_date", "timezone",
	"weekdays", "day_times", "start_time", "end_time",
}

// FieldSet records which top-level keys were present in a request payload,
// so a partial update can tell "absent" apart from "explicit null".
type FieldSet map[string]bool

func (fs FieldSet) Has(key string) bool { return fs[key] }

func (fs FieldSet) HasAnyScheduleField() bool {
	for _, k := range scheduleFieldKeys {
		if fs[k] {
			return true
		}
	}
	return false
}

// ActivityInput is the loosely-typed activity payload handed in by the
// transport layer. Latitude/Longitude stay `any` because clients send both
// JSON numbers and numeric strings.
type ActivityInput struct {
	Name      string
	Provider  *string
	Address   *string
	Location  *string
	Latitude  any
	Longitude any
	KidIDs    []string
	Schedule  ScheduleInput
}

/* =========================
   Lookups
   ========================= */

// GetActivityForHousehold loads the full aggregate, masking cross-household
// rows as not-found so existence never leaks across tenants.
func GetActivityForHousehold(db *gorm.DB, activityID, householdID uuid.UUID) (*model.ActivityModel, *fiber.Error) {
	var activity model.ActivityModel
	err := db.
		Preload("Schedule.DayTimes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("weekday ASC")
		}).
		Preload("Enrollments.Kid").
		Where("id = ?", activityID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Activity not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity")
	}
	if activity.HouseholdID != householdID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Activity not found")
	}
	return &activity, nil
}

// ListActivitiesForHousehold returns the household's activities, newest first.
func ListActivitiesForHousehold(db *gorm.DB, householdID uuid.UUID) ([]model.ActivityModel, error) {
	var activities []model.ActivityModel
	err := db.
		Preload("Schedule.DayTimes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("weekday ASC")
		}).
		Preload("Enrollments.Kid").
		Where("household_id = ?", householdID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}

// resolveKidsForEnrollment loads the kids behind kid_ids and enforces that
// every id exists (404) and belongs to the caller's household (400).
func resolveKidsForEnrollment(db *gorm.DB, kidIDs []string, householdID uuid.UUID) ([]kidModel.KidModel, *fiber.Error) {
	if len(kidIDs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "kid_ids is required")
	}

	seen := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(kidIDs))
	for _, raw := range kidIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusNotFound, "One or more kids not found")
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	kids, err := kidService.FindKidsByIDs(db, ids)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load kids")
	}
	if len(kids) != len(ids) {
		return nil, fiber.NewError(fiber.StatusNotFound, "One or more kids not found")
	}
	for _, kid := range kids {
		if kid.HouseholdID == nil || *kid.HouseholdID != householdID {
			return nil, fiber.NewError(fiber.StatusBadRequest, "All kids must belong to the current household")
		}
	}
	return kids, nil
}

/* =========================
   Create
   ========================= */

// CreateActivity validates the payload fully before writing anything, then
// persists the whole aggregate in one transaction and reloads it for
// serialization.
func CreateActivity(db *gorm.DB, householdID, createdByUserID uuid.UUID, in ActivityInput) (*model.ActivityModel, *fiber.Error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	schedule, err := ValidateSchedule(in.Schedule)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var kids []kidModel.KidModel
	if len(in.KidIDs) > 0 {
		var ferr *fiber.Error
		if kids, ferr = resolveKidsForEnrollment(db, in.KidIDs, householdID); ferr != nil {
			return nil, ferr
		}
	}

	latitude, err := helper.CoerceOptionalFloat(in.Latitude, "latitude")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	longitude, err := helper.CoerceOptionalFloat(in.Longitude, "longitude")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	activity := model.ActivityModel{
		HouseholdID:     householdID,
		CreatedByUserID: createdByUserID,
		Provider:        in.Provider,
		Name:            name,
		Address:         in.Address,
		Location:        in.Location,
		Latitude:        latitude,
		Longitude:       longitude,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
		scheduleRow := newScheduleRow(activity.ID, schedule)
		if err := tx.Create(scheduleRow).Error; err != nil {
			return err
		}
		if err := insertDayTimes(tx, scheduleRow.ID, schedule.DayTimes); err != nil {
			return err
		}
		return insertEnrollments(tx, activity.ID, kids)
	})
	if txErr != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create activity")
	}

	return GetActivityForHousehold(db, activity.ID, householdID)
}

/* =========================
   Update (partial)
   ========================= */

// UpdateActivity applies a partial update. Schedule fields are revalidated as
// a whole whenever any of them appears in the payload, merging missing keys
// from the stored schedule. Day-times and enrollments are replaced wholesale,
// never patched row by row.
func UpdateActivity(db *gorm.DB, activityID, householdID uuid.UUID, in ActivityInput, present FieldSet) (*model.ActivityModel, *fiber.Error) {
	activity, ferr := GetActivityForHousehold(db, activityID, householdID)
	if ferr != nil {
		return nil, ferr
	}
	if activity.Schedule == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Activity schedule is missing")
	}

	updates := map[string]any{}

	if present.Has("name") {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
		}
		updates["name"] = name
	}

	var schedule *NormalizedSchedule
	if present.HasAnyScheduleField() {
		merged := mergeScheduleInput(in.Schedule, present, activity.Schedule)
		var err error
		if schedule, err = ValidateSchedule(merged); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	var kids []kidModel.KidModel
	replaceKids := present.Has("kid_ids")
	if replaceKids {
		if kids, ferr = resolveKidsForEnrollment(db, in.KidIDs, householdID); ferr != nil {
			return nil, ferr
		}
	}

	if present.Has("provider") {
		updates["provider"] = in.Provider
	}
	if present.Has("address") {
		updates["address"] = in.Address
	}
	if present.Has("location") {
		updates["location"] = in.Location
	}
	if present.Has("latitude") {
		latitude, err := helper.CoerceOptionalFloat(in.Latitude, "latitude")
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updates["latitude"] = latitude
	}
	if present.Has("longitude") {
		longitude, err := helper.CoerceOptionalFloat(in.Longitude, "longitude")
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updates["longitude"] = longitude
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.ActivityModel{}).
				Where("id = ?", activity.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if schedule != nil {
			scheduleUpdates := map[string]any{
				"schedule_type":       schedule.ScheduleType,
				"start_date":          schedule.StartDate,
				"end_date":            schedule.EndDate,
				"timezone":            schedule.Timezone,
				"default_start_time":  todPtr(schedule.DefaultStartTime),
				"default_end_time":    todPtr(schedule.DefaultEndTime),
				"recurrence_weekdays": toInt64Array(schedule.Weekdays),
			}
			if err := tx.Model(&model.ActivityScheduleModel{}).
				Where("id = ?", activity.Schedule.ID).
				Updates(scheduleUpdates).Error; err != nil {
				return err
			}
			if err := tx.Where("schedule_id = ?", activity.Schedule.ID).
				Delete(&model.ActivityDayTimeModel{}).Error; err != nil {
				return err
			}
			if err := insertDayTimes(tx, activity.Schedule.ID, schedule.DayTimes); err != nil {
				return err
			}
		}

		if replaceKids {
			if err := tx.Where("activity_id = ?", activity.ID).
				Delete(&model.KidActivityEnrollmentModel{}).Error; err != nil {
				return err
			}
			if err := insertEnrollments(tx, activity.ID, kids); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update activity")
	}

	return GetActivityForHousehold(db, activity.ID, householdID)
}

// DeleteActivity removes the aggregate; schedule, day-times and enrollments
// go with it via FK cascade.
func DeleteActivity(db *gorm.DB, activityID, householdID uuid.UUID) *fiber.Error {
	activity, ferr := GetActivityForHousehold(db, activityID, householdID)
	if ferr != nil {
		return ferr
	}
	if err := db.Delete(&model.ActivityModel{}, "id = ?", activity.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete activity")
	}
	return nil
}

/* =========================
   Internals
   ========================= */

// mergeScheduleInput overlays the payload's schedule keys onto the stored
// schedule so a partial patch still revalidates a complete schedule.
func mergeScheduleInput(in ScheduleInput, present FieldSet, existing *model.ActivityScheduleModel) ScheduleInput {
	merged := ScheduleInput{
		ScheduleType: existing.ScheduleType,
		StartDate:    existing.StartDate.Format("2006-01-02"),
		EndDate:      existing.EndDate.Format("2006-01-02"),
		Timezone:     existing.Timezone,
		Weekdays:     fromInt64Array(existing.RecurrenceWeekdays),
	}
	if existing.DefaultStartTime != nil {
		merged.StartTime = existing.DefaultStartTime.Clock()
	}
	if existing.DefaultEndTime != nil {
		merged.EndTime = existing.DefaultEndTime.Clock()
	}
	for _, dt := range existing.DayTimes {
		weekday := dt.Weekday
		start := dt.StartTime.Clock()
		end := dt.EndTime.Clock()
		merged.DayTimes = append(merged.DayTimes, DayTimeInput{
			Weekday:   &weekday,
			StartTime: &start,
			EndTime:   &end,
		})
	}

	if present.Has("schedule_type") {
		merged.ScheduleType = in.ScheduleType
	}
	if present.Has("start_date") {
		merged.StartDate = in.StartDate
	}
	if present.Has("end_date") {
		merged.EndDate = in.EndDate
	}
	if present.Has("timezone") {
		merged.Timezone = in.Timezone
	}
	if present.Has("weekdays") {
		merged.Weekdays = in.Weekdays
	}
	if present.Has("start_time") {
		merged.StartTime = in.StartTime
	}
	if present.Has("end_time") {
		merged.EndTime = in.EndTime
	}
	if present.Has("day_times") {
		merged.DayTimes = in.DayTimes
	}
	return merged
}

func newScheduleRow(activityID uuid.UUID, s *NormalizedSchedule) *model.ActivityScheduleModel {
	return &model.ActivityScheduleModel{
		ActivityID:         activityID,
		ScheduleType:       s.ScheduleType,
		StartDate:          s.StartDate,
		EndDate:            s.EndDate,
		Timezone:           s.Timezone,
		DefaultStartTime:   todPtr(s.DefaultStartTime),
		DefaultEndTime:     todPtr(s.DefaultEndTime),
		RecurrenceWeekdays: toInt64Array(s.Weekdays),
	}
}

func insertDayTimes(tx *gorm.DB, scheduleID uuid.UUID, dayTimes []NormalizedDayTime) error {
	if len(dayTimes) == 0 {
		return nil
	}
	rows := make([]model.ActivityDayTimeModel, 0, len(dayTimes))
	for _, dt := range dayTimes {
		rows = append(rows, model.ActivityDayTimeModel{
			ScheduleID: scheduleID,
			Weekday:    dt.Weekday,
			StartTime:  dbtime.From(dt.StartTime),
			EndTime:    dbtime.From(dt.EndTime),
		})
	}
	return tx.Create(&rows).Error
}

func insertEnrollments(tx *gorm.DB, activityID uuid.UUID, kids []kidModel.KidModel) error {
	if len(kids) == 0 {
		return nil
	}
	rows := make([]model.KidActivityEnrollmentModel, 0, len(kids))
	for _, kid := range kids {
		rows = append(rows, model.KidActivityEnrollmentModel{
			KidID:      kid.ID,
			ActivityID: activityID,
		})
	}
	return tx.Create(&rows).Error
}

func todPtr(t *time.Time) *dbtime.Tod {
	if t == nil {
		return nil
	}
	v := dbtime.From(*t)
	return &v
}

func toInt64Array(weekdays []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(weekdays))
	for _, w := range weekdays {
		out = append(out, int64(w))
	}
	return out
}

func fromInt64Array(arr pq.Int64Array) []int {
	if len(arr) == 0 {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, w := range arr {
		out = append(out, int(w))
	}
	return out
}
