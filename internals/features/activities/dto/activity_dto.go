package dto

import (
	"bytes"
	"encoding/json"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"kidride_backend/internals/features/activities/model"
	"kidride_backend/internals/features/activities/service"
	"kidride_backend/internals/helpers/dbtime"
)

/* =========================
   Request payload
   ========================= */

// ActivityRequest covers both create and partial update. Which keys were
// actually present in the body is tracked separately (see ParseActivityBody)
// so PATCH can honor explicit nulls.
type ActivityRequest struct {
	Name         *string                `json:"name"`
	Provider     *string                `json:"provider"`
	Address      *string                `json:"address"`
	Location     *string                `json:"location"`
	Latitude     any                    `json:"latitude"`
	Longitude    any                    `json:"longitude"`
	KidIDs       []string               `json:"kid_ids"`
	ScheduleType string                 `json:"schedule_type"`
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	Timezone     string                 `json:"timezone"`
	Weekdays     []int                  `json:"weekdays"`
	StartTime    string                 `json:"start_time"`
	EndTime      string                 `json:"end_time"`
	DayTimes     []service.DayTimeInput `json:"day_times"`
}

// ParseActivityBody decodes the raw JSON body into the typed request plus the
// set of top-level keys present in it. An empty body counts as an empty
// object, matching lenient JSON handling on the other endpoints.
func ParseActivityBody(body []byte) (*ActivityRequest, service.FieldSet, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	var req ActivityRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		return nil, nil, err
	}
	var raw map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}
	present := make(service.FieldSet, len(raw))
	for k := range raw {
		present[k] = true
	}
	return &req, present, nil
}

// ToInput maps the request onto the service-layer input.
func (r *ActivityRequest) ToInput() service.ActivityInput {
	name := ""
	if r.Name != nil {
		name = *r.Name
	}
	return service.ActivityInput{
		Name:      name,
		Provider:  r.Provider,
		Address:   r.Address,
		Location:  r.Location,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		KidIDs:    r.KidIDs,
		Schedule: service.ScheduleInput{
			ScheduleType: r.ScheduleType,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			Timezone:     r.Timezone,
			Weekdays:     r.Weekdays,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			DayTimes:     r.DayTimes,
		},
	}
}

/* =========================
   Response view
   ========================= */

type ActivityKidResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName *string   `json:"first_name"`
}

type ActivityDayTimeResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ActivityScheduleResponse struct {
	Type             string                    `json:"type"`
	StartDate        string                    `json:"start_date"`
	EndDate          string                    `json:"end_date"`
	Timezone         string                    `json:"timezone"`
	Weekdays         []int                     `json:"weekdays"`
	DefaultStartTime *string                   `json:"default_start_time"`
	DefaultEndTime   *string                   `json:"default_end_time"`
	DayTimes         []ActivityDayTimeResponse `json:"day_times"`
}

type ActivityResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Name            string                    `json:"name"`
	Provider        *string                   `json:"provider"`
	Address         *string                   `json:"address"`
	Location        *string                   `json:"location"`
	Latitude        *float64                  `json:"latitude"`
	Longitude       *float64                  `json:"longitude"`
	HouseholdID     uuid.UUID                 `json:"household_id"`
	CreatedByUserID uuid.UUID                 `json:"created_by_user_id"`
	Kids            []ActivityKidResponse     `json:"kids"`
	Schedule        *ActivityScheduleResponse `json:"schedule"`
	CreatedAt       string                    `json:"created_at"`
}

func clockPtr(t *dbtime.Tod) *string {
	if t == nil {
		return nil
	}
	s := t.Clock()
	return &s
}

// FromActivityModel renders the aggregate. Explicit day-times win; otherwise
// one entry per weekday is synthesized from the default time pair; otherwise
// the list is empty. An absent schedule renders as null, never omitted.
func FromActivityModel(m *model.ActivityModel) ActivityResponse {
	kids := make([]ActivityKidResponse, 0, len(m.Enrollments))
	for _, e := range m.Enrollments {
		kid := ActivityKidResponse{ID: e.KidID}
		if e.Kid != nil {
			kid.FirstName = &e.Kid.FirstName
		}
		kids = append(kids, kid)
	}

	var schedule *ActivityScheduleResponse
	if s := m.Schedule; s != nil {
		weekdays := make([]int, 0, len(s.RecurrenceWeekdays))
		for _, w := range s.RecurrenceWeekdays {
			weekdays = append(weekdays, int(w))
		}

		dayTimes := make([]ActivityDayTimeResponse, 0)
		switch {
		case len(s.DayTimes) > 0:
			for _, dt := range s.DayTimes {
				dayTimes = append(dayTimes, ActivityDayTimeResponse{
					Weekday:   dt.Weekday,
					StartTime: dt.StartTime.Clock(),
					EndTime:   dt.EndTime.Clock(),
				})
			}
		case len(weekdays) > 0 && s.DefaultStartTime != nil && s.DefaultEndTime != nil:
			for _, w := range weekdays {
				dayTimes = append(dayTimes, ActivityDayTimeResponse{
					Weekday:   w,
					StartTime: s.DefaultStartTime.Clock(),
					EndTime:   s.DefaultEndTime.Clock(),
				})
			}
		}

		schedule = &ActivityScheduleResponse{
			Type:             s.ScheduleType,
			StartDate:        s.StartDate.Format("2006-01-02"),
			EndDate:          s.EndDate.Format("2006-01-02"),
			Timezone:         s.Timezone,
			Weekdays:         weekdays,
			DefaultStartTime: clockPtr(s.DefaultStartTime),
			DefaultEndTime:   clockPtr(s.DefaultEndTime),
			DayTimes:         dayTimes,
		}
	}

	return ActivityResponse{
		ID:              m.ID,
		Name:            m.Name,
		Provider:        m.Provider,
		Address:         m.Address,
		Location:        m.Location,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		HouseholdID:     m.HouseholdID,
		CreatedByUserID: m.CreatedByUserID,
		Kids:            kids,
		Schedule:        schedule,
		CreatedAt:       m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func FromActivityModels(ms []model.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromActivityModel(&ms[i]))
	}
	return out
}
