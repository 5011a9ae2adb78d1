package demo

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	activityService "kidride_backend/internals/features/activities/service"
	hhModel "kidride_backend/internals/features/households/model"
	kidModel "kidride_backend/internals/features/kids/model"
	userModel "kidride_backend/internals/features/users/model"
	userService "kidride_backend/internals/features/users/service"
	vehicleModel "kidride_backend/internals/features/vehicles/model"
	helper "kidride_backend/internals/helpers"
)

type demoSeed struct {
	Household struct {
		Name    string  `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
	} `json:"household"`
	User struct {
		GoogleUID string  `json:"google_uid"`
		Email     string  `json:"email"`
		FirstName *string `json:"first_name"`
	} `json:"user"`
	Kids []struct {
		FirstName string  `json:"first_name"`
		Dob       string  `json:"dob"`
		Gender    *string `json:"gender"`
	} `json:"kids"`
	Vehicles []struct {
		Make      *string `json:"make"`
		Model     *string `json:"model"`
		Color     *string `json:"color"`
		SeatCount *int    `json:"seat_count"`
	} `json:"vehicles"`
	Activity struct {
		Name         string   `json:"name"`
		Provider     *string  `json:"provider"`
		Address      *string  `json:"address"`
		ScheduleType string   `json:"schedule_type"`
		StartDate    string   `json:"start_date"`
		EndDate      string   `json:"end_date"`
		Timezone     string   `json:"timezone"`
		Weekdays     []int    `json:"weekdays"`
		StartTime    string   `json:"start_time"`
		EndTime      string   `json:"end_time"`
	} `json:"activity"`
}

// SeedDemoHouseholdFromJSON loads a demo household with a parent, kids, a
// vehicle and one recurring activity. Skipped entirely when the demo parent
// already exists.
func SeedDemoHouseholdFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading demo seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var seed demoSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	var existing userModel.UserModel
	if err := db.Where("google_uid = ?", seed.User.GoogleUID).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Demo user '%s' already seeded, skipping.", seed.User.Email)
		return
	}

	user, err := userService.GetOrCreateUser(db, seed.User.GoogleUID, &seed.User.Email, seed.User.FirstName, nil)
	if err != nil {
		log.Printf("❌ Failed to seed demo user: %v", err)
		return
	}

	household := hhModel.HouseholdModel{
		Name:    seed.Household.Name,
		Address: seed.Household.Address,
		Phone:   seed.Household.Phone,
	}
	if err := db.Create(&household).Error; err != nil {
		log.Printf("❌ Failed to seed demo household: %v", err)
		return
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{"household_id": household.ID, "is_primary": true}).Error; err != nil {
		log.Printf("❌ Failed to attach demo user to household: %v", err)
		return
	}

	kidIDs := make([]string, 0, len(seed.Kids))
	for _, k := range seed.Kids {
		kid := kidModel.KidModel{
			HouseholdID:  &household.ID,
			ParentUserID: &user.ID,
			FirstName:    k.FirstName,
			Gender:       k.Gender,
		}
		if dob, err := helper.ParseISODate(k.Dob, "dob"); err == nil {
			kid.Dob = &dob
		}
		if err := db.Create(&kid).Error; err != nil {
			log.Printf("❌ Failed to seed kid '%s': %v", k.FirstName, err)
			continue
		}
		log.Printf("✅ Seeded kid '%s'", k.FirstName)
		kidIDs = append(kidIDs, kid.ID.String())
	}

	for _, v := range seed.Vehicles {
		vehicle := vehicleModel.VehicleModel{
			HouseholdID: &household.ID,
			Make:        v.Make,
			Model:       v.Model,
			Color:       v.Color,
			SeatCount:   v.SeatCount,
		}
		if err := db.Create(&vehicle).Error; err != nil {
			log.Printf("❌ Failed to seed vehicle: %v", err)
		}
	}

	if seed.Activity.Name != "" {
		_, ferr := activityService.CreateActivity(db, household.ID, user.ID, activityService.ActivityInput{
			Name:     seed.Activity.Name,
			Provider: seed.Activity.Provider,
			Address:  seed.Activity.Address,
			KidIDs:   kidIDs,
			Schedule: activityService.ScheduleInput{
				ScheduleType: seed.Activity.ScheduleType,
				StartDate:    seed.Activity.StartDate,
				EndDate:      seed.Activity.EndDate,
				Timezone:     seed.Activity.Timezone,
				Weekdays:     seed.Activity.Weekdays,
				StartTime:    seed.Activity.StartTime,
				EndTime:      seed.Activity.EndTime,
			},
		})
		if ferr != nil {
			log.Printf("❌ Failed to seed activity '%s': %s", seed.Activity.Name, ferr.Message)
		} else {
			log.Printf("✅ Seeded activity '%s'", seed.Activity.Name)
		}
	}

	log.Printf("✅ Demo household '%s' seeded", seed.Household.Name)
}
