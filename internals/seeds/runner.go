package seeds

import (
	"gorm.io/gorm"

	demo "kidride_backend/internals/seeds/demo"
)

// RunAllSeeds loads development fixtures. Gated behind SEED_DEV_DATA.
func RunAllSeeds(db *gorm.DB) {
	demo.SeedDemoHouseholdFromJSON(db, "internals/seeds/demo/data_demo_household.json")
}
