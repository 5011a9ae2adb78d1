package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	kidModel "kidride_backend/internals/features/kids/model"
)

// ListKidsForUser lists kids in the household when a household scope exists,
// otherwise kids parented by the user.
func ListKidsForUser(db *gorm.DB, householdID, parentUserID uuid.UUID) ([]kidModel.KidModel, error) {
	q := db.Model(&kidModel.KidModel{})
	switch {
	case householdID != uuid.Nil:
		q = q.Where("household_id = ?", householdID)
	case parentUserID != uuid.Nil:
		q = q.Where("parent_user_id = ?", parentUserID)
	}

	var kids []kidModel.KidModel
	if err := q.Order("created_at DESC").Find(&kids).Error; err != nil {
		return nil, err
	}
	return kids, nil
}

// FindKidsByIDs loads kids matching the given ids. Missing ids are NOT an
// error here; the caller compares lengths.
func FindKidsByIDs(db *gorm.DB, ids []uuid.UUID) ([]kidModel.KidModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var kids []kidModel.KidModel
	if err := db.Where("id IN ?", ids).Find(&kids).Error; err != nil {
		return nil, err
	}
	return kids, nil
}
