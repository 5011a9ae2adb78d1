package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	userModel "kidride_backend/internals/features/users/model"
)

// GetOrCreateUser upserts a user keyed by the external identity id.
// Idempotent: a concurrent create losing the unique race falls back to refetch.
func GetOrCreateUser(db *gorm.DB, googleUID string, email, firstName, avatarURL *string) (*userModel.UserModel, error) {
	googleUID = strings.TrimSpace(googleUID)
	if googleUID == "" {
		return nil, errors.New("google uid is required")
	}

	var user userModel.UserModel
	err := db.Where("google_uid = ?", googleUID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = userModel.UserModel{
		GoogleUID: googleUID,
		Email:     email,
		FirstName: firstName,
		AvatarURL: avatarURL,
	}
	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			// lost the race; the row exists now
			if er := db.Where("google_uid = ?", googleUID).First(&user).Error; er == nil {
				return &user, nil
			}
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID loads a user by primary key.
func FindUserByID(db *gorm.DB, id any) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
