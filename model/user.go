package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/Alphiii2005/alphabot-live/platform"
	"gorm.io/gorm"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(255);not null;unique" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile  *Profile  `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Messages []Message `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Profile holds the optional account details shown on the profile page.
// Avatar is a URL, uploads are handled elsewhere.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Avatar    string    `gorm:"type:varchar(512)" json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AfterCreate gives every new user an empty profile row.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if u.Profile != nil {
		return nil
	}
	return tx.Create(&Profile{UserID: u.ID}).Error
}

func CreateUser(user *User) error {
	db := platform.DB
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func GetUserByUsername(username string) (*User, error) {
	var user User
	db := platform.DB
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return &user, nil
}

func GetUserByID(id uint) (*User, error) {
	var user User
	db := platform.DB
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return &user, nil
}

func UserExists(username, email string) bool {
	var count int64
	db := platform.DB
	if err := db.Model(&User{}).Where("username = ? OR email = ?", username, email).Count(&count).Error; err != nil {
		platform.Logger.Warnf("Failed to check user existence: %v", err)
		return false
	}
	return count > 0
}

func GetProfile(userID uint) (*Profile, error) {
	var profile Profile
	db := platform.DB
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return &profile, nil
}

func UpdateProfile(userID uint, fields map[string]interface{}) error {
	db := platform.DB
	if err := db.Model(&Profile{}).Where("user_id = ?", userID).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
