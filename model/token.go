package model

import (
	"fmt"
	"time"

	"github.com/Alphiii2005/alphabot-live/platform"
)

// RevokedToken records an access token invalidated by logout. Rows become
// dead weight once the token would have expired anyway; the scheduled purge
// clears them out.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Token     string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func RevokeToken(token string, expiresAt time.Time) error {
	db := platform.DB
	if err := db.Create(&RevokedToken{Token: token, ExpiresAt: expiresAt}).Error; err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func IsTokenRevoked(token string) bool {
	var count int64
	db := platform.DB
	if err := db.Model(&RevokedToken{}).Where("token = ?", token).Count(&count).Error; err != nil {
		platform.Logger.Warnf("Failed to check token revocation: %v", err)
		return false
	}
	return count > 0
}

// PurgeExpiredTokens drops revocation rows for tokens that are past their
// own expiry and so can no longer be replayed.
func PurgeExpiredTokens(now time.Time) (int64, error) {
	db := platform.DB
	result := db.Where("expires_at < ?", now).Delete(&RevokedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
