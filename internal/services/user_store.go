package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"synergy_app_echo/internal/models"
)

// ErrUserNotFound is returned when no user matches a lookup
var ErrUserNotFound = errors.New("user not found")

// UserStore reads and writes the users shown in the shell
type UserStore interface {
	FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, uid, name, title, avatarURL string) error
}

// GormUserStore is the postgres-backed UserStore
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore creates a GormUserStore
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// FindByFirebaseUID loads the user linked to a Firebase account
func (s *GormUserStore) FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", uid, err)
	}
	return &user, nil
}

// Upsert records a login. The row is matched by Firebase UID, then by email
// so an account re-created in Firebase takes over its old row. Empty claims
// never overwrite stored values, and the avatar is only filled while unset so
// a user's own choice survives later logins.
func (s *GormUserStore) Upsert(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Unscoped().Where("firebase_uid = ?", user.FirebaseUID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) && user.Email != "" {
			err = tx.Unscoped().Where("email = ?", user.Email).First(&existing).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(user).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"firebase_uid": user.FirebaseUID,
			"deleted_at":   nil,
		}
		if user.Email != "" {
			updates["email"] = user.Email
		}
		if user.Name != "" {
			updates["name"] = user.Name
		}
		if user.AvatarURL != "" && existing.AvatarURL == "" {
			updates["avatar_url"] = user.AvatarURL
		}
		return tx.Unscoped().Model(&existing).Updates(updates).Error
	})
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", user.FirebaseUID, err)
	}
	return nil
}

// UpdateProfile stores the fields a user edits on their profile page
func (s *GormUserStore) UpdateProfile(ctx context.Context, uid, name, title, avatarURL string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("firebase_uid = ?", uid).
		Updates(map[string]interface{}{
			"name":       name,
			"title":      title,
			"avatar_url": avatarURL,
		})
	if result.Error != nil {
		return fmt.Errorf("update profile %s: %w", uid, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
