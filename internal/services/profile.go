package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"synergy_app_echo/internal/models"
)

// Identity is what the auth middleware knows about the caller
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// Account is the user rendered in the shell's account menus
type Account struct {
	UID       string
	Name      string
	Email     string
	AvatarURL string
	Title     string
	Online    bool
}

// Initials returns up to two uppercase initials for the avatar fallback
func (a Account) Initials() string {
	source := a.Name
	if source == "" {
		source = a.Email
	}
	var b strings.Builder
	for _, part := range strings.FieldsFunc(source, func(r rune) bool {
		return r == ' ' || r == '.' || r == '@' || r == '_' || r == '-'
	}) {
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// ProfileService resolves the account shown in the shell
type ProfileService struct {
	users UserStore
	cache *RedisCache
	ttl   time.Duration
	log   *zap.Logger
}

// NewProfileService creates a ProfileService. users and cache may be nil, in
// which case accounts are built from token claims only.
func NewProfileService(users UserStore, cache *RedisCache, ttl time.Duration, log *zap.Logger) *ProfileService {
	return &ProfileService{users: users, cache: cache, ttl: ttl, log: log}
}

func profileCacheKey(uid string) string {
	return "profile:" + uid
}

// Account returns the stored profile for id, falling back to its claims
func (s *ProfileService) Account(ctx context.Context, id Identity) Account {
	account := Account{
		UID:       id.UID,
		Name:      id.Name,
		Email:     id.Email,
		AvatarURL: id.Picture,
		Online:    id.UID != "",
	}
	if account.Name == "" && account.Email != "" {
		account.Name, _, _ = strings.Cut(account.Email, "@")
	}

	if s.users == nil || id.UID == "" {
		return account
	}

	user, err := GetOrSet(s.cache, ctx, profileCacheKey(id.UID), s.ttl, func() (models.User, error) {
		u, err := s.users.FindByFirebaseUID(ctx, id.UID)
		if err != nil {
			return models.User{}, err
		}
		return *u, nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.log.Warn("profile lookup failed", zap.String("uid", id.UID), zap.Error(err))
		}
		return account
	}

	if user.Name != "" {
		account.Name = user.Name
	}
	if user.Email != "" {
		account.Email = user.Email
	}
	if user.AvatarURL != "" {
		account.AvatarURL = user.AvatarURL
	}
	account.Title = user.Title
	return account
}

// Sync records the identity after a successful login and drops any cached
// profile so the next render sees fresh data.
func (s *ProfileService) Sync(ctx context.Context, id Identity) error {
	if s.users == nil || id.UID == "" {
		return nil
	}

	user := &models.User{
		FirebaseUID: id.UID,
		Name:        id.Name,
		Email:       id.Email,
		AvatarURL:   id.Picture,
		UserType:    models.UserTypeMember,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return err
	}

	s.invalidate(ctx, id.UID)
	return nil
}

// Editable reports whether profiles can be changed, which needs a user store
func (s *ProfileService) Editable() bool {
	return s.users != nil
}

// Update validates and stores the profile fields the user can edit
func (s *ProfileService) Update(ctx context.Context, id Identity, update ProfileUpdate) error {
	if s.users == nil {
		return ErrProfileReadOnly
	}
	if id.UID == "" {
		return ErrUserNotFound
	}

	update = update.normalized()
	if err := update.Validate(); err != nil {
		return err
	}

	if err := s.users.UpdateProfile(ctx, id.UID, update.Name, update.Title, update.AvatarURL); err != nil {
		return err
	}

	s.invalidate(ctx, id.UID)
	return nil
}

func (s *ProfileService) invalidate(ctx context.Context, uid string) {
	if err := s.cache.Delete(ctx, profileCacheKey(uid)); err != nil {
		s.log.Warn("profile cache invalidation failed", zap.String("uid", uid), zap.Error(err))
	}
}
