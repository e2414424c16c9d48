// Package session manages the locally persisted login session:
// the phone-number identity, the opaque token, and the user profile.
// Login fabricates the session locally; there is no server round-trip.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/star88etti/health-buddie-log/internal/models"
)

// Storage keys. These are part of the persistence contract: a store
// written by one process must be readable by the next.
const (
	keyToken = "token"
	keyUser  = "user"
	keyPhone = "phoneNumber"
)

// LoginResult reports the outcome of a successful login.
type LoginResult struct {
	Success bool                `json:"success"`
	User    *models.UserProfile `json:"user"`
}

// Store reads and writes the session through an injectable KV backend.
// No other component touches the backend directly.
type Store struct {
	kv  KV
	log *zap.Logger
	now func() time.Time
}

// New constructs a Store over kv. A nil logger disables diagnostics.
func New(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log, now: time.Now}
}

// Login creates and persists a new session for phoneNumber. The profile
// ID is derived from the current time and the token is a freshly
// generated opaque value; no credentials are validated. Storage write
// failures are returned to the caller.
func (s *Store) Login(phoneNumber string) (LoginResult, error) {
	now := s.now()
	profile := &models.UserProfile{
		ID:          fmt.Sprintf("user-%d", now.UnixMilli()),
		PhoneNumber: phoneNumber,
		CreatedAt:   now,
		LastActive:  now,
		Verified:    true,
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return LoginResult{}, fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Set(keyToken, uuid.NewString()); err != nil {
		return LoginResult{}, fmt.Errorf("store token: %w", err)
	}
	if err := s.kv.Set(keyUser, string(raw)); err != nil {
		return LoginResult{}, fmt.Errorf("store profile: %w", err)
	}
	if err := s.kv.Set(keyPhone, phoneNumber); err != nil {
		return LoginResult{}, fmt.Errorf("store phone number: %w", err)
	}

	s.log.Info("session created", zap.String("phoneNumber", phoneNumber))
	return LoginResult{Success: true, User: profile}, nil
}

// Logout removes the token, profile, and phone number. It is
// idempotent: logging out with no session present is a no-op.
func (s *Store) Logout() error {
	for _, key := range []string{keyToken, keyUser, keyPhone} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

// IsAuthenticated reports whether both a token and a usable identity
// are present. It performs no network call and has no side effects.
func (s *Store) IsAuthenticated() bool {
	_, hasToken := s.kv.Get(keyToken)
	return hasToken && s.PhoneNumber() != ""
}

// Token returns the stored token, or "" when logged out.
func (s *Store) Token() string {
	v, _ := s.kv.Get(keyToken)
	return v
}

// PhoneNumber returns the current identity. It prefers the stored
// profile; malformed profile JSON is logged and skipped rather than
// surfaced, falling back to the plain phone-number key.
func (s *Store) PhoneNumber() string {
	if raw, ok := s.kv.Get(keyUser); ok {
		var profile models.UserProfile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			s.log.Warn("stored profile is not valid JSON", zap.Error(err))
		} else if profile.PhoneNumber != "" {
			return profile.PhoneNumber
		}
	}
	v, _ := s.kv.Get(keyPhone)
	return v
}

// StoredPhoneNumber returns the plain phone-number key without
// consulting the profile. The messages path reads this key directly.
func (s *Store) StoredPhoneNumber() string {
	v, _ := s.kv.Get(keyPhone)
	return v
}

// Profile returns the stored profile, or nil when absent or malformed.
func (s *Store) Profile() *models.UserProfile {
	raw, ok := s.kv.Get(keyUser)
	if !ok {
		return nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.log.Warn("stored profile is not valid JSON", zap.Error(err))
		return nil
	}
	return &profile
}
