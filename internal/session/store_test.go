package session

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/star88etti/health-buddie-log/internal/models"
)

// failingKV rejects writes to a chosen key.
type failingKV struct {
	*MemStore
	failKey string
}

func (f *failingKV) Set(key, value string) error {
	if key == f.failKey {
		return errors.New("storage write failed")
	}
	return f.MemStore.Set(key, value)
}

func TestLogin_Success(t *testing.T) {
	s := New(NewMemStore(), nil)
	fixed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	res, err := s.Login("15551234567")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !res.Success {
		t.Error("Login result Success = false; want true")
	}
	if res.User == nil || res.User.PhoneNumber != "15551234567" {
		t.Fatalf("Login profile = %+v; want phoneNumber 15551234567", res.User)
	}
	if !res.User.Verified {
		t.Error("profile Verified = false; want true")
	}
	if !res.User.CreatedAt.Equal(fixed) || !res.User.LastActive.Equal(fixed) {
		t.Errorf("profile timestamps = %v/%v; want %v", res.User.CreatedAt, res.User.LastActive, fixed)
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated = false after Login; want true")
	}
	if s.Token() == "" {
		t.Error("Token empty after Login")
	}
}

func TestLogin_StorageFailure(t *testing.T) {
	kv := &failingKV{MemStore: NewMemStore(), failKey: keyToken}
	s := New(kv, nil)

	if _, err := s.Login("15551234567"); err == nil {
		t.Fatal("Login did not surface storage write failure")
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated = true after failed Login")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	s := New(NewMemStore(), nil)

	// Logout with no session is a no-op.
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout on empty store returned error: %v", err)
	}

	if _, err := s.Login("15551234567"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated = true after Logout; want false")
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
}

func TestPhoneNumber_MalformedProfile(t *testing.T) {
	kv := NewMemStore()
	_ = kv.Set(keyToken, "tok123")
	_ = kv.Set(keyUser, "{not json")
	s := New(kv, nil)

	if got := s.PhoneNumber(); got != "" {
		t.Errorf("PhoneNumber = %q with malformed profile; want empty", got)
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated = true with malformed profile and no phone key")
	}

	// The plain phone key still rescues the identity.
	_ = kv.Set(keyPhone, "15551234567")
	if got := s.PhoneNumber(); got != "15551234567" {
		t.Errorf("PhoneNumber = %q; want fallback to plain key", got)
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated = false with token and plain phone key")
	}
}

func TestStoredPhoneNumber_IgnoresProfile(t *testing.T) {
	kv := NewMemStore()
	raw, _ := json.Marshal(&models.UserProfile{PhoneNumber: "15550000001"})
	_ = kv.Set(keyUser, string(raw))
	s := New(kv, nil)

	if got := s.StoredPhoneNumber(); got != "" {
		t.Errorf("StoredPhoneNumber = %q; want empty when plain key absent", got)
	}
	_ = kv.Set(keyPhone, "15550000002")
	if got := s.StoredPhoneNumber(); got != "15550000002" {
		t.Errorf("StoredPhoneNumber = %q; want 15550000002", got)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/storage.json"

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	s := New(fs, nil)
	if _, err := s.Login("15551234567"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	// A second store over the same file sees the session.
	fs2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	s2 := New(fs2, nil)
	if !s2.IsAuthenticated() {
		t.Error("IsAuthenticated = false after reopen; want true")
	}
	if got := s2.PhoneNumber(); got != "15551234567" {
		t.Errorf("PhoneNumber after reopen = %q; want 15551234567", got)
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	fs, err := NewFileStore(t.TempDir() + "/absent.json")
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if _, ok := fs.Get(keyToken); ok {
		t.Error("empty store reported a token")
	}
}
