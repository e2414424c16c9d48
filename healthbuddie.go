// Package healthbuddie is the data-access layer for the health-buddie
// chat application. It manages the locally persisted session and
// issues the authenticated requests for health logs and chat
// messages, falling back to deterministic sample data when the
// session or the remote service is unavailable.
//
// Typical use:
//
//	client, err := healthbuddie.Open()
//	if err != nil { ... }
//	if _, err := client.Session.Login("15551234567"); err != nil { ... }
//	res := client.Gateway.GetHealthData(ctx, 7)
package healthbuddie

import (
	"go.uber.org/zap"

	"github.com/star88etti/health-buddie-log/internal/config"
	"github.com/star88etti/health-buddie-log/internal/gateway"
	"github.com/star88etti/health-buddie-log/internal/models"
	"github.com/star88etti/health-buddie-log/internal/session"
)

// Re-exported types forming the public API.
type (
	// Config holds the environment-driven settings.
	Config = config.Config
	// Gateway performs the backend requests.
	Gateway = gateway.Gateway
	// Option configures the Gateway.
	Option = gateway.Option
	// SessionStore manages the persisted login session.
	SessionStore = session.Store
	// KV is the session store's storage backend contract.
	KV = session.KV

	// UserProfile is the stored account of a logged-in user.
	UserProfile = models.UserProfile
	// HealthData bundles exercise and food logs.
	HealthData = models.HealthData
	// ExerciseLog is one recorded exercise entry.
	ExerciseLog = models.ExerciseLog
	// FoodLog is one recorded meal entry.
	FoodLog = models.FoodLog
	// Message is one chat message.
	Message = models.Message

	// LoginResult reports a successful login.
	LoginResult = session.LoginResult
	// HealthDataResult is GetHealthData's envelope.
	HealthDataResult = gateway.HealthDataResult
	// MessagesResult is GetMessages's envelope.
	MessagesResult = gateway.MessagesResult
	// ConnectionResult is TestAPIConnection's envelope.
	ConnectionResult = gateway.ConnectionResult
)

// Gateway options.
var (
	WithHTTPClient = gateway.WithHTTPClient
	WithLogger     = gateway.WithLogger
	WithClock      = gateway.WithClock
)

// Session-store backends.
var (
	NewMemStore  = session.NewMemStore
	NewFileStore = session.NewFileStore
)

// Client bundles the session store and the request gateway over one
// storage backend.
type Client struct {
	Session *SessionStore
	Gateway *Gateway
}

// Open builds a Client from the environment configuration, persisting
// the session in the configured file store.
func Open(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	kv, err := session.NewFileStore(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	return NewClient(cfg, kv, nil, opts...), nil
}

// NewClient builds a Client over an explicit configuration and storage
// backend. A nil logger disables diagnostics.
func NewClient(cfg Config, kv KV, log *zap.Logger, opts ...Option) *Client {
	store := session.New(kv, log)
	if log != nil {
		opts = append([]Option{gateway.WithLogger(log)}, opts...)
	}
	return &Client{
		Session: store,
		Gateway: gateway.New(cfg, store, opts...),
	}
}
