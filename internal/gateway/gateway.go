// Package gateway issues the authenticated requests for health logs
// and chat messages, substituting deterministic mock data when the
// session or the remote service is unavailable.
//
// The three operations deliberately fail differently: GetHealthData
// falls back to mock data and always reports success, GetMessages and
// TestAPIConnection report failures through their result envelopes,
// and neither ever returns a Go error. Callers depend on these exact
// shapes.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/star88etti/health-buddie-log/internal/config"
	"github.com/star88etti/health-buddie-log/internal/headers"
	"github.com/star88etti/health-buddie-log/internal/mockdata"
	"github.com/star88etti/health-buddie-log/internal/models"
	"github.com/star88etti/health-buddie-log/internal/session"
)

// DefaultDays is the health-data window requested when the caller
// passes no explicit day count.
const DefaultDays = 7

// HealthDataResult is the envelope returned by GetHealthData.
// Success is always true; failures are absorbed by the mock fallback.
type HealthDataResult struct {
	Success bool              `json:"success"`
	Data    models.HealthData `json:"data"`
}

// MessagesResult is the envelope returned by GetMessages.
type MessagesResult struct {
	Success bool             `json:"success"`
	Data    []models.Message `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// ConnectionResult is the envelope returned by TestAPIConnection.
type ConnectionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Gateway performs the backend requests for one session store.
type Gateway struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	log     *zap.Logger
	now     func() time.Time
}

// New constructs a Gateway from cfg and store, with optional
// functional arguments.
func New(cfg config.Config, store *session.Store, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: cfg.APIURL,
		http:    &http.Client{},
		store:   store,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GetHealthData fetches the exercise and food logs for the last days
// days. With no identity present, or on any request failure, it
// returns the deterministic mock logs with Success still true; the
// caller never sees an error. days <= 0 means DefaultDays.
func (g *Gateway) GetHealthData(ctx context.Context, days int) HealthDataResult {
	if days <= 0 {
		days = DefaultDays
	}

	phone := g.store.PhoneNumber()
	if phone == "" {
		g.log.Info("no identity present, serving mock health data")
		return HealthDataResult{Success: true, Data: mockdata.HealthData(g.now())}
	}

	endpoint := fmt.Sprintf("%s/health-data?days=%d&phoneNumber=%s",
		g.baseURL, days, url.QueryEscape(phone))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		g.log.Warn("building health-data request failed", zap.Error(err))
		return HealthDataResult{Success: true, Data: mockdata.HealthData(g.now())}
	}
	req.Header = headers.Build(phone, g.store.Token())

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn("health-data request failed, serving mock data", zap.Error(err))
		return HealthDataResult{Success: true, Data: mockdata.HealthData(g.now())}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		g.log.Warn("health-data request rejected, serving mock data",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return HealthDataResult{Success: true, Data: mockdata.HealthData(g.now())}
	}

	var data models.HealthData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		g.log.Warn("health-data response undecodable, serving mock data", zap.Error(err))
		return HealthDataResult{Success: true, Data: mockdata.HealthData(g.now())}
	}
	return HealthDataResult{Success: true, Data: data}
}

// GetMessages fetches the user's chat messages. Every failure mode is
// reported through the envelope; there is no mock fallback here. The
// identity comes from the plain phone-number key rather than the
// profile.
func (g *Gateway) GetMessages(ctx context.Context) MessagesResult {
	phone := g.store.StoredPhoneNumber()
	if phone == "" {
		return MessagesResult{Success: false, Error: "No phone number found"}
	}

	endpoint := fmt.Sprintf("%s/api/messages?phoneNumber=%s",
		g.baseURL, url.QueryEscape(phone))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return MessagesResult{Success: false, Error: err.Error()}
	}
	// Content-type plus conditional bearer token only; the messages
	// endpoint does not take the phone header.
	req.Header.Set("Content-Type", "application/json")
	if token := g.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn("messages request failed", zap.Error(err))
		return MessagesResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			msg = body.Error
		}
		g.log.Warn("messages request rejected",
			zap.Int("status", resp.StatusCode), zap.String("error", msg))
		return MessagesResult{Success: false, Error: msg}
	}

	var body struct {
		Messages []models.Message `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.log.Warn("messages response undecodable", zap.Error(err))
		return MessagesResult{Success: false, Error: err.Error()}
	}
	return MessagesResult{Success: true, Data: body.Messages}
}

// TestAPIConnection probes the backend. It builds an error for every
// failure mode and converts it to the envelope before returning.
func (g *Gateway) TestAPIConnection(ctx context.Context) ConnectionResult {
	if err := g.probe(ctx); err != nil {
		g.log.Warn("connectivity probe failed", zap.Error(err))
		return ConnectionResult{Success: false, Error: err.Error()}
	}
	return ConnectionResult{Success: true, Message: "API is reachable"}
}

// probe performs the connectivity request, mapping each failure to an
// error carrying the most specific message available.
func (g *Gateway) probe(ctx context.Context) error {
	phone := g.store.PhoneNumber()
	if phone == "" {
		return fmt.Errorf("no phone number available, please log in again")
	}

	endpoint := fmt.Sprintf("%s/messages?phoneNumber=%s",
		g.baseURL, url.QueryEscape(phone))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header = headers.Build(phone, g.store.Token())

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			return fmt.Errorf("%s", body.Error)
		}
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	return nil
}
