// Package models defines the core data structures for sessions,
// health logs, and chat messages.
package models

import "time"

// UserProfile describes the locally stored account of a logged-in user.
type UserProfile struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// PhoneNumber is the E.164-like phone number used as login identity.
	PhoneNumber string `json:"phoneNumber"`
	// CreatedAt is when the session was first created.
	CreatedAt time.Time `json:"createdAt"`
	// LastActive is when the user last logged in.
	LastActive time.Time `json:"lastActive"`
	// Verified indicates the identity was accepted at login.
	Verified bool `json:"verified"`
}

// Session is the locally persisted identity/token pair representing a
// logged-in user. A session always carries both identity and token.
type Session struct {
	// PhoneNumber is the identity used as a request-routing key.
	PhoneNumber string `json:"phoneNumber"`
	// Token is the opaque bearer token attached to requests.
	Token string `json:"token"`
	// Profile holds the stored user profile.
	Profile *UserProfile `json:"profile,omitempty"`
}

// ExerciseLog is one recorded exercise entry.
type ExerciseLog struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`
	// Date is when the exercise took place.
	Date time.Time `json:"date"`
	// Duration is the exercise length in minutes.
	Duration int `json:"duration"`
	// Type is the free-text activity name ("running", "yoga", ...).
	Type string `json:"type"`
	// Distance is a free-text distance; may be empty.
	Distance string `json:"distance"`
}

// FoodLog is one recorded meal entry.
type FoodLog struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`
	// Date is when the meal was eaten.
	Date time.Time `json:"date"`
	// FoodItems is a free-text description of what was eaten.
	FoodItems string `json:"foodItems"`
}

// HealthData bundles the exercise and food logs returned for a user,
// most recent first.
type HealthData struct {
	ExerciseLogs []ExerciseLog `json:"exerciseLogs"`
	FoodLogs     []FoodLog     `json:"foodLogs"`
}

// MessageDirection identifies who sent a chat message.
type MessageDirection string

const (
	// DirectionIncoming marks a message sent by the user.
	DirectionIncoming MessageDirection = "incoming"
	// DirectionOutgoing marks a message sent by the service.
	DirectionOutgoing MessageDirection = "outgoing"
)

// MessageCategory is the classification a backend processor assigns
// to a message. The set is open-ended.
type MessageCategory string

const (
	// CategoryExercise marks a message recorded as an exercise log.
	CategoryExercise MessageCategory = "exercise"
	// CategoryFood marks a message recorded as a food log.
	CategoryFood MessageCategory = "food"
)

// Message is one chat message exchanged with the service.
// Category and ProcessedData are only populated once a backend
// classifier has processed the message.
type Message struct {
	// ID is the unique identifier for the message.
	ID string `json:"id"`
	// Content is the message text.
	Content string `json:"content"`
	// Timestamp is when the message was sent.
	Timestamp time.Time `json:"timestamp"`
	// Direction is incoming or outgoing.
	Direction MessageDirection `json:"direction"`
	// Channel names the transport the message arrived on ("sms", "whatsapp", ...).
	Channel string `json:"channel"`
	// Processed indicates a backend classifier has handled the message.
	Processed bool `json:"processed"`
	// Category is the assigned classification, empty while unclassified.
	Category MessageCategory `json:"category,omitempty"`
	// ProcessedData holds classifier output keyed by field name.
	ProcessedData map[string]any `json:"processed_data,omitempty"`
}
