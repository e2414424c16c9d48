// Package headers derives the HTTP header set for authenticated
// requests from the current session state.
package headers

import "net/http"

// Header names carried on requests to the backend.
const (
	// PhoneHeader identifies the requesting user by phone number.
	// The value is the raw identity, not URL-encoded.
	PhoneHeader = "X-Phone-Number"
)

// Build returns the header set for the given identity and token.
// Content-Type is always present; the phone and authorization entries
// are added only when their values are non-empty. With no session at
// all the result is valid but carries Content-Type only, and the
// caller decides whether to proceed.
func Build(phoneNumber, token string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if phoneNumber != "" {
		h.Set(PhoneHeader, phoneNumber)
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
