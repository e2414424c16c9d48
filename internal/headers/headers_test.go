package headers

import "testing"

func TestBuild_FullSession(t *testing.T) {
	h := Build("15551234567", "tok123")

	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", got)
	}
	if got := h.Get(PhoneHeader); got != "15551234567" {
		t.Errorf("%s = %q; want 15551234567", PhoneHeader, got)
	}
	if got := h.Get("Authorization"); got != "Bearer tok123" {
		t.Errorf("Authorization = %q; want Bearer tok123", got)
	}
}

func TestBuild_NoSession(t *testing.T) {
	h := Build("", "")

	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", got)
	}
	if len(h) != 1 {
		t.Errorf("header set has %d entries; want Content-Type only: %v", len(h), h)
	}
}

func TestBuild_TokenOnly(t *testing.T) {
	h := Build("", "tok123")

	if h.Get(PhoneHeader) != "" {
		t.Error("phone header present without identity")
	}
	if got := h.Get("Authorization"); got != "Bearer tok123" {
		t.Errorf("Authorization = %q; want Bearer tok123", got)
	}
}
