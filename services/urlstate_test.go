package services

import (
	"testing"
)

func TestURLStateUpdate(t *testing.T) {
	state, err := NewURLState("_page=2&email=gmail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state.Update(map[string]string{
		"country": "Slovenia",
		"email":   "",
		"_page":   "1",
	})
	if got := state.Get("country"); got != "Slovenia" {
		t.Errorf("country = %q", got)
	}
	if got := state.Get("email"); got != "" {
		t.Errorf("email should have been removed, got %q", got)
	}
	if got := state.Get("_page"); got != "1" {
		t.Errorf("_page = %q", got)
	}
}

func TestURLStateClearFilters(t *testing.T) {
	state, err := NewURLState("_page=3&_sort_id=familyName&email=gmail&country=si")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state.ClearFilters()
	if got := state.Encode(); got != "_page=3&_sort_id=familyName" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestURLStateEncodeDeterministic(t *testing.T) {
	a, _ := NewURLState("b=2&a=1")
	b, _ := NewURLState("a=1&b=2")
	if a.Encode() != b.Encode() {
		t.Errorf("same state encoded differently: %q vs %q", a.Encode(), b.Encode())
	}
	if a.Encode() != "a=1&b=2" {
		t.Errorf("Encode() = %q, want sorted params", a.Encode())
	}
}

func TestURLStateBadQuery(t *testing.T) {
	if _, err := NewURLState("a=%zz"); err == nil {
		t.Fatal("expected error for malformed query")
	}
}
