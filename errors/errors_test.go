package errors

import (
	"fmt"
	"testing"
)

func TestDocnavError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeSetNotFound, "set not found")
	if err.Code != ErrCodeSetNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeSetNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeSourceInvalid, "bad source")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeSourceInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeSetNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test Is through fmt.Errorf wrapping
	outer := fmt.Errorf("loading: %w", wrapped)
	if !Is(outer, ErrCodeSourceInvalid) {
		t.Error("Is should unwrap standard wrappers")
	}
	if Is(cause, "") {
		t.Error("Is should never match the empty code")
	}

	// Test WithDetail
	detailed := err.WithDetail("set", "5.1").WithDetail("count", 54)
	if detailed.Details["set"] != "5.1" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := SetNotFound("zh", []string{"5.1", "5.3"})
	if err.Code != ErrCodeSetNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeSetNotFound, err.Code)
	}
	if err.Details["available"] != "5.1, 5.3" {
		t.Errorf("unexpected available detail: %v", err.Details["available"])
	}

	err = InvalidVersion("5/5", "contains '/'")
	if err.Code != ErrCodeInvalidVersion {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidVersion, err.Code)
	}
	if err.Details["version"] != "5/5" {
		t.Error("InvalidVersion should include version detail")
	}

	missing := SourceNotFound("nav.yml", fmt.Errorf("no such file"))
	if GetCode(missing) != ErrCodeSourceNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeSourceNotFound, GetCode(missing))
	}
}

func TestAs(t *testing.T) {
	inner := ConfigInvalid("bad yaml")
	outer := fmt.Errorf("startup: %w", inner)

	got, ok := As(outer)
	if !ok {
		t.Fatal("As should find the wrapped DocnavError")
	}
	if got != inner {
		t.Error("As should return the wrapped error itself")
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As should report false for plain errors")
	}
}
