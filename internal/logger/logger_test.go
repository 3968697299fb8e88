package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	if l == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable
	l.Info().Str("k", "v").Msg("discarded")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("GetChildLogger returned nil")
	}
	if child == parent {
		t.Error("child logger must be a distinct instance")
	}
}

func TestFromContext_NeverNil(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext returned nil for empty context")
	}
}

func TestFromRequest_UsesAttachedLogger(t *testing.T) {
	l := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	got := FromRequest(r)
	if got == nil {
		t.Fatal("FromRequest returned nil")
	}
}
