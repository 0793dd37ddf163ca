package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dananau/gtpyhop-go/internal/config"
)

func TestMiddlewareDisabled(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: ""}

	middleware := NewMiddleware(cfg)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestMiddlewareEnabledNoHeader(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestMiddlewareEnabledInvalidFormat(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestMiddlewareEnabledInvalidToken(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestMiddlewareEnabledValidToken(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)
	tokenString, err := NewTokenValidator(cfg).IssueToken("test-user", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	handlerCalled := false
	var capturedClaims *Claims
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		capturedClaims = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	middleware.Authenticate(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if !handlerCalled {
		t.Error("expected handler to be called")
	}

	if capturedClaims == nil {
		t.Error("expected claims to be set in context")
	} else if capturedClaims.Subject != "test-user" {
		t.Errorf("expected subject 'test-user', got %s", capturedClaims.Subject)
	}
}

func TestOptionalAuthNoHeader(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)

	handlerCalled := false
	var capturedClaims *Claims
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		capturedClaims = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	middleware.OptionalAuth(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if !handlerCalled {
		t.Error("expected handler to be called")
	}

	if capturedClaims != nil {
		t.Error("expected no claims for unauthenticated request")
	}
}

func TestOptionalAuthInvalidFormat(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()

	middleware.OptionalAuth(handler).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestOptionalAuthInvalidToken(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()

	middleware.OptionalAuth(handler).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestOptionalAuthValidToken(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: "test-secret"}

	middleware := NewMiddleware(cfg)
	tokenString, err := NewTokenValidator(cfg).IssueToken("test-user", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	handlerCalled := false
	var capturedClaims *Claims
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		capturedClaims = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	middleware.OptionalAuth(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if !handlerCalled {
		t.Error("expected handler to be called")
	}

	if capturedClaims == nil {
		t.Error("expected claims to be set in context")
	} else if capturedClaims.Subject != "test-user" {
		t.Errorf("expected subject 'test-user', got %s", capturedClaims.Subject)
	}
}

func TestOptionalAuthDisabled(t *testing.T) {
	cfg := &config.AuthConfig{Issuer: "gtpyhop-go", Secret: ""}

	middleware := NewMiddleware(cfg)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	middleware.OptionalAuth(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if !handlerCalled {
		t.Error("expected handler to be called")
	}
}

func TestGetClaimsNoClaims(t *testing.T) {
	ctx := context.Background()
	claims := GetClaims(ctx)

	if claims != nil {
		t.Error("expected nil claims for empty context")
	}
}

func TestGetClaimsWithClaims(t *testing.T) {
	expectedClaims := &Claims{
		Subject:   "test-user",
		Issuer:    "https://example.com",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	ctx := context.WithValue(context.Background(), ClaimsContextKey, expectedClaims)
	claims := GetClaims(ctx)

	if claims == nil {
		t.Fatal("expected non-nil claims")
	}

	if claims.Subject != expectedClaims.Subject {
		t.Errorf("expected subject '%s', got '%s'", expectedClaims.Subject, claims.Subject)
	}
}
