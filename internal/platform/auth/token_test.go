package auth

import (
	"testing"
	"time"

	"github.com/bedboard/bedboard/internal/platform/apperr"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)

	token, err := issuer.Issue(42, RoleStaff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Role != RoleStaff {
		t.Errorf("expected role STAFF, got %s", claims.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer([]byte("secret-a"), time.Hour)
	other := NewIssuer([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue(1, RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	_, err = other.Verify(token)
	if err == nil {
		t.Fatal("expected error for forged signature")
	}
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("expected unauthorized kind, got %v", apperr.KindOf(err))
	}
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), -time.Minute)

	token, err := issuer.Issue(1, RoleStaff)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
