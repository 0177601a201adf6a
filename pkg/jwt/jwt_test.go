package jwt

import (
	"testing"
	"time"

	"mindsync-server/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, 3, "patient@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id mismatch: %s != %s", claims.UserID, userID)
	}
	if claims.RoleID != 3 {
		t.Errorf("expected role id 3, got %d", claims.RoleID)
	}
	if claims.Email != "patient@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token type, got %q", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch: %q != %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), 2, "doctor@example.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token type, got %q", claims.TokenType)
	}
	if claims.RoleID != 2 {
		t.Errorf("expected role id 2, got %d", claims.RoleID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(uuid.New(), 3, "patient@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}
