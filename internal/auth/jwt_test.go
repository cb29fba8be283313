package auth

import (
	"testing"
	"time"
)

func TestMintAndParse(t *testing.T) {
	pair, err := MintTokens("u1", "cook@example.com", "secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token in pair")
	}

	claims, err := ParseClaims(pair.AccessToken, "secret")
	if err != nil {
		t.Fatalf("ParseClaims() error = %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "cook@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseClaims_WrongSecret(t *testing.T) {
	pair, err := MintTokens("u1", "cook@example.com", "secret", time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}

	if _, err := ParseClaims(pair.AccessToken, "other"); err == nil {
		t.Error("expected error for wrong signing secret")
	}
}

func TestParseClaims_Expired(t *testing.T) {
	pair, err := MintTokens("u1", "cook@example.com", "secret", -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}

	if _, err := ParseClaims(pair.AccessToken, "secret"); err == nil {
		t.Error("expected error for expired token")
	}
}
