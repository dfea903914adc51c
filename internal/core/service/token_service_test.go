package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

func TestTokenIssuer_Issue(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := NewTokenIssuer("secret", time.Hour, fixedClock{t: now})

	signed, err := issuer.Issue(domain.Identity{ID: "1", Username: "admin", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tkn.Valid {
		t.Fatalf("token did not verify: %v", err)
	}

	if sub, _ := claims.GetSubject(); sub != "1" {
		t.Fatalf("expected sub 1, got %q", sub)
	}
	if claims["username"] != "admin" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || !exp.Time.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected exp %v, got %v (%v)", now.Add(time.Hour), exp, err)
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := NewTokenIssuer("secret", 0, fixedClock{t: now})
	if issuer.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default, got %v", issuer.ttl)
	}
}
