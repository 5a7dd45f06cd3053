package jwthandling

import (
	"testing"
	"time"
)

func TestManagementUserTokenRoundTrip(t *testing.T) {
	secret := "test-sign-key"

	token, err := GenerateNewManagementUserToken(time.Minute, "user-1", "default", "coordinator", map[string]string{"dep": "abc"}, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token to be generated")
	}

	t.Run("valid token", func(t *testing.T) {
		claims, valid, err := ValidateManagementUserToken(token, secret)
		if err != nil || !valid {
			t.Fatalf("expected valid token, got valid=%t err=%v", valid, err)
		}
		if claims.ID != "user-1" {
			t.Errorf("unexpected ID: %s", claims.ID)
		}
		if claims.InstanceID != "default" {
			t.Errorf("unexpected instanceID: %s", claims.InstanceID)
		}
		if claims.Role != "coordinator" {
			t.Errorf("unexpected role: %s", claims.Role)
		}
		if claims.Payload["dep"] != "abc" {
			t.Errorf("unexpected payload: %v", claims.Payload)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		_, valid, err := ValidateManagementUserToken(token, "other-key")
		if valid {
			t.Error("expected token to be invalid")
		}
		if err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateNewManagementUserToken(-time.Minute, "user-1", "default", "coordinator", nil, secret)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, valid, err := ValidateManagementUserToken(expired, secret)
		if valid {
			t.Error("expected token to be invalid")
		}
		if err == nil {
			t.Error("expected validation error")
		}
	})
}
