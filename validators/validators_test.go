package validators

import (
	"strings"
	"testing"
)

type registerSchema struct {
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

func TestCheckValid(t *testing.T) {
	msg := Check(registerSchema{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "longenough",
	})
	if msg != "" {
		t.Errorf("valid input rejected: %q", msg)
	}
}

func TestCheckRequired(t *testing.T) {
	msg := Check(registerSchema{Email: "asha@example.com", Password: "longenough"})
	if !strings.Contains(msg, "firstName is required") {
		t.Errorf("missing required-field message, got %q", msg)
	}
}

func TestCheckEmail(t *testing.T) {
	msg := Check(registerSchema{FirstName: "Asha", Email: "not-an-email", Password: "longenough"})
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Errorf("missing email message, got %q", msg)
	}
}

func TestCheckMin(t *testing.T) {
	msg := Check(registerSchema{FirstName: "Asha", Email: "asha@example.com", Password: "short"})
	if !strings.Contains(msg, "password must be at least 8") {
		t.Errorf("missing min-length message, got %q", msg)
	}
}

func TestCheckCollectsAllErrors(t *testing.T) {
	msg := Check(registerSchema{})
	for _, want := range []string{"firstName", "email", "password"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should mention %s", msg, want)
		}
	}
}
