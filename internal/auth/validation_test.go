package auth

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"maya@example.com", "a.b+c@sub.domain.io"}
	for _, email := range valid {
		if err := validateEmail(email); err != nil {
			t.Errorf("Expected %q to be valid, got %v", email, err)
		}
	}

	invalid := []string{"", "maya", "maya@", "@example.com", "maya@example", "two words@example.com"}
	for _, email := range invalid {
		if err := validateEmail(email); err != ErrInvalidEmail {
			t.Errorf("Expected %q to be rejected, got %v", email, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validatePassword("abc", "abc"); err != ErrShortPassword {
		t.Errorf("Expected ErrShortPassword, got %v", err)
	}
	if err := validatePassword("hunter22", "hunter23"); err != ErrPasswordMismatch {
		t.Errorf("Expected ErrPasswordMismatch, got %v", err)
	}
	if err := validatePassword("hunter22", "hunter22"); err != nil {
		t.Errorf("Expected matching password to pass, got %v", err)
	}
}

func TestValidateUsername(t *testing.T) {
	if err := validateUsername("  ab  "); err != ErrShortUsername {
		t.Errorf("Expected ErrShortUsername, got %v", err)
	}
	if err := validateUsername("maya"); err != nil {
		t.Errorf("Expected username to pass, got %v", err)
	}
}
