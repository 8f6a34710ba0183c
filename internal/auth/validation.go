package auth

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("enter a valid email address")
	ErrShortPassword    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrShortUsername    = errors.New("username must be at least 3 characters")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// 6 characters is the delegate's own minimum; checking here keeps bad
// input off the network entirely.
func validatePassword(password, confirm string) error {
	if len(password) < 6 {
		return ErrShortPassword
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func validateUsername(username string) error {
	if len(strings.TrimSpace(username)) < 3 {
		return ErrShortUsername
	}
	return nil
}
