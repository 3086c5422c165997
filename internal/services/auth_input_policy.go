package services

import (
	"errors"
	"net/mail"
	"strings"
)

const minSignupPasswordLength = 6

var (
	ErrAuthEmailInvalid       = errors.New("auth email invalid")
	ErrAuthPasswordTooShort   = errors.New("auth password too short")
	ErrAuthPasswordMismatch   = errors.New("auth password mismatch")
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func ValidateSignupInput(emailRaw string, password string, confirmPassword string) (string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", ErrAuthEmailInvalid
	}
	if len(password) < minSignupPasswordLength {
		return "", ErrAuthPasswordTooShort
	}
	if password != confirmPassword {
		return "", ErrAuthPasswordMismatch
	}
	return email, nil
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}
