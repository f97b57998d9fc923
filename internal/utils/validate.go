package utils

import (
	"errors"
	"strings"
	"unicode"
)

// ValidateEmail applies the same basic checks the registration form relies on.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New("invalid email format")
	}
	if len(email) > 120 {
		return errors.New("email is too long")
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	if len(password) > 128 {
		return errors.New("password is too long")
	}
	return nil
}

func ValidateName(name string) error {
	if len(name) < 2 {
		return errors.New("name must be at least 2 characters long")
	}
	if len(name) > 100 {
		return errors.New("name is too long")
	}
	return nil
}

// ValidatePhone accepts an empty phone (it is optional) and otherwise requires
// 10-15 digits plus common formatting characters.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '-', '(', ')', ' ', '+':
			return -1
		}
		return r
	}, phone)
	for _, r := range cleaned {
		if !unicode.IsDigit(r) {
			return errors.New("phone number must contain only digits and formatting characters")
		}
	}
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return errors.New("phone number must be between 10 and 15 digits")
	}
	return nil
}
