package user

import (
	"fmt"
	"strings"
)

const MinPasswordLen = 6

// Validator checks registration input before it reaches storage.
type Validator interface {
	ValidateRegister(email, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct{}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) ValidateRegister(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	return v.ValidatePassword(password)
}

func (v *CredentialsValidator) ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	if strings.ContainsAny(email, " \t") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func (v *CredentialsValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}
