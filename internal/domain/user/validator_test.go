package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator_ValidateEmail(t *testing.T) {
	validator := NewCredentialsValidator()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "user@example.com", wantErr: false},
		{name: "missing at sign", email: "userexample.com", wantErr: true},
		{name: "nothing before at", email: "@example.com", wantErr: true},
		{name: "nothing after at", email: "user@", wantErr: true},
		{name: "contains space", email: "us er@example.com", wantErr: true},
		{name: "empty", email: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidatePassword(t *testing.T) {
	validator := NewCredentialsValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "five characters rejected", password: strings.Repeat("a", 5), wantErr: true},
		{name: "six characters accepted", password: strings.Repeat("a", 6), wantErr: false},
		{name: "long password accepted", password: strings.Repeat("a", 72), wantErr: false},
		{name: "empty rejected", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidateRegister(t *testing.T) {
	validator := NewCredentialsValidator()

	assert.NoError(t, validator.ValidateRegister("user@example.com", "secret1"))
	assert.Error(t, validator.ValidateRegister("user@example.com", "short"))
	assert.Error(t, validator.ValidateRegister("bademail", "secret1"))
}
