package user

import "time"

const (
	ProviderEmail = "email"
	ProviderPhone = "phone"
)

// User is a stored account. Exactly one of Email / PhoneNumber is set,
// depending on AuthProvider.
type User struct {
	ID           string
	Email        string
	PhoneNumber  string
	PasswordHash string
	AuthProvider string
	DisplayName  string
	CreatedAt    time.Time
	LastLogin    time.Time
}

// PublicUser is the client-visible projection of an account.
// The password hash never leaves the domain layer.
type PublicUser struct {
	ID           string `json:"id"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	AuthProvider string `json:"authProvider"`
	DisplayName  string `json:"displayName,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		AuthProvider: u.AuthProvider,
		DisplayName:  u.DisplayName,
	}
}
