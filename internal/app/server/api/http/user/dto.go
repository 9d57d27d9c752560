package user

import "cloudvault/internal/domain/user"

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Email    string `json:"email" format:"email" doc:"Account email" minLength:"3"`
	Password string `json:"password" doc:"Password, at least 6 characters" minLength:"1"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email" doc:"Account email" minLength:"1"`
	Password string `json:"password" doc:"Password" minLength:"1"`
}

type phoneLoginInput struct {
	Body PhoneLoginRequest
}

type PhoneLoginRequest struct {
	IDToken     string `json:"idToken" doc:"Identity-provider token proving control of the phone number" minLength:"1"`
	PhoneNumber string `json:"phoneNumber" doc:"Phone number in E.164 form" minLength:"1"`
}

type authOutput struct {
	Body AuthResponse
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  user.PublicUser `json:"user"`
}

type updateProfileInput struct {
	Body UpdateProfileRequest
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" maxLength:"100"`
}

type profileOutput struct {
	Body ProfileResponse
}

type ProfileResponse struct {
	User user.PublicUser `json:"user"`
}
