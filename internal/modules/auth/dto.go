package auth

import "net/http"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type GuestRequest struct {
	DisplayName string `json:"display_name"`
}

type UpdateMeRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=50"`
}

// CookieOptions control how the session cookie is written.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
	Path     string
}
