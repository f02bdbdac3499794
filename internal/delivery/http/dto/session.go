package dto

import (
	"projectlink/internal/domain/navigation"
)

type SignInRequest struct {
	Email string `json:"email"`
}

type NavigateResponse struct {
	Route    string              `json:"route"`
	Decision navigation.Decision `json:"decision"`
	Redirect string              `json:"redirect,omitempty"`
}

// RedirectTarget is the route a redirect decision points at.
func RedirectTarget(d navigation.Decision) string {
	switch d {
	case navigation.RedirectSignIn:
		return navigation.RouteSignIn
	case navigation.RedirectOnboarding:
		return navigation.RouteOnboarding
	case navigation.RedirectHome:
		return navigation.RouteHome
	default:
		return ""
	}
}
