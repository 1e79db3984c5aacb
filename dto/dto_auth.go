package dto

import "blogs-api/internal/models"

type SignUpDTO struct {
	Name            string `json:"name"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// DisplayName prefers name, else "firstName lastName".
func (d SignUpDTO) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	switch {
	case d.FirstName != "" && d.LastName != "":
		return d.FirstName + " " + d.LastName
	case d.FirstName != "":
		return d.FirstName
	default:
		return d.LastName
	}
}

type SignInDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Result *models.User `json:"result"`
	Token  string       `json:"token"`
}
