package dto

import (
	"strings"

	"github.com/fadilmartias/job-tracker/internal/util"
)

// Password bounds are counted in bytes: bcrypt rejects input longer than 72 bytes.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

type SignUpRequest struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
}

func (r *SignUpRequest) Validate() error {
	errs := util.NewFormError("invalid sign-up data", nil)

	r.Username = requireText(errs, "username", r.Username, 150)
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		errs.Add("email", msgRequired)
	} else if !validEmail(r.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	switch {
	case len(r.Password) < minPasswordLength:
		errs.Add("password", "This password is too short. It must contain at least 8 characters.")
	case len(r.Password) > maxPasswordLength:
		errs.Add("password", "This password is too long. It must contain at most 72 bytes.")
	}
	if r.Password != r.PasswordConfirm {
		errs.Add("password_confirm", "The two password fields didn't match.")
	}
	return errs.OrNil()
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (r *LoginRequest) Validate() error {
	errs := util.NewFormError("invalid login data", nil)
	r.Username = requireText(errs, "username", r.Username, 150)
	if r.Password == "" {
		errs.Add("password", msgRequired)
	}
	return errs.OrNil()
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
