package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// Validate rejects an empty password locally, before any secret lookup.
func (req *AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required.Error("Password is required")),
	)
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

func (req *ThemeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Theme,
			validation.Required.Error("Theme is required"),
			validation.In("light", "dark").Error("Theme must be light or dark")),
	)
}
