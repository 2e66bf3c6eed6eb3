package models

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a form field (by its JSON name) to a user-facing message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of s and converts failures into
// ValidationErrors. It returns nil when s is valid.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := ValidationErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return "must be accepted"
		}
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must not be less than " + fe.Param()
	default:
		return "is invalid"
	}
}

// SignInForm is what the sign-in page collects.
type SignInForm struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	KeepLoggedIn bool   `json:"keepLoggedIn"`
}

func (f SignInForm) Validate() error { return validateStruct(f) }

// SignUpForm is what the registration page collects. ConfirmPassword and
// AgreeTerms never leave the client.
type SignUpForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Mobile          string `json:"mobile" validate:"required"`
	Country         string `json:"country" validate:"required"`
	About           string `json:"about"`
	ReferralCode    string `json:"referralCode"`
	Position        string `json:"position" validate:"omitempty,oneof=LEFT RIGHT"`
	AgreeTerms      bool   `json:"agreeTerms" validate:"required"`
}

func (f SignUpForm) Validate() error { return validateStruct(f) }

// Request converts the form into the registration payload.
func (f SignUpForm) Request() RegisterRequest {
	return RegisterRequest{
		Name:         strings.TrimSpace(f.Name),
		Email:        strings.TrimSpace(f.Email),
		Password:     f.Password,
		About:        f.About,
		Country:      f.Country,
		Mobile:       f.Mobile,
		ReferralCode: strings.TrimSpace(f.ReferralCode),
		Position:     strings.ToUpper(f.Position),
	}
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	About        string `json:"about"`
	Country      string `json:"country"`
	Mobile       string `json:"mobile"`
	ReferralCode string `json:"referralCode"`
	Position     string `json:"position"`
}

// ProfileForm carries the editable part of a user profile. Empty fields keep
// their current value.
type ProfileForm struct {
	Name         string `json:"name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Mobile       string `json:"mobile"`
	Country      string `json:"country"`
	About        string `json:"about" validate:"max=500"`
	ProfileImage string `json:"profileImage"`
}

func (f ProfileForm) Validate() error { return validateStruct(f) }
