package model

import "time"

type Address struct {
	ZipCode int    `json:"zipcode" validate:"required,gte=100,lte=99999"`
	Detail  string `json:"detail" validate:"required"`
	County  string `json:"county,omitempty"`
	City    string `json:"city,omitempty"`
}

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Birthday  string    `json:"birthday"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// MemberView is what the portal reports for the current session.
type MemberView struct {
	LoggedIn bool  `json:"loggedIn"`
	User     *User `json:"user"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
	Remember bool   `json:"remember,omitempty"`
}

type SignupDTO struct {
	Name            string  `json:"name" validate:"required,max=32"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8,max=64,alphanumdigits"`
	ConfirmPassword string  `json:"confirmPassword,omitempty" validate:"required,eqfield=Password"`
	Phone           string  `json:"phone" validate:"required,phone"`
	Birthday        string  `json:"birthday" validate:"required,birthday"`
	Address         Address `json:"address"`
}

type UpdateProfileDTO struct {
	UserID   string  `json:"userId" validate:"required"`
	Name     string  `json:"name" validate:"required,max=32"`
	Phone    string  `json:"phone" validate:"required,phone"`
	Birthday string  `json:"birthday" validate:"required,birthday"`
	Address  Address `json:"address"`
}

// ChangePasswordDTO is the form the member submits; UpdatePasswordDTO is what the
// hotel service receives.
type ChangePasswordDTO struct {
	UserID          string `json:"userId" validate:"required"`
	OldPassword     string `json:"oldPassword" validate:"required,min=1"`
	NewPassword     string `json:"newPassword" validate:"required,min=1"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=1,eqfield=NewPassword"`
}

type UpdatePasswordDTO struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ForgotPasswordDTO struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=64,alphanumdigits"`
}

type EmailDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type EmailCheck struct {
	IsEmailExists bool `json:"isEmailExists"`
}

// RememberedAccount is the e-mail kept in the "account" cookie for the login form.
type RememberedAccount struct {
	Email string `json:"email"`
}
