package model

import (
	"net/mail"
	"strings"
)

const msgPasswordsDoNotMatch = "passwords do not match"

// CreateAdmin provisions an account that the invitee activates by e-mail.
type CreateAdmin struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (in *CreateAdmin) Validate() map[string]string {
	fields := map[string]string{}
	if !validEmail(in.Email) {
		fields["email"] = "value is not a valid email address"
	}
	if in.Role == "" {
		in.Role = RoleUser
	}
	if !in.Role.Valid() {
		fields["role"] = "value is not a valid enumeration member; permitted: 'user', 'editor', 'admin'"
	}
	return fields
}

// RegisterUser completes an invited account.
type RegisterUser struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"password_confirm"`
}

func (in RegisterUser) Validate() map[string]string {
	return checkPasswords(in.Password, in.PasswordConfirm, map[string]string{})
}

type UpdateUser struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (in UpdateUser) Patch() UserPatch {
	return UserPatch{FirstName: in.FirstName, LastName: in.LastName}
}

type ChangePassword struct {
	OldPassword     string `json:"old_password"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (in ChangePassword) Validate() map[string]string {
	fields := map[string]string{}
	if in.OldPassword == "" {
		fields["old_password"] = "field required"
	}
	return checkPasswords(in.Password, in.PasswordConfirm, fields)
}

type ResetPassword struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (in ResetPassword) Validate() map[string]string {
	return checkPasswords(in.Password, in.PasswordConfirm, map[string]string{})
}

type EmailInput struct {
	Email string `json:"email"`
}

func (in EmailInput) Validate() map[string]string {
	fields := map[string]string{}
	if !validEmail(in.Email) {
		fields["email"] = "value is not a valid email address"
	}
	return fields
}

func checkPasswords(password, confirm string, fields map[string]string) map[string]string {
	if password == "" {
		fields["password"] = "field required"
	}
	if password != confirm {
		fields["password_confirm"] = msgPasswordsDoNotMatch
	}
	return fields
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, "@")
}
