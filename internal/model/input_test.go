package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAdmin_Validate(t *testing.T) {
	tests := []struct {
		name   string
		in     CreateAdmin
		want   map[string]string
		wantRl Role
	}{
		{name: "default role", in: CreateAdmin{Email: "a@b.com"}, want: map[string]string{}, wantRl: RoleUser},
		{name: "editor", in: CreateAdmin{Email: "a@b.com", Role: RoleEditor}, want: map[string]string{}, wantRl: RoleEditor},
		{name: "bad email", in: CreateAdmin{Email: "Ann <a@b.com>"}, want: map[string]string{"email": "value is not a valid email address"}, wantRl: RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Validate()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRl, tt.in.Role)
		})
	}

	in := CreateAdmin{Email: "a@b.com", Role: "root"}
	assert.Contains(t, in.Validate(), "role")
}

func TestPasswordInputs_Validate(t *testing.T) {
	assert.Empty(t, ResetPassword{Password: "x", PasswordConfirm: "x"}.Validate())
	assert.Equal(t,
		map[string]string{"password_confirm": "passwords do not match"},
		ResetPassword{Password: "x", PasswordConfirm: "y"}.Validate())
	assert.Contains(t, RegisterUser{}.Validate(), "password")

	fields := ChangePassword{Password: "x", PasswordConfirm: "x"}.Validate()
	assert.Equal(t, map[string]string{"old_password": "field required"}, fields)
}

func TestEmailInput_Validate(t *testing.T) {
	assert.Empty(t, EmailInput{Email: "a@b.com"}.Validate())
	assert.Contains(t, EmailInput{Email: "nope"}.Validate(), "email")
}

func TestUpdateUser_Patch(t *testing.T) {
	p := UpdateUser{FirstName: Ptr("Ann")}.Patch()

	var u User
	assert.Equal(t, []string{"first_name"}, p.Apply(&u))
	assert.Equal(t, "Ann", *u.FirstName)
}
