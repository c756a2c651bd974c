package model

import (
	"context"
	"time"
)

// Role is the user role.
type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// User represents a user account. Users are never hard deleted.
type User struct {
	ID             int64      `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	Role           Role       `json:"role"`
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	IsAdmin        bool       `json:"is_admin"`
	IsActive       bool       `json:"is_active"`
	IsSuperuser    bool       `json:"is_superuser"`
	IsVerified     bool       `json:"is_verified"`
	LastLogin      *time.Time `json:"last_login"`
	DateJoined     time.Time  `json:"date_joined"`
}

func (User) TableName() string { return "user" }

func (u User) PrimaryKey() int64 { return u.ID }

// UserPatch is the create and update shape for users. Nil fields are left untouched.
type UserPatch struct {
	Email          *string
	HashedPassword *string
	Role           *Role
	FirstName      *string
	LastName       *string
	IsAdmin        *bool
	IsActive       *bool
	IsSuperuser    *bool
	IsVerified     *bool
	LastLogin      *time.Time
}

func (p UserPatch) Apply(u *User) []string {
	var cols []string
	if p.Email != nil {
		u.Email = *p.Email
		cols = append(cols, "email")
	}
	if p.HashedPassword != nil {
		u.HashedPassword = *p.HashedPassword
		cols = append(cols, "hashed_password")
	}
	if p.Role != nil {
		u.Role = *p.Role
		cols = append(cols, "role")
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
		cols = append(cols, "first_name")
	}
	if p.LastName != nil {
		u.LastName = p.LastName
		cols = append(cols, "last_name")
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
		cols = append(cols, "is_admin")
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
		cols = append(cols, "is_active")
	}
	if p.IsSuperuser != nil {
		u.IsSuperuser = *p.IsSuperuser
		cols = append(cols, "is_superuser")
	}
	if p.IsVerified != nil {
		u.IsVerified = *p.IsVerified
		cols = append(cols, "is_verified")
	}
	if p.LastLogin != nil {
		u.LastLogin = p.LastLogin
		cols = append(cols, "last_login")
	}
	return cols
}

// UserOrder is a sort column of the user listing.
type UserOrder string

const (
	OrderByDateJoined UserOrder = "date_joined"
	OrderByEmail      UserOrder = "email"
)

// UserFilter narrows the user listing.
type UserFilter struct {
	Search     string
	IsVerified *bool
	IsActive   *bool
	OrderBy    UserOrder
	Desc       bool
}

// UserStore defines persistence operations for users.
type UserStore interface {
	ReadOne(ctx context.Context, id int64) (User, error)
	ReadList(ctx context.Context, skip, limit int, filter UserFilter) (Page[User], error)
	Create(ctx context.Context, patch UserPatch) (User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (User, User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

// UserCache keeps recently authenticated users by id.
type UserCache interface {
	Get(ctx context.Context, id int64) (User, bool)
	Set(ctx context.Context, user User)
	Delete(ctx context.Context, id int64)
}
