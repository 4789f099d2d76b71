package domain

import "time"

type User struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	RoleID    *int       `json:"role_id,omitempty"`
	RoleName  *string    `json:"role_name,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
}

const adminRoleID = 1

func (u *User) IsAdmin() bool {
	return u.RoleID != nil && *u.RoleID == adminRoleID
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordChange struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdateProfileInput struct {
	Name     *string         `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email    *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password *PasswordChange `json:"password,omitempty" validate:"omitempty"`
}

// AccessToken is the bearer token issued by the shop API on login or register.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// Session binds a storefront session token to the shop API access token and
// the user it was issued for. Services receive it explicitly.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	User        User      `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type SessionResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}
