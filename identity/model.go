package identity

import (
	"github.com/kbukum/storefront/auth/token"
	"github.com/kbukum/storefront/database"
)

// User is a stored account. Password holds the bcrypt hash.
type User struct {
	database.BaseModel
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`
}

// Identity returns the fields embedded in the user's credential.
func (u *User) Identity() token.Identity {
	return token.Identity{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

// Session is returned by sign-in, sign-up and profile update.
type Session struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// SignInRequest is the body of POST /api/users/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest is the body of POST /api/users/signup.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest is the body of PUT /api/users/profile. Empty fields keep
// their stored value.
type ProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}
