package domain

// User is a catalog account. Password holds the bcrypt hash and never leaves
// the service boundary.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"-"`
	IsActive bool   `json:"-"`
}

// UserSnapshot is the public shape of a user.
type UserSnapshot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Serialize returns the user without credential material.
func (u *User) Serialize() (UserSnapshot, error) {
	if u.ID == 0 {
		return UserSnapshot{}, missing("user", "id")
	}
	if u.Username == "" {
		return UserSnapshot{}, missing("user", "username")
	}
	if u.Email == "" {
		return UserSnapshot{}, missing("user", "email")
	}
	return UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}, nil
}
