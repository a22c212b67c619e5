package auth

import "time"

// User represents a staff account.
type User struct {
	ID           int64
	FirstName    string
	MiddleName   *string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the client-facing projection of a User. The password hash
// never leaves the service boundary.
type PublicUser struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
}

// Public strips the credential fields from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
		LastName:   u.LastName,
		Email:      u.Email,
	}
}
