package domain

import "time"

// User is a registered forum account. Password holds the bcrypt hash.
type User struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"-"`
}

// Credentials carry a login attempt's plaintext password.
type Credentials struct {
	Username string
	Password string
}
