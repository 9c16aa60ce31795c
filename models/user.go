package models

// User is a row of the users table. Password holds either a bcrypt hash
// or, for rows loaded by older tooling, the plain text password.
type User struct {
	ID       int64  `db:"id" json:"-"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     string `db:"role" json:"role"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
