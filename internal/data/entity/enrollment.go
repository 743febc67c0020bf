package entity

import "time"

// Enrollment is a user's registration for the event. A user has at most one.
type Enrollment struct {
	Base
	Name     string    `db:"name"`
	CPF      string    `db:"cpf"`
	Birthday time.Time `db:"birthday"`
	Phone    string    `db:"phone"`
	UserID   int       `db:"user_id"`
}
