package entity

type User struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
