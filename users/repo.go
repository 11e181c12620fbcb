package users

import "errors"

var ErrNotFound = errors.New("user not found")

type UserRepo interface {
	Upsert(user *User) error
	GetByUsername(username string) (*User, error)
	SetLastLogin(username string) error
}
