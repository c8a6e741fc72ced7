// Package password хранит пароли курьеров в виде bcrypt-хешей
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordLen = 64

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = fmt.Errorf("password too long, max %d characters", maxPasswordLen)
)

type Repository struct {
	passCost int
}

// New - cost ниже bcrypt.MinCost bcrypt заменяет на DefaultCost
func New(passCost int) *Repository {
	return &Repository{
		passCost: passCost,
	}
}

func (r *Repository) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordRequired
	}
	if len(password) > maxPasswordLen {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.passCost)
	if err != nil {
		return "", fmt.Errorf("password hash: %w", err)
	}

	return string(hash), nil
}

func (r *Repository) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
