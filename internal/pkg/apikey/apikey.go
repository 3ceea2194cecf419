package apikey

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("api key hashing failed")
	ErrKeyMismatch   = errors.New("api key mismatch")
	ErrInvalidKey    = errors.New("invalid api key")
)

const DefaultCost = bcrypt.DefaultCost

// Hash is used by provisioning tooling; the server itself only compares.
func Hash(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashedKey, key string) error {
	if hashedKey == "" || key == "" {
		return ErrInvalidKey
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrKeyMismatch
		}
		return err
	}

	return nil
}
