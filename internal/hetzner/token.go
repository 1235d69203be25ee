// Package hetzner imports servers and prices from the Hetzner Cloud API
// into the inventory.
package hetzner

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	// serviceName is the keychain service entry shared by all stored tokens.
	serviceName = "serverbook"

	// tokenKey is the keychain account under which the API token lives.
	tokenKey = "hetzner"
)

// ErrTokenNotFound is returned when no API token has been stored yet.
var ErrTokenNotFound = errors.New("hetzner: api token not found, run 'serverbook sync login' first")

// TokenStore persists the Hetzner API token.
type TokenStore interface {
	SetToken(token string) error
	GetToken() (string, error)
	DeleteToken() error
}

// KeyringStore stores the token in the OS keychain.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns the standard token store backed by the OS
// keychain.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: serviceName}
}

func (k *KeyringStore) SetToken(token string) error {
	return keyring.Set(k.service, tokenKey, token)
}

func (k *KeyringStore) GetToken() (string, error) {
	token, err := keyring.Get(k.service, tokenKey)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken() error {
	err := keyring.Delete(k.service, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
