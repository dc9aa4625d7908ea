// Package repositories persists credentials and derived provider state
// in BadgerDB. Backends never read anything back from here.
package repositories

import (
	"chathub/domain"
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// SecretRepository keeps provider credentials in BadgerDB under
// "token:{provider}". Tokens never appear in logs or state keys.
type SecretRepository struct {
	db *badger.DB
}

func NewSecretRepository(db *badger.DB) *SecretRepository {
	return &SecretRepository{db: db}
}

func tokenKey(p domain.ProviderID) []byte {
	return []byte(fmt.Sprintf("token:%s", p))
}

// Token returns the stored credential, nil when the provider has none.
func (r *SecretRepository) Token(ctx context.Context, p domain.ProviderID) (*domain.Credential, error) {
	var token string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tokenKey(p))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			token = string(v)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Credential{Provider: p, Token: token}, nil
}

func (r *SecretRepository) StoreToken(ctx context.Context, cred domain.Credential) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tokenKey(cred.Provider), []byte(cred.Token))
	})
}

// ClearToken is a no-op for providers without a stored credential.
func (r *SecretRepository) ClearToken(ctx context.Context, p domain.ProviderID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(tokenKey(p))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
