package repositories

import (
	"chathub/domain"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// StateRepository persists per-provider derived state in BadgerDB.
// Keys follow "state:{provider}:{kind}" so one provider's records can
// be cleared with a prefix scan without touching any other provider.
type StateRepository struct {
	db *badger.DB
}

func NewStateRepository(db *badger.DB) *StateRepository {
	return &StateRepository{db: db}
}

func stateKey(p domain.ProviderID, kind string) []byte {
	return []byte(fmt.Sprintf("state:%s:%s", p, kind))
}

func (r *StateRepository) putJSON(key []byte, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}

// getJSON loads one record; found is false for absent keys.
func (r *StateRepository) getJSON(key []byte, out any) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, out)
		})
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *StateRepository) SaveCurrentUser(p domain.ProviderID, user domain.CurrentUser) error {
	return r.putJSON(stateKey(p, "identity"), user)
}

func (r *StateRepository) CurrentUser(p domain.ProviderID) (*domain.CurrentUser, error) {
	var user domain.CurrentUser
	found, err := r.getJSON(stateKey(p, "identity"), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *StateRepository) SaveUsers(p domain.ProviderID, users []domain.User) error {
	return r.putJSON(stateKey(p, "users"), users)
}

func (r *StateRepository) Users(p domain.ProviderID) ([]domain.User, error) {
	var users []domain.User
	if _, err := r.getJSON(stateKey(p, "users"), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *StateRepository) SaveChannels(p domain.ProviderID, channels []domain.Channel) error {
	return r.putJSON(stateKey(p, "channels"), channels)
}

func (r *StateRepository) Channels(p domain.ProviderID) ([]domain.Channel, error) {
	var channels []domain.Channel
	if _, err := r.getJSON(stateKey(p, "channels"), &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *StateRepository) SaveLastChannel(p domain.ProviderID, channelID string) error {
	return r.putJSON(stateKey(p, "lastchannel"), channelID)
}

func (r *StateRepository) LastChannel(p domain.ProviderID) (string, error) {
	var channelID string
	if _, err := r.getJSON(stateKey(p, "lastchannel"), &channelID); err != nil {
		return "", err
	}
	return channelID, nil
}

func (r *StateRepository) SaveReadMarker(p domain.ProviderID, channelID, readTS string) error {
	return r.putJSON(stateKey(p, "read:"+channelID), readTS)
}

// ClearWorkspace drops users, channels and the last-viewed channel for
// one provider, keeping the identity record.
func (r *StateRepository) ClearWorkspace(p domain.ProviderID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, kind := range []string{"users", "channels", "lastchannel"} {
			if err := txn.Delete(stateKey(p, kind)); err != nil && err != badger.ErrKeyNotFound {
				return err
			}
		}
		return nil
	})
}

// ClearProvider removes every state record for one provider via a
// prefix scan. Other providers' keys are untouched.
func (r *StateRepository) ClearProvider(p domain.ProviderID) error {
	prefix := []byte(fmt.Sprintf("state:%s:", p))

	var doomed [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			doomed = append(doomed, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, key := range doomed {
			if err := txn.Delete(key); err != nil && err != badger.ErrKeyNotFound {
				return err
			}
		}
		return nil
	})
}
