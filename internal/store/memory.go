package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

// MemStore is the default storage driver: mutex-guarded in-memory maps with
// no persistence, eviction or size bound. Good for a single-process demo
// deployment only.
type MemStore struct {
	mu           sync.Mutex
	transactions []Transaction
	nextID       uint
	users        map[string]User

	timeNow func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		nextID:  1,
		users:   make(map[string]User),
		timeNow: time.Now,
	}
}

// MigrateAndSeed creates the demo users. It mirrors the database driver's
// setup hook so the two are interchangeable at wiring time.
func (m *MemStore) MigrateAndSeed() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.users) > 0 {
		return nil
	}
	for _, user := range SeedUsers() {
		m.users[user.Username] = user
	}
	return nil
}

// SaveTransaction assigns the next sequential id (starting at 1) and
// defaults status to completed and timestamp to now when omitted.
func (m *MemStore) SaveTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx.ID = m.nextID
	m.nextID++

	if tx.Status == "" {
		tx.Status = StatusCompleted
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = m.timeNow()
	}

	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// TransactionsByWallet scans all records and returns the ones matching the
// wallet address, in insertion order. The result is never nil.
func (m *MemStore) TransactionsByWallet(ctx context.Context, walletAddress string) ([]Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matches := []Transaction{}
	for _, tx := range m.transactions {
		if tx.WalletAddress == walletAddress {
			matches = append(matches, tx)
		}
	}
	return matches, nil
}

func (m *MemStore) UserByUsername(ctx context.Context, username string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *MemStore) CreateUser(ctx context.Context, user User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.Username] = user
	return user, nil
}
