package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dexgate/internal/db"
	"dexgate/internal/store"
)

// Store is the postgres-backed storage driver. It exposes the same surface
// as store.MemStore so the two are interchangeable behind the core's port.
type Store struct {
	db Database
}

func NewStore(db Database) *Store {
	return &Store{
		db: db,
	}
}

func (r *Store) MigrateAndSeed() error {

	err := r.db.MigrateTable(&store.Transaction{}, &store.User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := store.SeedUsers()
	err = r.db.SeedOnce(context.Background(), &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *Store) SaveTransaction(ctx context.Context, tx store.Transaction) (store.Transaction, error) {
	if tx.Status == "" {
		tx.Status = store.StatusCompleted
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}

	if err := r.db.Insert(ctx, &tx); err != nil {
		return store.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	return tx, nil
}

func (r *Store) TransactionsByWallet(ctx context.Context, walletAddress string) ([]store.Transaction, error) {
	transactions := []store.Transaction{}
	err := r.db.GetAllBy(ctx, "wallet_address", walletAddress, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions by wallet: %w", err)
	}

	return transactions, nil
}

func (r *Store) UserByUsername(ctx context.Context, username string) (store.User, error) {
	var user store.User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return store.User{}, store.ErrUserNotFound
		}
		return store.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *Store) CreateUser(ctx context.Context, user store.User) (store.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if err := r.db.Insert(ctx, &user); err != nil {
		return store.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
