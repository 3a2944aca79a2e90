package store

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Transaction is one recorded swap. Records are append-only: the status is
// fixed at creation time and never transitions afterwards. The tx hash is
// expected unique but not enforced.
type Transaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WalletAddress string    `gorm:"size:42;not null;index" json:"walletAddress"`
	FromToken     string    `gorm:"size:16;not null" json:"fromToken"`
	ToToken       string    `gorm:"size:16;not null" json:"toToken"`
	FromAmount    string    `gorm:"size:100;not null" json:"fromAmount"`
	ToAmount      string    `gorm:"size:100;not null" json:"toAmount"`
	TxHash        string    `gorm:"size:66;not null" json:"txHash"`
	Status        string    `gorm:"size:16;not null" json:"status"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// SeedUsers returns the demo accounts every storage driver is seeded with.
func SeedUsers() []User {
	return []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
		},
		{
			ID:           uuid.NewString(),
			Username:     "dave",
			PasswordHash: "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
		},
	}
}
