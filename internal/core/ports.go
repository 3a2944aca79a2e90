package core

import (
	"context"

	gojwt "github.com/golang-jwt/jwt"

	"dexgate/internal/bridge"
	"dexgate/internal/registry"
	"dexgate/internal/store"
	"dexgate/internal/swap"
	"dexgate/internal/wallet"
	"dexgate/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	Connect(ctx context.Context) error
	Connected() bool
	Balances() (wallet.BalanceSnapshot, error)
	RefreshBalances(ctx context.Context)
}

//counterfeiter:generate -o fake -fake-name Quoter . Quoter
type Quoter interface {
	Estimate(ctx context.Context, from, to registry.Token, amount string) string
}

//counterfeiter:generate -o fake -fake-name Swapper . Swapper
type Swapper interface {
	Swap(ctx context.Context, from, to registry.Token, amount string, slippagePct float64) swap.Result
}

//counterfeiter:generate -o fake -fake-name Bridger . Bridger
type Bridger interface {
	Initiate(ctx context.Context, req bridge.Request) (bridge.TransferRecord, error)
	Transfers() []bridge.TransferRecord
}

//counterfeiter:generate -o fake -fake-name PriceSource . PriceSource
type PriceSource interface {
	Snapshot() map[string]float64
	Refresh()
}

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	SaveTransaction(ctx context.Context, tx store.Transaction) (store.Transaction, error)
	TransactionsByWallet(ctx context.Context, walletAddress string) ([]store.Transaction, error)
	UserByUsername(ctx context.Context, username string) (store.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTGenerator . JWTGenerator
type JWTGenerator interface {
	Generate(data jwt.TokenInfo) *gojwt.Token
	Sign(token *gojwt.Token) (string, error)
	Validate(token string) (gojwt.MapClaims, error)
}
