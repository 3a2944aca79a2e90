package handler

import (
	"context"
	"net/http"

	"dexgate/internal/bridge"
	"dexgate/internal/core"
	"dexgate/internal/store"
	"dexgate/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name DexService . DexService
type DexService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Prices() map[string]float64
	Balances(ctx context.Context) (wallet.BalanceSnapshot, error)
	Quote(ctx context.Context, msg core.QuoteMessage) (string, error)
	ExecuteSwap(ctx context.Context, msg core.SwapMessage) (core.SwapReport, error)
	InitiateBridge(ctx context.Context, msg core.BridgeMessage) (bridge.TransferRecord, error)
	BridgeTransfers() []bridge.TransferRecord
	RecordTransaction(ctx context.Context, msg core.TransactionMessage) (store.Transaction, error)
	WalletTransactions(ctx context.Context, walletAddress string) ([]store.Transaction, error)
}
