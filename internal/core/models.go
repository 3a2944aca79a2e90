package core

import "dexgate/internal/store"

type AuthMessage struct {
	Username string
	Password string
}

type QuoteMessage struct {
	FromToken string
	ToToken   string
	Amount    string
}

type SwapMessage struct {
	Token     string
	FromToken string
	ToToken   string
	Amount    string
	Slippage  float64
}

type BridgeMessage struct {
	Token       string
	TokenSymbol string
	Amount      string
	FromChain   string
	ToChain     string
}

type TransactionMessage struct {
	WalletAddress string
	FromToken     string
	ToToken       string
	FromAmount    string
	ToAmount      string
	TxHash        string
	Status        string
}

// SwapReport is what a swap attempt hands back to the caller. Transaction is
// set only when the swap succeeded and was recorded.
type SwapReport struct {
	Success     bool               `json:"success"`
	TxHash      string             `json:"txHash,omitempty"`
	Error       string             `json:"error,omitempty"`
	Transaction *store.Transaction `json:"transaction,omitempty"`
}
