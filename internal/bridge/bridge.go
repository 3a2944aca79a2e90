package bridge

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dexgate/internal/registry"
)

var ErrInvalidAmount error = errors.New("invalid bridge amount")
var ErrInsufficientBalance error = errors.New("insufficient balance")
var ErrUnknownChain error = errors.New("unknown chain")
var ErrSameChain error = errors.New("source and destination chain are the same")

// StatusPending is the only status a simulated transfer ever has.
const StatusPending = "pending"

const artificialDelay = 2 * time.Second

// TransferRecord is a locally fabricated cross-chain transfer. No real
// transfer happens; the record only drives transfer-history views.
type TransferRecord struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Amount    string `json:"amount"`
	FromChain string `json:"fromChain"`
	ToChain   string `json:"toChain"`
	Status    string `json:"status"`
	TxHash    string `json:"txHash"`
	TimeLabel string `json:"time"`
}

type Request struct {
	TokenSymbol string
	Amount      string
	Balance     string
	FromChain   string
	ToChain     string
}

// Orchestrator simulates bridge transfers: it validates the request locally,
// waits a fixed artificial delay and records a pending transfer with a
// synthetic hash. Transfers never advance past pending.
type Orchestrator struct {
	logs  *zap.SugaredLogger
	delay time.Duration

	mu        sync.Mutex
	transfers []TransferRecord
}

func NewOrchestrator(logger *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		logs:  logger,
		delay: artificialDelay,
		// demo rows shown before any transfer is initiated
		transfers: []TransferRecord{
			{ID: "1", Token: "BNB", Amount: "0.5", FromChain: "BSC", ToChain: "BNW", Status: "completed", TxHash: "0x1234...5678", TimeLabel: "2h ago"},
			{ID: "2", Token: "BTCB", Amount: "0.01", FromChain: "BNW", ToChain: "BSC", Status: StatusPending, TxHash: "0xabcd...efgh", TimeLabel: "5h ago"},
		},
	}
}

// Initiate validates the request and fabricates a pending transfer record.
func (o *Orchestrator) Initiate(ctx context.Context, req Request) (TransferRecord, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return TransferRecord{}, ErrInvalidAmount
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil || amount.GreaterThan(balance) {
		return TransferRecord{}, fmt.Errorf("%w: need %s %s", ErrInsufficientBalance, req.Amount, req.TokenSymbol)
	}

	from, ok := registry.ChainByName(req.FromChain)
	if !ok {
		return TransferRecord{}, fmt.Errorf("%w: %q", ErrUnknownChain, req.FromChain)
	}
	to, ok := registry.ChainByName(req.ToChain)
	if !ok {
		return TransferRecord{}, fmt.Errorf("%w: %q", ErrUnknownChain, req.ToChain)
	}
	if from.Name == to.Name {
		return TransferRecord{}, ErrSameChain
	}

	select {
	case <-ctx.Done():
		return TransferRecord{}, ctx.Err()
	case <-time.After(o.delay):
	}

	record := TransferRecord{
		ID:        uuid.NewString(),
		Token:     req.TokenSymbol,
		Amount:    req.Amount,
		FromChain: from.Name,
		ToChain:   to.Name,
		Status:    StatusPending,
		TxHash:    syntheticHash(),
		TimeLabel: "just now",
	}

	o.mu.Lock()
	o.transfers = append([]TransferRecord{record}, o.transfers...)
	o.mu.Unlock()

	o.logs.Infow("bridge transfer simulated",
		"token", req.TokenSymbol,
		"amount", req.Amount,
		"from", from.Name,
		"to", to.Name,
		"txHash", record.TxHash)

	return record, nil
}

// Transfers lists the history, newest first.
func (o *Orchestrator) Transfers() []TransferRecord {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]TransferRecord, len(o.transfers))
	copy(out, o.transfers)
	return out
}

func syntheticHash() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}
