package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dexgate/internal/bridge"
	"dexgate/internal/registry"
	"dexgate/internal/store"
	"dexgate/internal/wallet"
	"dexgate/pkg/jwt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUnknownToken error = errors.New("unknown token symbol")
var ErrInsufficientBalance error = errors.New("insufficient balance")
var ErrInvalidAmount error = errors.New("invalid swap amount")

// tokenExpiration is in hours
const tokenExpiration = 24

// Service glues the wallet session, the swap engine, the bridge simulator,
// the price feed and the transaction store behind one surface for the HTTP
// handler.
type Service struct {
	logs    *zap.SugaredLogger
	chain   registry.Chain
	session Session
	quoter  Quoter
	swapper Swapper
	bridger Bridger
	prices  PriceSource
	store   Store
	tokens  JWTGenerator
}

func NewService(
	logger *zap.SugaredLogger,
	chain registry.Chain,
	session Session,
	quoter Quoter,
	swapper Swapper,
	bridger Bridger,
	prices PriceSource,
	store Store,
	tokens JWTGenerator,
) *Service {
	return &Service{
		logs:    logger,
		chain:   chain,
		session: session,
		quoter:  quoter,
		swapper: swapper,
		bridger: bridger,
		prices:  prices,
		store:   store,
		tokens:  tokens,
	}
}

// Authenticate verifies the credentials and returns a signed JWT.
func (s *Service) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.store.UserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password))
	if err != nil {
		return "", ErrIncorrectPassword
	}

	token := s.tokens.Generate(jwt.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenExpiration,
	})

	signed, err := s.tokens.Sign(token)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.logs.Infow("user authenticated", "username", user.Username)
	return signed, nil
}

// Prices returns the current display prices for all supported tokens.
func (s *Service) Prices() map[string]float64 {
	return s.prices.Snapshot()
}

// Balances returns the connected wallet's balance snapshot, connecting the
// session first when needed.
func (s *Service) Balances(ctx context.Context) (wallet.BalanceSnapshot, error) {
	if !s.session.Connected() {
		if err := s.session.Connect(ctx); err != nil {
			return wallet.BalanceSnapshot{}, err
		}
	}
	return s.session.Balances()
}

// Quote estimates the output amount for a prospective swap. The estimate is
// indicative only; chain failures surface as a "0" quote, not an error.
func (s *Service) Quote(ctx context.Context, msg QuoteMessage) (string, error) {
	from, ok := registry.BySymbol(s.chain.ID, msg.FromToken)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, msg.FromToken)
	}
	to, ok := registry.BySymbol(s.chain.ID, msg.ToToken)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, msg.ToToken)
	}

	return s.quoter.Estimate(ctx, from, to, msg.Amount), nil
}

// ExecuteSwap runs one authenticated swap and records it on success. The
// wallet session must be connected and hold enough of the source token.
func (s *Service) ExecuteSwap(ctx context.Context, msg SwapMessage) (SwapReport, error) {
	if _, err := s.tokens.Validate(msg.Token); err != nil {
		return SwapReport{}, err
	}

	snapshot, err := s.session.Balances()
	if err != nil {
		return SwapReport{}, err
	}

	from, ok := registry.BySymbol(s.chain.ID, msg.FromToken)
	if !ok {
		return SwapReport{}, fmt.Errorf("%w: %q", ErrUnknownToken, msg.FromToken)
	}
	to, ok := registry.BySymbol(s.chain.ID, msg.ToToken)
	if !ok {
		return SwapReport{}, fmt.Errorf("%w: %q", ErrUnknownToken, msg.ToToken)
	}

	if err := checkBalance(snapshot, from, msg.Amount); err != nil {
		return SwapReport{}, err
	}

	result := s.swapper.Swap(ctx, from, to, msg.Amount, msg.Slippage)

	report := SwapReport{
		Success: result.Success,
		TxHash:  result.TxHash,
		Error:   result.Error,
	}

	if !result.Success {
		return report, nil
	}

	estimate := s.quoter.Estimate(ctx, from, to, msg.Amount)
	saved, err := s.store.SaveTransaction(ctx, store.Transaction{
		WalletAddress: snapshot.Address,
		FromToken:     from.Symbol,
		ToToken:       to.Symbol,
		FromAmount:    msg.Amount,
		ToAmount:      estimate,
		TxHash:        result.TxHash,
		Status:        store.StatusCompleted,
	})
	if err != nil {
		// the swap itself went through, losing the record is not fatal
		s.logs.Errorw("failed to record swap transaction", "txHash", result.TxHash, "error", err)
	} else {
		report.Transaction = &saved
	}

	go s.session.RefreshBalances(context.Background())

	return report, nil
}

// InitiateBridge simulates an authenticated cross-chain transfer.
func (s *Service) InitiateBridge(ctx context.Context, msg BridgeMessage) (bridge.TransferRecord, error) {
	if _, err := s.tokens.Validate(msg.Token); err != nil {
		return bridge.TransferRecord{}, err
	}

	snapshot, err := s.session.Balances()
	if err != nil {
		return bridge.TransferRecord{}, err
	}

	balance, ok := snapshot.Tokens[msg.TokenSymbol]
	if msg.TokenSymbol == s.chain.NativeSymbol {
		balance, ok = snapshot.Native, true
	}
	if !ok {
		balance = "0"
	}

	return s.bridger.Initiate(ctx, bridge.Request{
		TokenSymbol: msg.TokenSymbol,
		Amount:      msg.Amount,
		Balance:     balance,
		FromChain:   msg.FromChain,
		ToChain:     msg.ToChain,
	})
}

// BridgeTransfers lists the simulated transfer history, newest first.
func (s *Service) BridgeTransfers() []bridge.TransferRecord {
	return s.bridger.Transfers()
}

// RecordTransaction persists an externally reported swap record.
func (s *Service) RecordTransaction(ctx context.Context, msg TransactionMessage) (store.Transaction, error) {
	return s.store.SaveTransaction(ctx, store.Transaction{
		WalletAddress: msg.WalletAddress,
		FromToken:     msg.FromToken,
		ToToken:       msg.ToToken,
		FromAmount:    msg.FromAmount,
		ToAmount:      msg.ToAmount,
		TxHash:        msg.TxHash,
		Status:        msg.Status,
	})
}

// WalletTransactions lists the recorded swaps for a wallet address in
// insertion order. The result is never nil.
func (s *Service) WalletTransactions(ctx context.Context, walletAddress string) ([]store.Transaction, error) {
	return s.store.TransactionsByWallet(ctx, walletAddress)
}

// checkBalance rejects a swap whose input exceeds the wallet's last known
// balance of the source token before anything is submitted on-chain.
func checkBalance(snapshot wallet.BalanceSnapshot, from registry.Token, amount string) error {
	held := snapshot.Tokens[from.Symbol]
	if from.IsNative() {
		held = snapshot.Native
	}

	balance, err := decimal.NewFromString(held)
	if err != nil {
		balance = decimal.Zero
	}

	wanted, err := decimal.NewFromString(amount)
	if err != nil || !wanted.IsPositive() {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if wanted.GreaterThan(balance) {
		return fmt.Errorf("%w: have %s %s, need %s", ErrInsufficientBalance, held, from.Symbol, amount)
	}
	return nil
}
