package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"dexgate/internal/registry"
)

var ErrWalletNotConfigured error = errors.New("no signing account configured")
var ErrUnlockRejected error = errors.New("keystore unlock rejected")
var ErrChainMismatch error = errors.New("node chain id does not match target chain")
var ErrNotConnected error = errors.New("wallet session not connected")
var ErrAlreadyConnecting error = errors.New("wallet session connection already in progress")

const defaultRefreshInterval = 30 * time.Second

// BalanceSnapshot is a point-in-time copy of the session's balances.
type BalanceSnapshot struct {
	Address string            `json:"address"`
	Native  string            `json:"nativeBalance"`
	Tokens  map[string]string `json:"tokenBalances"`
}

// Session owns the signing account's connection state: the bound node handle,
// the active address, its native balance and the registry tokens' balances.
// Only one session is live per process.
type Session struct {
	logs       *zap.SugaredLogger
	node       NodeService
	dialer     Dialer
	signer     Signer
	passphrase string
	target     registry.Chain
	tokens     []registry.Token
	refresh    time.Duration

	mu           sync.Mutex
	connected    bool
	connecting   bool
	wasConnected bool
	lastErr      error
	native       string
	balances     map[string]string
	stopRefresh  chan struct{}
}

func NewSession(
	logger *zap.SugaredLogger,
	node NodeService,
	dialer Dialer,
	signer Signer,
	passphrase string,
	target registry.Chain,
) *Session {
	return &Session{
		logs:       logger,
		node:       node,
		dialer:     dialer,
		signer:     signer,
		passphrase: passphrase,
		target:     target,
		tokens:     registry.Tokens(target.ID),
		refresh:    defaultRefreshInterval,
		balances:   make(map[string]string),
	}
}

// Connect unlocks the signing account, verifies the bound node serves the
// target chain (rebinding to the target's configured RPC endpoint when it
// does not), loads balances and starts the periodic refresh.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.connected {
		s.mu.Unlock()
		return nil
	}
	if s.connecting {
		s.mu.Unlock()
		return ErrAlreadyConnecting
	}
	s.connecting = true
	s.lastErr = nil
	s.mu.Unlock()

	err := s.connect(ctx)

	s.mu.Lock()
	s.connecting = false
	s.lastErr = err
	s.mu.Unlock()

	return err
}

func (s *Session) connect(ctx context.Context) error {
	if !s.signer.Available() {
		return ErrWalletNotConfigured
	}

	if err := s.signer.Unlock(s.passphrase); err != nil {
		if errors.Is(err, ErrWalletNotConfigured) || errors.Is(err, ErrUnlockRejected) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnlockRejected, err)
	}

	if err := s.ensureTargetChain(ctx); err != nil {
		return err
	}

	owner := s.signer.Address()

	native, err := s.node.NativeBalance(ctx, owner)
	if err != nil {
		return fmt.Errorf("read native balance: %w", err)
	}

	balances, err := s.node.TokenBalances(ctx, owner, s.tokens)
	if err != nil {
		// partial results are fine, failed tokens keep no entry yet
		s.logs.Errorw("some token balances failed to load", "error", err)
	}

	s.mu.Lock()
	s.connected = true
	s.wasConnected = true
	s.native = native
	for symbol, balance := range balances {
		s.balances[symbol] = balance
	}
	s.stopRefresh = make(chan struct{})
	go s.refreshLoop(s.stopRefresh)
	s.mu.Unlock()

	s.logs.Infow("wallet session connected", "address", owner.Hex(), "chain", s.target.Name)
	return nil
}

// ensureTargetChain compares the node's chain id with the configured target
// and, on mismatch, rebinds the node handle to the target chain's RPC URL
// instead of tearing the whole process down.
func (s *Session) ensureTargetChain(ctx context.Context) error {
	id, err := s.node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("read chain id: %w", err)
	}
	if id.Cmp(s.target.ID) == 0 {
		return nil
	}

	s.logs.Infow("node serves a different chain, rebinding",
		"got", id.String(),
		"want", s.target.ID.String(),
		"rpc", s.target.RPCURL)

	client, err := s.dialer.Dial(ctx, s.target.RPCURL)
	if err != nil {
		return fmt.Errorf("%w: dial target rpc: %w", ErrChainMismatch, err)
	}
	s.node.Rebind(client)

	id, err = s.node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("read chain id after rebind: %w", err)
	}
	if id.Cmp(s.target.ID) != 0 {
		return fmt.Errorf("%w: target rpc serves chain %s", ErrChainMismatch, id.String())
	}
	return nil
}

// Reconnect re-establishes a session that was connected before, used on
// process start. It is a no-op otherwise.
func (s *Session) Reconnect(ctx context.Context) error {
	s.mu.Lock()
	should := s.wasConnected && !s.connected
	s.mu.Unlock()

	if !should {
		return nil
	}
	return s.Connect(ctx)
}

// Disconnect clears all session state and stops the background refresh. It
// does not revoke any on-chain approval.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return
	}

	close(s.stopRefresh)
	s.stopRefresh = nil
	s.connected = false
	s.wasConnected = false
	s.native = ""
	s.balances = make(map[string]string)
	s.lastErr = nil

	s.logs.Infow("wallet session disconnected")
}

// RefreshBalances re-reads the native balance and every registry token's
// balance. A failed token read keeps that token's previous balance; the
// refresh never aborts as a whole. No-op unless connected.
func (s *Session) RefreshBalances(ctx context.Context) {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	owner := s.signer.Address()

	native, nativeErr := s.node.NativeBalance(ctx, owner)
	if nativeErr != nil {
		s.logs.Errorw("native balance refresh failed", "error", nativeErr)
	}

	balances, err := s.node.TokenBalances(ctx, owner, s.tokens)
	if err != nil {
		s.logs.Errorw("token balance refresh partially failed", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return
	}
	if nativeErr == nil {
		s.native = native
	}
	for symbol, balance := range balances {
		s.balances[symbol] = balance
	}
}

func (s *Session) refreshLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.RefreshBalances(context.Background())
		}
	}
}

func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Session) Address() (common.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return common.Address{}, false
	}
	return s.signer.Address(), true
}

func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Balances returns a snapshot copy of the session balances.
func (s *Session) Balances() (BalanceSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return BalanceSnapshot{}, ErrNotConnected
	}

	tokens := make(map[string]string, len(s.balances))
	for symbol, balance := range s.balances {
		tokens[symbol] = balance
	}

	return BalanceSnapshot{
		Address: s.signer.Address().Hex(),
		Native:  s.native,
		Tokens:  tokens,
	}, nil
}

// BalanceOf returns the last known balance for a token symbol.
func (s *Session) BalanceOf(symbol string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return "", false
	}
	balance, ok := s.balances[symbol]
	return balance, ok
}
