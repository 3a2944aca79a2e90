package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"dexgate/internal/registry"
)

var ErrNoSigner = errors.New("no signing account bound")

const (
	receiptPollInterval = time.Second

	// matches the UI's flat estimate of a router call
	fallbackGasFee   = 0.0005
	estimateGasUnits = 100000
)

// Service is the single handle the rest of the gateway uses to talk to the
// chain: balance reads, router quotes and signed router/ERC20 transactions.
type Service struct {
	logs   *zap.SugaredLogger
	signer TxSigner
	router common.Address

	routerABI abi.ABI
	erc20ABI  abi.ABI

	mu      sync.RWMutex
	client  EthClient
	chainID *big.Int
}

func NewService(logger *zap.SugaredLogger, client EthClient, signer TxSigner, router common.Address) (*Service, error) {
	routerABI, err := abi.JSON(strings.NewReader(routerABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}

	erc20ABI, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	return &Service{
		logs:      logger,
		client:    client,
		signer:    signer,
		router:    router,
		routerABI: routerABI,
		erc20ABI:  erc20ABI,
	}, nil
}

// Rebind swaps the underlying node client. Chain-bound state derived from the
// previous client (the cached chain id) is discarded.
func (s *Service) Rebind(client EthClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = client
	s.chainID = nil
}

func (s *Service) node() EthClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Service) ChainID(ctx context.Context) (*big.Int, error) {
	s.mu.RLock()
	cached := s.chainID
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	id, err := s.node().ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}

	s.mu.Lock()
	s.chainID = id
	s.mu.Unlock()
	return id, nil
}

func (s *Service) SignerAddress() common.Address {
	return s.signer.Address()
}

// NativeBalance returns the owner's native-currency balance as a decimal
// string at 18 decimals.
func (s *Service) NativeBalance(ctx context.Context, owner common.Address) (string, error) {
	wei, err := s.node().BalanceAt(ctx, owner, nil)
	if err != nil {
		return "", fmt.Errorf("native balance of %s: %w", owner.Hex(), err)
	}
	return FromBaseUnits(wei, registry.NativeDecimals), nil
}

// TokenBalances reads every token's balance for the owner concurrently. A
// token that fails to read is omitted from the result and its error joined
// into the returned error; other tokens are unaffected.
func (s *Service) TokenBalances(ctx context.Context, owner common.Address, tokens []registry.Token) (map[string]string, error) {
	resultsChan := make(chan balanceResult)

	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token registry.Token) {
			defer wg.Done()

			var raw *big.Int
			var err error
			if token.IsNative() {
				raw, err = s.node().BalanceAt(ctx, owner, nil)
			} else {
				raw, err = s.tokenBalance(ctx, token.Address, owner)
			}
			if err != nil {
				resultsChan <- balanceResult{Symbol: token.Symbol, Error: fmt.Errorf("balance of %s: %w", token.Symbol, err)}
				return
			}
			resultsChan <- balanceResult{Symbol: token.Symbol, Balance: FromBaseUnits(raw, token.Decimals)}
		}(token)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	balances := make(map[string]string, len(tokens))
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		balances[result.Symbol] = result.Balance
	}

	return balances, aggrErr
}

func (s *Service) tokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	input, err := s.erc20ABI.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}

	output, err := s.node().CallContract(ctx, ethereum.CallMsg{To: &token, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call balanceOf: %w", err)
	}

	unpacked, err := s.erc20ABI.Unpack("balanceOf", output)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}

	return abi.ConvertType(unpacked[0], new(big.Int)).(*big.Int), nil
}

// AmountsOut asks the router for the output amounts along the hop path and
// returns the final one.
func (s *Service) AmountsOut(ctx context.Context, amountIn *big.Int, path []common.Address) (*big.Int, error) {
	input, err := s.routerABI.Pack("getAmountsOut", amountIn, path)
	if err != nil {
		return nil, fmt.Errorf("pack getAmountsOut: %w", err)
	}

	output, err := s.node().CallContract(ctx, ethereum.CallMsg{To: &s.router, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call getAmountsOut: %w", err)
	}

	unpacked, err := s.routerABI.Unpack("getAmountsOut", output)
	if err != nil {
		return nil, fmt.Errorf("unpack getAmountsOut: %w", err)
	}

	amounts := abi.ConvertType(unpacked[0], new([]*big.Int)).(*[]*big.Int)
	if len(*amounts) == 0 {
		return nil, errors.New("router returned no amounts")
	}

	return (*amounts)[len(*amounts)-1], nil
}

func (s *Service) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	input, err := s.erc20ABI.Pack("allowance", owner, spender)
	if err != nil {
		return nil, fmt.Errorf("pack allowance: %w", err)
	}

	output, err := s.node().CallContract(ctx, ethereum.CallMsg{To: &token, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call allowance: %w", err)
	}

	unpacked, err := s.erc20ABI.Unpack("allowance", output)
	if err != nil {
		return nil, fmt.Errorf("unpack allowance: %w", err)
	}

	return abi.ConvertType(unpacked[0], new(big.Int)).(*big.Int), nil
}

// SubmitApprove signs and broadcasts an ERC20 approval of the router for the
// given amount. It does not wait for mining.
func (s *Service) SubmitApprove(ctx context.Context, token, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	input, err := s.erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, fmt.Errorf("pack approve: %w", err)
	}
	return s.submitTx(ctx, token, nil, input)
}

// SubmitSwap signs and broadcasts the router call matching the swap kind. It
// does not wait for mining.
func (s *Service) SubmitSwap(ctx context.Context, call SwapCall) (*types.Transaction, error) {
	var input []byte
	var value *big.Int
	var err error

	switch call.Kind {
	case SwapNativeForTokens:
		input, err = s.routerABI.Pack("swapExactETHForTokens", call.MinOut, call.Path, call.Recipient, call.Deadline)
		value = call.AmountIn
	case SwapTokensForNative:
		input, err = s.routerABI.Pack("swapExactTokensForETH", call.AmountIn, call.MinOut, call.Path, call.Recipient, call.Deadline)
	case SwapTokensForTokens:
		input, err = s.routerABI.Pack("swapExactTokensForTokens", call.AmountIn, call.MinOut, call.Path, call.Recipient, call.Deadline)
	default:
		return nil, fmt.Errorf("unknown swap kind: %d", call.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("pack swap call: %w", err)
	}

	return s.submitTx(ctx, s.router, value, input)
}

// WaitMined polls for the transaction receipt until it is available or the
// context is done.
func (s *Service) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.node().TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			s.logs.Errorw("transaction receipt lookup failed", "tx", tx.Hash().Hex(), "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// EstimateGasFee returns a rough native-currency fee for one router call,
// falling back to a flat default when the node is unreachable.
func (s *Service) EstimateGasFee(ctx context.Context) float64 {
	gasPrice, err := s.node().SuggestGasPrice(ctx)
	if err != nil {
		s.logs.Errorw("gas price suggestion failed", "error", err)
		return fallbackGasFee
	}

	feeWei := new(big.Int).Mul(gasPrice, big.NewInt(estimateGasUnits))
	fee, _ := new(big.Float).Quo(new(big.Float).SetInt(feeWei), big.NewFloat(1e18)).Float64()
	return fee
}

func (s *Service) submitTx(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	if s.signer == nil {
		return nil, ErrNoSigner
	}
	from := s.signer.Address()

	nonce, err := s.node().PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}

	gasPrice, err := s.node().SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	gasLimit, err := s.node().EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	chainID, err := s.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})

	signed, err := s.signer.SignTx(chainID, tx)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.node().SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	s.logs.Infow("transaction submitted", "tx", signed.Hash().Hex(), "to", to.Hex())
	return signed, nil
}
