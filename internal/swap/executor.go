package swap

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dexgate/internal/chain"
	"dexgate/internal/registry"
)

// Phase is the executor's position in the approve-then-swap sequence. The
// sequence is not atomic on-chain, so each attempt walks the phases
// explicitly and an attempt resumed after a mined approval detects the
// existing allowance and skips straight to Approved.
type Phase string

const (
	PhaseNeedsApproval Phase = "needs_approval"
	PhaseApproving     Phase = "approving"
	PhaseApproved      Phase = "approved"
	PhaseSwapping      Phase = "swapping"
	PhaseDone          Phase = "done"
	PhaseFailed        Phase = "failed"
)

const deadlineWindow = 20 * time.Minute

// Result is the outcome of one swap attempt. Failures carry a message
// instead of an error value so callers render them directly.
type Result struct {
	Success bool   `json:"success"`
	TxHash  string `json:"txHash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Executor builds and submits router swap transactions with a
// slippage-adjusted minimum output and a fixed deadline window.
type Executor struct {
	logs      *zap.SugaredLogger
	quoter    Quoter
	submitter Submitter
	router    common.Address
	wrapped   common.Address
	now       func() time.Time
}

func NewExecutor(logger *zap.SugaredLogger, quoter Quoter, submitter Submitter, router, wrapped common.Address) *Executor {
	return &Executor{
		logs:      logger,
		quoter:    quoter,
		submitter: submitter,
		router:    router,
		wrapped:   wrapped,
		now:       time.Now,
	}
}

// Swap executes one swap. The estimate is always recomputed here so a stale
// quote can never silently cross an amount change.
func (x *Executor) Swap(ctx context.Context, from, to registry.Token, amount string, slippagePct float64) Result {
	amountIn, err := chain.ToBaseUnits(amount, from.Decimals)
	if err != nil || amountIn.Sign() <= 0 {
		return Result{Success: false, Error: "invalid amount"}
	}

	estimate := x.quoter.Estimate(ctx, from, to, amount)
	estDec, err := decimal.NewFromString(estimate)
	if err != nil || !estDec.IsPositive() {
		return Result{Success: false, Error: "unable to estimate swap output"}
	}

	minOut := minOutput(estDec, slippagePct, to.Decimals)
	deadline := big.NewInt(x.now().Add(deadlineWindow).Unix())
	path := BuildPath(from, to, x.wrapped)
	recipient := x.submitter.SignerAddress()

	phase := PhaseNeedsApproval
	if !from.IsNative() {
		phase = x.ensureApproval(ctx, from, amountIn)
		if phase == PhaseFailed {
			return Result{Success: false, Error: "token approval failed"}
		}
	} else {
		phase = PhaseApproved
	}

	phase = PhaseSwapping
	x.logPhase(phase, from, to, amount)

	call := chain.SwapCall{
		Kind:      swapKind(from, to),
		AmountIn:  amountIn,
		MinOut:    minOut,
		Path:      path,
		Recipient: recipient,
		Deadline:  deadline,
	}

	tx, err := x.submitter.SubmitSwap(ctx, call)
	if err != nil {
		x.logPhase(PhaseFailed, from, to, amount)
		x.logs.Errorw("swap submission failed", "error", err)
		return Result{Success: false, Error: err.Error()}
	}

	receipt, err := x.submitter.WaitMined(ctx, tx)
	if err != nil {
		x.logPhase(PhaseFailed, from, to, amount)
		x.logs.Errorw("waiting for swap receipt failed", "tx", tx.Hash().Hex(), "error", err)
		return Result{Success: false, TxHash: tx.Hash().Hex(), Error: err.Error()}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		x.logPhase(PhaseFailed, from, to, amount)
		return Result{Success: false, TxHash: receipt.TxHash.Hex(), Error: "swap transaction reverted"}
	}

	x.logPhase(PhaseDone, from, to, amount)
	return Result{Success: true, TxHash: receipt.TxHash.Hex()}
}

// ensureApproval walks NeedsApproval -> Approving -> Approved for an ERC20
// source. An allowance already covering the input amount short-circuits the
// approval transaction.
func (x *Executor) ensureApproval(ctx context.Context, from registry.Token, amountIn *big.Int) Phase {
	owner := x.submitter.SignerAddress()

	allowance, err := x.submitter.Allowance(ctx, from.Address, owner, x.router)
	if err != nil {
		x.logs.Errorw("allowance lookup failed", "token", from.Symbol, "error", err)
		return PhaseFailed
	}

	if allowance.Cmp(amountIn) >= 0 {
		x.logs.Infow("existing allowance covers input, skipping approval",
			"token", from.Symbol,
			"allowance", allowance.String())
		return PhaseApproved
	}

	x.logs.Infow("approving router", "token", from.Symbol, "amount", amountIn.String(), "phase", PhaseApproving)

	tx, err := x.submitter.SubmitApprove(ctx, from.Address, x.router, amountIn)
	if err != nil {
		x.logs.Errorw("approval submission failed", "token", from.Symbol, "error", err)
		return PhaseFailed
	}

	receipt, err := x.submitter.WaitMined(ctx, tx)
	if err != nil {
		x.logs.Errorw("waiting for approval receipt failed", "tx", tx.Hash().Hex(), "error", err)
		return PhaseFailed
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		x.logs.Errorw("approval transaction reverted", "tx", receipt.TxHash.Hex())
		return PhaseFailed
	}

	return PhaseApproved
}

func (x *Executor) logPhase(phase Phase, from, to registry.Token, amount string) {
	x.logs.Infow("swap phase",
		"phase", phase,
		"from", from.Symbol,
		"to", to.Symbol,
		"amount", amount)
}

// minOutput applies the slippage tolerance to the estimate, truncated to the
// destination token's precision, and converts it to base units.
func minOutput(estimate decimal.Decimal, slippagePct float64, decimals int32) *big.Int {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(slippagePct).Div(decimal.NewFromInt(100)))
	return estimate.Mul(factor).Truncate(decimals).Shift(decimals).BigInt()
}

func swapKind(from, to registry.Token) chain.SwapKind {
	switch {
	case from.IsNative():
		return chain.SwapNativeForTokens
	case to.IsNative():
		return chain.SwapTokensForNative
	default:
		return chain.SwapTokensForTokens
	}
}
