package swap

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dexgate/internal/chain"
	"dexgate/internal/registry"
)

// Estimator produces indicative, non-binding output quotes from the router.
// It never returns an error: anything that prevents a quote yields "0".
type Estimator struct {
	logs    *zap.SugaredLogger
	router  Router
	wrapped common.Address
}

func NewEstimator(logger *zap.SugaredLogger, router Router, wrapped common.Address) *Estimator {
	return &Estimator{
		logs:    logger,
		router:  router,
		wrapped: wrapped,
	}
}

// Estimate quotes the output amount for swapping `amount` of `from` into
// `to`. No slippage is applied here. Self-swaps, missing tokens, empty or
// non-positive amounts and chain failures all return "0" without error.
func (e *Estimator) Estimate(ctx context.Context, from, to registry.Token, amount string) string {
	if from.Symbol == "" || to.Symbol == "" || from.Symbol == to.Symbol {
		return "0"
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil || !parsed.IsPositive() {
		return "0"
	}

	amountIn, err := chain.ToBaseUnits(amount, from.Decimals)
	if err != nil || amountIn.Sign() <= 0 {
		return "0"
	}

	path := BuildPath(from, to, e.wrapped)

	out, err := e.router.AmountsOut(ctx, amountIn, path)
	if err != nil {
		e.logs.Errorw("swap estimate failed",
			"from", from.Symbol,
			"to", to.Symbol,
			"amount", amount,
			"error", err)
		return "0"
	}

	return chain.FromBaseUnits(out, to.Decimals)
}

// BuildPath constructs the hop path for a swap: a native endpoint is replaced
// by the wrapped-native token, and the wrapped-native token bridges two
// non-native endpoints. Consecutive duplicate hops are collapsed.
func BuildPath(from, to registry.Token, wrapped common.Address) []common.Address {
	hops := make([]common.Address, 0, 3)

	if from.IsNative() {
		hops = append(hops, wrapped)
	} else {
		hops = append(hops, from.Address)
	}

	if !from.IsNative() && !to.IsNative() {
		hops = append(hops, wrapped)
	}

	if to.IsNative() {
		hops = append(hops, wrapped)
	} else {
		hops = append(hops, to.Address)
	}

	path := hops[:1]
	for _, hop := range hops[1:] {
		if hop != path[len(path)-1] {
			path = append(path, hop)
		}
	}
	return path
}
