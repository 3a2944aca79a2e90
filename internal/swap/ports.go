package swap

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"dexgate/internal/chain"
	"dexgate/internal/registry"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Router . Router
type Router interface {
	AmountsOut(ctx context.Context, amountIn *big.Int, path []common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name Submitter . Submitter
type Submitter interface {
	SignerAddress() common.Address
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	SubmitApprove(ctx context.Context, token, spender common.Address, amount *big.Int) (*types.Transaction, error)
	SubmitSwap(ctx context.Context, call chain.SwapCall) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Quoter . Quoter
type Quoter interface {
	Estimate(ctx context.Context, from, to registry.Token, amount string) string
}
