package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type SwapKind int

const (
	SwapNativeForTokens SwapKind = iota
	SwapTokensForNative
	SwapTokensForTokens
)

// SwapCall carries everything needed to submit one router swap transaction.
type SwapCall struct {
	Kind      SwapKind
	AmountIn  *big.Int
	MinOut    *big.Int
	Path      []common.Address
	Recipient common.Address
	Deadline  *big.Int
}

type balanceResult struct {
	Symbol  string
	Balance string
	Error   error
}
