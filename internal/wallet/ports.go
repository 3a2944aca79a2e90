package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"dexgate/internal/chain"
	"dexgate/internal/registry"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name NodeService . NodeService
type NodeService interface {
	ChainID(ctx context.Context) (*big.Int, error)
	NativeBalance(ctx context.Context, owner common.Address) (string, error)
	TokenBalances(ctx context.Context, owner common.Address, tokens []registry.Token) (map[string]string, error)
	Rebind(client chain.EthClient)
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	Available() bool
	Address() common.Address
	Unlock(passphrase string) error
}

//counterfeiter:generate -o fake -fake-name Dialer . Dialer
type Dialer interface {
	Dial(ctx context.Context, rawurl string) (chain.EthClient, error)
}
