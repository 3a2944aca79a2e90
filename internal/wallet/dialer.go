package wallet

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"

	"dexgate/internal/chain"
)

// EthDialer dials JSON-RPC endpoints with the standard go-ethereum client.
type EthDialer struct{}

func (EthDialer) Dial(ctx context.Context, rawurl string) (chain.EthClient, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("dial %q: %w", rawurl, err)
	}
	return client, nil
}
