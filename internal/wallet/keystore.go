package wallet

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// KeyStoreSigner wraps a go-ethereum keystore directory and signs with its
// first account. It satisfies both the session's Signer port and the chain
// service's TxSigner port.
type KeyStoreSigner struct {
	ks        *keystore.KeyStore
	account   accounts.Account
	available bool
}

func NewKeyStoreSigner(dir string) *KeyStoreSigner {
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)

	signer := &KeyStoreSigner{ks: ks}
	if accs := ks.Accounts(); len(accs) > 0 {
		signer.account = accs[0]
		signer.available = true
	}
	return signer
}

func (s *KeyStoreSigner) Available() bool {
	return s.available
}

func (s *KeyStoreSigner) Address() common.Address {
	return s.account.Address
}

func (s *KeyStoreSigner) Unlock(passphrase string) error {
	if !s.available {
		return ErrWalletNotConfigured
	}
	if err := s.ks.Unlock(s.account, passphrase); err != nil {
		return fmt.Errorf("%w: %w", ErrUnlockRejected, err)
	}
	return nil
}

func (s *KeyStoreSigner) SignTx(chainID *big.Int, tx *types.Transaction) (*types.Transaction, error) {
	return s.ks.SignTx(s.account, tx, chainID)
}
