package payload

import (
	"regexp"

	"github.com/jellydator/validation"

	"dexgate/internal/core"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
var hashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

type TransactionRequest struct {
	WalletAddress string `json:"walletAddress"`
	FromToken     string `json:"fromToken"`
	ToToken       string `json:"toToken"`
	FromAmount    string `json:"fromAmount"`
	ToAmount      string `json:"toAmount"`
	TxHash        string `json:"txHash"`
	Status        string `json:"status"`
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.WalletAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.FromToken, validation.Required),
		validation.Field(&t.ToToken, validation.Required),
		validation.Field(&t.FromAmount, validation.Required),
		validation.Field(&t.ToAmount, validation.Required),
		validation.Field(&t.TxHash, validation.Required, validation.Match(hashRegex)),
		validation.Field(&t.Status, validation.In("pending", "completed", "failed")),
	)
}

func (t TransactionRequest) ToMessage() core.TransactionMessage {
	return core.TransactionMessage{
		WalletAddress: t.WalletAddress,
		FromToken:     t.FromToken,
		ToToken:       t.ToToken,
		FromAmount:    t.FromAmount,
		ToAmount:      t.ToAmount,
		TxHash:        t.TxHash,
		Status:        t.Status,
	}
}
