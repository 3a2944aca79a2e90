package payload

import (
	"dexgate/internal/core"

	"github.com/jellydator/validation"
)

type BridgeRequest struct {
	Token     string `json:"token"`
	Amount    string `json:"amount"`
	FromChain string `json:"fromChain"`
	ToChain   string `json:"toChain"`
}

func (b BridgeRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Token, validation.Required),
		validation.Field(&b.Amount, validation.Required),
		validation.Field(&b.FromChain, validation.Required),
		validation.Field(&b.ToChain, validation.Required),
	)
}

func (b BridgeRequest) ToMessage(authToken string) core.BridgeMessage {
	return core.BridgeMessage{
		Token:       authToken,
		TokenSymbol: b.Token,
		Amount:      b.Amount,
		FromChain:   b.FromChain,
		ToChain:     b.ToChain,
	}
}
