package payload

import (
	"dexgate/internal/core"

	"github.com/jellydator/validation"
)

type SwapRequest struct {
	FromToken string  `json:"fromToken"`
	ToToken   string  `json:"toToken"`
	Amount    string  `json:"amount"`
	Slippage  float64 `json:"slippage"`
}

func (s SwapRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FromToken, validation.Required),
		validation.Field(&s.ToToken, validation.Required),
		validation.Field(&s.Amount, validation.Required),
		validation.Field(&s.Slippage, validation.Min(0.0), validation.Max(50.0)),
	)
}

func (s SwapRequest) ToMessage(authToken string) core.SwapMessage {
	return core.SwapMessage{
		Token:     authToken,
		FromToken: s.FromToken,
		ToToken:   s.ToToken,
		Amount:    s.Amount,
		Slippage:  s.Slippage,
	}
}
