package payload

import (
	"dexgate/internal/core"

	"github.com/jellydator/validation"
)

type QuoteRequest struct {
	FromToken string `json:"fromToken"`
	ToToken   string `json:"toToken"`
	Amount    string `json:"amount"`
}

func (q QuoteRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.FromToken, validation.Required),
		validation.Field(&q.ToToken, validation.Required),
		validation.Field(&q.Amount, validation.Required),
	)
}

func (q QuoteRequest) ToMessage() core.QuoteMessage {
	return core.QuoteMessage{
		FromToken: q.FromToken,
		ToToken:   q.ToToken,
		Amount:    q.Amount,
	}
}
