package bridge

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Orchestrator", func() {
	var (
		orch *Orchestrator
		ctx  context.Context
		req  Request
	)

	BeforeEach(func() {
		orch = NewOrchestrator(zap.NewNop().Sugar())
		orch.delay = time.Millisecond
		ctx = context.Background()

		req = Request{
			TokenSymbol: "BNB",
			Amount:      "0.5",
			Balance:     "2",
			FromChain:   "BSC",
			ToChain:     "BNW",
		}
	})

	Describe("Initiate", func() {
		var (
			record TransferRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = orch.Initiate(ctx, req)
		})

		When("the request is valid", func() {
			It("should fabricate a pending transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).NotTo(BeEmpty())
				Expect(record.Token).To(Equal("BNB"))
				Expect(record.Amount).To(Equal("0.5"))
				Expect(record.FromChain).To(Equal("BSC"))
				Expect(record.ToChain).To(Equal("BNW"))
				Expect(record.Status).To(Equal(StatusPending))
				Expect(record.TxHash).To(HavePrefix("0x"))
				Expect(record.TxHash).To(HaveLen(66))
				Expect(record.TimeLabel).To(Equal("just now"))
			})

			It("should prepend the record to the history", func() {
				Expect(err).NotTo(HaveOccurred())
				transfers := orch.Transfers()
				Expect(transfers[0].ID).To(Equal(record.ID))
			})
		})

		When("chain names use a different case", func() {
			BeforeEach(func() {
				req.FromChain = "bsc"
				req.ToChain = "bnw"
			})

			It("should normalize them to the registry names", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.FromChain).To(Equal("BSC"))
				Expect(record.ToChain).To(Equal("BNW"))
			})
		})

		When("the amount is not a number", func() {
			BeforeEach(func() {
				req.Amount = "abc"
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(ErrInvalidAmount))
			})
		})

		When("the amount is zero", func() {
			BeforeEach(func() {
				req.Amount = "0"
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(ErrInvalidAmount))
			})
		})

		When("the amount exceeds the balance", func() {
			BeforeEach(func() {
				req.Amount = "3"
			})

			It("should return insufficient balance error", func() {
				Expect(err).To(MatchError(ErrInsufficientBalance))
			})
		})

		When("the source chain is unknown", func() {
			BeforeEach(func() {
				req.FromChain = "ETH"
			})

			It("should return unknown chain error", func() {
				Expect(err).To(MatchError(ErrUnknownChain))
			})
		})

		When("source and destination are the same", func() {
			BeforeEach(func() {
				req.ToChain = "BSC"
			})

			It("should return same chain error", func() {
				Expect(err).To(MatchError(ErrSameChain))
			})
		})

		When("the context is cancelled during the delay", func() {
			BeforeEach(func() {
				orch.delay = time.Minute
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(context.Background())
				cancel()
			})

			It("should return the context error without recording", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(orch.Transfers()).To(HaveLen(2))
			})
		})
	})

	Describe("Transfers", func() {
		It("should start with the demo rows, newest first", func() {
			transfers := orch.Transfers()
			Expect(transfers).To(HaveLen(2))
			Expect(transfers[0].Token).To(Equal("BNB"))
			Expect(transfers[1].Token).To(Equal("BTCB"))
		})

		It("should return a copy of the history", func() {
			transfers := orch.Transfers()
			transfers[0].Token = "HACKED"

			Expect(orch.Transfers()[0].Token).To(Equal("BNB"))
		})
	})
})
