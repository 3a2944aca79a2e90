package swap_test

import (
	"context"
	"errors"
	"math/big"

	"dexgate/internal/chain"
	"dexgate/internal/registry"
	"dexgate/internal/swap"
	"dexgate/internal/swap/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Executor", func() {
	var (
		executor      *swap.Executor
		fakeQuoter    *fake.Quoter
		fakeSubmitter *fake.Submitter
		ctx           context.Context
		testErr       error

		router  common.Address
		wrapped common.Address
		signer  common.Address
		bnb     registry.Token
		busd    registry.Token
		cake    registry.Token

		pendingTx  *types.Transaction
		okReceipt  *types.Receipt
		badReceipt *types.Receipt

		result swap.Result
	)

	BeforeEach(func() {
		fakeQuoter = new(fake.Quoter)
		fakeSubmitter = new(fake.Submitter)
		ctx = context.Background()
		testErr = errors.New("test error")

		router = common.HexToAddress("0x10ED43C718714eb63d5aA57B78B54704E256024E")
		wrapped = common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c")
		signer = common.HexToAddress("0x00000000000000000000000000000000000a11ce")

		var ok bool
		bnb, ok = registry.BySymbol(big.NewInt(56), "BNB")
		Expect(ok).To(BeTrue())
		busd, ok = registry.BySymbol(big.NewInt(56), "BUSD")
		Expect(ok).To(BeTrue())
		cake, ok = registry.BySymbol(big.NewInt(56), "CAKE")
		Expect(ok).To(BeTrue())

		pendingTx = types.NewTx(&types.LegacyTx{Nonce: 1, To: &router})
		okReceipt = &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: pendingTx.Hash()}
		badReceipt = &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: pendingTx.Hash()}

		fakeQuoter.EstimateReturns("100")
		fakeSubmitter.SignerAddressReturns(signer)
		fakeSubmitter.AllowanceReturns(big.NewInt(0), nil)
		fakeSubmitter.SubmitApproveReturns(pendingTx, nil)
		fakeSubmitter.SubmitSwapReturns(pendingTx, nil)
		fakeSubmitter.WaitMinedReturns(okReceipt, nil)

		executor = swap.NewExecutor(zap.NewNop().Sugar(), fakeQuoter, fakeSubmitter, router, wrapped)
	})

	Describe("Swap", func() {
		var (
			from        registry.Token
			to          registry.Token
			amount      string
			slippagePct float64
		)

		BeforeEach(func() {
			from = busd
			to = cake
			amount = "1"
			slippagePct = 0.5
		})

		JustBeforeEach(func() {
			result = executor.Swap(ctx, from, to, amount, slippagePct)
		})

		When("the amount is invalid", func() {
			BeforeEach(func() {
				amount = "abc"
			})

			It("should fail without touching the chain", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Error).To(Equal("invalid amount"))
				Expect(fakeQuoter.EstimateCallCount()).To(Equal(0))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(0))
			})
		})

		When("no estimate is available", func() {
			BeforeEach(func() {
				fakeQuoter.EstimateReturns("0")
			})

			It("should fail before submitting anything", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Error).To(Equal("unable to estimate swap output"))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(0))
			})
		})

		When("the allowance already covers the input", func() {
			BeforeEach(func() {
				covering, _ := new(big.Int).SetString("1000000000000000000", 10)
				fakeSubmitter.AllowanceReturns(covering, nil)
			})

			It("should skip the approval transaction", func() {
				Expect(result.Success).To(BeTrue())
				Expect(result.TxHash).To(Equal(pendingTx.Hash().Hex()))
				Expect(fakeSubmitter.SubmitApproveCallCount()).To(Equal(0))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(1))
			})

			It("should apply the slippage tolerance to the minimum output", func() {
				_, call := fakeSubmitter.SubmitSwapArgsForCall(0)
				// 100 * (1 - 0.5/100) = 99.5 CAKE
				expected, _ := new(big.Int).SetString("99500000000000000000", 10)
				Expect(call.MinOut).To(Equal(expected))
				Expect(call.AmountIn.String()).To(Equal("1000000000000000000"))
				Expect(call.Kind).To(Equal(chain.SwapTokensForTokens))
				Expect(call.Path).To(Equal([]common.Address{busd.Address, wrapped, cake.Address}))
				Expect(call.Recipient).To(Equal(signer))
				Expect(call.Deadline.Int64()).To(BeNumerically(">", 0))
			})
		})

		When("the allowance is insufficient", func() {
			It("should approve before swapping", func() {
				Expect(result.Success).To(BeTrue())
				Expect(fakeSubmitter.SubmitApproveCallCount()).To(Equal(1))
				_, argToken, argSpender, argAmount := fakeSubmitter.SubmitApproveArgsForCall(0)
				Expect(argToken).To(Equal(busd.Address))
				Expect(argSpender).To(Equal(router))
				Expect(argAmount.String()).To(Equal("1000000000000000000"))

				Expect(fakeSubmitter.WaitMinedCallCount()).To(Equal(2))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(1))
			})
		})

		When("the allowance lookup fails", func() {
			BeforeEach(func() {
				fakeSubmitter.AllowanceReturns(nil, testErr)
			})

			It("should report the approval failure", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Error).To(Equal("token approval failed"))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(0))
			})
		})

		When("the approval submission fails", func() {
			BeforeEach(func() {
				fakeSubmitter.SubmitApproveReturns(nil, testErr)
			})

			It("should report the approval failure", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Error).To(Equal("token approval failed"))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(0))
			})
		})

		When("the approval transaction reverts", func() {
			BeforeEach(func() {
				fakeSubmitter.WaitMinedReturnsOnCall(0, badReceipt, nil)
			})

			It("should report the approval failure", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Error).To(Equal("token approval failed"))
				Expect(fakeSubmitter.SubmitSwapCallCount()).To(Equal(0))
			})
		})

		When("the source token is native", func() {
			BeforeEach(func() {
				from = bnb
			})

			It("should not check or submit any approval", func() {
				Expect(result.Success).To(BeTrue())
				Expect(fakeSubmitter.AllowanceCallCount()).To(Equal(0))
				Expect(fakeSubmitter.SubmitApproveCallCount()).To(Equal(0))

				_, call := fakeSubmitter.SubmitSwapArgsForCall(0)
				Expect(call.Kind).To(Equal(chain.SwapNativeForTokens))
			})
		})

		When("the swap submission fails", func() {
			BeforeEach(func() {
				covering, _ := new(big.Int).SetString("1000000000000000000", 10)
				fakeSubmitter.AllowanceReturns(covering, nil)
				fakeSubmitter.SubmitSwapReturns(nil, testErr)
			})

			It("should carry the submission error", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Error).To(Equal(testErr.Error()))
				Expect(result.TxHash).To(BeEmpty())
			})
		})

		When("the swap transaction reverts", func() {
			BeforeEach(func() {
				covering, _ := new(big.Int).SetString("1000000000000000000", 10)
				fakeSubmitter.AllowanceReturns(covering, nil)
				fakeSubmitter.WaitMinedReturns(badReceipt, nil)
			})

			It("should report the revert with the tx hash", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.TxHash).To(Equal(pendingTx.Hash().Hex()))
				Expect(result.Error).To(Equal("swap transaction reverted"))
			})
		})

		When("waiting for the swap receipt fails", func() {
			BeforeEach(func() {
				covering, _ := new(big.Int).SetString("1000000000000000000", 10)
				fakeSubmitter.AllowanceReturns(covering, nil)
				fakeSubmitter.WaitMinedReturns(nil, testErr)
			})

			It("should carry the error alongside the tx hash", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.TxHash).To(Equal(pendingTx.Hash().Hex()))
				Expect(result.Error).To(Equal(testErr.Error()))
			})
		})
	})
})
