package swap_test

import (
	"context"
	"errors"
	"math/big"

	"dexgate/internal/registry"
	"dexgate/internal/swap"
	"dexgate/internal/swap/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Estimator", func() {
	var (
		estimator  *swap.Estimator
		fakeRouter *fake.Router
		ctx        context.Context
		wrapped    common.Address
		bnb        registry.Token
		busd       registry.Token
		cake       registry.Token
	)

	BeforeEach(func() {
		fakeRouter = new(fake.Router)
		ctx = context.Background()
		wrapped = common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c")

		var ok bool
		bnb, ok = registry.BySymbol(big.NewInt(56), "BNB")
		Expect(ok).To(BeTrue())
		busd, ok = registry.BySymbol(big.NewInt(56), "BUSD")
		Expect(ok).To(BeTrue())
		cake, ok = registry.BySymbol(big.NewInt(56), "CAKE")
		Expect(ok).To(BeTrue())

		estimator = swap.NewEstimator(zap.NewNop().Sugar(), fakeRouter, wrapped)
	})

	Describe("Estimate", func() {
		When("the router answers", func() {
			BeforeEach(func() {
				out, _ := new(big.Int).SetString("2870000000000000000", 10)
				fakeRouter.AmountsOutReturns(out, nil)
			})

			It("should return the formatted quote", func() {
				quote := estimator.Estimate(ctx, bnb, cake, "1")

				Expect(quote).To(Equal("2.87"))
				Expect(fakeRouter.AmountsOutCallCount()).To(Equal(1))
				_, amountIn, path := fakeRouter.AmountsOutArgsForCall(0)
				Expect(amountIn.String()).To(Equal("1000000000000000000"))
				Expect(path).To(Equal([]common.Address{wrapped, cake.Address}))
			})
		})

		When("from and to are the same token", func() {
			It("should return zero without calling the router", func() {
				Expect(estimator.Estimate(ctx, bnb, bnb, "1")).To(Equal("0"))
				Expect(fakeRouter.AmountsOutCallCount()).To(Equal(0))
			})
		})

		When("either token is missing", func() {
			It("should return zero without calling the router", func() {
				Expect(estimator.Estimate(ctx, registry.Token{}, cake, "1")).To(Equal("0"))
				Expect(fakeRouter.AmountsOutCallCount()).To(Equal(0))
			})
		})

		When("the amount is not positive", func() {
			It("should return zero without calling the router", func() {
				Expect(estimator.Estimate(ctx, bnb, cake, "0")).To(Equal("0"))
				Expect(estimator.Estimate(ctx, bnb, cake, "-1")).To(Equal("0"))
				Expect(estimator.Estimate(ctx, bnb, cake, "abc")).To(Equal("0"))
				Expect(fakeRouter.AmountsOutCallCount()).To(Equal(0))
			})
		})

		When("the router call fails", func() {
			BeforeEach(func() {
				fakeRouter.AmountsOutReturns(nil, errors.New("router error"))
			})

			It("should return zero", func() {
				Expect(estimator.Estimate(ctx, bnb, cake, "1")).To(Equal("0"))
			})
		})
	})

	Describe("BuildPath", func() {
		It("should replace a native source with the wrapped token", func() {
			path := swap.BuildPath(bnb, cake, wrapped)
			Expect(path).To(Equal([]common.Address{wrapped, cake.Address}))
		})

		It("should replace a native destination with the wrapped token", func() {
			path := swap.BuildPath(cake, bnb, wrapped)
			Expect(path).To(Equal([]common.Address{cake.Address, wrapped}))
		})

		It("should bridge two tokens through the wrapped token", func() {
			path := swap.BuildPath(busd, cake, wrapped)
			Expect(path).To(Equal([]common.Address{busd.Address, wrapped, cake.Address}))
		})

		It("should collapse duplicate hops when one endpoint is the wrapped token", func() {
			wbnb := registry.Token{Symbol: "WBNB", Address: wrapped, Decimals: 18}
			path := swap.BuildPath(busd, wbnb, wrapped)
			Expect(path).To(Equal([]common.Address{busd.Address, wrapped}))
		})
	})
})
