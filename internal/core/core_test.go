package core_test

import (
	"context"
	"errors"

	"dexgate/internal/bridge"
	"dexgate/internal/core"
	"dexgate/internal/core/fake"
	"dexgate/internal/registry"
	"dexgate/internal/store"
	"dexgate/internal/swap"
	"dexgate/internal/wallet"
	tokenIssuer "dexgate/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Service", func() {
	var (
		fakeSession *fake.Session
		fakeQuoter  *fake.Quoter
		fakeSwapper *fake.Swapper
		fakeBridger *fake.Bridger
		fakePrices  *fake.PriceSource
		fakeStore   *fake.Store
		fakeJWT     *fake.JWTGenerator
		ctx         context.Context

		service *core.Service

		fakeErr error
	)

	BeforeEach(func() {
		fakeSession = new(fake.Session)
		fakeQuoter = new(fake.Quoter)
		fakeSwapper = new(fake.Swapper)
		fakeBridger = new(fake.Bridger)
		fakePrices = new(fake.PriceSource)
		fakeStore = new(fake.Store)
		fakeJWT = new(fake.JWTGenerator)
		ctx = context.Background()

		bsc, ok := registry.ChainByName("BSC")
		Expect(ok).To(BeTrue())

		service = core.NewService(zap.NewNop().Sugar(), bsc, fakeSession, fakeQuoter, fakeSwapper, fakeBridger, fakePrices, fakeStore, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = service.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(store.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeStore.UserByUsernameCallCount()).To(Equal(1))
				_, username := fakeStore.UserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(store.User{}, store.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(store.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(store.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Prices", func() {
		BeforeEach(func() {
			fakePrices.SnapshotReturns(map[string]float64{"BNB": 574.32})
		})

		It("should return the feed snapshot", func() {
			prices := service.Prices()
			Expect(prices).To(Equal(map[string]float64{"BNB": 574.32}))
			Expect(fakePrices.SnapshotCallCount()).To(Equal(1))
		})
	})

	Describe("Balances", func() {
		var (
			snapshot wallet.BalanceSnapshot
			err      error
		)

		BeforeEach(func() {
			fakeSession.BalancesReturns(wallet.BalanceSnapshot{
				Address: "0x007",
				Native:  "2.5",
				Tokens:  map[string]string{"BUSD": "100"},
			}, nil)
		})

		JustBeforeEach(func() {
			snapshot, err = service.Balances(ctx)
		})

		When("the session is already connected", func() {
			BeforeEach(func() {
				fakeSession.ConnectedReturns(true)
			})

			It("should return the snapshot without reconnecting", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(snapshot.Address).To(Equal("0x007"))
				Expect(fakeSession.ConnectCallCount()).To(Equal(0))
			})
		})

		When("the session is not connected", func() {
			BeforeEach(func() {
				fakeSession.ConnectedReturns(false)
				fakeSession.ConnectReturns(nil)
			})

			It("should connect first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSession.ConnectCallCount()).To(Equal(1))
				Expect(snapshot.Native).To(Equal("2.5"))
			})
		})

		When("connecting fails", func() {
			BeforeEach(func() {
				fakeSession.ConnectedReturns(false)
				fakeSession.ConnectReturns(wallet.ErrWalletNotConfigured)
			})

			It("should return the connect error", func() {
				Expect(err).To(MatchError(wallet.ErrWalletNotConfigured))
			})
		})
	})

	Describe("Quote", func() {
		var (
			quoteMsg core.QuoteMessage
			quote    string
			err      error
		)

		BeforeEach(func() {
			quoteMsg = core.QuoteMessage{
				FromToken: "BNB",
				ToToken:   "CAKE",
				Amount:    "1",
			}
			fakeQuoter.EstimateReturns("2.87")
		})

		JustBeforeEach(func() {
			quote, err = service.Quote(ctx, quoteMsg)
		})

		When("both tokens are listed", func() {
			It("should return the estimate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(quote).To(Equal("2.87"))

				Expect(fakeQuoter.EstimateCallCount()).To(Equal(1))
				_, from, to, amount := fakeQuoter.EstimateArgsForCall(0)
				Expect(from.Symbol).To(Equal("BNB"))
				Expect(to.Symbol).To(Equal("CAKE"))
				Expect(amount).To(Equal("1"))
			})
		})

		When("the source token is unknown", func() {
			BeforeEach(func() {
				quoteMsg.FromToken = "DOGE"
			})

			It("should return unknown token error", func() {
				Expect(err).To(MatchError(core.ErrUnknownToken))
				Expect(fakeQuoter.EstimateCallCount()).To(Equal(0))
			})
		})

		When("the destination token is unknown", func() {
			BeforeEach(func() {
				quoteMsg.ToToken = "DOGE"
			})

			It("should return unknown token error", func() {
				Expect(err).To(MatchError(core.ErrUnknownToken))
			})
		})
	})

	Describe("ExecuteSwap", func() {
		var (
			swapMsg core.SwapMessage
			report  core.SwapReport
			err     error
		)

		BeforeEach(func() {
			swapMsg = core.SwapMessage{
				Token:     "valid.token",
				FromToken: "BNB",
				ToToken:   "CAKE",
				Amount:    "1",
				Slippage:  0.5,
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
			fakeSession.BalancesReturns(wallet.BalanceSnapshot{
				Address: "0x007",
				Native:  "2.5",
				Tokens:  map[string]string{"BNB": "2.5", "CAKE": "0"},
			}, nil)
			fakeSwapper.SwapReturns(swap.Result{Success: true, TxHash: "0xdead"})
			fakeQuoter.EstimateReturns("2.87")
			fakeStore.SaveTransactionStub = func(ctx context.Context, tx store.Transaction) (store.Transaction, error) {
				tx.ID = 1
				return tx, nil
			}
		})

		JustBeforeEach(func() {
			report, err = service.ExecuteSwap(ctx, swapMsg)
		})

		When("the swap succeeds", func() {
			It("should record the transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Success).To(BeTrue())
				Expect(report.TxHash).To(Equal("0xdead"))
				Expect(report.Transaction).NotTo(BeNil())
				Expect(report.Transaction.ID).To(Equal(uint(1)))

				Expect(fakeSwapper.SwapCallCount()).To(Equal(1))
				_, from, to, amount, slippage := fakeSwapper.SwapArgsForCall(0)
				Expect(from.Symbol).To(Equal("BNB"))
				Expect(to.Symbol).To(Equal("CAKE"))
				Expect(amount).To(Equal("1"))
				Expect(slippage).To(Equal(0.5))

				Expect(fakeStore.SaveTransactionCallCount()).To(Equal(1))
				_, tx := fakeStore.SaveTransactionArgsForCall(0)
				Expect(tx.WalletAddress).To(Equal("0x007"))
				Expect(tx.FromToken).To(Equal("BNB"))
				Expect(tx.ToToken).To(Equal("CAKE"))
				Expect(tx.FromAmount).To(Equal("1"))
				Expect(tx.ToAmount).To(Equal("2.87"))
				Expect(tx.TxHash).To(Equal("0xdead"))
				Expect(tx.Status).To(Equal(store.StatusCompleted))
			})

			It("should refresh the balances in the background", func() {
				Eventually(func() int {
					return fakeSession.RefreshBalancesCallCount()
				}).Should(Equal(1))
			})
		})

		When("the auth token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should reject before touching the session", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSession.BalancesCallCount()).To(Equal(0))
				Expect(fakeSwapper.SwapCallCount()).To(Equal(0))
			})
		})

		When("the session is not connected", func() {
			BeforeEach(func() {
				fakeSession.BalancesReturns(wallet.BalanceSnapshot{}, wallet.ErrNotConnected)
			})

			It("should return the session error", func() {
				Expect(err).To(MatchError(wallet.ErrNotConnected))
				Expect(fakeSwapper.SwapCallCount()).To(Equal(0))
			})
		})

		When("the source token is unknown", func() {
			BeforeEach(func() {
				swapMsg.FromToken = "DOGE"
			})

			It("should return unknown token error", func() {
				Expect(err).To(MatchError(core.ErrUnknownToken))
				Expect(fakeSwapper.SwapCallCount()).To(Equal(0))
			})
		})

		When("the amount is not positive", func() {
			BeforeEach(func() {
				swapMsg.Amount = "0"
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeSwapper.SwapCallCount()).To(Equal(0))
			})
		})

		When("the wallet holds too little of the source token", func() {
			BeforeEach(func() {
				swapMsg.Amount = "5"
			})

			It("should return insufficient balance error", func() {
				Expect(err).To(MatchError(core.ErrInsufficientBalance))
				Expect(fakeSwapper.SwapCallCount()).To(Equal(0))
			})
		})

		When("the swap fails on-chain", func() {
			BeforeEach(func() {
				fakeSwapper.SwapReturns(swap.Result{Success: false, Error: "swap transaction reverted"})
			})

			It("should return the failed report without recording", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Success).To(BeFalse())
				Expect(report.Error).To(Equal("swap transaction reverted"))
				Expect(fakeStore.SaveTransactionCallCount()).To(Equal(0))
			})
		})

		When("recording the transaction fails", func() {
			BeforeEach(func() {
				fakeStore.SaveTransactionStub = nil
				fakeStore.SaveTransactionReturns(store.Transaction{}, fakeErr)
			})

			It("should still report the swap as successful", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Success).To(BeTrue())
				Expect(report.Transaction).To(BeNil())
			})
		})
	})

	Describe("InitiateBridge", func() {
		var (
			bridgeMsg core.BridgeMessage
			record    bridge.TransferRecord
			err       error
		)

		BeforeEach(func() {
			bridgeMsg = core.BridgeMessage{
				Token:       "valid.token",
				TokenSymbol: "BUSD",
				Amount:      "50",
				FromChain:   "BSC",
				ToChain:     "BNW",
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
			fakeSession.BalancesReturns(wallet.BalanceSnapshot{
				Address: "0x007",
				Native:  "2.5",
				Tokens:  map[string]string{"BUSD": "100"},
			}, nil)
			fakeBridger.InitiateReturns(bridge.TransferRecord{ID: "t-1", Status: bridge.StatusPending}, nil)
		})

		JustBeforeEach(func() {
			record, err = service.InitiateBridge(ctx, bridgeMsg)
		})

		When("bridging an ERC20 token", func() {
			It("should pass the token balance through", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("t-1"))

				Expect(fakeBridger.InitiateCallCount()).To(Equal(1))
				_, req := fakeBridger.InitiateArgsForCall(0)
				Expect(req.TokenSymbol).To(Equal("BUSD"))
				Expect(req.Amount).To(Equal("50"))
				Expect(req.Balance).To(Equal("100"))
				Expect(req.FromChain).To(Equal("BSC"))
				Expect(req.ToChain).To(Equal("BNW"))
			})
		})

		When("bridging the native currency", func() {
			BeforeEach(func() {
				bridgeMsg.TokenSymbol = "BNB"
			})

			It("should use the native balance", func() {
				Expect(err).NotTo(HaveOccurred())
				_, req := fakeBridger.InitiateArgsForCall(0)
				Expect(req.Balance).To(Equal("2.5"))
			})
		})

		When("the wallet holds none of the token", func() {
			BeforeEach(func() {
				bridgeMsg.TokenSymbol = "CAKE"
			})

			It("should pass a zero balance", func() {
				Expect(err).NotTo(HaveOccurred())
				_, req := fakeBridger.InitiateArgsForCall(0)
				Expect(req.Balance).To(Equal("0"))
			})
		})

		When("the auth token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should reject before touching the session", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSession.BalancesCallCount()).To(Equal(0))
				Expect(fakeBridger.InitiateCallCount()).To(Equal(0))
			})
		})

		When("the session is not connected", func() {
			BeforeEach(func() {
				fakeSession.BalancesReturns(wallet.BalanceSnapshot{}, wallet.ErrNotConnected)
			})

			It("should return the session error", func() {
				Expect(err).To(MatchError(wallet.ErrNotConnected))
				Expect(fakeBridger.InitiateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("BridgeTransfers", func() {
		BeforeEach(func() {
			fakeBridger.TransfersReturns([]bridge.TransferRecord{
				{ID: "t-2"},
				{ID: "t-1"},
			})
		})

		It("should list the bridge history", func() {
			transfers := service.BridgeTransfers()
			Expect(transfers).To(HaveLen(2))
			Expect(transfers[0].ID).To(Equal("t-2"))
		})
	})

	Describe("RecordTransaction", func() {
		var txMsg core.TransactionMessage

		BeforeEach(func() {
			txMsg = core.TransactionMessage{
				WalletAddress: "0x007",
				FromToken:     "BNB",
				ToToken:       "CAKE",
				FromAmount:    "1",
				ToAmount:      "2.87",
				TxHash:        "0xdead",
				Status:        store.StatusCompleted,
			}
			fakeStore.SaveTransactionStub = func(ctx context.Context, tx store.Transaction) (store.Transaction, error) {
				tx.ID = 42
				return tx, nil
			}
		})

		It("should persist the reported record", func() {
			saved, err := service.RecordTransaction(ctx, txMsg)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.ID).To(Equal(uint(42)))

			Expect(fakeStore.SaveTransactionCallCount()).To(Equal(1))
			_, tx := fakeStore.SaveTransactionArgsForCall(0)
			Expect(tx.WalletAddress).To(Equal("0x007"))
			Expect(tx.TxHash).To(Equal("0xdead"))
			Expect(tx.Status).To(Equal(store.StatusCompleted))
		})
	})

	Describe("WalletTransactions", func() {
		BeforeEach(func() {
			fakeStore.TransactionsByWalletReturns([]store.Transaction{
				{ID: 1, TxHash: "0x1"},
				{ID: 2, TxHash: "0x2"},
			}, nil)
		})

		It("should list the wallet's records", func() {
			transactions, err := service.WalletTransactions(ctx, "0x007")
			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(2))

			_, walletAddress := fakeStore.TransactionsByWalletArgsForCall(0)
			Expect(walletAddress).To(Equal("0x007"))
		})
	})
})
