package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"dexgate/internal/bridge"
	"dexgate/internal/core"
	"dexgate/internal/http/handler"
	"dexgate/internal/http/handler/fake"
	"dexgate/internal/store"
	"dexgate/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DexHandler", func() {
	var (
		dh            *handler.DexHandler
		fakeService   *fake.DexService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.DexService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		dh = handler.NewDexHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pass"}`)
			req = httptest.NewRequest("POST", "/api/authenticate", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.AuthenticateReturns(testToken, nil)
		})

		JustBeforeEach(func() {
			dh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
				Expect(msg.Password).To(Equal("pass"))

				Expect(fakeValidator.DecodeAndValidateJSONPayloadCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeAndValidateJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserNotFound.Error()))
			})
		})

		When("the password is incorrect", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 and hide the error detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetPrices", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/prices", nil)
			fakeService.PricesReturns(map[string]float64{"BNB": 574.32, "CAKE": 2.87})
		})

		JustBeforeEach(func() {
			dh.HandleGetPrices(w, req)
		})

		It("should return a flat symbol-to-price map", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]float64
			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response).To(Equal(map[string]float64{"BNB": 574.32, "CAKE": 2.87}))
		})
	})

	Describe("HandleCreateTransaction", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"walletAddress":"0x1111111111111111111111111111111111111111","fromToken":"BNB","toToken":"CAKE","fromAmount":"1","toAmount":"2.87","txHash":"0xdead","status":"completed"}`)
			req = httptest.NewRequest("POST", "/api/transactions", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RecordTransactionReturns(store.Transaction{ID: 1, TxHash: "0xdead"}, nil)
		})

		JustBeforeEach(func() {
			dh.HandleCreateTransaction(w, req)
		})

		When("the record is saved", func() {
			It("should return 201 with the stored record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var saved store.Transaction
				decErr := json.NewDecoder(w.Body).Decode(&saved)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal(uint(1)))

				Expect(fakeService.RecordTransactionCallCount()).To(Equal(1))
				_, msg := fakeService.RecordTransactionArgsForCall(0)
				Expect(msg.TxHash).To(Equal("0xdead"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RecordTransactionCallCount()).To(Equal(0))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeService.RecordTransactionReturns(store.Transaction{}, fakeErr)
			})

			It("should return 500 and hide the error detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/transactions/0x007", nil)
			req.SetPathValue("walletAddress", "0x007")
		})

		JustBeforeEach(func() {
			dh.HandleGetTransactions(w, req)
		})

		When("the wallet has records", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns([]store.Transaction{
					{ID: 1, TxHash: "0x1"},
					{ID: 2, TxHash: "0x2"},
				}, nil)
			})

			It("should return the bare array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var transactions []store.Transaction
				decErr := json.NewDecoder(w.Body).Decode(&transactions)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))

				_, walletAddress := fakeService.WalletTransactionsArgsForCall(0)
				Expect(walletAddress).To(Equal("0x007"))
			})
		})

		When("the wallet has no records", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns([]store.Transaction{}, nil)
			})

			It("should return an empty array, not null", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			})
		})

		When("the wallet address is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/transactions/", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("wallet address parameter is required"))
				Expect(fakeService.WalletTransactionsCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetBalances", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/balances", nil)
		})

		JustBeforeEach(func() {
			dh.HandleGetBalances(w, req)
		})

		When("the session is connected", func() {
			BeforeEach(func() {
				fakeService.BalancesReturns(wallet.BalanceSnapshot{
					Address: "0x007",
					Native:  "2.5",
					Tokens:  map[string]string{"BUSD": "100"},
				}, nil)
			})

			It("should return the snapshot", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var snapshot wallet.BalanceSnapshot
				decErr := json.NewDecoder(w.Body).Decode(&snapshot)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(snapshot.Address).To(Equal("0x007"))
				Expect(snapshot.Tokens["BUSD"]).To(Equal("100"))
			})
		})

		When("no signing account is configured", func() {
			BeforeEach(func() {
				fakeService.BalancesReturns(wallet.BalanceSnapshot{}, wallet.ErrWalletNotConfigured)
			})

			It("should return 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(w.Body.String()).To(ContainSubstring(wallet.ErrWalletNotConfigured.Error()))
			})
		})

		When("the node serves the wrong chain", func() {
			BeforeEach(func() {
				fakeService.BalancesReturns(wallet.BalanceSnapshot{}, wallet.ErrChainMismatch)
			})

			It("should return 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakeService.BalancesReturns(wallet.BalanceSnapshot{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleQuote", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"fromToken":"BNB","toToken":"CAKE","amount":"1"}`)
			req = httptest.NewRequest("POST", "/api/quote", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.QuoteReturns("2.87", nil)
		})

		JustBeforeEach(func() {
			dh.HandleQuote(w, req)
		})

		When("the estimate succeeds", func() {
			It("should return the amount out", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["amountOut"]).To(Equal("2.87"))

				_, msg := fakeService.QuoteArgsForCall(0)
				Expect(msg.FromToken).To(Equal("BNB"))
				Expect(msg.ToToken).To(Equal("CAKE"))
				Expect(msg.Amount).To(Equal("1"))
			})
		})

		When("a token is unknown", func() {
			BeforeEach(func() {
				fakeService.QuoteReturns("", core.ErrUnknownToken)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUnknownToken.Error()))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.QuoteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleExecuteSwap", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"fromToken":"BNB","toToken":"CAKE","amount":"1","slippage":0.5}`)
			req = httptest.NewRequest("POST", "/api/swap", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("AUTH_TOKEN", testToken)

			fakeService.ExecuteSwapReturns(core.SwapReport{Success: true, TxHash: "0xdead"}, nil)
		})

		JustBeforeEach(func() {
			dh.HandleExecuteSwap(w, req)
		})

		When("the swap succeeds", func() {
			It("should return the report", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var report core.SwapReport
				decErr := json.NewDecoder(w.Body).Decode(&report)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(report.Success).To(BeTrue())
				Expect(report.TxHash).To(Equal("0xdead"))

				_, msg := fakeService.ExecuteSwapArgsForCall(0)
				Expect(msg.Token).To(Equal(testToken))
				Expect(msg.FromToken).To(Equal("BNB"))
				Expect(msg.Slippage).To(Equal(0.5))
			})
		})

		When("the swap fails on-chain", func() {
			BeforeEach(func() {
				fakeService.ExecuteSwapReturns(core.SwapReport{Success: false, Error: "swap transaction reverted"}, nil)
			})

			It("should still return 200 with the failed report", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var report core.SwapReport
				decErr := json.NewDecoder(w.Body).Decode(&report)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(report.Success).To(BeFalse())
				Expect(report.Error).To(Equal("swap transaction reverted"))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ExecuteSwapCallCount()).To(Equal(0))
				Expect(fakeValidator.DecodeAndValidateJSONPayloadCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ExecuteSwapCallCount()).To(Equal(0))
			})
		})

		When("the balance does not cover the swap", func() {
			BeforeEach(func() {
				fakeService.ExecuteSwapReturns(core.SwapReport{}, core.ErrInsufficientBalance)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInsufficientBalance.Error()))
			})
		})

		When("the wallet session is down", func() {
			BeforeEach(func() {
				fakeService.ExecuteSwapReturns(core.SwapReport{}, wallet.ErrNotConnected)
			})

			It("should return 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})

	Describe("HandleInitiateBridge", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"token":"BUSD","amount":"50","fromChain":"BSC","toChain":"BNW"}`)
			req = httptest.NewRequest("POST", "/api/bridge", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("AUTH_TOKEN", testToken)

			fakeService.InitiateBridgeReturns(bridge.TransferRecord{
				ID:     "t-1",
				Token:  "BUSD",
				Status: bridge.StatusPending,
			}, nil)
		})

		JustBeforeEach(func() {
			dh.HandleInitiateBridge(w, req)
		})

		When("the transfer is initiated", func() {
			It("should return the pending record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var record bridge.TransferRecord
				decErr := json.NewDecoder(w.Body).Decode(&record)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("t-1"))
				Expect(record.Status).To(Equal(bridge.StatusPending))

				_, msg := fakeService.InitiateBridgeArgsForCall(0)
				Expect(msg.Token).To(Equal(testToken))
				Expect(msg.TokenSymbol).To(Equal("BUSD"))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.InitiateBridgeCallCount()).To(Equal(0))
			})
		})

		When("the chains are the same", func() {
			BeforeEach(func() {
				fakeService.InitiateBridgeReturns(bridge.TransferRecord{}, bridge.ErrSameChain)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(bridge.ErrSameChain.Error()))
			})
		})

		When("the session is not connected", func() {
			BeforeEach(func() {
				fakeService.InitiateBridgeReturns(bridge.TransferRecord{}, wallet.ErrNotConnected)
			})

			It("should return 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})

	Describe("HandleGetBridgeTransfers", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/bridge/transfers", nil)
			fakeService.BridgeTransfersReturns([]bridge.TransferRecord{
				{ID: "t-2", Status: bridge.StatusPending},
				{ID: "t-1", Status: "completed"},
			})
		})

		JustBeforeEach(func() {
			dh.HandleGetBridgeTransfers(w, req)
		})

		It("should list the transfer history", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var transfers []bridge.TransferRecord
			decErr := json.NewDecoder(w.Body).Decode(&transfers)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(2))
			Expect(transfers[0].ID).To(Equal("t-2"))
		})
	})
})
