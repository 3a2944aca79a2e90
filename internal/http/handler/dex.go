package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"dexgate/internal/bridge"
	"dexgate/internal/core"
	"dexgate/internal/http/handler/middleware"
	"dexgate/internal/http/payload"
	"dexgate/internal/wallet"
	"dexgate/pkg/jwt"
)

var (
	Authenticate       = "POST /api/authenticate"
	GetPrices          = "GET /api/prices"
	CreateTransaction  = "POST /api/transactions"
	GetTransactions    = "GET /api/transactions/{walletAddress}"
	GetBalances        = "GET /api/balances"
	QuoteSwap          = "POST /api/quote"
	ExecuteSwap        = "POST /api/swap"
	InitiateBridge     = "POST /api/bridge"
	GetBridgeTransfers = "GET /api/bridge/transfers"
)

type DexHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	dex              DexService
}

func NewDexHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, dexService DexService) *DexHandler {
	return &DexHandler{
		logs:             logger,
		requestValidator: requestValidator,
		dex:              dexService,
	}
}

func (h *DexHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.dex.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *DexHandler) HandleGetPrices(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	// a flat symbol-to-price map, no envelope
	h.respond(w, h.dex.Prices(), http.StatusOK, requestId)
}

func (h *DexHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var payload payload.TransactionRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not record transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	saved, err := h.dex.RecordTransaction(r.Context(), payload.ToMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not record transaction",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to record transaction",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, saved, http.StatusCreated, requestId)
}

func (h *DexHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	walletAddress := r.PathValue("walletAddress")
	if walletAddress == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "wallet address parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing walletAddress parameter",
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.dex.WalletTransactions(r.Context(), walletAddress)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get wallet transactions",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	// a bare array, empty included, no envelope
	h.respond(w, transactions, http.StatusOK, requestId)
}

func (h *DexHandler) HandleGetBalances(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	snapshot, err := h.dex.Balances(r.Context())
	if err != nil {
		resp := Response{
			Message: "Could not retrieve balances",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, wallet.ErrWalletNotConfigured) ||
			errors.Is(err, wallet.ErrUnlockRejected) ||
			errors.Is(err, wallet.ErrChainMismatch) ||
			errors.Is(err, wallet.ErrNotConnected) {
			httpCode = http.StatusServiceUnavailable
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get balances",
			"error", err,
			"handler", GetBalances,
			"request_id", requestId)
		return
	}

	h.respond(w, snapshot, http.StatusOK, requestId)
}

func (h *DexHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var payload payload.QuoteRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not estimate swap",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", QuoteSwap,
			"request_id", requestId)
		return
	}

	amountOut, err := h.dex.Quote(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not estimate swap",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnknownToken) {
			httpCode = http.StatusBadRequest
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("swap estimate failed",
			"error", err,
			"handler", QuoteSwap,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"amountOut": amountOut,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *DexHandler) HandleExecuteSwap(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", ExecuteSwap, "request_id", requestId)
		return
	}

	var payload payload.SwapRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not execute swap",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ExecuteSwap,
			"request_id", requestId)
		return
	}

	h.logs.Infow("swap request received",
		"from", payload.FromToken,
		"to", payload.ToToken,
		"amount", payload.Amount,
		"handler", ExecuteSwap,
		"request_id", requestId)

	report, err := h.dex.ExecuteSwap(r.Context(), payload.ToMessage(authToken))
	if err != nil {
		h.respond(w, h.swapErrorResponse(err), h.swapErrorCode(err), requestId)
		h.logs.Errorw("swap failed",
			"error", err,
			"handler", ExecuteSwap,
			"request_id", requestId)
		return
	}

	h.respond(w, report, http.StatusOK, requestId)
}

func (h *DexHandler) HandleInitiateBridge(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", InitiateBridge, "request_id", requestId)
		return
	}

	var payload payload.BridgeRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not initiate bridge transfer",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", InitiateBridge,
			"request_id", requestId)
		return
	}

	record, err := h.dex.InitiateBridge(r.Context(), payload.ToMessage(authToken))
	if err != nil {
		h.respond(w, h.swapErrorResponse(err), h.bridgeErrorCode(err), requestId)
		h.logs.Errorw("bridge transfer failed",
			"error", err,
			"handler", InitiateBridge,
			"request_id", requestId)
		return
	}

	h.respond(w, record, http.StatusOK, requestId)
}

func (h *DexHandler) HandleGetBridgeTransfers(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	h.respond(w, h.dex.BridgeTransfers(), http.StatusOK, requestId)
}

func (h *DexHandler) swapErrorResponse(err error) Response {
	return Response{
		Message: "Request failed",
		Error:   err.Error(),
	}
}

func (h *DexHandler) swapErrorCode(err error) int {
	switch {
	case errors.Is(err, jwt.ErrTokenNotValid) || errors.Is(err, jwt.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrUnknownToken) ||
		errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, wallet.ErrNotConnected) ||
		errors.Is(err, wallet.ErrWalletNotConfigured) ||
		errors.Is(err, wallet.ErrUnlockRejected) ||
		errors.Is(err, wallet.ErrChainMismatch):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *DexHandler) bridgeErrorCode(err error) int {
	switch {
	case errors.Is(err, jwt.ErrTokenNotValid) || errors.Is(err, jwt.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, bridge.ErrInvalidAmount) ||
		errors.Is(err, bridge.ErrInsufficientBalance) ||
		errors.Is(err, bridge.ErrUnknownChain) ||
		errors.Is(err, bridge.ErrSameChain):
		return http.StatusBadRequest
	case errors.Is(err, wallet.ErrNotConnected):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *DexHandler) requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *DexHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
