package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	bootstrap "github.com/tbeaudouin05/braintree-billing/api/bootstrap"
	app "github.com/tbeaudouin05/braintree-billing/api/services/braintree/app"
)

const requestIDHeader = "X-Request-Id"

// NewRouter returns the central HTTP router for the API using grpc-gateway's ServeMux.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		bootstrap.Logger().Error("bootstrap ensure failed", zap.Error(err))
	}
	return NewHandler(bootstrap.GetBillingService(), bootstrap.Logger())
}

type handler struct {
	svc app.PaymentGateway
	log *zap.Logger
}

// NewHandler maps the billing HTTP endpoints onto svc.
func NewHandler(svc app.PaymentGateway, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := handler{svc: svc, log: log.Named("http")}
	mux := runtime.NewServeMux()

	routes := []struct {
		method  string
		pattern string
		fn      runtime.HandlerFunc
	}{
		{http.MethodGet, "/healthz", h.health},
		{http.MethodPost, "/api/users/{userExternalId}/profile", h.createProfile},
		{http.MethodPut, "/api/users/{userExternalId}/profile", h.updateProfile},
		{http.MethodGet, "/api/customers/{profileId}", h.findCustomer},
		{http.MethodGet, "/api/users/{userExternalId}/client-token", h.clientToken},
		{http.MethodGet, "/api/users/{userExternalId}/payment-methods", h.listPaymentMethods},
		{http.MethodPost, "/api/users/{userExternalId}/payment-methods", h.createPaymentMethod},
		{http.MethodPut, "/api/users/{userExternalId}/payment-methods/{token}/default", h.setDefaultPaymentMethod},
		{http.MethodDelete, "/api/users/{userExternalId}/payment-methods/{token}", h.deletePaymentMethod},
		{http.MethodPost, "/api/users/{userExternalId}/addresses", h.createAddress},
		{http.MethodPost, "/api/users/{userExternalId}/purchases", h.purchase},
		{http.MethodPost, "/api/transactions/{reference}/void", h.void},
		{http.MethodPost, "/api/transactions/{reference}/refund", h.refund},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, h.wrap(rt.fn)); err != nil {
			h.log.Error("failed to register route", zap.String("pattern", rt.pattern), zap.Error(err))
		}
	}
	return mux
}

// wrap assigns a request id, checks the service is wired and logs the request.
func (h handler) wrap(fn runtime.HandlerFunc) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		start := time.Now()
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		if h.svc == nil {
			writeJSON(rec, http.StatusServiceUnavailable, errorBody{Code: codes.Unavailable.String(), Message: "billing service not initialized"})
		} else {
			fn(rec, r, params)
		}
		h.log.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	}
}

func (h handler) health(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "gateway": h.svc.GatewayName()})
}

func (h handler) createProfile(w http.ResponseWriter, r *http.Request, p map[string]string) {
	user, ok := h.userWithDetails(w, r, p)
	if !ok {
		return
	}
	profile, err := h.svc.CreatePaymentProfile(r.Context(), user)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"paymentProfile": profile})
}

func (h handler) updateProfile(w http.ResponseWriter, r *http.Request, p map[string]string) {
	user, ok := h.userWithDetails(w, r, p)
	if !ok {
		return
	}
	cust, err := h.svc.UpdatePaymentProfile(r.Context(), user)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust)
}

func (h handler) findCustomer(w http.ResponseWriter, r *http.Request, p map[string]string) {
	cust, err := h.svc.FindCustomer(r.Context(), p["profileId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust)
}

func (h handler) clientToken(w http.ResponseWriter, r *http.Request, p map[string]string) {
	token, err := h.svc.ClientToken(r.Context(), userFrom(p))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientToken": token})
}

func (h handler) listPaymentMethods(w http.ResponseWriter, r *http.Request, p map[string]string) {
	methods, err := h.svc.ListPaymentMethods(r.Context(), userFrom(p))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paymentMethods": methods})
}

type createPaymentMethodBody struct {
	Nonce       string `json:"nonce"`
	MakeDefault bool   `json:"makeDefault"`
}

func (h handler) createPaymentMethod(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var body createPaymentMethodBody
	if !h.decode(w, r, &body) {
		return
	}
	pm, err := h.svc.CreatePaymentMethod(r.Context(), userFrom(p), body.Nonce, body.MakeDefault)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pm)
}

func (h handler) setDefaultPaymentMethod(w http.ResponseWriter, r *http.Request, p map[string]string) {
	pm, err := h.svc.SetDefaultPaymentMethod(r.Context(), userFrom(p), p["token"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pm)
}

func (h handler) deletePaymentMethod(w http.ResponseWriter, r *http.Request, p map[string]string) {
	deleted, err := h.svc.DeletePaymentMethod(r.Context(), userFrom(p), p["token"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h handler) createAddress(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var addr app.Address
	if !h.decode(w, r, &addr) {
		return
	}
	created, err := h.svc.CreateAddress(r.Context(), userFrom(p), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h handler) purchase(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var req app.PurchaseRequest
	if !h.decode(w, r, &req) {
		return
	}
	tx, err := h.svc.Purchase(r.Context(), userFrom(p), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h handler) void(w http.ResponseWriter, r *http.Request, p map[string]string) {
	ref, err := h.svc.Void(r.Context(), p["reference"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reference": ref})
}

type refundBody struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

func (h handler) refund(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var body refundBody
	if !h.decode(w, r, &body) {
		return
	}
	ref, err := h.svc.Refund(r.Context(), p["reference"], body.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reference": ref})
}

func userFrom(p map[string]string) app.User {
	return app.User{ExternalID: p["userExternalId"]}
}

func (h handler) userWithDetails(w http.ResponseWriter, r *http.Request, p map[string]string) (app.User, bool) {
	var details app.BillingDetails
	if !h.decode(w, r, &details) {
		return app.User{}, false
	}
	user := userFrom(p)
	user.BillingDetails = details
	return user, true
}

// decode reads an optional JSON body into v. An empty body leaves v untouched.
func (h handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeJSON(w, http.StatusBadRequest, errorBody{Code: codes.InvalidArgument.String(), Message: "invalid JSON body: " + err.Error()})
	return false
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorCode(err error) codes.Code {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, app.ErrNoProfile), errors.Is(err, app.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, app.ErrNotOwned):
		return codes.PermissionDenied
	case errors.Is(err, app.ErrGateway):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// httpStatus maps through the grpc-gateway table, except that gateway
// failures are reported as 502 rather than 503.
func httpStatus(code codes.Code) int {
	if code == codes.Unavailable {
		return http.StatusBadGateway
	}
	return runtime.HTTPStatusFromCode(code)
}

func (h handler) writeError(w http.ResponseWriter, err error) {
	code := errorCode(err)
	status := httpStatus(code)
	if status >= http.StatusInternalServerError {
		h.log.Warn("request failed", zap.String("code", code.String()), zap.Error(err))
	}
	msg := err.Error()
	var gwErr *app.GatewayError
	if errors.As(err, &gwErr) {
		msg = gwErr.Message
	} else if code == codes.Internal {
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Code: code.String(), Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
