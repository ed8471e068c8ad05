package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/cryptocator-backend/internal/mint"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/internal/wallet"
	"github.com/goodnatureofminers/cryptocator-backend/pkg/safe"
	"github.com/google/uuid"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultAmount   = 1
	maxRequestBytes = 1 << 12
)

// RESTHandler serves the console API on a grpc-gateway mux.
type RESTHandler struct {
	console Console
	minter  Minter
	state   State
	logger  *zap.Logger
	mux     *gwruntime.ServeMux
}

// NewRESTHandler registers every console route on mux.
func NewRESTHandler(mux *gwruntime.ServeMux, console Console, minter Minter, state State, logger *zap.Logger) (*RESTHandler, error) {
	h := &RESTHandler{
		console: console,
		minter:  minter,
		state:   state,
		logger:  logger.Named("rest"),
		mux:     mux,
	}
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/api/v1/page", h.page},
		{http.MethodGet, "/api/v1/connectors", h.connectors},
		{http.MethodPost, "/api/v1/wallet/connect", h.connect},
		{http.MethodPost, "/api/v1/wallet/disconnect", h.disconnect},
		{http.MethodPost, "/api/v1/collections/{collection}/select", h.selectCollection},
		{http.MethodPost, "/api/v1/back", h.back},
		{http.MethodGet, "/api/v1/collections/{collection}", h.card},
		{http.MethodPost, "/api/v1/collections/{collection}/mint/{kind}", h.mint},
		{http.MethodPost, "/api/v1/error/clear", h.clearError},
		{http.MethodGet, "/api/v1/events", h.events},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return h, nil
}

func (h *RESTHandler) page(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	amount, err := amountParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.console.Render(r.Context(), amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *RESTHandler) connectors(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.respond(w, http.StatusOK, map[string]any{"connectors": h.console.Connectors()})
}

func (h *RESTHandler) connect(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req connectRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.console.Connect(r.Context(), req.Connector); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

func (h *RESTHandler) disconnect(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.console.Disconnect()
	h.respond(w, http.StatusNoContent, nil)
}

func (h *RESTHandler) selectCollection(w http.ResponseWriter, r *http.Request, params map[string]string) {
	c, err := model.ParseCollection(params["collection"])
	if err != nil {
		h.fail(w, r, status.Error(codes.InvalidArgument, err.Error()))
		return
	}
	if err := h.console.Select(c); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

func (h *RESTHandler) back(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.console.Back()
	h.respond(w, http.StatusNoContent, nil)
}

func (h *RESTHandler) card(w http.ResponseWriter, r *http.Request, params map[string]string) {
	c, err := model.ParseCollection(params["collection"])
	if err != nil {
		h.fail(w, r, status.Error(codes.NotFound, err.Error()))
		return
	}
	amount, err := amountParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	card, err := h.console.Card(r.Context(), c, amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, card)
}

func (h *RESTHandler) mint(w http.ResponseWriter, r *http.Request, params map[string]string) {
	action, err := model.ParseAction(params["collection"], params["kind"])
	if err != nil {
		h.fail(w, r, status.Error(codes.NotFound, err.Error()))
		return
	}
	req := mintRequest{Amount: defaultAmount}
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	amount, err := safe.Uint64(req.Amount)
	if err != nil {
		h.fail(w, r, mint.ErrInvalidAmount)
		return
	}
	tx, err := h.minter.Mint(r.Context(), action, amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusAccepted, newPendingView(tx))
}

func (h *RESTHandler) clearError(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.state.ClearError()
	h.respond(w, http.StatusNoContent, nil)
}

// events streams store snapshots as server-sent events until the client leaves.
func (h *RESTHandler) events(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.fail(w, r, err)
		return
	}

	feed, cancel := h.state.Subscribe()
	defer cancel()

	logger := h.logger.With(zap.String("subscriber", uuid.NewString()))
	logger.Debug("events subscriber joined")
	defer logger.Debug("events subscriber left")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for {
		select {
		case <-r.Context().Done():
			return
		case st, ok := <-feed:
			if !ok {
				return
			}
			payload, err := json.Marshal(newStateView(st))
			if err != nil {
				logger.Error("encode state event", zap.Error(err))
				return
			}
			if _, err := fmt.Fprintf(w, "event: state\ndata: %s\n\n", payload); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func (h *RESTHandler) respond(w http.ResponseWriter, code int, body any) {
	if body == nil {
		w.WriteHeader(code)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *RESTHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	st := toStatus(err)
	if st.Code() == codes.Internal {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	_, marshaler := gwruntime.MarshalerForRequest(h.mux, r)
	gwruntime.HTTPError(r.Context(), h.mux, marshaler, w, r, st.Err())
}

// toStatus maps domain errors to gRPC codes.
func toStatus(err error) *status.Status {
	if st, ok := status.FromError(err); ok {
		return st
	}
	code := codes.Internal
	switch {
	case errors.Is(err, mint.ErrMintInProgress):
		code = codes.Aborted
	case errors.Is(err, mint.ErrInvalidAmount), errors.Is(err, errBadRequest):
		code = codes.InvalidArgument
	case errors.Is(err, mint.ErrValueUnavailable):
		code = codes.Unavailable
	case errors.Is(err, wallet.ErrNotConnected), errors.Is(err, mint.ErrNotEligible), errors.Is(err, mint.ErrCardNotOpen):
		code = codes.FailedPrecondition
	case errors.Is(err, wallet.ErrConnectorUnavailable):
		code = codes.NotFound
	}
	return status.New(code, err.Error())
}

var errBadRequest = errors.New("bad request")

func amountParam(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		return defaultAmount, nil
	}
	amount, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q", errBadRequest, raw)
	}
	return amount, nil
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
