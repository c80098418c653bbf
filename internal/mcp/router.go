package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
	"github.com/web3wallet/wallet-mcp/internal/tools"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Router dispatches JSON-RPC requests to the tool handler. It is stateless;
// one instance serves all requests.
type Router struct {
	handler *tools.Handler
	logger  *slog.Logger
}

func NewRouter(handler *tools.Handler, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{handler: handler, logger: logger}
}

// Dispatch handles one JSON-RPC request and always produces a response with
// the caller's ID echoed back.
func (r *Router) Dispatch(ctx context.Context, req *Request) *Response {
	requestID := uuid.NewString()
	start := time.Now()
	r.logger.Info("Request started",
		"request_id", requestID,
		"method", req.Method,
	)

	result, err := r.route(ctx, req)
	resp := &Response{JSONRPC: "2.0", ID: req.ID}
	if err != nil {
		resp.Error = errorEnvelope(err, requestID)
	} else {
		resp.Result = result
	}

	r.logger.Info("Request completed",
		"request_id", requestID,
		"method", req.Method,
		"duration_ms", time.Since(start).Milliseconds(),
		"success", err == nil,
	)
	return resp
}

func (r *Router) route(ctx context.Context, req *Request) (any, error) {
	if req.JSONRPC != "2.0" {
		return nil, mcperr.New(mcperr.KindInvalidJSONRPCRequest, "jsonrpc version must be \"2.0\"")
	}

	switch req.Method {
	case "tools/list":
		return map[string]any{"tools": Manifest()}, nil
	case "tools/call":
		var call tools.Call
		if err := json.Unmarshal(req.Params, &call); err != nil {
			return nil, mcperr.Errorf(mcperr.KindInvalidJSONRPCRequest, "Invalid params: %v", err)
		}
		payload, err := r.handler.Handle(ctx, call)
		if err != nil {
			return nil, err
		}
		return map[string]any{"content": payload}, nil
	default:
		return nil, mcperr.New(mcperr.KindMethodNotFound, req.Method)
	}
}

// errorEnvelope converts a classified error into the JSON-RPC error member,
// carrying severity and context as structured data.
func errorEnvelope(err error, requestID string) *ErrorResponse {
	classified := mcperr.Classify(err)
	data := map[string]any{
		"severity":   classified.Severity().String(),
		"context":    classified.Context(),
		"request_id": requestID,
	}
	return &ErrorResponse{
		Code:    classified.Code(),
		Message: classified.Error(),
		Data:    data,
	}
}
