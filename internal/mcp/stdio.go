package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
	"github.com/web3wallet/wallet-mcp/internal/tools"
)

// StdioServer serves the wallet tools over a stdio MCP session.
type StdioServer struct {
	mcpServer *mcpserver.MCPServer
	handler   *tools.Handler
	logger    *slog.Logger
}

func NewStdioServer(name, version string, handler *tools.Handler, logger *slog.Logger) *StdioServer {
	if logger == nil {
		logger = slog.Default()
	}
	s := &StdioServer{
		mcpServer: mcpserver.NewMCPServer(name, version),
		handler:   handler,
		logger:    logger,
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving the session until stdin closes or an error
// occurs.
func (s *StdioServer) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcpServer)
}

// withPanicRecovery wraps a handler with panic recovery to prevent server crashes
func (s *StdioServer) withPanicRecovery(handler mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (result *mcpgo.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				s.logger.Error("Handler panic recovered",
					"panic", r,
					"stack", string(stack),
				)
				result = mcpgo.NewToolResultError(fmt.Sprintf("internal error: handler panic: %v", r))
				err = nil
			}
		}()
		return handler(ctx, request)
	}
}

func (s *StdioServer) registerTools() {
	s.mcpServer.AddTool(mcpgo.NewTool("get_balance",
		mcpgo.WithDescription("Get ETH and token balances for an Ethereum address. Returns the ETH balance plus balances for common ERC-20 tokens, or for one specific token if its contract address is given."),
		mcpgo.WithString("address", mcpgo.Description("Ethereum address to check balance for (0x... format, 42 characters)."), mcpgo.Required()),
		mcpgo.WithString("token_address", mcpgo.Description("Optional ERC-20 token contract address. Omit to scan common tokens.")),
	), s.withPanicRecovery(s.toolHandler("get_balance")))

	s.mcpServer.AddTool(mcpgo.NewTool("get_token_price",
		mcpgo.WithDescription("Get the current USD price of a token by its contract address."),
		mcpgo.WithString("token_address", mcpgo.Description("ERC-20 token contract address (0x... format)."), mcpgo.Required()),
	), s.withPanicRecovery(s.toolHandler("get_token_price")))

	s.mcpServer.AddTool(mcpgo.NewTool("swap_tokens",
		mcpgo.WithDescription("Simulate a token swap and return the expected output amount, gas estimate, and total cost. The swap is only simulated; no transaction is signed or sent."),
		mcpgo.WithString("from_token", mcpgo.Description("Contract address of the token to sell."), mcpgo.Required()),
		mcpgo.WithString("to_token", mcpgo.Description("Contract address of the token to buy."), mcpgo.Required()),
		mcpgo.WithString("amount", mcpgo.Description("Amount to swap in whole token units (e.g. '1.5')."), mcpgo.Required()),
		mcpgo.WithString("slippage_tolerance", mcpgo.Description("Maximum slippage percentage, 0-50. Defaults to 0.5.")),
	), s.withPanicRecovery(s.toolHandler("swap_tokens")))
}

// toolHandler adapts one named tool to the shared dispatch path so both
// transports validate and execute identically.
func (s *StdioServer) toolHandler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]any)
		payload, err := s.handler.Handle(ctx, tools.Call{Name: name, Arguments: args})
		if err != nil {
			return mcpgo.NewToolResultError(mcperr.Classify(err).Error()), nil
		}
		text, err := tools.MarshalText(payload)
		if err != nil {
			return mcpgo.NewToolResultError(mcperr.Classify(err).Error()), nil
		}
		return mcpgo.NewToolResultText(text), nil
	}
}
