// Package mcp implements the MCP (Model Context Protocol) server for pwdctl,
// exposing password analysis and generation as tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/forest6511/pwdctl/pkg/strength"
)

// Server represents the MCP server for pwdctl.
type Server struct {
	server   *mcp.Server
	analyzer *strength.Analyzer
}

// ServerOptions contains configuration options for the MCP server.
type ServerOptions struct {
	// CalibrationPath is an optional path to a scoring calibration file.
	// If empty, the compiled-in defaults are used.
	CalibrationPath string
}

// NewServer creates a new MCP server instance.
func NewServer(opts *ServerOptions) (*Server, error) {
	if opts == nil {
		opts = &ServerOptions{}
	}

	var cal *strength.Calibration
	if opts.CalibrationPath != "" {
		loaded, err := strength.LoadCalibration(opts.CalibrationPath)
		if err != nil {
			if errors.Is(err, strength.ErrCalibrationNotFound) {
				return nil, fmt.Errorf("calibration file %s does not exist", opts.CalibrationPath)
			}
			return nil, fmt.Errorf("failed to load calibration: %w", err)
		}
		cal = loaded
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "pwdctl",
			Version: "0.1.0",
		},
		nil,
	)

	s := &Server{
		server:   mcpServer,
		analyzer: strength.NewAnalyzer(cal),
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools() {
	// password_analyze - Score a password and report weaknesses
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "password_analyze",
		Description: "Analyze a password's strength. Returns a 0-100 score, tier, entropy estimate, detected pattern weaknesses and recommendations. The password is analyzed in-process and never stored.",
	}, s.handlePasswordAnalyze)

	// password_generate - Produce a secure random password
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "password_generate",
		Description: "Generate a cryptographically secure random password. Character classes are individually togglable and ambiguous characters can be excluded.",
	}, s.handlePasswordGenerate)
}

// Run starts the MCP server using stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
