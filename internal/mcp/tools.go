package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/forest6511/pwdctl/pkg/generator"
	"github.com/forest6511/pwdctl/pkg/strength"
)

// AnalyzeInput represents input for the password_analyze tool.
type AnalyzeInput struct {
	Password string `json:"password"`
}

// AnalyzeOutput represents output for the password_analyze tool.
type AnalyzeOutput struct {
	Report *strength.Report `json:"report"`
}

// GenerateInput represents input for the password_generate tool.
type GenerateInput struct {
	Length      int    `json:"length,omitempty"`
	NoLowercase bool   `json:"no_lowercase,omitempty"`
	NoUppercase bool   `json:"no_uppercase,omitempty"`
	NoNumbers   bool   `json:"no_numbers,omitempty"`
	NoSymbols   bool   `json:"no_symbols,omitempty"`
	Exclude     string `json:"exclude,omitempty"`
}

// GenerateOutput represents output for the password_generate tool.
type GenerateOutput struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// defaultGenerateLength is used when the tool call omits a length.
const defaultGenerateLength = 16

// handlePasswordAnalyze handles the password_analyze tool call. Analysis
// never fails for any input string; an empty password yields the degenerate
// zero-score report.
func (s *Server) handlePasswordAnalyze(_ context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
	report := s.analyzer.Analyze(input.Password)
	return nil, AnalyzeOutput{Report: report}, nil
}

// handlePasswordGenerate handles the password_generate tool call.
func (s *Server) handlePasswordGenerate(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	length := input.Length
	if length == 0 {
		length = defaultGenerateLength
	}

	opts := generator.Options{
		Lower:   !input.NoLowercase,
		Upper:   !input.NoUppercase,
		Digits:  !input.NoNumbers,
		Symbols: !input.NoSymbols,
		Exclude: input.Exclude,
	}

	password, err := generator.Generate(length, opts)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{Password: password, Length: length}, nil
}
