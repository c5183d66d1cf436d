package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/forest6511/pwdctl/pkg/generator"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

func TestHandlePasswordAnalyze(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handlePasswordAnalyze(context.Background(), nil, AnalyzeInput{Password: "abc123"})
	if err != nil {
		t.Fatalf("handlePasswordAnalyze failed: %v", err)
	}

	if out.Report == nil {
		t.Fatal("report is nil")
	}
	if out.Report.Score < 0 || out.Report.Score > 100 {
		t.Errorf("score = %d, out of range", out.Report.Score)
	}
	if len(out.Report.Findings) == 0 {
		t.Error("expected findings for abc123")
	}
}

// Empty input is not an error: analysis always produces a report.
func TestHandlePasswordAnalyze_Empty(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handlePasswordAnalyze(context.Background(), nil, AnalyzeInput{})
	if err != nil {
		t.Fatalf("handlePasswordAnalyze failed: %v", err)
	}
	if out.Report.Score != 0 {
		t.Errorf("score = %d, want 0 for empty password", out.Report.Score)
	}
}

func TestHandlePasswordGenerate(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handlePasswordGenerate(context.Background(), nil, GenerateInput{Length: 20})
	if err != nil {
		t.Fatalf("handlePasswordGenerate failed: %v", err)
	}
	if len(out.Password) != 20 {
		t.Errorf("password length = %d, want 20", len(out.Password))
	}
}

func TestHandlePasswordGenerate_DefaultLength(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handlePasswordGenerate(context.Background(), nil, GenerateInput{})
	if err != nil {
		t.Fatalf("handlePasswordGenerate failed: %v", err)
	}
	if len(out.Password) != defaultGenerateLength {
		t.Errorf("password length = %d, want %d", len(out.Password), defaultGenerateLength)
	}
}

func TestHandlePasswordGenerate_InvalidConfiguration(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handlePasswordGenerate(context.Background(), nil, GenerateInput{
		Length:      10,
		NoLowercase: true,
		NoUppercase: true,
		NoNumbers:   true,
		NoSymbols:   true,
	})
	if !errors.Is(err, generator.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
