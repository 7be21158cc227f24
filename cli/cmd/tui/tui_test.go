package tui

import (
	"context"
	"errors"
	"testing"
)

func TestRunNoSource(t *testing.T) {
	err := Run(context.Background(), Options{})
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("Run() error = %v, want %v", err, ErrNoSource)
	}
}

func TestRunNoCandidates(t *testing.T) {
	err := Run(context.Background(), Options{
		Lines: []string{"print(1)", "print(2)"},
	})
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("Run() error = %v, want %v", err, ErrNoCandidates)
	}
}
