package oerror

import (
	"errors"
	"io"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New("robot %q not found (%d)", "bots.Hunter", 3)
	if err.Error() != `robot "bots.Hunter" not found (3)` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected no cause, got %v", err.Unwrap())
	}
}

func TestNewKeepsCause(t *testing.T) {
	err := New("error reading settings: %v", io.ErrUnexpectedEOF)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected errors.Is to find the cause")
	}

	var be *BattleError
	if !errors.As(error(err), &be) {
		t.Fatalf("expected errors.As to find a BattleError")
	}
}

func TestIs(t *testing.T) {
	err := New("arena width must be positive")
	if !Is(err, "arena width must be positive") {
		t.Fatalf("expected message match")
	}
	if Is(io.EOF, "EOF") {
		t.Fatalf("non-BattleError must not match")
	}
}
