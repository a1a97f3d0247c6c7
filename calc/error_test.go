package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := ErrBadToken.With(slog.String("token", "?"))

	if !errors.Is(err, ErrBadToken) {
		t.Error("decorated error does not match its sentinel")
	}
	if errors.Is(err, ErrBadParen) {
		t.Error("error matches a sentinel of another kind")
	}

	wrapped := fmt.Errorf("line 3: %w", err)
	if !IsIllegal(wrapped) {
		t.Error("IsIllegal false through fmt wrapping")
	}
	if kind, ok := KindOf(wrapped); !ok || kind != BadToken {
		t.Errorf("KindOf = %v, %v", kind, ok)
	}

	if IsIllegal(errors.New("io")) {
		t.Error("IsIllegal true for foreign error")
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) reported a kind")
	}
}

func TestError_Wrap(t *testing.T) {
	cause := errors.New("boom")
	err := ErrResidue.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable")
	}
	if got, want := err.Error(), "illegal expression: operands left without an operator: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_WithIsImmutable(t *testing.T) {
	base := ErrEmpty.With(slog.Int("a", 1))
	_ = base.With(slog.Int("b", 2))

	if n := len(base.LogValue().Group()); n != 2 {
		t.Errorf("base attrs grew to %d", n)
	}
	if len(ErrEmpty.LogValue().Group()) != 1 {
		t.Error("sentinel was modified")
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := []ErrorKind{
		BadParen, BadToken, BadAssignLHS, StackUnderflow,
		TooManyEquals, Residue, Empty,
	}

	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || strings.HasPrefix(s, "ErrorKind(") || seen[s] {
			t.Errorf("bad name %q for kind %d", s, int(k))
		}
		seen[s] = true
	}

	if s := ErrorKind(99).String(); s != "ErrorKind(99)" {
		t.Errorf("undefined kind = %q", s)
	}
}
