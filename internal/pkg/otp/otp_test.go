package otp

import (
	"testing"
)

func TestNumericCodeGenerate(t *testing.T) {
	gen := NewNumericCode(6)

	code, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code) != 6 {
		t.Fatalf("expected 6 characters, got %d (%q)", len(code), code)
	}

	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("expected digits only, got %q", code)
		}
	}
}

func TestNumericCodeGenerateCustomLength(t *testing.T) {
	gen := NewNumericCode(4)

	code, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code) != 4 {
		t.Fatalf("expected 4 characters, got %d", len(code))
	}
}

func TestNumericCodeGenerateDefaultLength(t *testing.T) {
	gen := NewNumericCode(0)

	code, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code) != 6 {
		t.Fatalf("expected default length 6, got %d", len(code))
	}
}

func TestNumericCodeGenerateUnique(t *testing.T) {
	gen := NewNumericCode(6)

	seen := map[string]struct{}{}
	for range 50 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = struct{}{}
	}

	// 50 draws from a million possibilities should not all collide.
	if len(seen) < 2 {
		t.Fatal("expected varied codes across generations")
	}
}
