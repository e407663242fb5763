package otp

import (
	"strconv"
	"testing"
)

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric(6)

	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("Generate() = %q, want 6 digits", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("Generate() = %q, not numeric", code)
		}

		if n < 100000 || n > 999999 {
			t.Fatalf("Generate() = %d, out of range", n)
		}
	}
}

func TestNewNumericFallback(t *testing.T) {
	for _, length := range []int{0, -1, 3, 10} {
		code, err := NewNumeric(length).Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("NewNumeric(%d).Generate() = %q, want 6 digits", length, code)
		}
	}
}
