package secret

import (
	"strings"
	"testing"
)

func TestGenerateCode_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode returned error: %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("expected length %d, got %d (%q)", CodeLength, len(code), code)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q, not in alphabet", code, r)
			}
		}
	}
}

func TestGenerateCode_StatisticallyDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode returned error: %v", err)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from a 73^20 space colliding would mean the generator is broken.
	if len(seen) != 50 {
		t.Fatalf("expected 50 distinct codes, got %d", len(seen))
	}
}

func TestCodeMatches(t *testing.T) {
	if !CodeMatches("abc123", "abc123") {
		t.Fatal("matching codes rejected")
	}
	if CodeMatches("abc123", "abc124") {
		t.Fatal("mismatched codes accepted")
	}
	if CodeMatches("", "") {
		t.Fatal("empty issued code must never match")
	}
	if CodeMatches("anything", "") {
		t.Fatal("empty issued code must never match")
	}
}
