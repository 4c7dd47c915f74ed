package service

import (
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_MinimumLength(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 4 {
		t.Errorf("expected length 4, got %d", resp.Length)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if err != ErrLengthTooShort {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if err != ErrLengthTooLong {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != crypto.ErrNoCharacterTypes {
		t.Fatalf("expected ErrNoCharacterTypes, got %v", err)
	}
}

func TestGenerateBatch_ClampsCount(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GenerateBatch(model.BatchGenerateRequest{Count: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 100 {
		t.Errorf("expected count 100, got %d", resp.Count)
	}
	if len(resp.Passwords) != 100 {
		t.Errorf("expected 100 passwords, got %d", len(resp.Passwords))
	}
}

func TestGenerateBatch_ZeroCount(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.GenerateBatch(model.BatchGenerateRequest{Count: 0})
	if err != crypto.ErrInvalidCount {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestGenerateBatch_AppliesOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GenerateBatch(model.BatchGenerateRequest{
		Count: 5,
		GenerateRequest: model.GenerateRequest{
			Length:    20,
			Uppercase: boolPtr(false),
			Symbols:   boolPtr(false),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range resp.Passwords {
		if len(p) != 20 {
			t.Errorf("expected password length 20, got %d", len(p))
		}
		for _, c := range p {
			if c >= 'A' && c <= 'Z' {
				t.Errorf("password %q contains uppercase with uppercase disabled", p)
			}
		}
	}
}
