package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 4")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// GeneratorService handles password generation business logic: it resolves
// option defaults and validates the length range before calling the generator.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := resolveOptions(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// GenerateBatch produces up to crypto.MaxBatchSize passwords with shared options.
func (s *GeneratorService) GenerateBatch(req model.BatchGenerateRequest) (model.BatchGenerateResponse, error) {
	opts, err := resolveOptions(req.GenerateRequest)
	if err != nil {
		return model.BatchGenerateResponse{}, err
	}

	passwords, err := crypto.GenerateBatch(req.Count, opts)
	if err != nil {
		return model.BatchGenerateResponse{}, err
	}

	return model.BatchGenerateResponse{
		Passwords: passwords,
		Count:     len(passwords),
	}, nil
}

// resolveOptions fills in defaults and checks the length range.
func resolveOptions(req model.GenerateRequest) (crypto.GeneratorOptions, error) {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}

	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	if opts.Length < MinLength {
		return crypto.GeneratorOptions{}, ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return crypto.GeneratorOptions{}, ErrLengthTooLong
	}

	return opts, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
