package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// MaxAnalyzeLength bounds analysis input; the analyzer itself has no limit but
// the service refuses pathological inputs before they reach it.
const MaxAnalyzeLength = 1000

var ErrPasswordTooLong = errors.New("password must be at most 1000 characters")

// AnalyzerService handles password strength analysis business logic.
type AnalyzerService struct{}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze scores the given password and returns the structured result.
func (s *AnalyzerService) Analyze(req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	if len(req.Password) > MaxAnalyzeLength {
		return model.AnalyzeResponse{}, ErrPasswordTooLong
	}

	result, err := crypto.Analyze(req.Password)
	if err != nil {
		return model.AnalyzeResponse{}, err
	}

	return model.AnalyzeResponse{
		MaskedPassword: result.MaskedPassword,
		Score:          result.Score,
		Level:          result.Level,
		Feedback:       result.Feedback,
		Entropy:        result.Entropy,
		CrackTime:      result.CrackTime,
		HasLower:       result.HasLower,
		HasUpper:       result.HasUpper,
		HasNumber:      result.HasNumber,
		HasSymbol:      result.HasSymbol,
	}, nil
}
