package model

// AnalyzeRequest represents a password strength analysis request.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse represents a password strength analysis response. The
// original password is never returned; masked_password stars everything past
// the first three characters.
type AnalyzeResponse struct {
	MaskedPassword string   `json:"masked_password"`
	Score          int      `json:"score"`
	Level          string   `json:"level"`
	Feedback       []string `json:"feedback"`
	Entropy        float64  `json:"entropy"`
	CrackTime      string   `json:"crack_time"`
	HasLower       bool     `json:"has_lower"`
	HasUpper       bool     `json:"has_upper"`
	HasNumber      bool     `json:"has_number"`
	HasSymbol      bool     `json:"has_symbol"`
}
