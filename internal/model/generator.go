package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// BatchGenerateRequest represents a batch password generation request.
type BatchGenerateRequest struct {
	Count int `json:"count"`
	GenerateRequest
}

// BatchGenerateResponse represents a batch password generation response.
type BatchGenerateResponse struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
}
