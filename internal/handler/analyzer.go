package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for password strength analysis.
type AnalyzerHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Analyze(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
