package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
)

// errorBody is the wire form of a failed request.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	CellID     string `json:"cell_id,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes onto HTTP statuses and renders
// the standard error body. Unrecognized errors report INTERNAL_ERROR.
func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", code, "err", err)
	}

	detail := errorDetail{Code: string(code), Message: errors.UserMessage(err)}
	var e *errors.Error
	if stderrors.As(err, &e) {
		detail.CellID = e.CellID
		detail.Suggestion = e.Suggestion
		detail.Message = e.Message
	}

	writeJSON(w, status, errorBody{Error: detail})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeCellNotFound,
		errors.ErrCodeSourceNotFound,
		errors.ErrCodeTargetNotFound,
		errors.ErrCodeLayerNotFound,
		errors.ErrCodeGroupNotFound,
		errors.ErrCodeDiagramNotFound:
		return http.StatusNotFound
	case errors.ErrCodeWrongCellType,
		errors.ErrCodeNotAGroup,
		errors.ErrCodeNotInGroup,
		errors.ErrCodeSelfReference,
		errors.ErrCodeDefaultLayer,
		errors.ErrCodeInvalidSource,
		errors.ErrCodeInvalidTarget,
		errors.ErrCodeInvalidKind,
		errors.ErrCodeEmptyXML,
		errors.ErrCodeInvalidXML,
		errors.ErrCodeInvalidRequest,
		errors.ErrCodeResolveFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
