package resp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ncobase/relaypage/ecode"
	"github.com/ncobase/relaypage/tracing"
)

// Problem is the body written for a failed request.
type Problem struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"traceId,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success writes data with status 200. Connections and other payloads are
// written as is, without a wrapping envelope.
func Success(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// Fail writes err as a Problem. The status follows the business code of err;
// errors without a code are internal and their text is not exposed.
func Fail(ctx context.Context, w http.ResponseWriter, err error, details ...any) {
	p := problemOf(err)
	p.TraceID = tracing.GetTraceID(ctx)
	if len(details) > 0 {
		p.Errors = details[0]
	}
	writeJSON(w, ecode.ToHTTPStatus(p.Code), p)
}

// Invalid writes a request error, typically a query that could not be bound.
func Invalid(ctx context.Context, w http.ResponseWriter, message string, details ...any) {
	Fail(ctx, w, ecode.New(ecode.RequestErr, message), details...)
}

func problemOf(err error) *Problem {
	code := ecode.CodeOf(err)
	switch code {
	case ecode.OK, ecode.ServerErr:
		return &Problem{Code: ecode.ServerErr, Message: ecode.Text(ecode.ServerErr)}
	}
	return &Problem{Code: code, Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
