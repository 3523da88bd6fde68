package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed       = "method_not_allowed"
	codeNotFound               = "not_found"
	codeInvalidRequestBody     = "invalid_request_body"
	codeMissingRequiredField   = "missing_required_field"
	codeInvalidEmail           = "invalid_email"
	codePasswordTooShort       = "password_too_short"
	codePasswordMismatch       = "password_mismatch"
	codeDuplicateCredential    = "duplicate_credential"
	codeUserNotFound           = "user_not_found"
	codeInvalidPassword        = "invalid_password"
	codeAuthenticationRequired = "authentication_required"
	codeSessionExpired         = "session_expired"
	codeInvalidInstant         = "invalid_instant"
	codeIndexOutOfRange        = "index_out_of_range"
	codeSizeOutOfBounds        = "size_out_of_bounds"
	codeUnknownOption          = "unknown_option"
	codeEntryNotFound          = "entry_not_found"
	codeSyncInProgress         = "sync_in_progress"
	codeSurfaceConflict        = "surface_already_open"
	codeStreamingUnsupported   = "streaming_unsupported"
	codeForbidden              = "forbidden"
	codeInternalError          = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
