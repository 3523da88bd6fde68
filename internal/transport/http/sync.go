package http

import (
	"context"
	"net/http"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// RemoteSaver mirrors a partition's state to the server-side store.
type RemoteSaver interface {
	SaveRemote(ctx context.Context, scope domain.Scope) error
}

// RemoteLoader replaces a partition's state from the server-side store.
type RemoteLoader interface {
	LoadRemote(ctx context.Context, scope domain.Scope) (bool, error)
	Load(ctx context.Context, scope domain.Scope) domain.Preferences
}

// HandleSyncSave returns an HTTP handler for the explicit save-to-server
// action. Saves never happen implicitly; this endpoint is the only writer of
// the remote mirror.
func HandleSyncSave(svc RemoteSaver, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		scope, ok := requireUserScope(w, r, auth)
		if !ok {
			return
		}

		if err := svc.SaveRemote(r.Context(), scope); err != nil {
			switch err {
			case domain.ErrAuthenticationRequired:
				writeError(w, http.StatusUnauthorized, codeAuthenticationRequired, "authentication required")
			case domain.ErrSyncInProgress:
				writeError(w, http.StatusConflict, codeSyncInProgress, "sync already in progress")
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type syncLoadResponse struct {
	Found     bool                    `json:"found"`
	Settings  *domain.DisplaySettings `json:"settings,omitempty"`
	TimeZones domain.TrackedList      `json:"time_zones,omitempty"`
}

// HandleSyncLoad returns an HTTP handler for the explicit load-from-server
// action. A missing remote mirror is not an error: the response reports
// found=false and current state stays untouched.
func HandleSyncLoad(svc RemoteLoader, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		scope, ok := requireUserScope(w, r, auth)
		if !ok {
			return
		}

		found, err := svc.LoadRemote(r.Context(), scope)
		if err != nil {
			switch err {
			case domain.ErrAuthenticationRequired:
				writeError(w, http.StatusUnauthorized, codeAuthenticationRequired, "authentication required")
			case domain.ErrSyncInProgress:
				writeError(w, http.StatusConflict, codeSyncInProgress, "sync already in progress")
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		if !found {
			writeJSON(w, http.StatusOK, syncLoadResponse{Found: false})
			return
		}

		prefs := svc.Load(r.Context(), scope)
		writeJSON(w, http.StatusOK, syncLoadResponse{
			Found:     true,
			Settings:  &prefs.Settings,
			TimeZones: prefs.TimeZones,
		})
	}
}
