package common

import (
	"context"
	"net/http"

	collaborationdomain "collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/transport/httpserver/middleware"
	"collabhive-go/pkg/logger"
)

// ProjectPermissions answers whether a caller may edit a project.
type ProjectPermissions interface {
	CanEditProject(ctx context.Context, projectID, userID string) (bool, error)
}

func CurrentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return "", false
	}
	return userID, true
}

// RequireCreator writes the response and returns false unless userID created
// the project.
func RequireCreator(w http.ResponseWriter, r *http.Request, perms ProjectPermissions, log logger.Logger, op, projectID, userID string) bool {
	allowed, err := perms.CanEditProject(r.Context(), projectID, userID)
	if err != nil {
		log.InternalError(op+": permission check failed", err, "project_id", projectID, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return false
	}
	if !allowed {
		denied := collaborationdomain.ErrNotProjectCreator
		log.BusinessError(op+": "+denied.Code, denied, "project_id", projectID, "user_id", userID)
		writeError(w, denied.Kind.HTTPStatus(), denied.Code, denied.Message)
		return false
	}
	return true
}
