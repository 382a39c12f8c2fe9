package errors

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

// PermissionDeniedMessage is the actionable message shown to the admin
// when the hosted store's access rules reject a write.
const PermissionDeniedMessage = "The remote database access rules are blocking write access. Update the database rules to allow admin writes."

// HandleStoreWriteError maps a failed write to an HTTP response,
// distinguishing the permission-denied case from generic failures.
func HandleStoreWriteError(c *gin.Context, err error, fallbackMessage string) {
	if goerrors.Is(err, store.ErrPermissionDenied) {
		RespondWithError(c, http.StatusForbidden, StorePermissionDenied, PermissionDeniedMessage)
		return
	}
	RespondWithError(c, http.StatusInternalServerError, StoreWriteFailed, fallbackMessage)
}

// IsNotFound reports whether err is the store's missing-record sentinel.
func IsNotFound(err error) bool {
	return goerrors.Is(err, store.ErrNotFound)
}
