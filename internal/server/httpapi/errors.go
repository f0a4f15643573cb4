package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumecore/api/internal/common"
)

// apiError pairs a status code with the stable message returned to the
// caller. Internal error text never reaches the response body.
type apiError struct {
	status  int
	message string
}

var errorMapping = []struct {
	sentinel error
	apiError apiError
}{
	{common.ErrDuplicateAccount, apiError{http.StatusConflict, "Email already registered."}},
	{common.ErrInvalidCredentials, apiError{http.StatusUnauthorized, "Invalid email or password"}},
	{common.ErrEmailNotVerified, apiError{http.StatusUnauthorized, "Email not verified. Please verify your email before logging in."}},
	{common.ErrAccountNotFound, apiError{http.StatusNotFound, "User not found."}},
	{common.ErrAlreadyVerified, apiError{http.StatusBadRequest, "Email is already verified."}},
	{common.ErrInvalidToken, apiError{http.StatusBadRequest, "Invalid verification token."}},
	{common.ErrTokenExpired, apiError{http.StatusBadRequest, "Verification token has expired."}},
	{common.ErrNotificationFailed, apiError{http.StatusInternalServerError, "Failed to send verification email."}},
	{common.ErrUnsupportedPlan, apiError{http.StatusBadRequest, "Unsupported plan type."}},
	{common.ErrOrderNotFound, apiError{http.StatusNotFound, "Order not found."}},
	{common.ErrGateway, apiError{http.StatusBadGateway, "Payment gateway error."}},
	{common.ErrNotAuthorized, apiError{http.StatusUnauthorized, msgUnauthorized}},
}

// respondError maps a service error to its response. Unmapped errors are
// logged and answered with a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	for _, m := range errorMapping {
		if errors.Is(err, m.sentinel) {
			c.JSON(m.apiError.status, gin.H{"error": m.apiError.message})
			return
		}
	}
	s.logger.Error(c.Request.Context(), "unhandled error", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
}
