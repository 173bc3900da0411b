package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const authTokenCookie = "auth_token"

// HandleAuthMiddleware gates every task route. The credential may come
// from an Authorization: Bearer header or from the session cookie set
// at login. A missing credential is 403, a wrong one is 401; the two
// signal distinct conditions and must not be swapped.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	token, present := extractCredential(c)
	if !present {
		h.logger.Warn().Msg("no credential presented")
		abort(c, newForbiddenError(errNoCredential.Error()))
		return
	}

	err := h.auth.VerifyToken(token)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("credential rejected")
		abort(c, newUnauthorizedError(err.Error()))
		return
	}

	c.Next()
}

// extractCredential pulls the bearer token from the Authorization
// header, falling back to the login cookie. The second return value is
// false only when no credential was presented at all; a malformed
// header counts as presented (and will fail verification).
func extractCredential(c *gin.Context) (string, bool) {
	const bearerPrefix = "Bearer"

	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != bearerPrefix {
			return "", true
		}
		return parts[1], true
	}

	cookie, err := c.Cookie(authTokenCookie)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}
