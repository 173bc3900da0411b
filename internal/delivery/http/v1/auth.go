package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlevin/taskdeck/internal/services"
)

type loginRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind login request")
		abort(c, newUnprocessableError(errInvalidRequestBody.Error()))
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			abort(c, newUnauthorizedError(services.ErrInvalidCredentials.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to login")
		abort(c, newAPIError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)))
		return
	}

	// Browser clients authenticate via the cookie; API clients use
	// the token from the response body as a bearer header.
	c.SetCookie(authTokenCookie, token, 0, "/", "", false, true)

	c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Message: "Login successful",
	})
}
