package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nlevin/taskdeck/internal/services"
	"github.com/nlevin/taskdeck/internal/storage"
)

type Handler interface {
	HandleRoot(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleTaskStats(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleCompleteTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleTaskActivity(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	store  *storage.Storage
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	store *storage.Storage,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		store:  store,
	}
}

func (h *handlerImpl) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Task Management API"})
}
