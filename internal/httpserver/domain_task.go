package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "smart-todo/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks. The use case arrives fully
// built because it also owns the parser and the calendar client.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.location)

	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
