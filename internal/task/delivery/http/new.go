package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/task"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	QuickCreate(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Stats(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	loc *time.Location // zone for date-only and zone-less input and for output
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
