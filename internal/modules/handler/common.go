package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/serializer"
	"github.com/projecttracker/tracker/internal/modules/service"
)

// parseID reads a uuid path parameter. A malformed id cannot name any
// record, so it is answered like a missing one.
func parseID(c *gin.Context, param, kind string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(kind+" not found"))
		return uuid.Nil, false
	}
	return id, true
}

// fail maps service errors onto HTTP statuses. kind names the resource in
// 4xx messages, msg is the 500 message.
func fail(c *gin.Context, err error, kind, msg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(kind+" not found"))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(kind+" already exists", err))
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid status", err))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, serializer.DBErr(msg, err))
	}
}
