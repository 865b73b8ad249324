package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projecttracker/tracker/internal/modules/serializer"
	"github.com/projecttracker/tracker/internal/modules/service"
)

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{svc: s}
}

// CreateExport godoc
//
//	@Summary		Export snapshot
//	@Description	Upload a JSON snapshot of all projects and product types to object storage and return a presigned download URL
//	@Tags			export
//	@Produce		json
//	@Success		201	{object}	service.ExportOutput
//	@Failure		503	{object}	serializer.Response	"object storage not configured"
//	@Failure		500	{object}	serializer.Response
//	@Router			/exports [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	out, err := h.svc.Export(c.Request.Context())
	if errors.Is(err, service.ErrExportDisabled) {
		c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, err.Error(), nil))
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "failed to export snapshot", err))
		return
	}

	c.JSON(http.StatusCreated, out)
}
