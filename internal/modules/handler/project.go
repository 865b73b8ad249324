package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/projecttracker/tracker/internal/modules/serializer"
	"github.com/projecttracker/tracker/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// ProjectReq is the full project body for both POST and PUT. On PUT every
// omitted optional field is reset to its default.
type ProjectReq struct {
	Name         string   `json:"name" binding:"required" example:"Riverside Substation"`
	Client       string   `json:"client" binding:"required" example:"Acme Utilities"`
	ProductTypes []string `json:"productTypes" example:"Box Culvert,Manhole"`
	Deadline     string   `json:"deadline" example:"2026-11-30"`
	Status       string   `json:"status" enums:"Draft,In Review,Revision Needed,Approved,Complete" example:"Draft"`
	Notes        string   `json:"notes"`
}

func (r ProjectReq) input() service.ProjectInput {
	return service.ProjectInput{
		Name:         r.Name,
		Client:       r.Client,
		ProductTypes: r.ProductTypes,
		Deadline:     r.Deadline,
		Status:       model.Status(r.Status),
		Notes:        r.Notes,
	}
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List all projects ordered by deadline ascending, projects without a deadline last
//	@Tags			project
//	@Produce		json
//	@Success		200	{array}		model.Project
//	@Failure		500	{object}	serializer.Response
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err, "project", "failed to fetch projects")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
//
//	@Summary		Get project
//	@Tags			project
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	model.Project
//	@Failure		404	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "project", "failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project. Status defaults to Draft, productTypes to [] and notes to "".
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ProjectReq	true	"CreateProject payload"
//	@Success		201		{object}	model.Project
//	@Failure		400		{object}	serializer.Response
//	@Failure		500		{object}	serializer.Response
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := ProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, err, "project", "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
//
//	@Summary		Replace project
//	@Description	Overwrite every field of a project. createdAt is kept, updatedAt is refreshed.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Project ID"	Format(uuid)
//	@Param			payload	body		handler.ProjectReq	true	"UpdateProject payload"
//	@Success		200		{object}	model.Project
//	@Failure		400		{object}	serializer.Response
//	@Failure		404		{object}	serializer.Response
//	@Failure		500		{object}	serializer.Response
//	@Router			/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	req := ProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, err, "project", "failed to update project")
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Tags			project
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Deleted
//	@Failure		404	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "project", "failed to delete project")
		return
	}

	c.JSON(http.StatusOK, serializer.Deleted{Success: true})
}
