package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/projecttracker/tracker/internal/modules/serializer"
	"github.com/projecttracker/tracker/internal/modules/service"
)

type ProductTypeHandler struct {
	svc service.ProductTypeService
}

func NewProductTypeHandler(s service.ProductTypeService) *ProductTypeHandler {
	return &ProductTypeHandler{svc: s}
}

type CreateProductTypeReq struct {
	Name string `json:"name" binding:"required" example:"Box Culvert"`
}

// ListProductTypes godoc
//
//	@Summary		List product types
//	@Description	List product types by name. The default set is created the first time the list is empty.
//	@Tags			product-type
//	@Produce		json
//	@Success		200	{array}		model.ProductType
//	@Failure		500	{object}	serializer.Response
//	@Router			/product-types [get]
func (h *ProductTypeHandler) ListProductTypes(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err, "product type", "failed to fetch product types")
		return
	}
	if items == nil {
		items = []*model.ProductType{}
	}

	c.JSON(http.StatusOK, items)
}

// CreateProductType godoc
//
//	@Summary		Create product type
//	@Description	Create a product type. Names are unique and case-sensitive.
//	@Tags			product-type
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateProductTypeReq	true	"CreateProductType payload"
//	@Success		201		{object}	model.ProductType
//	@Failure		400		{object}	serializer.Response	"name missing or already exists"
//	@Failure		500		{object}	serializer.Response
//	@Router			/product-types [post]
func (h *ProductTypeHandler) CreateProductType(c *gin.Context) {
	req := CreateProductTypeReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	pt, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err, "product type", "failed to create product type")
		return
	}

	c.JSON(http.StatusCreated, pt)
}

// DeleteProductType godoc
//
//	@Summary		Delete product type
//	@Description	Delete a product type and remove its name from every project that uses it
//	@Tags			product-type
//	@Produce		json
//	@Param			id	path		string	true	"Product type ID"	Format(uuid)
//	@Success		200	{object}	serializer.Deleted
//	@Failure		404	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/product-types/{id} [delete]
func (h *ProductTypeHandler) DeleteProductType(c *gin.Context) {
	id, ok := parseID(c, "id", "product type")
	if !ok {
		return
	}

	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "product type", "failed to delete product type")
		return
	}

	c.JSON(http.StatusOK, serializer.Deleted{Success: true, DeletedID: id.String()})
}
