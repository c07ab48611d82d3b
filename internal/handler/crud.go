package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/response"
)

// Filter is implemented by every resource filter: query-bound fields
// converted to a store predicate.
type Filter interface {
	Predicate() query.Predicate
}

// Crud is the one generic resource handler. It binds the resource filter
// from the query string, parses the shared sort/page/projection parameters,
// and forwards to the resource service. Per-resource handlers are thin
// instantiations of this type.
type Crud[F Filter, Row any, Out any, In any, Upd any] struct {
	svc *service.Crud[Row, Out, In, Upd]
}

// NewCrud wires a resource handler around its service.
func NewCrud[F Filter, Row any, Out any, In any, Upd any](svc *service.Crud[Row, Out, In, Upd]) *Crud[F, Row, Out, In, Upd] {
	return &Crud[F, Row, Out, In, Upd]{svc: svc}
}

// Register mounts the five CRUD routes under path.
func (h *Crud[F, Row, Out, In, Upd]) Register(rg *gin.RouterGroup, path string) {
	rg.GET(path, h.List)
	rg.GET(path+"/:id", h.Get)
	rg.POST(path, h.Create)
	rg.PUT(path+"/:id", h.Update)
	rg.DELETE(path+"/:id", h.Delete)
}

// parseSort reads the repeatable sortField parameter plus the single
// sortDirection, page, and size parameters. Unknown sort fields are a client
// error; duplicates pass through as given.
func (h *Crud[F, Row, Out, In, Upd]) parseSort(c *gin.Context) (query.Sort, error) {
	sort := query.DefaultSort()

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		sort.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("size", "10")); err == nil {
		sort.Size = size
	}
	sort.Direction = query.ParseDirection(c.Query("sortDirection"))

	mapping := h.svc.SortColumns()
	for _, raw := range c.QueryArray("sortField") {
		field := query.Field(raw)
		if _, ok := mapping[field]; !ok {
			return sort, appErrors.Clone(appErrors.ErrValidation, "unknown sort field "+strconv.Quote(raw))
		}
		sort.Fields = append(sort.Fields, field)
	}

	sort.Normalize()
	return sort, nil
}

// lightParam reads the projection flag, defaulting to the light shape.
func lightParam(c *gin.Context) bool {
	return c.DefaultQuery("light", "true") != "false"
}

// List godoc
// @Summary List resources
// @Produce json
// @Param page query int false "Page"
// @Param size query int false "Page size (max 100)"
// @Param sortField query []string false "Sort fields, repeatable"
// @Param sortDirection query string false "ASC or DESC"
// @Param light query bool false "Light projection (default true)"
// @Success 200 {object} response.Envelope
func (h *Crud[F, Row, Out, In, Upd]) List(c *gin.Context) {
	var filter F
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter parameters"))
		return
	}

	sort, err := h.parseSort(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, total, err := h.svc.List(c.Request.Context(), filter.Predicate(), sort, lightParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	page := response.NewPaginated(items, sort.Page, sort.Size, total, h.svc.Resource()+" list retrieved")
	response.JSON(c, http.StatusOK, page)
}

// Get godoc
// @Summary Get a resource by id
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Envelope
func (h *Crud[F, Row, Out, In, Upd]) Get(c *gin.Context) {
	out, err := h.svc.Get(c.Request.Context(), c.Param("id"), lightParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Single(out, h.svc.Resource()+" retrieved"))
}

// Create godoc
// @Summary Create a resource
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
func (h *Crud[F, Row, Out, In, Upd]) Create(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), in, lightParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, out, h.svc.Resource()+" created")
}

// Update godoc
// @Summary Partially update a resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Envelope
func (h *Crud[F, Row, Out, In, Upd]) Update(c *gin.Context) {
	var upd Upd
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), c.Param("id"), upd, lightParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Single(out, h.svc.Resource()+" updated"))
}

// Delete godoc
// @Summary Delete a resource
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Envelope
func (h *Crud[F, Row, Out, In, Upd]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Empty(h.svc.Resource()+" deleted"))
}
