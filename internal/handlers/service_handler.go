package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/garage-scheduler/internal/usecase/catalog"
)

type ServiceHandler struct {
	store *ucCatalog.Store
}

func NewServiceHandler(store *ucCatalog.Store) *ServiceHandler {
	return &ServiceHandler{store: store}
}

// --------- Requests ---------

type ServiceRequest struct {
	CategoryID    *int64  `json:"category_id"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Duration      int     `json:"duration" binding:"required,min=1"`
	Price         float64 `json:"price" binding:"min=0"`
	RequiresParts bool    `json:"requires_parts"`
}

func (r ServiceRequest) draft() catalog.ServiceDraft {
	return catalog.ServiceDraft{
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Description:   r.Description,
		Duration:      r.Duration,
		Price:         r.Price,
		RequiresParts: r.RequiresParts,
	}
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	if c.Query("grouped") == "true" {
		httpresp.List(c, h.store.ServicesByCategory())
		return
	}
	httpresp.List(c, h.store.FilterServices(c.Query("category"), c.Query("query")))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	svc, err := h.store.SaveService(c.Request.Context(), catalog.NewService{ServiceDraft: req.draft()})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	svc, err := h.store.SaveService(c.Request.Context(), catalog.ExistingService{ID: id, ServiceDraft: req.draft()})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if !h.store.DeleteService(c.Request.Context(), id) {
		writeError(c, catalog.ErrServiceNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	httpresp.List(c, h.store.Categories())
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return id, true
}
