package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/garage-scheduler/internal/usecase/catalog"
)

type ClientHandler struct {
	store *ucCatalog.Store
}

func NewClientHandler(store *ucCatalog.Store) *ClientHandler {
	return &ClientHandler{store: store}
}

// List matches ?query= against name or phone.
func (h *ClientHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.SearchClients(c.Query("query")))
}
