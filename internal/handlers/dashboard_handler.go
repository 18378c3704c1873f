package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
	"github.com/BruksfildServices01/garage-scheduler/internal/usecase/report"
)

type DashboardHandler struct {
	reporter *report.Reporter
	toast    *notify.Toast
}

func NewDashboardHandler(reporter *report.Reporter, toast *notify.Toast) *DashboardHandler {
	return &DashboardHandler{reporter: reporter, toast: toast}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reporter.Dashboard(sess))
}

// Toast returns the confirmation currently on screen, if any.
func (h *DashboardHandler) Toast(c *gin.Context) {
	msg, visible := h.toast.Current()
	c.JSON(http.StatusOK, gin.H{
		"visible": visible,
		"message": msg,
	})
}
