package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/middleware"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

type SessionHandler struct {
	cfg *config.Config
	now func() time.Time
}

func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg, now: time.Now}
}

type StartSessionRequest struct {
	StaffID int64  `json:"staff_id"`
	Name    string `json:"name"`
}

// Start issues a session token for the operator. Without a staff id the
// configured workshop staff is used.
func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	staff := models.Staff{ID: h.cfg.StaffID, Name: h.cfg.StaffName}
	if req.StaffID > 0 {
		staff.ID = req.StaffID
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		staff.Name = name
	}

	token, err := middleware.IssueSessionToken(h.cfg.JWTSecret, staff, h.now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not start a session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"staff": staff,
	})
}
