package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"navio/internal/models"
	"navio/internal/repository"
)

const sessionNotFound = "Session not found"

type SessionHandler interface {
	ListSessions(c *gin.Context)
	GetSession(c *gin.Context)
	CreateSession(c *gin.Context)
	UpdateSession(c *gin.Context)
	JoinSession(c *gin.Context)
	DeleteSession(c *gin.Context)
}

type sessionHandler struct {
	repo   repository.SessionRepository
	paging Paging
	logger *zap.Logger
}

func NewSessionHandler(repo repository.SessionRepository, paging Paging, logger *zap.Logger) SessionHandler {
	return &sessionHandler{repo: repo, paging: paging, logger: logger}
}

// ListSessions handles GET /api/sessions?status=&partner_id=
func (h *sessionHandler) ListSessions(c *gin.Context) {
	page, err := h.paging.page(c)
	if err != nil {
		fail(c, err)
		return
	}

	sessions, err := h.repo.List(c.Request.Context(), models.SessionFilter{
		Status:    c.Query("status"),
		PartnerID: c.Query("partner_id"),
		Page:      page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /api/sessions/:id
func (h *sessionHandler) GetSession(c *gin.Context) {
	id, ok := pathID(c, sessionNotFound)
	if !ok {
		return
	}

	session, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateSession handles POST /api/sessions
func (h *sessionHandler) CreateSession(c *gin.Context) {
	var in models.CreateSessionInput
	if !bindJSON(c, &in, "Title and description are required") {
		return
	}

	session, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Session created", zap.String("session_id", session.ID))
	c.JSON(http.StatusCreated, session)
}

// UpdateSession handles PUT /api/sessions/:id
func (h *sessionHandler) UpdateSession(c *gin.Context) {
	id, ok := pathID(c, sessionNotFound)
	if !ok {
		return
	}
	var in models.UpdateSessionInput
	if !bindOptionalJSON(c, &in) {
		return
	}

	session, err := h.repo.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// JoinSession handles POST /api/sessions/:id/join
func (h *sessionHandler) JoinSession(c *gin.Context) {
	id, ok := pathID(c, sessionNotFound)
	if !ok {
		return
	}

	count, err := h.repo.Join(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participant_count": count})
}

// DeleteSession handles DELETE /api/sessions/:id
func (h *sessionHandler) DeleteSession(c *gin.Context) {
	id, ok := pathID(c, sessionNotFound)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	deleted(c, "Session")
}
