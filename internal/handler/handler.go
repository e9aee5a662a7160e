package handler

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"toneskill/internal/domain"
	"toneskill/internal/service"
)

// Handler exposes the skill over HTTP and dispatches inbound events
// to the session service.
type Handler struct {
	sessions *service.SessionService
	db       *sql.DB
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(sessions *service.SessionService, db *sql.DB, logger *zap.Logger) *Handler {
	return &Handler{sessions: sessions, db: db, logger: logger}
}

// Register registers all routes
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/alexa", h.handleEvent)
	r.GET("/healthz", h.handleHealth)
}

// handleEvent decodes one inbound event, routes it to exactly one
// handler path and returns the response envelope. All handler paths
// recover internally; only an unreadable body is a client error.
func (h *Handler) handleEvent(c *gin.Context) {
	var ev domain.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		h.logger.Warn("failed to decode inbound event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
		return
	}

	requestID := uuid.NewString()
	logger := h.logger.With(
		zap.String("invocation_id", requestID),
		zap.String("request_type", ev.Request.Type),
		zap.String("user_id", ev.UserID()),
	)
	logger.Info("event received")

	var env domain.Envelope
	switch Classify(&ev) {
	case KindPurchaseCallback:
		env = h.sessions.HandleCallback(c.Request.Context(), &ev)
	case KindLaunch:
		env = h.sessions.Launch(c.Request.Context(), &ev)
	case KindIntent:
		env = h.sessions.HandleIntent(c.Request.Context(), &ev)
	case KindSessionEnded:
		env = h.sessions.SessionEnded(&ev)
	case KindUserEvent:
		env = h.sessions.UserEvent(&ev)
	default:
		logger.Warn("unhandled event type")
		env = h.sessions.Closing(&ev)
	}

	c.JSON(http.StatusOK, env)
}

func (h *Handler) handleHealth(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
