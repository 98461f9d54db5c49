package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"council-portal-api/internal/auth"
	"council-portal-api/internal/content"
	"council-portal-api/internal/logging"
	"council-portal-api/internal/lookup"
	"council-portal-api/internal/realtime"
	"council-portal-api/internal/remote"

	"github.com/gin-gonic/gin"
)

// provisionHint tells an operator how to create missing tables.
const provisionHint = "the data store has not been provisioned; run `portal migrate` against it"

// AdminAccount is the single editor allowed into the admin console.
type AdminAccount struct {
	Username     string
	PasswordHash string
}

// Deps are the services the handlers call into.
type Deps struct {
	Content *content.Accessor
	Lookup  *lookup.Service
	Hub     *realtime.Hub
	Auth    *auth.Manager
	Admin   AdminAccount
	Logger  *slog.Logger
}

// Handler serves the portal's HTTP API.
type Handler struct {
	content *content.Accessor
	lookup  *lookup.Service
	hub     *realtime.Hub
	auth    *auth.Manager
	admin   AdminAccount
	logger  *slog.Logger
}

// New builds a Handler. Lookup and Hub are created when nil.
func New(d Deps) *Handler {
	if d.Lookup == nil {
		d.Lookup = lookup.New(d.Content)
	}
	if d.Hub == nil {
		d.Hub = realtime.NewHub()
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return &Handler{
		content: d.Content,
		lookup:  d.Lookup,
		hub:     d.Hub,
		auth:    d.Auth,
		admin:   d.Admin,
		logger:  d.Logger,
	}
}

// writeError maps a content-layer failure to a status code and JSON body.
func (h *Handler) writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *content.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
		return
	}

	var rerr *remote.Error
	if !errors.As(err, &rerr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	switch rerr.Kind {
	case remote.KindNotProvisioned:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Resource not provisioned",
			"code":  "not_provisioned",
			"hint":  provisionHint,
		})
	case remote.KindTimeout:
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Data store timed out",
			"code":  "timeout",
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Data store unavailable",
			"code":  "unavailable",
		})
	}
}

// publish pushes evt to topic subscribers. Failures only cost the live update.
func (h *Handler) publish(topic string, evt realtime.Event) {
	if err := h.hub.Publish(topic, evt); err != nil {
		h.logger.Warn("publish event failed", "topic", topic, "type", evt.Type, "error", err)
	}
}
