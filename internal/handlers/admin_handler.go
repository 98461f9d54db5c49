package handlers

import (
	"net/http"

	"council-portal-api/internal/content"
	"council-portal-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// ListSuggestions handles GET /api/admin/suggestions
// Responds 503 with a setup hint when the suggestions table doesn't exist yet
func (h *Handler) ListSuggestions(c *gin.Context) {
	items, err := h.content.Suggestions(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PublishNews handles POST /api/admin/news
func (h *Handler) PublishNews(c *gin.Context) {
	var req content.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	n, err := h.content.PublishNews(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("news published", "id", n.ID, "by", c.GetString("username"))
	h.publish(realtime.TopicPublic, realtime.Event{
		Type:     "news_published",
		Resource: content.KeyNews,
		ID:       n.ID,
	})
	c.JSON(http.StatusCreated, n)
}

// ClearCache handles DELETE /api/admin/cache
func (h *Handler) ClearCache(c *gin.Context) {
	if err := h.content.InvalidateAll(); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
