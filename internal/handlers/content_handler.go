package handlers

import (
	"errors"
	"net/http"

	"council-portal-api/internal/content"
	"council-portal-api/internal/lookup"
	"council-portal-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	// Seq echoes the caller's sequence number so it can drop stale responses.
	Seq string `json:"seq,omitempty"`
	lookup.Global
}

// ListResource handles GET /api/<resource>
// Returns the whole collection, or only the items matching ?q=
func (h *Handler) ListResource(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.lookup.Filter(c.Request.Context(), resource, c.Query("q"))
		if errors.Is(err, lookup.ErrUnknownResource) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown resource"})
			return
		}
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Search handles GET /api/search
// Searches services, news and officials at once
func (h *Handler) Search(c *gin.Context) {
	res := h.lookup.Global(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, SearchResponse{Seq: c.Query("seq"), Global: res})
}

// SubmitFeedback handles POST /api/feedback
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req content.FeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	s, err := h.content.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.publish(realtime.TopicAdmin, realtime.Event{
		Type:     "feedback_submitted",
		Resource: content.KeySuggestions,
		ID:       s.ID,
	})
	c.JSON(http.StatusCreated, s)
}
