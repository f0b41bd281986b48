package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtracker-api/internal/auth"
	"jobtracker-api/internal/dtos"
	"jobtracker-api/internal/extract"
	"jobtracker-api/internal/services"
)

// JobHandler binds the extraction pipeline and the record store to HTTP.
type JobHandler struct {
	Pipeline     *extract.Pipeline
	Applications *services.ApplicationService
}

func NewJobHandler(p *extract.Pipeline, apps *services.ApplicationService) *JobHandler {
	return &JobHandler{Pipeline: p, Applications: apps}
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ParseText is POST /parse: pasted posting text in, JobPosting out.
func (h *JobHandler) ParseText(c *gin.Context) {
	var req dtos.ParseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'text' field"})
		return
	}

	posting, err := h.Pipeline.ParseText(c.Request.Context(), text)
	if err != nil {
		h.renderParseError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// ParseLink is POST /parse-link: posting URL in, JobPosting (with job_url) out.
func (h *JobHandler) ParseLink(c *gin.Context) {
	var req dtos.ParseLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	posting, err := h.Pipeline.ParseLink(c.Request.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		h.renderParseError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Submit is POST /submit (JWT-protected): persists an application record.
func (h *JobHandler) Submit(c *gin.Context) {
	var req dtos.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Submit(auth.UserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": app})
}

func (h *JobHandler) renderParseError(c *gin.Context, err error) {
	var fe *extract.FetchError
	switch {
	case errors.Is(err, extract.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Extractor is not available"})
	case errors.As(err, &fe):
		c.JSON(http.StatusBadGateway, gin.H{"error": fe.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}
