package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/campus-helpdesk/internal/domain/helpdesk"
	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
)

// Handler wires the HTTP transport to the helpdesk service.
type Handler struct {
	svc    helpdesk.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc helpdesk.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Index renders the chat page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{"CollegeName": h.svc.CollegeName()})
}

// Chat answers one question.
func (h *Handler) Chat(c *gin.Context) {
	var req helpdesk.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.svc.Answer(c.Request.Context(), req)
	if err != nil {
		status, code := statusForError(err, "chat_failed")
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Trending returns the most frequently answered queries.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.svc.Trending(c.Request.Context())
	if err != nil {
		status, code := statusForError(err, apperrors.CodeStats)
		if status == http.StatusInternalServerError {
			status = http.StatusServiceUnavailable
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}
	if items == nil {
		items = []helpdesk.TrendingQuery{}
	}
	c.JSON(http.StatusOK, gin.H{"queries": items})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "college": h.svc.CollegeName()})
}

// statusForError maps a domain error code to its HTTP status and wire code.
// Errors without a known code become a 500 carrying fallback.
func statusForError(err error, fallback string) (int, string) {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidInput:
		return http.StatusBadRequest, "invalid_request"
	case apperrors.CodeStats:
		return http.StatusServiceUnavailable, apperrors.CodeStats
	case apperrors.CodeDataNotFound:
		return http.StatusNotFound, apperrors.CodeDataNotFound
	default:
		return http.StatusInternalServerError, fallback
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
