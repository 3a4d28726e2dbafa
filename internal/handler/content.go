package handler

import (
	"context"
	"net/http"

	"github.com/Payphone-Digital/content-gateway/internal/constants"
	"github.com/Payphone-Digital/content-gateway/internal/dto"
	apperrors "github.com/Payphone-Digital/content-gateway/internal/errors"
	"github.com/Payphone-Digital/content-gateway/internal/service"
	"github.com/Payphone-Digital/content-gateway/pkg/content"
	ctxutil "github.com/Payphone-Digital/content-gateway/pkg/context"
	"github.com/Payphone-Digital/content-gateway/pkg/logger"
	"github.com/Payphone-Digital/content-gateway/pkg/validation"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(service *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: service}
}

// ListDocuments serves GET /content/:collection. The request query string is
// forwarded to the backend as is.
func (h *ContentHandler) ListDocuments(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "ListDocuments")

	var uri dto.CollectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.badRequest(c, err)
		return
	}
	ctx = ctxutil.WithCollection(ctx, uri.Collection)

	query := content.QueryFromValues(c.Request.URL.Query())

	logger.DebugWithContext(ctx, "List documents request").
		String("query", query.Encode()).
		Log()

	page, err := h.contentService.ListDocuments(ctx, uri.Collection, query)
	if err != nil {
		h.fail(c, ctx, "Failed to list documents", err)
		return
	}

	logger.InfoWithContext(ctx, "Documents listed").
		Int("count", page.Len()).
		Int("page", page.Page).
		Int("total_docs", page.TotalDocs).
		Log()

	c.JSON(http.StatusOK, page)
}

// GetDocument serves GET /content/:collection/:id.
func (h *ContentHandler) GetDocument(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "GetDocument")

	var uri dto.DocumentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.badRequest(c, err)
		return
	}
	ctx = ctxutil.WithCollection(ctx, uri.Collection)

	doc, err := h.contentService.GetDocument(ctx, uri.Collection, uri.ID)
	if err != nil {
		h.fail(c, ctx, "Failed to fetch document", err)
		return
	}

	logger.InfoWithContext(ctx, "Document fetched").
		String("id", uri.ID).
		Int("size", len(doc)).
		Log()

	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// MediaURL serves GET /media/:filename as a redirect to the media file, or as
// {"url": ...} with ?format=json.
func (h *ContentHandler) MediaURL(c *gin.Context) {
	var uri dto.MediaURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.badRequest(c, err)
		return
	}
	var query dto.MediaQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)
		return
	}

	url := h.contentService.MediaURL(uri.Filename)
	if query.Format == "json" {
		c.JSON(http.StatusOK, constants.BuildMediaResponse(url))
		return
	}
	c.Redirect(http.StatusFound, url)
}

func (h *ContentHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, constants.BuildDomainErrorResponse(
		apperrors.ErrInvalidInput.Code,
		apperrors.ErrInvalidInput.Message,
		validation.Messages(err),
	))
}

func (h *ContentHandler) fail(c *gin.Context, ctx context.Context, message string, err error) {
	status := apperrors.ToHTTPStatus(err)
	code := apperrors.ErrInternal.Code
	if domainErr := apperrors.GetDomainError(err); domainErr != nil {
		code = domainErr.Code
	}

	// upstream failures are already logged by the client's error hook
	entry := logger.WarnWithContext(ctx, message)
	if status == http.StatusInternalServerError {
		entry = logger.ErrorWithContext(ctx, message).Err(err)
	}
	entry.String("code", code).
		Int("http_status", status).
		Log()

	c.JSON(status, constants.BuildDomainErrorResponse(code, message, apperrors.GetErrorMessage(err)))
}
