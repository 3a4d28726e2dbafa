package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Payphone-Digital/content-gateway/internal/constants"
	apperrors "github.com/Payphone-Digital/content-gateway/internal/errors"
	"github.com/Payphone-Digital/content-gateway/pkg/content"
	"github.com/Payphone-Digital/content-gateway/pkg/logger"
)

// Document is a CMS document kept as raw JSON; the gateway does not interpret it.
type Document = json.RawMessage

// ContentService sits between the HTTP handlers and the content client and
// decides how client failures surface to callers.
type ContentService struct {
	client       *content.Client
	emptyOnError bool
}

func NewContentService(client *content.Client, emptyOnError bool) *ContentService {
	return &ContentService{
		client:       client,
		emptyOnError: emptyOnError,
	}
}

// ListDocuments returns one page of collection. With emptyOnError set, a
// failed listing yields an empty first page instead of an error.
func (s *ContentService) ListDocuments(ctx context.Context, collection string, q content.Query) (*content.PagedResult[Document], error) {
	page, err := content.List[Document](ctx, s.client, collection, q)
	if err == nil {
		return page, nil
	}

	domainErr := apperrors.FromContentError(err)
	if s.emptyOnError && domainErr.Code != apperrors.ErrInvalidInput.Code {
		logger.WarnWithContext(ctx, "Listing failed, serving empty page").
			String("collection", collection).
			String("code", domainErr.Code).
			Err(err).
			Log()
		return content.EmptyPage[Document](limitFromQuery(q)), nil
	}
	return nil, domainErr
}

// GetDocument returns a single document by id.
func (s *ContentService) GetDocument(ctx context.Context, collection, id string) (Document, error) {
	if id == "" {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, errEmptyID)
	}

	doc, err := content.Get[Document](ctx, s.client, collection, id)
	if err != nil {
		return nil, apperrors.FromContentError(err)
	}
	return doc, nil
}

// MediaURL returns the public URL of a media file.
func (s *ContentService) MediaURL(filename string) string {
	return s.client.MediaURL(filename)
}

// BaseURL returns the backend base URL the client targets.
func (s *ContentService) BaseURL() string {
	return s.client.BaseURL()
}

func limitFromQuery(q content.Query) int {
	v, ok := q[content.KeyLimit]
	if !ok {
		return constants.DefaultLimit
	}
	switch l := v.(type) {
	case content.Int:
		if l > 0 {
			return int(l)
		}
	case content.String:
		if n, err := strconv.Atoi(string(l)); err == nil && n > 0 {
			return n
		}
	}
	return constants.DefaultLimit
}
