package content

import (
	"context"
	"errors"

	"school-platform/pkg/apperrors"

	"github.com/microcosm-cc/bluemonday"
)

// Service is the single call surface the routes use. It validates
// input, applies documented defaults and sanitizes rich-text bodies
// before anything reaches the store. It performs no authorization;
// admin gating happens in the middleware layer.
type Service struct {
	store    Store
	sanitize *bluemonday.Policy
}

// NewService wraps a store.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		sanitize: bluemonday.UGCPolicy(),
	}
}

// Store exposes the underlying store, for health reporting.
func (s *Service) Store() Store {
	return s.store
}

// Create validates required fields, fills defaults and persists a new
// record.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Content, error) {
	if req.Title == "" || req.Body == "" || req.Section == "" {
		return nil, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Title, body, and section are required",
		)
	}
	if !ValidSections[req.Section] {
		return nil, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidSection,
			"Invalid section",
		)
	}
	if req.Language != "" && !ValidLanguages[req.Language] {
		return nil, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidLanguage,
			"Invalid language",
		)
	}

	rec := Content{
		Title:    req.Title,
		Body:     s.sanitize.Sanitize(req.Body),
		ImageURL: req.ImageURL,
		Section:  req.Section,
		Order:    req.Order,
		Language: req.Language,
		IsActive: true,
		Metadata: req.Metadata,
	}
	if rec.Language == "" {
		rec.Language = LanguageEN
	}
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	if rec.Metadata == nil {
		rec.Metadata = map[string]interface{}{}
	}

	created, err := s.store.Create(ctx, &rec)
	if err != nil {
		return nil, storeError(err, "Error creating content")
	}
	return created, nil
}

// ListPublic returns active records only. Language defaults to English
// so the public site always gets a deterministic listing.
func (s *Service) ListPublic(ctx context.Context, section, language string) ([]Content, error) {
	if language == "" {
		language = LanguageEN
	}

	active := true
	results, err := s.store.Find(ctx, Filter{
		Section:  section,
		Language: language,
		IsActive: &active,
	})
	if err != nil {
		return nil, storeError(err, "Error fetching content")
	}
	return results, nil
}

// ListAdmin returns all records, inactive ones included. Empty filter
// fields are unconstrained.
func (s *Service) ListAdmin(ctx context.Context, section, language string) ([]Content, error) {
	results, err := s.store.Find(ctx, Filter{
		Section:  section,
		Language: language,
	})
	if err != nil {
		return nil, storeError(err, "Error fetching content")
	}
	return results, nil
}

// Get returns a single record by its opaque ID.
func (s *Service) Get(ctx context.Context, id string) (*Content, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Error fetching content")
	}
	return rec, nil
}

// Update merges the provided fields onto an existing record. Missing
// IDs are a NotFound error; an update never creates a record.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Content, error) {
	if req.Section != nil && !ValidSections[*req.Section] {
		return nil, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidSection,
			"Invalid section",
		)
	}
	if req.Language != nil && !ValidLanguages[*req.Language] {
		return nil, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidLanguage,
			"Invalid language",
		)
	}
	if req.Body != nil {
		clean := s.sanitize.Sanitize(*req.Body)
		req.Body = &clean
	}

	rec, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, storeError(err, "Error updating content")
	}
	return rec, nil
}

// Delete removes a record permanently and returns its prior value.
// Hiding without deleting is done by updating isActive to false.
func (s *Service) Delete(ctx context.Context, id string) (*Content, error) {
	rec, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "Error deleting content")
	}
	return rec, nil
}

// storeError translates store failures into the API error taxonomy.
func storeError(err error, msg string) error {
	if errors.Is(err, ErrNotFound) {
		return apperrors.NewNotFound(
			apperrors.ErrCodeContentNotFound,
			"Content not found",
		)
	}
	return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, msg, err)
}
