package content

import (
	"github.com/labstack/echo/v4"

	"school-platform/pkg/apperrors"
	"school-platform/pkg/logger"
)

// Handler exposes the content service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns a handler backed by the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListHandler handles GET /api/content. Public: active records only,
// optionally filtered by section, language defaulting to English.
func (h *Handler) ListHandler(c echo.Context) error {
	results, err := h.svc.ListPublic(
		c.Request().Context(),
		c.QueryParam("section"),
		c.QueryParam("language"),
	)
	if err != nil {
		return err
	}
	return apperrors.RespondWithSuccess(c, results)
}

// GetHandler handles GET /api/content/:id. Public.
func (h *Handler) GetHandler(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return apperrors.RespondWithSuccess(c, rec)
}

// AdminListHandler handles GET /api/content/admin/all. Admin only:
// inactive records are included and no language is forced.
func (h *Handler) AdminListHandler(c echo.Context) error {
	results, err := h.svc.ListAdmin(
		c.Request().Context(),
		c.QueryParam("section"),
		c.QueryParam("language"),
	)
	if err != nil {
		return err
	}
	return apperrors.RespondWithSuccess(c, results)
}

// CreateHandler handles POST /api/content. Admin only.
func (h *Handler) CreateHandler(c echo.Context) error {
	log := logger.Get().WithComponent("content")

	req := new(CreateRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload",
		)
	}

	rec, err := h.svc.Create(c.Request().Context(), *req)
	if err != nil {
		return err
	}

	log.Info("Content created",
		logger.ContentID(rec.ID),
		logger.Section(rec.Section),
		logger.Language(rec.Language),
	)
	return apperrors.RespondWithCreated(c, rec)
}

// UpdateHandler handles PUT /api/content/:id. Admin only; fields left
// out of the payload keep their stored values.
func (h *Handler) UpdateHandler(c echo.Context) error {
	log := logger.Get().WithComponent("content")

	req := new(UpdateRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload",
		)
	}

	rec, err := h.svc.Update(c.Request().Context(), c.Param("id"), *req)
	if err != nil {
		return err
	}

	log.Info("Content updated", logger.ContentID(rec.ID), logger.Section(rec.Section))
	return apperrors.RespondWithSuccess(c, rec)
}

// DeleteHandler handles DELETE /api/content/:id. Admin only, hard
// delete.
func (h *Handler) DeleteHandler(c echo.Context) error {
	log := logger.Get().WithComponent("content")

	rec, err := h.svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	log.Info("Content deleted", logger.ContentID(rec.ID), logger.Section(rec.Section))
	return apperrors.RespondWithSuccess(c, map[string]string{
		"message": "Content deleted successfully",
	})
}
