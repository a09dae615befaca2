package handlers

import (
	"errors"
	"net/http"

	request "nest_configurator/internal/adapter/http/dto/request"
	response "nest_configurator/internal/adapter/http/dto/response"
	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase"
	"nest_configurator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION", "Invalid selection payload", http.StatusBadRequest)

// ConfiguratorHandler exposes the configurator session operations.
type ConfiguratorHandler struct {
	usecase usecase.IConfiguratorUseCase
}

func NewConfiguratorHandler(uc usecase.IConfiguratorUseCase) *ConfiguratorHandler {
	return &ConfiguratorHandler{usecase: uc}
}

// CreateSession godoc
// @Summary      Start a configurator session
// @Description  Fresh session with default selections and a price of 0
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /sessions [post]
func (h *ConfiguratorHandler) CreateSession(c *gin.Context) {
	v, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(v))
}

// OpenSession godoc
// @Summary      Open or resume a session
// @Description  Resets the session when the previous visit was closed
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *ConfiguratorHandler) OpenSession(c *gin.Context) {
	v, err := h.usecase.OpenSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(v))
}

// CloseSession godoc
// @Summary      Mark a session as closed
// @Tags         sessions
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Router       /sessions/{session_id}/close [post]
func (h *ConfiguratorHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.CloseSession(c.Request.Context(), c.Param("session_id")); err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplySelection godoc
// @Summary      Select an option
// @Description  Publishes an optimistic estimate, then reconciles the authoritative price
// @Tags         selections
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                    true  "Session ID"
// @Param        body        body  request.SelectionRequest  true  "Selection"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/selections [put]
func (h *ConfiguratorHandler) ApplySelection(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidSelectionPayload)
		return
	}

	v, err := h.usecase.ApplySelection(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(v))
}

// RemoveSelection godoc
// @Summary      Deselect a category
// @Tags         selections
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        category    path  string  true  "Category"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/selections/{category} [delete]
func (h *ConfiguratorHandler) RemoveSelection(c *gin.Context) {
	v, err := h.usecase.RemoveSelection(c.Request.Context(), c.Param("session_id"), c.Param("category"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(v))
}

// ToggleAddOn godoc
// @Summary      Toggle a one-off add-on
// @Tags         selections
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        option_id   path  string  true  "Add-on option ID"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/addons/{option_id} [post]
func (h *ConfiguratorHandler) ToggleAddOn(c *gin.Context) {
	v, err := h.usecase.ToggleAddOn(c.Request.Context(), c.Param("session_id"), c.Param("option_id"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(v))
}

// Reset godoc
// @Summary      Reset a session to its defaults
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/reset [post]
func (h *ConfiguratorHandler) Reset(c *gin.Context) {
	v, err := h.usecase.Reset(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(v))
}

// GetPrice godoc
// @Summary      Current price, breakdown and monthly rate
// @Tags         pricing
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.PriceResponse
// @Router       /sessions/{session_id}/price [get]
func (h *ConfiguratorHandler) GetPrice(c *gin.Context) {
	q, err := h.usecase.Price(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetOptionPrice godoc
// @Summary      Relative display price of one option
// @Tags         pricing
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        category    path  string  true  "Category"
// @Param        option_id   path  string  true  "Option ID"
// @Success      200  {object}  response.OptionPriceResponse
// @Router       /sessions/{session_id}/options/{category}/{option_id}/price [get]
func (h *ConfiguratorHandler) GetOptionPrice(c *gin.Context) {
	category, optionID := c.Param("category"), c.Param("option_id")
	p, err := h.usecase.OptionPrice(c.Request.Context(), c.Param("session_id"), category, optionID)
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOptionPrice(category, optionID, p))
}

// GetViews godoc
// @Summary      Preview views available for the configuration
// @Tags         previews
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.ViewsResponse
// @Router       /sessions/{session_id}/views [get]
func (h *ConfiguratorHandler) GetViews(c *gin.Context) {
	vs, err := h.usecase.Views(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.ViewsResponse{Views: response.FromViews(vs)})
}

// GetPreview godoc
// @Summary      Resolve the preview asset of a view
// @Tags         previews
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        view        path  string  true  "exterior, interior, pv or fenster"
// @Success      200  {object}  response.PreviewResponse
// @Router       /sessions/{session_id}/preview/{view} [get]
func (h *ConfiguratorHandler) GetPreview(c *gin.Context) {
	p, err := h.usecase.Preview(c.Request.Context(), c.Param("session_id"), c.Param("view"))
	if err != nil {
		writeError(c, mapConfiguratorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreview(p))
}

// GetCatalog godoc
// @Summary      Option catalog
// @Tags         pricing
// @Produce      json
// @Success      200  {array}  response.CatalogCategoryResponse
// @Router       /catalog [get]
func (h *ConfiguratorHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog(c.Request.Context())))
}

func mapConfiguratorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidSelection):
		return pkg.NewDomainError("INVALID_SELECTION", "Invalid selection", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSuperseded):
		return pkg.NewDomainErrorSimple("SELECTION_SUPERSEDED", "A newer selection for this category was applied", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotInteracted):
		return pkg.NewDomainErrorSimple("NOT_INTERACTED", "Session has no price yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrReconciliation):
		return pkg.NewDomainError("RECONCILIATION_FAILED", "Price could not be computed, selection was not applied", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	ev := log.Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(appErr.Err).
		Str("code", appErr.Code).
		Int("status", appErr.HTTPStatus).
		Str("path", c.FullPath()).
		Msg("request failed")
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
