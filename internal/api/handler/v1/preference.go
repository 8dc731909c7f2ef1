package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-parking/registration-api/internal/api/handler/v1/request"
	"github.com/campus-parking/registration-api/internal/api/handler/v1/response"
	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/service"
)

type PreferenceService interface {
	Theme(ctx context.Context) (domain.ThemePreference, error)
	SaveTheme(ctx context.Context, theme domain.ThemePreference) error
}

type PreferenceHandler struct {
	svc PreferenceService
}

func NewPreferenceHandler(svc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		svc: svc,
	}
}

// HandleGetTheme godoc
// @Summary      Get the stored theme preference
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  response.ThemeResponse
// @Router       /preferences/theme [get]
func (h *PreferenceHandler) HandleGetTheme(ctx *gin.Context) {
	theme, err := h.svc.Theme(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoTheme) {
			// Unset preference defaults to light.
			ctx.JSON(http.StatusOK, response.ThemeResponse{Theme: domain.ThemeLight})
			return
		}

		err = fmt.Errorf("v1.HandleGetTheme -> h.svc.Theme -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ThemeResponse{Theme: theme})
}

// HandlePutTheme godoc
// @Summary      Store the theme preference
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request  body      request.ThemeRequest true "request body"
// @Success      200      {object}  response.ThemeResponse
// @Failure      400      {object}  response.Err
// @Router       /preferences/theme [put]
func (h *PreferenceHandler) HandlePutTheme(ctx *gin.Context) {
	var req request.ThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	theme := domain.ThemePreference(req.Theme)
	if err := h.svc.SaveTheme(ctx.Request.Context(), theme); err != nil {
		err = fmt.Errorf("v1.HandlePutTheme -> h.svc.SaveTheme -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ThemeResponse{Theme: theme})
}
