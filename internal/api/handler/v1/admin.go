package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-parking/registration-api/internal/api/handler/v1/request"
	"github.com/campus-parking/registration-api/internal/api/handler/v1/response"
	"github.com/campus-parking/registration-api/internal/config"
	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/pkg/jwthelper"
	"github.com/campus-parking/registration-api/internal/service"
)

type AdminService interface {
	Login(ctx context.Context, password string) (domain.AdminSession, error)
	Logout(ctx context.Context) error
	Stats(ctx context.Context) (domain.SpotCounts, error)
	Registrations(ctx context.Context) ([]domain.Registration, error)
	RegistrationSummary(ctx context.Context, referenceID string) (string, error)
	RemoveRegistration(ctx context.Context, referenceID string) error
	Spots(lotName string) []domain.LotSpot
	ClearSpot(ctx context.Context, lotKey, spotID string) error
	Refresh(ctx context.Context) error
	ResetAll(ctx context.Context) error
	Export(ctx context.Context) (domain.ExportDocument, error)
}

type AdminHandler struct {
	conf *config.APIConfig
	svc  AdminService
}

func NewAdminHandler(conf *config.APIConfig, svc AdminService) *AdminHandler {
	return &AdminHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Authenticate the administrator
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdminLoginRequest true "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	var req request.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session, err := h.svc.Login(ctx.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), session.SessionID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:   token,
		Session: session,
	})
}

// HandleLogout godoc
// @Summary      End the admin session
// @Tags         admin
// @Produce      json
// @Success      204  "no content"
// @Failure      500  {object}  response.Err
// @Router       /admin/logout [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleLogout(ctx *gin.Context) {
	if err := h.svc.Logout(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleLogout -> h.svc.Logout -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetStats godoc
// @Summary      Dashboard counts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.SpotCounts
// @Failure      500  {object}  response.Err
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetStats(ctx *gin.Context) {
	counts, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, counts)
}

// HandleGetRegistrations godoc
// @Summary      List all registrations
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Registration
// @Failure      500  {object}  response.Err
// @Router       /admin/registrations [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetRegistrations(ctx *gin.Context) {
	list, err := h.svc.Registrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrations -> h.svc.Registrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleGetRegistrationSummary godoc
// @Summary      Per-row copy summary for a registration
// @Tags         admin
// @Produce      json
// @Param        referenceID  path      string  true  "reference id"
// @Success      200          {object}  response.SummaryResponse
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/registrations/{referenceID}/summary [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetRegistrationSummary(ctx *gin.Context) {
	referenceID := ctx.Param("referenceID")

	summary, err := h.svc.RegistrationSummary(ctx.Request.Context(), referenceID)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "referenceID", referenceID))
			return
		}

		err = fmt.Errorf("v1.HandleGetRegistrationSummary -> h.svc.RegistrationSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SummaryResponse{
		Summary: summary,
	})
}

// HandleDeleteRegistration godoc
// @Summary      Remove one registration
// @Tags         admin
// @Produce      json
// @Param        referenceID  path  string  true  "reference id"
// @Success      204  "no content"
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/registrations/{referenceID} [delete]
// @Security     BearerAuth
func (h *AdminHandler) HandleDeleteRegistration(ctx *gin.Context) {
	referenceID := ctx.Param("referenceID")

	if err := h.svc.RemoveRegistration(ctx.Request.Context(), referenceID); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "referenceID", referenceID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteRegistration -> h.svc.RemoveRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetSpots godoc
// @Summary      Spots table, optionally filtered by lot display name
// @Tags         admin
// @Produce      json
// @Param        lot  query     string  false  "exact lot display name"
// @Success      200  {array}   domain.LotSpot
// @Router       /admin/spots [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetSpots(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Spots(ctx.Query("lot")))
}

// HandleClearSpot godoc
// @Summary      Free a spot and drop its registration
// @Tags         admin
// @Produce      json
// @Param        lotKey  path  string  true  "lot key"
// @Param        spotID  path  string  true  "spot id"
// @Success      204  "no content"
// @Failure      404  {object}  response.Err
// @Failure      503  {object}  response.Err
// @Router       /admin/spots/{lotKey}/{spotID}/clear [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleClearSpot(ctx *gin.Context) {
	lotKey := ctx.Param("lotKey")
	spotID := ctx.Param("spotID")

	if err := h.svc.ClearSpot(ctx.Request.Context(), lotKey, spotID); err != nil {
		switch {
		case errors.Is(err, service.ErrInventoryUnavailable):
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		case errors.Is(err, service.ErrLotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("lot", "key", lotKey))
		case errors.Is(err, service.ErrSpotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("spot", "id", spotID))
		default:
			err = fmt.Errorf("v1.HandleClearSpot -> h.svc.ClearSpot -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRefresh godoc
// @Summary      Reload the inventory from its source
// @Tags         admin
// @Produce      json
// @Success      204  "no content"
// @Failure      503  {object}  response.Err
// @Router       /admin/refresh [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleRefresh(ctx *gin.Context) {
	if err := h.svc.Refresh(ctx.Request.Context()); err != nil {
		response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleReset godoc
// @Summary      Reset all spots and delete every registration
// @Tags         admin
// @Produce      json
// @Success      204  "no content"
// @Failure      500  {object}  response.Err
// @Router       /admin/reset [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleReset(ctx *gin.Context) {
	if err := h.svc.ResetAll(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleReset -> h.svc.ResetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleExport godoc
// @Summary      Download the full data snapshot
// @Description  Serves the inventory, registration list and counts as an attachment named with the current date.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.ExportDocument
// @Failure      500  {object}  response.Err
// @Router       /admin/export [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleExport(ctx *gin.Context) {
	doc, err := h.svc.Export(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleExport -> h.svc.Export -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename := fmt.Sprintf("parking-data-%s.json", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.IndentedJSON(http.StatusOK, doc)
}
