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

type RegistrationService interface {
	Submit(ctx context.Context, input service.SubmitInput) (domain.Registration, error)
	Current(ctx context.Context) (domain.Registration, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleSubmitRegistration godoc
// @Summary      Submit the registration form
// @Description  Merges the form fields with the persisted selection and appends the result to the registration list.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request  body      request.SubmitRegistrationRequest true "request body"
// @Success      201      {object}  domain.Registration
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /registrations [post]
func (h *RegistrationHandler) HandleSubmitRegistration(ctx *gin.Context) {
	var req request.SubmitRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reg, err := h.svc.Submit(ctx.Request.Context(), service.SubmitInput{
		FullName:        req.FullName,
		StudentID:       req.StudentID,
		Email:           req.Email,
		Phone:           req.Phone,
		GradeLevel:      domain.GradeLevel(req.GradeLevel),
		PartnerName:     req.PartnerName,
		PartnerSchedule: req.PartnerSchedule,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSelection):
			response.RenderErr(ctx, response.ErrPreconditionFailed(err))
		case errors.Is(err, service.ErrPartnerNameRequired),
			errors.Is(err, service.ErrPartnerScheduleRequired):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleSubmitRegistration -> h.svc.Submit -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleGetCurrentRegistration godoc
// @Summary      Get the registration being confirmed
// @Tags         registration
// @Produce      json
// @Success      200  {object}  domain.Registration
// @Failure      409  {object}  response.Err
// @Router       /registrations/current [get]
func (h *RegistrationHandler) HandleGetCurrentRegistration(ctx *gin.Context) {
	reg, err := h.svc.Current(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoRegistration) {
			response.RenderErr(ctx, response.ErrPreconditionFailed(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentRegistration -> h.svc.Current -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleGetConfirmationSummary godoc
// @Summary      Get the plain-text confirmation summary
// @Description  The text offered for copy-to-clipboard on the confirmation view.
// @Tags         registration
// @Produce      json
// @Success      200  {object}  response.SummaryResponse
// @Failure      409  {object}  response.Err
// @Router       /registrations/current/summary [get]
func (h *RegistrationHandler) HandleGetConfirmationSummary(ctx *gin.Context) {
	reg, err := h.svc.Current(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoRegistration) {
			response.RenderErr(ctx, response.ErrPreconditionFailed(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetConfirmationSummary -> h.svc.Current -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SummaryResponse{
		Summary: reg.Summary(),
	})
}
