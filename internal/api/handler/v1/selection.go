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

type SelectionService interface {
	Select(ctx context.Context, lotKey, spotID string, half domain.ShareHalf) (domain.Selection, error)
	Current(ctx context.Context) (domain.Selection, error)
}

type InventoryReader interface {
	Lots() ([]domain.Lot, error)
	Lot(key string) (domain.Lot, error)
}

type SelectionHandler struct {
	svc       SelectionService
	inventory InventoryReader
}

func NewSelectionHandler(svc SelectionService, inventory InventoryReader) *SelectionHandler {
	return &SelectionHandler{
		svc:       svc,
		inventory: inventory,
	}
}

// HandleListLots godoc
// @Summary      List parking lots with availability
// @Tags         selection
// @Produce      json
// @Success      200  {array}   response.LotOverview
// @Failure      503  {object}  response.Err
// @Router       /lots [get]
func (h *SelectionHandler) HandleListLots(ctx *gin.Context) {
	lots, err := h.inventory.Lots()
	if err != nil {
		if errors.Is(err, service.ErrInventoryUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))
			return
		}

		err = fmt.Errorf("v1.HandleListLots -> h.inventory.Lots -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	overviews := make([]response.LotOverview, 0, len(lots))
	for _, lot := range lots {
		overviews = append(overviews, response.NewLotOverview(lot))
	}

	ctx.JSON(http.StatusOK, overviews)
}

// HandleGetLotSpots godoc
// @Summary      List one lot's spots with their activation targets
// @Tags         selection
// @Produce      json
// @Param        lotKey  path      string  true  "lot key"
// @Success      200     {array}   response.SpotResponse
// @Failure      404     {object}  response.Err
// @Failure      503     {object}  response.Err
// @Router       /lots/{lotKey}/spots [get]
func (h *SelectionHandler) HandleGetLotSpots(ctx *gin.Context) {
	lotKey := ctx.Param("lotKey")

	lot, err := h.inventory.Lot(lotKey)
	if err != nil {
		if errors.Is(err, service.ErrInventoryUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))
			return
		}
		if errors.Is(err, service.ErrLotNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("lot", "key", lotKey))
			return
		}

		err = fmt.Errorf("v1.HandleGetLotSpots -> h.inventory.Lot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	spots := make([]response.SpotResponse, 0, len(lot.Spots))
	for _, spot := range lot.Spots {
		spots = append(spots, response.NewSpotResponse(spot))
	}

	ctx.JSON(http.StatusOK, spots)
}

// HandlePutSelection godoc
// @Summary      Select a spot or one half of a shared spot
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        request  body      request.SelectSpotRequest true "request body"
// @Success      200      {object}  domain.Selection
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /selection [put]
func (h *SelectionHandler) HandlePutSelection(ctx *gin.Context) {
	var req request.SelectSpotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sel, err := h.svc.Select(ctx.Request.Context(), req.LotKey, req.SpotID, domain.ShareHalf(req.Half))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInventoryUnavailable):
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		case errors.Is(err, service.ErrLotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("lot", "key", req.LotKey))
		case errors.Is(err, service.ErrSpotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("spot", "id", req.SpotID))
		case errors.Is(err, service.ErrSpotTaken),
			errors.Is(err, service.ErrHalfRequired),
			errors.Is(err, service.ErrHalfNotValid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandlePutSelection -> h.svc.Select -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, sel)
}

// HandleGetSelection godoc
// @Summary      Restore the persisted selection
// @Tags         selection
// @Produce      json
// @Success      200  {object}  domain.Selection
// @Failure      409  {object}  response.Err
// @Router       /selection [get]
func (h *SelectionHandler) HandleGetSelection(ctx *gin.Context) {
	sel, err := h.svc.Current(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoSelection) {
			response.RenderErr(ctx, response.ErrPreconditionFailed(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetSelection -> h.svc.Current -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sel)
}
