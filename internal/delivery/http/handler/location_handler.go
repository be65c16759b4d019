package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/pkg/utils"
	"github.com/branch-finder/internal/pkg/validator"
	"github.com/branch-finder/internal/usecase"
	"github.com/branch-finder/internal/usecase/dto"
)

// LocationHandler - branch and ATM search and detail endpoints
type LocationHandler struct {
	searchUC   *usecase.SearchUseCase
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(
	searchUC *usecase.SearchUseCase,
	locationUC *usecase.LocationUseCase,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		searchUC:   searchUC,
		locationUC: locationUC,
		logger:     logger,
	}
}

// Search godoc
// @Summary Search branches and ATMs
// @Description Finds Sparkasse branches, ATMs and self-service points around a coordinate, sorted by distance. Facilities are matched with OR semantics; unknown facility ids are ignored.
// @Tags Locations
// @Produce json
// @Param latitude query number true "Latitude of the search center (-90..90)"
// @Param longitude query number true "Longitude of the search center (-180..180)"
// @Param radius_km query number false "Search radius in km (0.1..50)" default(5)
// @Param type_group query string false "Location type" Enums(ATM, BRANCH, SELF_SERVICE)
// @Param open_now query bool false "Only locations open right now"
// @Param facilities query string false "Comma-separated facility ids, e.g. 1,4"
// @Param limit query int false "Maximum number of results (1..50)" default(10)
// @Param page query int false "Page number, echoed back" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/locations/search [get]
func (h *LocationHandler) Search(c *fiber.Ctx) error {
	req, err := parseSearchQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.search(c, req)
}

// SearchPost godoc
// @Summary Search branches and ATMs (JSON body)
// @Description Same as the GET variant with the query passed as a JSON document.
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search query"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/locations/search [post]
func (h *LocationHandler) SearchPost(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidArguments.WithMessage("invalid request body"))
	}
	req.TypeGroup = strings.ToUpper(strings.TrimSpace(req.TypeGroup))
	return h.search(c, req)
}

func (h *LocationHandler) search(c *fiber.Ctx, req dto.SearchRequest) error {
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.TotalResults,
		Page:  result.Page,
		Limit: result.PageSize,
	})
}

// GetByID godoc
// @Summary Location details
// @Description Returns the full record of a single location: address, contact, opening and consultation hours, facilities, images.
// @Tags Locations
// @Produce json
// @Param id path int true "Location id"
// @Success 200 {object} utils.SuccessResponse{data=dto.BranchDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, invalidParam("id", "must be an integer"))
	}

	req := dto.DetailRequest{ID: id}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	detail, err := h.locationUC.GetDetail(c.Context(), req.ID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

func parseSearchQuery(c *fiber.Ctx) (dto.SearchRequest, error) {
	var req dto.SearchRequest
	var err error

	if req.Latitude, err = queryFloat(c, "latitude"); err != nil {
		return req, err
	}
	if req.Longitude, err = queryFloat(c, "longitude"); err != nil {
		return req, err
	}
	if req.RadiusKm, err = queryFloat(c, "radius_km"); err != nil {
		return req, err
	}
	if req.Limit, err = queryInt(c, "limit"); err != nil {
		return req, err
	}
	if req.Page, err = queryInt(c, "page"); err != nil {
		return req, err
	}

	if raw := c.Query("open_now"); raw != "" {
		v, perr := strconv.ParseBool(raw)
		if perr != nil {
			return req, invalidParam("open_now", "must be a boolean")
		}
		req.OpenNow = &v
	}

	req.TypeGroup = strings.ToUpper(strings.TrimSpace(c.Query("type_group")))

	// Accept both facilities=1,4 and facilities=1&facilities=4.
	for _, raw := range c.Context().QueryArgs().PeekMulti("facilities") {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, perr := strconv.Atoi(part)
			if perr != nil {
				return req, invalidParam("facilities", "must be a comma-separated list of integers")
			}
			req.Facilities = append(req.Facilities, id)
		}
	}

	return req, nil
}

func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidParam(name, "must be a number")
	}
	return &v, nil
}

func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidParam(name, "must be an integer")
	}
	return &v, nil
}

func invalidParam(name, problem string) *errors.AppError {
	return errors.ErrInvalidArguments.
		WithMessage(fmt.Sprintf("invalid value for %s", name)).
		WithDetails(map[string]interface{}{name: problem})
}
