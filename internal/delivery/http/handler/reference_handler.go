package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/pkg/utils"
	"github.com/branch-finder/internal/usecase"
)

// ReferenceHandler - facility catalog, object types and region configuration
type ReferenceHandler struct {
	referenceUC *usecase.ReferenceUseCase
	logger      *zap.Logger
}

func NewReferenceHandler(referenceUC *usecase.ReferenceUseCase, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUC: referenceUC,
		logger:      logger,
	}
}

// ListFacilities godoc
// @Summary Facility catalog
// @Description Facilities a location can offer. The ids are accepted by the facilities search filter.
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FacilitiesResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/facilities [get]
func (h *ReferenceHandler) ListFacilities(c *fiber.Ctx) error {
	result, err := h.referenceUC.ListFacilities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// ListObjectTypes godoc
// @Summary Object types
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ObjectTypesResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/object-types [get]
func (h *ReferenceHandler) ListObjectTypes(c *fiber.Ctx) error {
	result, err := h.referenceUC.ListObjectTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// GetConfiguration godoc
// @Summary Region configuration
// @Description Bank code, display name and supported object types of the configured Sparkasse.
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Configuration}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/configuration [get]
func (h *ReferenceHandler) GetConfiguration(c *fiber.Ctx) error {
	cfg, err := h.referenceUC.GetConfiguration(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, cfg, nil)
}
