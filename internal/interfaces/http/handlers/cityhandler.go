package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/dto"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

type CityHandler struct {
	createCityUC createCityUseCase
	updateCityUC updateCityUseCase
	deleteCityUC deleteCityUseCase
	listCitiesUC listCitiesUseCase
	logger       logger.Interface
}

func NewCityHandler(
	createCityUC createCityUseCase,
	updateCityUC updateCityUseCase,
	deleteCityUC deleteCityUseCase,
	listCitiesUC listCitiesUseCase,
	logger logger.Interface,
) *CityHandler {
	return &CityHandler{
		createCityUC: createCityUC,
		updateCityUC: updateCityUC,
		deleteCityUC: deleteCityUC,
		listCitiesUC: listCitiesUC,
		logger:       logger,
	}
}

// List returns all cities with their tariffs
// @Summary List cities
// @Tags Cities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} citydto.CityDTO
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /cities [get]
func (h *CityHandler) List(c *gin.Context) {
	cities, err := h.listCitiesUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, msgListCitiesFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cities)
}

// Create adds a city tariff
// @Summary Create city
// @Description Discount rates are sent as percentages (0-100) and returned as fractions
// @Tags Cities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CityRequest true "City tariff"
// @Success 201 {object} citydto.CityDTO
// @Failure 400 {object} utils.APIResponse
// @Router /cities [post]
func (h *CityHandler) Create(c *gin.Context) {
	var req dto.CityRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.createCityUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, h.logger, err, msgSaveCityFailed)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, result)
}

// Update replaces a city tariff
// @Summary Update city
// @Tags Cities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Param request body dto.CityRequest true "City tariff"
// @Success 200 {object} citydto.CityDTO
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{id} [put]
func (h *CityHandler) Update(c *gin.Context) {
	var req dto.CityRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.updateCityUC.Execute(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		respondError(c, h.logger, err, msgSaveCityFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// Delete removes a city together with its calls
// @Summary Delete city
// @Tags Cities
// @Produce json
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{id} [delete]
func (h *CityHandler) Delete(c *gin.Context) {
	if err := h.deleteCityUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, msgDeleteCityFailed)
		return
	}
	utils.MessageResponse(c, msgCityDeleted)
}
