package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/dto"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

type SubscriberHandler struct {
	createSubscriberUC createSubscriberUseCase
	updateSubscriberUC updateSubscriberUseCase
	deleteSubscriberUC deleteSubscriberUseCase
	getSubscriberUC    getSubscriberUseCase
	listSubscribersUC  listSubscribersUseCase
	logger             logger.Interface
}

func NewSubscriberHandler(
	createSubscriberUC createSubscriberUseCase,
	updateSubscriberUC updateSubscriberUseCase,
	deleteSubscriberUC deleteSubscriberUseCase,
	getSubscriberUC getSubscriberUseCase,
	listSubscribersUC listSubscribersUseCase,
	logger logger.Interface,
) *SubscriberHandler {
	return &SubscriberHandler{
		createSubscriberUC: createSubscriberUC,
		updateSubscriberUC: updateSubscriberUC,
		deleteSubscriberUC: deleteSubscriberUC,
		getSubscriberUC:    getSubscriberUC,
		listSubscribersUC:  listSubscribersUC,
		logger:             logger,
	}
}

// List returns all subscribers with their call counts
// @Summary List subscribers
// @Tags Subscribers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} subdto.SubscriberListItemDTO
// @Failure 500 {object} utils.APIResponse
// @Router /subscribers [get]
func (h *SubscriberHandler) List(c *gin.Context) {
	result, err := h.listSubscribersUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, msgListSubscribersFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// Get returns a subscriber and the calls they made
// @Summary Get subscriber
// @Tags Subscribers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} subdto.SubscriberDetailDTO
// @Failure 404 {object} utils.APIResponse
// @Router /subscribers/{id} [get]
func (h *SubscriberHandler) Get(c *gin.Context) {
	result, err := h.getSubscriberUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, msgGetSubscriberFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// Create registers a subscriber
// @Summary Create subscriber
// @Tags Subscribers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubscriberRequest true "Subscriber"
// @Success 201 {object} subdto.SubscriberDTO
// @Failure 400 {object} utils.APIResponse
// @Router /subscribers [post]
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req dto.SubscriberRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.createSubscriberUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, h.logger, err, msgSaveSubscriberFailed)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, result)
}

// Update replaces subscriber details
// @Summary Update subscriber
// @Tags Subscribers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Param request body dto.SubscriberRequest true "Subscriber"
// @Success 200 {object} subdto.SubscriberDTO
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscribers/{id} [put]
func (h *SubscriberHandler) Update(c *gin.Context) {
	var req dto.SubscriberRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.updateSubscriberUC.Execute(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		respondError(c, h.logger, err, msgSaveSubscriberFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// Delete removes a subscriber and their calls
// @Summary Delete subscriber
// @Tags Subscribers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscribers/{id} [delete]
func (h *SubscriberHandler) Delete(c *gin.Context) {
	if err := h.deleteSubscriberUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, msgDeleteSubFailed)
		return
	}
	utils.MessageResponse(c, msgSubscriberDeleted)
}
