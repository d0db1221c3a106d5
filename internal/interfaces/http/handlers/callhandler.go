package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/dto"
	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

type CallHandler struct {
	createCallUC createCallUseCase
	listCallsUC  listCallsUseCase
	deleteCallUC deleteCallUseCase
	logger       logger.Interface
}

func NewCallHandler(
	createCallUC createCallUseCase,
	listCallsUC listCallsUseCase,
	deleteCallUC deleteCallUseCase,
	logger logger.Interface,
) *CallHandler {
	return &CallHandler{
		createCallUC: createCallUC,
		listCallsUC:  listCallsUC,
		deleteCallUC: deleteCallUC,
		logger:       logger,
	}
}

// List returns the call ledger
// @Summary List calls
// @Description Calls whose subscriber or city no longer exists are omitted
// @Tags Calls
// @Produce json
// @Security BearerAuth
// @Success 200 {array} calldto.CallViewDTO
// @Failure 500 {object} utils.APIResponse
// @Router /calls [get]
func (h *CallHandler) List(c *gin.Context) {
	result, err := h.listCallsUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, msgListCallsFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// Create rates and records a call
// @Summary Create call
// @Description Duration is in seconds. Date is optional: Unix milliseconds or ISO-8601.
// @Tags Calls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCallRequest true "Call"
// @Success 200 {object} calldto.CallDTO
// @Failure 400 {object} utils.APIResponse
// @Router /calls [post]
func (h *CallHandler) Create(c *gin.Context) {
	var req dto.CreateCallRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.createCallUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		appErr := toAppError(err, msgCreateCallFailed)
		// An unknown subscriber or city is bad input here, not a missing resource.
		if appErr.Type == errors.ErrorTypeNotFound {
			err = errors.NewBadRequestError(appErr.Message)
		}
		respondError(c, h.logger, err, msgCreateCallFailed)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// Delete removes a call
// @Summary Delete call
// @Tags Calls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Call ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /calls/{id} [delete]
func (h *CallHandler) Delete(c *gin.Context) {
	if err := h.deleteCallUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, msgDeleteCallFailed)
		return
	}
	utils.MessageResponse(c, msgCallDeleted)
}
