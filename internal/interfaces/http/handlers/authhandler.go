package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/dto"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

type AuthHandler struct {
	loginUC loginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

// Login exchanges admin credentials for a bearer token
// @Summary Admin login
// @Description Authenticate an admin and receive a JWT valid for the configured number of days
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} authdto.LoginResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, h.logger, err, msgLoginFailed)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}
