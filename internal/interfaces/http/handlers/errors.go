package handlers

import (
	"encoding/json"
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/domain/call"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/domain/rating"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

const (
	msgCityNotFound          = "City not found"
	msgSubscriberNotFound    = "Subscriber not found"
	msgCallNotFound          = "Call not found"
	msgCityNameExists        = "A city with this name already exists"
	msgPhoneNumberExists     = "A subscriber with this phone number already exists"
	msgAdminNotFound         = "Admin not found. Please check your email or password"
	msgInvalidCredentials    = "Invalid credentials. Please check your password"
	msgInvalidRequestBody    = "Invalid request body"
	msgDurationWholeSeconds  = "Duration must be a whole number of seconds"
	msgCityDeleted           = "City successfully deleted"
	msgSubscriberDeleted     = "Subscriber successfully deleted"
	msgCallDeleted           = "Call successfully deleted"
	msgListCitiesFailed      = "Failed to fetch the list of cities. Please try again"
	msgListSubscribersFailed = "Failed to fetch the subscriber list. Please try again"
	msgListCallsFailed       = "Failed to fetch the call list. Please try again"
	msgCreateCallFailed      = "Failed to add the call to the list. Please try again"
	msgDeleteCallFailed      = "Failed to delete the call. Please try again"
	msgLoginFailed           = "An error occurred during admin authentication. Please try again later"
	msgSaveCityFailed        = "Failed to save the city. Please try again"
	msgSaveSubscriberFailed  = "Failed to save the subscriber. Please try again"
	msgDeleteCityFailed      = "Failed to delete the city. Please try again"
	msgDeleteSubFailed       = "Failed to delete the subscriber. Please try again"
	msgGetSubscriberFailed   = "Failed to fetch the subscriber. Please try again"
)

// toAppError maps domain sentinels to transport errors. Anything it does not
// recognise becomes an internal error carrying fallback.
func toAppError(err error, fallback string) *errors.AppError {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}

	switch {
	case stderrors.Is(err, city.ErrCityNotFound):
		return errors.NewNotFoundError(msgCityNotFound)
	case stderrors.Is(err, subscriber.ErrSubscriberNotFound):
		return errors.NewNotFoundError(msgSubscriberNotFound)
	case stderrors.Is(err, call.ErrCallNotFound):
		return errors.NewNotFoundError(msgCallNotFound)

	case stderrors.Is(err, city.ErrCityNameExists):
		return errors.NewConflictError(msgCityNameExists)
	case stderrors.Is(err, subscriber.ErrPhoneNumberExists):
		return errors.NewConflictError(msgPhoneNumberExists)

	case city.IsValidationError(err), subscriber.IsValidationError(err):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, call.ErrInvalidDate):
		return errors.NewValidationError("Invalid date", err.Error())
	case stderrors.Is(err, rating.ErrInvalidDuration), stderrors.Is(err, call.ErrInvalidCall):
		return errors.NewValidationError(err.Error())

	case stderrors.Is(err, admin.ErrAdminNotFound):
		return errors.NewBadRequestError(msgAdminNotFound)
	case stderrors.Is(err, admin.ErrInvalidCredentials):
		return errors.NewBadRequestError(msgInvalidCredentials)
	}

	return errors.NewInternalError(fallback)
}

// respondError writes err as an error envelope. Internal errors are logged
// with the cause; clients only see fallback.
func respondError(c *gin.Context, log logger.Interface, err error, fallback string) {
	appErr := toAppError(err, fallback)
	if appErr.Type == errors.ErrorTypeInternal {
		log.Errorw("request failed",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)
		_ = c.Error(err)
	}
	utils.ErrorResponseWithError(c, appErr)
}

// bindJSON decodes and validates the request body into req. It writes the
// 400 response itself and returns false on failure.
func bindJSON(c *gin.Context, log logger.Interface, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid request body", "path", c.Request.URL.Path, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(decodeErrorMessage(err), err.Error()))
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field == "duration" {
		return msgDurationWholeSeconds
	}
	return msgInvalidRequestBody
}
