package http

import (
	"github.com/telebill/telebill/internal/interfaces/http/handlers"
	"github.com/telebill/telebill/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler     *handlers.HealthHandler
	authHandler       *handlers.AuthHandler
	subscriberHandler *handlers.SubscriberHandler
	cityHandler       *handlers.CityHandler
	callHandler       *handlers.CallHandler
}

func newHandlers(ucs *allUseCases, db handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(db, log),
		authHandler:   handlers.NewAuthHandler(ucs.loginUC, log),
		subscriberHandler: handlers.NewSubscriberHandler(
			ucs.createSubscriberUC,
			ucs.updateSubscriberUC,
			ucs.deleteSubscriberUC,
			ucs.getSubscriberUC,
			ucs.listSubscribersUC,
			log,
		),
		cityHandler: handlers.NewCityHandler(
			ucs.createCityUC,
			ucs.updateCityUC,
			ucs.deleteCityUC,
			ucs.listCitiesUC,
			log,
		),
		callHandler: handlers.NewCallHandler(ucs.createCallUC, ucs.listCallsUC, ucs.deleteCallUC, log),
	}
}
