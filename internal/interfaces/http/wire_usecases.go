package http

import (
	authUsecases "github.com/telebill/telebill/internal/application/auth/usecases"
	callUsecases "github.com/telebill/telebill/internal/application/call/usecases"
	cityUsecases "github.com/telebill/telebill/internal/application/city/usecases"
	subscriberUsecases "github.com/telebill/telebill/internal/application/subscriber/usecases"
	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	loginUC *authUsecases.LoginUseCase

	// Subscriber
	createSubscriberUC *subscriberUsecases.CreateSubscriberUseCase
	updateSubscriberUC *subscriberUsecases.UpdateSubscriberUseCase
	deleteSubscriberUC *subscriberUsecases.DeleteSubscriberUseCase
	getSubscriberUC    *subscriberUsecases.GetSubscriberUseCase
	listSubscribersUC  *subscriberUsecases.ListSubscribersUseCase

	// City
	createCityUC *cityUsecases.CreateCityUseCase
	updateCityUC *cityUsecases.UpdateCityUseCase
	deleteCityUC *cityUsecases.DeleteCityUseCase
	listCitiesUC *cityUsecases.ListCitiesUseCase

	// Call
	createCallUC *callUsecases.CreateCallUseCase
	listCallsUC  *callUsecases.ListCallsUseCase
	deleteCallUC *callUsecases.DeleteCallUseCase
}

func newUseCases(
	repos *repositories,
	txMgr db.Transactor,
	hasher admin.PasswordHasher,
	tokens authUsecases.TokenIssuer,
	log logger.Interface,
) *allUseCases {
	return &allUseCases{
		loginUC: authUsecases.NewLoginUseCase(repos.adminRepo, hasher, tokens, log),

		createSubscriberUC: subscriberUsecases.NewCreateSubscriberUseCase(repos.subscriberRepo, log),
		updateSubscriberUC: subscriberUsecases.NewUpdateSubscriberUseCase(repos.subscriberRepo, log),
		deleteSubscriberUC: subscriberUsecases.NewDeleteSubscriberUseCase(repos.subscriberRepo, repos.callRepo, txMgr, log),
		getSubscriberUC:    subscriberUsecases.NewGetSubscriberUseCase(repos.subscriberRepo, repos.callRepo, repos.cityRepo, log),
		listSubscribersUC:  subscriberUsecases.NewListSubscribersUseCase(repos.subscriberRepo, repos.callRepo, log),

		createCityUC: cityUsecases.NewCreateCityUseCase(repos.cityRepo, log),
		updateCityUC: cityUsecases.NewUpdateCityUseCase(repos.cityRepo, txMgr, log),
		deleteCityUC: cityUsecases.NewDeleteCityUseCase(repos.cityRepo, repos.callRepo, txMgr, log),
		listCitiesUC: cityUsecases.NewListCitiesUseCase(repos.cityRepo, log),

		createCallUC: callUsecases.NewCreateCallUseCase(repos.callRepo, repos.subscriberRepo, repos.cityRepo, log),
		listCallsUC:  callUsecases.NewListCallsUseCase(repos.callRepo, repos.subscriberRepo, repos.cityRepo, log),
		deleteCallUC: callUsecases.NewDeleteCallUseCase(repos.callRepo, log),
	}
}
