package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "github.com/telebill/telebill/internal/application/subscriber/dto"
	"github.com/telebill/telebill/internal/application/subscriber/usecases"
	"github.com/telebill/telebill/internal/domain/subscriber"
	"github.com/telebill/telebill/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateSubscriberUC struct {
	result *subdto.SubscriberDTO
	err    error
}

func (m *mockCreateSubscriberUC) Execute(ctx context.Context, cmd usecases.SubscriberCommand) (*subdto.SubscriberDTO, error) {
	return m.result, m.err
}

type mockUpdateSubscriberUC struct {
	result *subdto.SubscriberDTO
	err    error
}

func (m *mockUpdateSubscriberUC) Execute(ctx context.Context, sid string, cmd usecases.SubscriberCommand) (*subdto.SubscriberDTO, error) {
	return m.result, m.err
}

type mockDeleteSubscriberUC struct {
	err error
}

func (m *mockDeleteSubscriberUC) Execute(ctx context.Context, sid string) error {
	return m.err
}

type mockGetSubscriberUC struct {
	result *subdto.SubscriberDetailDTO
	err    error
}

func (m *mockGetSubscriberUC) Execute(ctx context.Context, sid string) (*subdto.SubscriberDetailDTO, error) {
	return m.result, m.err
}

type mockListSubscribersUC struct {
	result []*subdto.SubscriberListItemDTO
	err    error
}

func (m *mockListSubscribersUC) Execute(ctx context.Context) ([]*subdto.SubscriberListItemDTO, error) {
	return m.result, m.err
}

type subscriberUCs struct {
	create createSubscriberUseCase
	update updateSubscriberUseCase
	del    deleteSubscriberUseCase
	get    getSubscriberUseCase
	list   listSubscribersUseCase
}

func newTestSubscriberHandler(u subscriberUCs) *SubscriberHandler {
	return NewSubscriberHandler(u.create, u.update, u.del, u.get, u.list, testutil.NewMockLogger())
}

var validSubscriberBody = map[string]string{
	"phoneNumber": "0501234567",
	"edrpou":      "12345678",
	"address":     "Khreshchatyk 1",
}

func TestSubscriberHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{
			create: &mockCreateSubscriberUC{result: &subdto.SubscriberDTO{ID: "sub_a", PhoneNumber: "0501234567"}},
		})

		c, w := testutil.NewTestContext(http.MethodPost, "/subscribers", validSubscriberBody)
		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body subdto.SubscriberDTO
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "sub_a", body.ID)
	})

	t.Run("phone taken", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{
			create: &mockCreateSubscriberUC{err: subscriber.ErrPhoneNumberExists},
		})

		c, w := testutil.NewTestContext(http.MethodPost, "/subscribers", validSubscriberBody)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "A subscriber with this phone number already exists", resp.Error.Message)
	})

	t.Run("invalid phone", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{create: &mockCreateSubscriberUC{}})

		body := map[string]string{"phoneNumber": "12ab", "edrpou": "12345678", "address": "Khreshchatyk 1"}
		c, w := testutil.NewTestContext(http.MethodPost, "/subscribers", body)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, resp.Error.Details, "phoneNumber")
	})
}

func TestSubscriberHandler_Get(t *testing.T) {
	t.Run("detail with calls", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{
			get: &mockGetSubscriberUC{result: &subdto.SubscriberDetailDTO{
				Subscriber: &subdto.SubscriberDTO{ID: "sub_a"},
				Calls:      []*subdto.SubscriberCallDTO{{ID: "call_1", City: "Kyiv"}},
			}},
		})

		c, w := testutil.NewTestContext(http.MethodGet, "/subscribers/sub_a", nil)
		testutil.SetURLParam(c, "id", "sub_a")
		handler.Get(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body subdto.SubscriberDetailDTO
		require.NoError(t, testutil.ParseResponse(w, &body))
		require.Len(t, body.Calls, 1)
		assert.Equal(t, "Kyiv", body.Calls[0].City)
	})

	t.Run("not found", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{get: &mockGetSubscriberUC{err: subscriber.ErrSubscriberNotFound}})

		c, w := testutil.NewTestContext(http.MethodGet, "/subscribers/nope", nil)
		handler.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Subscriber not found", resp.Error.Message)
	})
}

func TestSubscriberHandler_UpdateDeleteList(t *testing.T) {
	t.Run("update not found", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{update: &mockUpdateSubscriberUC{err: subscriber.ErrSubscriberNotFound}})

		c, w := testutil.NewTestContext(http.MethodPut, "/subscribers/nope", validSubscriberBody)
		handler.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete message", func(t *testing.T) {
		handler := newTestSubscriberHandler(subscriberUCs{del: &mockDeleteSubscriberUC{}})

		c, w := testutil.NewTestContext(http.MethodDelete, "/subscribers/sub_a", nil)
		handler.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Subscriber successfully deleted", resp.Message)
	})

	t.Run("list carries calls count", func(t *testing.T) {
		item := &subdto.SubscriberListItemDTO{SubscriberDTO: subdto.SubscriberDTO{ID: "sub_a"}, CallsCount: 2}
		handler := newTestSubscriberHandler(subscriberUCs{list: &mockListSubscribersUC{result: []*subdto.SubscriberListItemDTO{item}}})

		c, w := testutil.NewTestContext(http.MethodGet, "/subscribers", nil)
		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"callsCount":2`)
		assert.Contains(t, w.Body.String(), `"_id":"sub_a"`)
	})
}
