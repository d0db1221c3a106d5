package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	citydto "github.com/telebill/telebill/internal/application/city/dto"
	"github.com/telebill/telebill/internal/application/city/usecases"
	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateCityUC struct {
	result *citydto.CityDTO
	err    error
	got    usecases.CityCommand
}

func (m *mockCreateCityUC) Execute(ctx context.Context, cmd usecases.CityCommand) (*citydto.CityDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateCityUC struct {
	result *citydto.CityDTO
	err    error
	sid    string
}

func (m *mockUpdateCityUC) Execute(ctx context.Context, sid string, cmd usecases.CityCommand) (*citydto.CityDTO, error) {
	m.sid = sid
	return m.result, m.err
}

type mockDeleteCityUC struct {
	err error
}

func (m *mockDeleteCityUC) Execute(ctx context.Context, sid string) error {
	return m.err
}

type mockListCitiesUC struct {
	result []*citydto.CityDTO
	err    error
}

func (m *mockListCitiesUC) Execute(ctx context.Context) ([]*citydto.CityDTO, error) {
	return m.result, m.err
}

func newTestCityHandler(create createCityUseCase, update updateCityUseCase, del deleteCityUseCase, list listCitiesUseCase) *CityHandler {
	return NewCityHandler(create, update, del, list, testutil.NewMockLogger())
}

func validCityBody() map[string]any {
	return map[string]any{
		"name":      "Kyiv",
		"dayRate":   1.5,
		"nightRate": 1.0,
		"discounts": []map[string]any{{"duration": 10, "discountRate": 15}},
	}
}

// =====================================================================
// Create
// =====================================================================

func TestCityHandler_Create_Success(t *testing.T) {
	mockUC := &mockCreateCityUC{result: &citydto.CityDTO{ID: "city_abc", Name: "Kyiv"}}
	handler := newTestCityHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/cities", validCityBody())
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body citydto.CityDTO
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "city_abc", body.ID)
	require.Len(t, mockUC.got.Discounts, 1)
	assert.Equal(t, 15.0, mockUC.got.Discounts[0].DiscountRate)
}

func TestCityHandler_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b map[string]any)
	}{
		{"missing name", func(b map[string]any) { delete(b, "name") }},
		{"missing discounts", func(b map[string]any) { delete(b, "discounts") }},
		{"zero day rate", func(b map[string]any) { b["dayRate"] = 0 }},
		{"four tiers", func(b map[string]any) {
			b["discounts"] = []map[string]any{
				{"duration": 1, "discountRate": 1}, {"duration": 2, "discountRate": 1},
				{"duration": 3, "discountRate": 1}, {"duration": 4, "discountRate": 1},
			}
		}},
		{"duplicate durations", func(b map[string]any) {
			b["discounts"] = []map[string]any{{"duration": 5, "discountRate": 1}, {"duration": 5, "discountRate": 2}}
		}},
		{"rate over 100", func(b map[string]any) {
			b["discounts"] = []map[string]any{{"duration": 5, "discountRate": 150}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockCreateCityUC{}
			handler := newTestCityHandler(mockUC, nil, nil, nil)
			body := validCityBody()
			tt.mutate(body)

			c, w := testutil.NewTestContext(http.MethodPost, "/cities", body)
			handler.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, "validation_error", resp.Error.Type)
			assert.Empty(t, mockUC.got.Name, "use case must not run")
		})
	}
}

func TestCityHandler_Create_MalformedJSON(t *testing.T) {
	handler := newTestCityHandler(&mockCreateCityUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/cities", `{"name":`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCityHandler_Create_Conflict(t *testing.T) {
	handler := newTestCityHandler(&mockCreateCityUC{err: city.ErrCityNameExists}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/cities", validCityBody())
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "conflict", resp.Error.Type)
	assert.Equal(t, "A city with this name already exists", resp.Error.Message)
}

// =====================================================================
// Update / Delete / List
// =====================================================================

func TestCityHandler_Update(t *testing.T) {
	t.Run("passes path id", func(t *testing.T) {
		mockUC := &mockUpdateCityUC{result: &citydto.CityDTO{ID: "city_abc"}}
		handler := newTestCityHandler(nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/cities/city_abc", validCityBody())
		testutil.SetURLParam(c, "id", "city_abc")
		handler.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "city_abc", mockUC.sid)
	})

	t.Run("unknown city", func(t *testing.T) {
		handler := newTestCityHandler(nil, &mockUpdateCityUC{err: city.ErrCityNotFound}, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/cities/nope", validCityBody())
		testutil.SetURLParam(c, "id", "nope")
		handler.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("domain invariant violation", func(t *testing.T) {
		handler := newTestCityHandler(nil, &mockUpdateCityUC{err: city.ErrTooManyDiscounts}, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/cities/city_abc", validCityBody())
		testutil.SetURLParam(c, "id", "city_abc")
		handler.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCityHandler_Delete(t *testing.T) {
	t.Run("success message", func(t *testing.T) {
		handler := newTestCityHandler(nil, nil, &mockDeleteCityUC{}, nil)

		c, w := testutil.NewTestContext(http.MethodDelete, "/cities/city_abc", nil)
		testutil.SetURLParam(c, "id", "city_abc")
		handler.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "City successfully deleted", resp.Message)
	})

	t.Run("not found", func(t *testing.T) {
		handler := newTestCityHandler(nil, nil, &mockDeleteCityUC{err: city.ErrCityNotFound}, nil)

		c, w := testutil.NewTestContext(http.MethodDelete, "/cities/nope", nil)
		handler.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCityHandler_List(t *testing.T) {
	t.Run("bare array body", func(t *testing.T) {
		handler := newTestCityHandler(nil, nil, nil, &mockListCitiesUC{result: []*citydto.CityDTO{{ID: "city_a"}, {ID: "city_b"}}})

		c, w := testutil.NewTestContext(http.MethodGet, "/cities", nil)
		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []citydto.CityDTO
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Len(t, body, 2)
	})

	t.Run("storage failure hides the cause", func(t *testing.T) {
		handler := newTestCityHandler(nil, nil, nil, &mockListCitiesUC{err: errors.New("dial tcp: refused")})

		c, w := testutil.NewTestContext(http.MethodGet, "/cities", nil)
		handler.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Failed to fetch the list of cities. Please try again", resp.Error.Message)
		assert.NotContains(t, w.Body.String(), "refused")
	})
}
