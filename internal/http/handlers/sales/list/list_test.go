package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListSales(ctx context.Context, filter models.QueryFilter) ([]models.SalesRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalesRecord), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	record := models.SalesRecord{
		ID:          1,
		Title:       "Mens Casual Premium Slim Fit T-Shirts",
		Description: "Slim-fitting style",
		Price:       22.3,
		Category:    "men's clothing",
		DateOfSale:  "2022-03-27T20:29:54+05:30",
		Sold:        false,
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "параметры по умолчанию",
			url:  "/sales",
			setupMock: func(m *MockService) {
				m.On("ListSales", mock.Anything, models.QueryFilter{Month: 1, SearchTerm: "", Page: 1}).
					Return([]models.SalesRecord{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "поиск по подстроке",
			url:  "/sales?month=3&search_q=Slim&page=1",
			setupMock: func(m *MockService) {
				m.On("ListSales", mock.Anything, models.QueryFilter{Month: 3, SearchTerm: "Slim", Page: 1}).
					Return([]models.SalesRecord{record}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[{"id":1,"title":"Mens Casual Premium Slim Fit T-Shirts","description":"Slim-fitting style",` +
				`"price":22.3,"category":"men's clothing","dateOfSale":"2022-03-27T20:29:54+05:30","sold":false}]`,
		},
		{
			name:           "некорректный номер страницы",
			url:            "/sales?page=abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"An error occurred while fetching sales data."}`,
		},
		{
			name: "ошибка сервиса",
			url:  "/sales?month=13",
			setupMock: func(m *MockService) {
				m.On("ListSales", mock.Anything, mock.Anything).Return(nil, errors.New("invalid month")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"An error occurred while fetching sales data."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
