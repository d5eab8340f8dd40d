package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/handler"
	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/hotel-service/internal/handler/mocks"
)

func TestHandler_AvailableRooms(t *testing.T) {
	t.Parallel()
	type input struct {
		from, to string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockHotelService, req input)

	rng := model.DateRange{
		Start: model.NewDate(2024, time.June, 3),
		End:   model.NewDate(2024, time.June, 4),
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockHotelService, req input) {
				r.EXPECT().
					AvailableRooms(context.Background(), rng).
					Return([]model.Room{{ID: 2, Number: "102"}}, nil)
			},
			input: input{from: "2024-06-03", to: "2024-06-04"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":2,"number":"102"}]`,
			},
			wantErr: false,
		},
		{
			name: "err. invalid range",
			mockBehavior: func(r *service_mocks.MockHotelService, req input) {
				r.EXPECT().
					AvailableRooms(context.Background(), gomock.Any()).
					Return(nil, errs.ErrInvalidRange)
			},
			input: input{from: "2024-06-04", to: "2024-06-03"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"start date must be before end date"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. bad date",
			mockBehavior: func(r *service_mocks.MockHotelService, req input) {},
			input:        input{from: "03/06/2024", to: "2024-06-04"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid date \"03/06/2024\", expected YYYY-MM-DD"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockHotelService, req input) {
				r.EXPECT().
					AvailableRooms(context.Background(), rng).
					Return(nil, errors.New("db internal"))
			},
			input: input{from: "2024-06-03", to: "2024-06-04"},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockHotelService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/rooms/available", h.AvailableRooms)

			r := httptest.NewRequest(
				http.MethodGet, "/rooms/available?from="+tt.input.from+"&to="+tt.input.to, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockHotelService)

	reqBody := `{"clientId":1,"roomId":3,"startDate":"2024-06-01","endDate":"2024-06-05"}`
	modelReq := model.CreateReservationRequest{
		ClientID:  1,
		RoomID:    3,
		StartDate: model.NewDate(2024, time.June, 1),
		EndDate:   model.NewDate(2024, time.June, 5),
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockHotelService) {
				r.EXPECT().
					CreateReservation(context.Background(), modelReq).
					Return(model.Reservation{
						ID:             1,
						ReservationUid: "d61a3fb9-2d05-4b60-ab6b-4d5c118a2f16",
						ClientID:       1,
						RoomID:         3,
						StartDate:      modelReq.StartDate,
						EndDate:        modelReq.EndDate,
					}, nil)
			},
			body: reqBody,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"reservationUid":"d61a3fb9-2d05-4b60-ab6b-4d5c118a2f16","clientId":1,"roomId":3,"startDate":"2024-06-01","endDate":"2024-06-05"}`,
			},
			wantErr: false,
		},
		{
			name: "err. room unavailable",
			mockBehavior: func(r *service_mocks.MockHotelService) {
				r.EXPECT().
					CreateReservation(context.Background(), modelReq).
					Return(model.Reservation{}, errs.ErrRoomUnavailable)
			},
			body: reqBody,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"room unavailable for the requested dates"}`,
			},
			wantErr: true,
		},
		{
			name: "err. client not found",
			mockBehavior: func(r *service_mocks.MockHotelService) {
				r.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrNotFound)
			},
			body: `{"clientId":42,"roomId":3,"startDate":"2024-06-01","endDate":"2024-06-05"}`,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. invalid range",
			mockBehavior: func(r *service_mocks.MockHotelService) {
				r.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrInvalidRange)
			},
			body: `{"clientId":1,"roomId":3,"startDate":"2024-06-05","endDate":"2024-06-05"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"start date must be before end date"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. missing room",
			mockBehavior: func(r *service_mocks.MockHotelService) {},
			body:         `{"clientId":1,"startDate":"2024-06-01","endDate":"2024-06-05"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateReservationRequest.RoomID' Error:Field validation for 'RoomID' failed on the 'required' tag"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockHotelService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations", h.CreateReservation)

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Seed(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockHotelService(c)
	h := handler.New(svc, zap.NewExample().Named("test"), nil)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/seed", h.Seed)

	svc.EXPECT().
		SeedDemoData(context.Background()).
		Return(model.SeedResult{Seeded: true, Clients: 2, Rooms: 3}, nil)

	r := httptest.NewRequest(http.MethodPost, "/seed", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"seeded":true,"clients":2,"rooms":3}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListReservations(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockHotelService(c)
	h := handler.New(svc, zap.NewExample().Named("test"), nil)

	e := echo.New()
	e.GET("/reservations", h.ListReservations)

	svc.EXPECT().
		ListReservations(context.Background()).
		Return([]model.ReservationView{
			{
				ID:             1,
				ReservationUid: "d61a3fb9-2d05-4b60-ab6b-4d5c118a2f16",
				ClientName:     "Dupont Jean",
				RoomNumber:     "101",
				StartDate:      model.NewDate(2024, time.June, 1),
				EndDate:        model.NewDate(2024, time.June, 5),
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/reservations", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"reservationUid":"d61a3fb9-2d05-4b60-ab6b-4d5c118a2f16","clientName":"Dupont Jean","roomNumber":"101","startDate":"2024-06-01","endDate":"2024-06-05"}]`,
		strings.Trim(w.Body.String(), "\n"))
}
