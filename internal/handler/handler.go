package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/model"

	"github.com/Astemirdum/hotel-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	hotelSvc HotelService
	events   BookingLog
	log      *zap.Logger
}

func New(hotelSvc HotelService, log *zap.Logger, events BookingLog) *Handler {
	h := &Handler{
		hotelSvc: hotelSvc,
		events:   events,
		log:      log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.GET("/clients", h.ListClients)
	api.POST("/clients", h.CreateClient)
	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms/available", h.AvailableRooms)
	api.GET("/reservations", h.ListReservations)
	api.POST("/reservations", h.CreateReservation)
	api.POST("/seed", h.Seed)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateClient(c echo.Context) error {
	var req model.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	client, err := h.hotelSvc.CreateClient(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *Handler) ListClients(c echo.Context) error {
	clients, err := h.hotelSvc.ListClients(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var req model.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	room, err := h.hotelSvc.CreateRoom(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *Handler) ListRooms(c echo.Context) error {
	rooms, err := h.hotelSvc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) AvailableRooms(c echo.Context) error {
	from, err := model.ParseDate(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	to, err := model.ParseDate(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rooms, err := h.hotelSvc.AvailableRooms(c.Request().Context(), model.DateRange{Start: from, End: to})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	res, err := h.hotelSvc.CreateReservation(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrRoomUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if h.events != nil {
		if err := h.events.Log(bookingEvent(res)); err != nil {
			h.log.Warn("booking event publish", zap.Error(err))
		}
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListReservations(c echo.Context) error {
	views, err := h.hotelSvc.ListReservations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) Seed(c echo.Context) error {
	res, err := h.hotelSvc.SeedDemoData(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}
