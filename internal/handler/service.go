package handler

import (
	"context"

	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type HotelService interface {
	CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	AvailableRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.ReservationView, error)
	SeedDemoData(ctx context.Context) (model.SeedResult, error)
}

var _ HotelService = (*service.Service)(nil)
