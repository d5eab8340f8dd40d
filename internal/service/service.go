package service

import (
	"context"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	return s.repo.CreateClient(ctx, req)
}

func (s *Service) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error) {
	return s.repo.CreateRoom(ctx, req)
}

func (s *Service) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *Service) AvailableRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error) {
	if !rng.Valid() {
		return nil, errs.ErrInvalidRange
	}
	return s.repo.AvailableRooms(ctx, rng)
}

func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	rng := model.DateRange{Start: req.StartDate, End: req.EndDate}
	if !rng.Valid() {
		return model.Reservation{}, errs.ErrInvalidRange
	}
	return s.repo.CreateReservation(ctx, req)
}

func (s *Service) ListReservations(ctx context.Context) ([]model.ReservationView, error) {
	return s.repo.ListReservations(ctx)
}

var demoClients = []model.CreateClientRequest{
	{FullName: "Dupont Jean"},
	{FullName: "Martin Claire"},
}

var demoRooms = []model.CreateRoomRequest{
	{Number: "101"},
	{Number: "102"},
	{Number: "103"},
}

// SeedDemoData inserts the fixed demo set once. A second call is a no-op.
func (s *Service) SeedDemoData(ctx context.Context) (model.SeedResult, error) {
	count, err := s.repo.CountClients(ctx)
	if err != nil {
		return model.SeedResult{}, err
	}
	if count > 0 {
		s.log.Debug("seed skipped, clients already present", zap.Int("count", count))
		return model.SeedResult{Seeded: false}, nil
	}
	res := model.SeedResult{Seeded: true}
	for _, c := range demoClients {
		if _, err := s.repo.CreateClient(ctx, c); err != nil {
			return model.SeedResult{}, err
		}
		res.Clients++
	}
	for _, r := range demoRooms {
		if _, err := s.repo.CreateRoom(ctx, r); err != nil {
			return model.SeedResult{}, err
		}
		res.Rooms++
	}
	return res, nil
}
