package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	CountClients(ctx context.Context) (int, error)
	AvailableRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.ReservationView, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	clientTableName      = `client`
	roomTableName        = `room`
	reservationTableName = `reservation`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	q, args, err := qb.Insert(clientTableName).
		Columns("full_name", "address", "city", "postal_code", "email", "phone").
		Values(req.FullName, req.Address, req.City, req.PostalCode, req.Email, req.Phone).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Client{}, err
	}
	var client model.Client
	if err := r.db.GetContext(ctx, &client, q, args...); err != nil {
		r.log.Error("CreateClient", zap.String("q", q), zap.Any("args", args))
		return model.Client{}, err
	}
	return client, nil
}

func (r *repository) ListClients(ctx context.Context) ([]model.Client, error) {
	q, args, err := qb.Select("id", "full_name", "address", "city", "postal_code", "email", "phone").
		From(clientTableName).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Client
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error) {
	q, args, err := qb.Insert(roomTableName).
		Columns("number", "floor", "room_type", "rate", "city").
		Values(req.Number, req.Floor, req.Type, req.Rate, req.City).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Room{}, err
	}
	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		r.log.Error("CreateRoom", zap.String("q", q), zap.Any("args", args))
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) ListRooms(ctx context.Context) ([]model.Room, error) {
	q, args, err := qb.Select("id", "number", "floor", "room_type", "rate", "city").
		From(roomTableName).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Room
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountClients(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s`, clientTableName)
	var count int
	if err := r.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// AvailableRooms returns every room with no reservation whose [start_date,
// end_date] intersects rng. Dates are inclusive on both ends: a reservation
// ending on rng.Start (or starting on rng.End) still blocks the room.
func (r *repository) AvailableRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error) {
	q := fmt.Sprintf(`
	select id, number, floor, room_type, rate, city from %[1]s
	where id not in (
		select room_id from %[2]s
		where not (end_date < $1 or start_date > $2)
	)`, roomTableName, reservationTableName)

	var rooms []model.Room
	if err := r.db.SelectContext(ctx, &rooms, q,
		rng.Start.Format(time.DateOnly), rng.End.Format(time.DateOnly)); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateReservation is the only write allowed to race: it locks the room row,
// re-checks the overlap against the room's committed reservations and inserts
// within one serializable transaction.
func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return model.Reservation{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var roomID int
	lockQ := fmt.Sprintf(`select id from %s where id = $1 for update`, roomTableName)
	if err := tx.QueryRowContext(ctx, lockQ, req.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}

	q, args, err := qb.Select("id", "reservation_uid", "client_id", "room_id", "start_date", "end_date").
		From(reservationTableName).
		Where(sq.Eq{"room_id": req.RoomID}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var booked []model.Reservation
	if err := tx.SelectContext(ctx, &booked, q, args...); err != nil {
		return model.Reservation{}, err
	}
	rng := model.DateRange{Start: req.StartDate, End: req.EndDate}
	for _, b := range booked {
		if rng.Overlaps(b.Range()) {
			return model.Reservation{}, errs.ErrRoomUnavailable
		}
	}

	q, args, err = qb.Insert(reservationTableName).
		Columns("reservation_uid", "client_id", "room_id", "start_date", "end_date").
		Values(uuid.New(), req.ClientID, req.RoomID,
			req.StartDate.Format(time.DateOnly), req.EndDate.Format(time.DateOnly)).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := tx.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, wrapPgErr(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Reservation{}, wrapPgErr(err)
	}
	return res, nil
}

func (r *repository) ListReservations(ctx context.Context) ([]model.ReservationView, error) {
	q := fmt.Sprintf(`
	select r.id, r.reservation_uid, c.full_name as client_name,
	       rm.number as room_number, rm.city as room_city,
	       r.start_date, r.end_date
	from %s r
	join %s c on r.client_id = c.id
	join %s rm on r.room_id = rm.id
	order by r.start_date desc`, reservationTableName, clientTableName, roomTableName)

	var items []model.ReservationView
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// wrapPgErr maps the two postgres failures reserve can hit into domain errors:
// a missing client trips the FK, a lost serializable race trips 40001.
func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return errs.ErrNotFound
		case pgerrcode.SerializationFailure:
			return errs.ErrRoomUnavailable
		}
	}
	return err
}
