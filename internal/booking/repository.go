package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts a pending booking. The slot conflict check runs inside
	// the same transaction as the insert; a losing concurrent writer gets
	// ErrSlotUnavailable or ErrConflict.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForWindow returns every booking (any status) that could contend
	// with the given offering/photographer inside [from, to).
	ListForWindow(ctx context.Context, offeringID string, photographerID *string, from, to time.Time) ([]*Booking, error)

	// UpdateStatus persists a status change (and cancellation reason) as a
	// compare-and-set: the write only lands if the row still holds expected.
	// A concurrent transition surfaces as ErrConflict, never a lost update.
	UpdateStatus(ctx context.Context, b *Booking, expected Status) error

	// UpdateSchedule persists new times for a reschedule, re-running the
	// conflict check (excluding the booking itself) in the same transaction.
	// The write only lands while the row is still pending or confirmed;
	// otherwise ErrConflict.
	UpdateSchedule(ctx context.Context, b *Booking) error

	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// contenderPred selects the rows that share the contended resource:
// the same photographer (plus unassigned bookings of the same offering,
// since "to be determined" may resolve to anyone), or the whole offering
// when no photographer is given.
func contenderPred(offeringID string, photographerID *string) squirrel.Sqlizer {
	if photographerID != nil {
		return squirrel.Or{
			squirrel.Eq{"photographer_id": *photographerID},
			squirrel.And{
				squirrel.Eq{"offering_id": offeringID},
				squirrel.Eq{"photographer_id": nil},
			},
		}
	}
	return squirrel.Eq{"offering_id": offeringID}
}

// translateWriteError maps Postgres concurrency failures onto domain errors.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return ErrConflict
		case pgerrcode.ExclusionViolation:
			// Schema-level no-overlap backstop fired.
			return ErrSlotUnavailable
		}
	}
	return err
}

// lockContenders locks every non-cancelled booking that would overlap the
// window and reports whether any exists. Must run inside tx.
func lockContenders(ctx context.Context, tx pgx.Tx, b *Booking, excludeID string) (bool, error) {
	q := psql.Select("id").
		From("public.bookings").
		Where(contenderPred(b.OfferingID, b.PhotographerID)).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"start_time": b.EndTime}).
		Where(squirrel.Gt{"end_time": b.StartTime}).
		Suffix("FOR UPDATE")

	if excludeID != "" {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build conflict lock query failed: %w", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("lock conflicting bookings failed: %w", err)
	}
	defer rows.Close()

	return rows.Next(), rows.Err()
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	conflict, err := lockContenders(ctx, tx, b, "")
	if err != nil {
		return translateWriteError(err)
	}
	if conflict {
		return ErrSlotUnavailable
	}

	query, args, err := psql.Insert("public.bookings").
		Columns("offering_id", "client_id", "photographer_id", "start_time", "end_time",
			"participants", "status", "cancellation_reason", "notes").
		Values(b.OfferingID, b.ClientID, b.PhotographerID, b.StartTime, b.EndTime,
			b.Participants, b.Status, b.CancellationReason, b.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return translateWriteError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := psql.Select(
		"b.id", "b.offering_id", "o.name", "b.client_id", "coalesce(u.display_name, '')",
		"b.photographer_id", "p.display_name",
		"b.start_time", "b.end_time", "b.participants", "b.status",
		"b.cancellation_reason", "b.notes", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.offerings o ON b.offering_id = o.id").
		Join("public.users u ON b.client_id = u.id").
		LeftJoin("public.photographers p ON b.photographer_id = p.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.OfferingID, &b.OfferingName, &b.ClientID, &b.ClientName,
		&b.PhotographerID, &b.PhotographerName,
		&b.StartTime, &b.EndTime, &b.Participants, &b.Status,
		&b.CancellationReason, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := psql.Select(
		"b.id", "b.offering_id", "o.name", "b.client_id", "coalesce(u.display_name, '')",
		"b.photographer_id", "p.display_name",
		"b.start_time", "b.end_time", "b.participants", "b.status",
		"b.cancellation_reason", "b.notes", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.offerings o ON b.offering_id = o.id").
		Join("public.users u ON b.client_id = u.id").
		LeftJoin("public.photographers p ON b.photographer_id = p.id")

	if filter.ClientID != "" {
		query = query.Where(squirrel.Eq{"b.client_id": filter.ClientID})
	}
	if filter.OfferingID != "" {
		query = query.Where(squirrel.Eq{"b.offering_id": filter.OfferingID})
	}
	if filter.PhotographerID != "" {
		query = query.Where(squirrel.Eq{"b.photographer_id": filter.PhotographerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Range intersection under half-open windows: a booking ending exactly
	// at the range start (or starting at its end) is outside it.
	if filter.StartTime != nil {
		query = query.Where(squirrel.Gt{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.Lt{"b.start_time": filter.EndTime})
	}

	orderBy := "b.start_time"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.OfferingID, &b.OfferingName, &b.ClientID, &b.ClientName,
			&b.PhotographerID, &b.PhotographerName,
			&b.StartTime, &b.EndTime, &b.Participants, &b.Status,
			&b.CancellationReason, &b.Notes, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForWindow(ctx context.Context, offeringID string, photographerID *string, from, to time.Time) ([]*Booking, error) {
	query, args, err := psql.Select(
		"id", "offering_id", "client_id", "photographer_id",
		"start_time", "end_time", "participants", "status",
		"cancellation_reason", "notes", "created_at", "updated_at",
	).
		From("public.bookings").
		Where(contenderPred(offeringID, photographerID)).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list-for-window query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings for window failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.OfferingID, &b.ClientID, &b.PhotographerID,
			&b.StartTime, &b.EndTime, &b.Participants, &b.Status,
			&b.CancellationReason, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, b *Booking, expected Status) error {
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("cancellation_reason", b.CancellationReason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID, "status": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateWriteError(err)
	}
	// Zero rows means the status moved (or the row vanished) since the
	// caller's read; the caller re-fetches and re-checks the transition.
	if ct.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

func (r *pgxRepository) UpdateSchedule(ctx context.Context, b *Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin reschedule tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	conflict, err := lockContenders(ctx, tx, b, b.ID)
	if err != nil {
		return translateWriteError(err)
	}
	if conflict {
		return ErrSlotUnavailable
	}

	query, args, err := psql.Update("public.bookings").
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("status", b.Status).
		Set("notes", b.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		Where(squirrel.Eq{"status": []Status{StatusPending, StatusConfirmed}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reschedule query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return translateWriteError(err)
	}
	// Zero rows: the booking reached a terminal state (or vanished) after
	// the caller's read. Surface as a conflict for re-check, not a write.
	if ct.RowsAffected() == 0 {
		return ErrConflict
	}

	if err := tx.Commit(ctx); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
