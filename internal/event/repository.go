package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

// Repository defines data access methods for events. Only canonical rows
// live in the database; expansion happens above this layer.
type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) error
	// ListCanonical returns every row matching the filter, unpaginated.
	ListCanonical(ctx context.Context, f CanonicalFilter) ([]*Event, error)
	// ListPage returns one page filtered and ordered in SQL, plus the total
	// row count. Archived and role predicates apply to canonical dates only.
	ListPage(ctx context.Context, f Filter) ([]*Event, int, error)
	// CountRoles returns how many matching rows the employee authors vs.
	// attends.
	CountRoles(ctx context.Context, employeeID string, f CanonicalFilter) (author, member int, err error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var eventColumns = []string{
	"e.id", "e.room_id", "r.name AS room_name", "e.name", "e.description",
	"e.date", "e.time_start", "e.time_end",
	"e.author_id", "concat_ws(' ', a.surname, a.name, a.patronymic) AS author_name",
	"e.employee_ids",
	"e.recurrence_unit", "e.recurrence_interval", "e.recurrence_end",
	"e.recurrence_parent_id", "e.created_at",
}

func eventSelect() squirrel.SelectBuilder {
	return psql().Select(eventColumns...).
		From("public.events e").
		Join("public.meeting_rooms r ON r.id = e.room_id").
		Join("public.employees a ON a.id = e.author_id")
}

type eventRow struct {
	date               time.Time
	timeStart, timeEnd string
	recUnit            *string
	recInterval        *int
	recEnd             *time.Time
	recParent          *string
}

func (r *pgxRepository) scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	var raw eventRow
	err := row.Scan(
		&e.ID, &e.RoomID, &e.RoomName, &e.Name, &e.Description,
		&raw.date, &raw.timeStart, &raw.timeEnd,
		&e.AuthorID, &e.AuthorName,
		&e.EmployeeIDs,
		&raw.recUnit, &raw.recInterval, &raw.recEnd,
		&raw.recParent, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan event failed: %w", err)
	}
	if err := fillEvent(&e, raw); err != nil {
		return nil, err
	}
	return &e, nil
}

func fillEvent(e *Event, raw eventRow) error {
	e.Date = schedule.DateOf(raw.date)

	start, err := schedule.ParseTimeOfDay(raw.timeStart)
	if err != nil {
		return fmt.Errorf("event %s: %w", e.ID, err)
	}
	end, err := schedule.ParseTimeOfDay(raw.timeEnd)
	if err != nil {
		return fmt.Errorf("event %s: %w", e.ID, err)
	}
	e.TimeStart, e.TimeEnd = start, end

	if raw.recUnit != nil && raw.recInterval != nil {
		rec := &schedule.Recurrence{
			Unit:     schedule.RecurrenceUnit(*raw.recUnit),
			Interval: *raw.recInterval,
		}
		if raw.recEnd != nil {
			rec.End = schedule.DateOf(*raw.recEnd)
		}
		e.Recurrence = rec
	}
	if raw.recParent != nil {
		e.RecurrenceParentID = *raw.recParent
	}
	return nil
}

func recurrenceArgs(e *Event) (unit *string, interval *int, end, parent any) {
	if e.Recurrence != nil {
		u := string(e.Recurrence.Unit)
		i := e.Recurrence.Interval
		unit, interval = &u, &i
		if !e.Recurrence.End.IsZero() {
			end = e.Recurrence.End.String()
		}
	}
	if e.RecurrenceParentID != "" {
		parent = e.RecurrenceParentID
	}
	return unit, interval, end, parent
}

func (r *pgxRepository) Create(ctx context.Context, e *Event) error {
	unit, interval, recEnd, parent := recurrenceArgs(e)

	query, args, err := psql().Insert("public.events").
		Columns(
			"room_id", "name", "description", "date", "time_start", "time_end",
			"author_id", "employee_ids",
			"recurrence_unit", "recurrence_interval", "recurrence_end", "recurrence_parent_id",
		).
		Values(
			e.RoomID, e.Name, e.Description, e.Date.String(), e.TimeStart.String(), e.TimeEnd.String(),
			e.AuthorID, e.EmployeeIDs,
			unit, interval, recEnd, parent,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create event query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("create event failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	query, args, err := eventSelect().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event query failed: %w", err)
	}
	return r.scanEvent(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) Update(ctx context.Context, e *Event) error {
	unit, interval, recEnd, parent := recurrenceArgs(e)

	query, args, err := psql().Update("public.events").
		Set("room_id", e.RoomID).
		Set("name", e.Name).
		Set("description", e.Description).
		Set("date", e.Date.String()).
		Set("time_start", e.TimeStart.String()).
		Set("time_end", e.TimeEnd.String()).
		Set("employee_ids", e.EmployeeIDs).
		Set("recurrence_unit", unit).
		Set("recurrence_interval", interval).
		Set("recurrence_end", recEnd).
		Set("recurrence_parent_id", parent).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update event query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().Delete("public.events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete event query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete event failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func applyCanonicalFilter(q squirrel.SelectBuilder, f CanonicalFilter) squirrel.SelectBuilder {
	if f.RoomID != "" {
		q = q.Where(squirrel.Eq{"e.room_id": f.RoomID})
	}
	if f.OfficeID != "" {
		q = q.Where(squirrel.Eq{"r.office_id": f.OfficeID})
	}
	if f.Name != "" {
		q = q.Where(squirrel.ILike{"e.name": "%" + f.Name + "%"})
	}
	if f.EmployeeID != "" {
		q = q.Where(squirrel.Or{
			squirrel.Eq{"e.author_id": f.EmployeeID},
			squirrel.Expr("e.employee_ids @> ARRAY[?]::uuid[]", f.EmployeeID),
		})
	}
	return q
}

func (r *pgxRepository) ListCanonical(ctx context.Context, f CanonicalFilter) ([]*Event, error) {
	query, args, err := applyCanonicalFilter(eventSelect(), f).
		OrderBy("e.date ASC", "e.time_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events failed: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows, nil)
}

func (r *pgxRepository) ListPage(ctx context.Context, f Filter) ([]*Event, int, error) {
	cols := append(append([]string{}, eventColumns...), "count(*) OVER() AS total_count")
	q := psql().Select(cols...).
		From("public.events e").
		Join("public.meeting_rooms r ON r.id = e.room_id").
		Join("public.employees a ON a.id = e.author_id")

	q = applyCanonicalFilter(q, CanonicalFilter{
		RoomID:   f.RoomID,
		OfficeID: f.OfficeID,
		Name:     f.Name,
	})
	switch f.Role {
	case RoleAuthor:
		q = q.Where(squirrel.Eq{"e.author_id": f.EmployeeID})
	case RoleMember:
		q = q.Where(squirrel.NotEq{"e.author_id": f.EmployeeID}).
			Where(squirrel.Expr("e.employee_ids @> ARRAY[?]::uuid[]", f.EmployeeID))
	default:
		if f.EmployeeID != "" {
			q = applyCanonicalFilter(q, CanonicalFilter{EmployeeID: f.EmployeeID})
		}
	}
	if f.Archived != nil {
		if *f.Archived {
			q = q.Where(squirrel.Expr("e.date < CURRENT_DATE"))
		} else {
			q = q.Where(squirrel.Expr("e.date >= CURRENT_DATE"))
		}
	}

	order := "ASC"
	if f.Desc {
		order = "DESC"
	}
	q = q.OrderBy("e.date "+order, "e.time_start "+order)

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	q = q.Limit(uint64(f.Limit)).Offset(uint64((f.Page - 1) * f.Limit))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list events query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events failed: %w", err)
	}
	defer rows.Close()

	var total int
	events, err := scanEventRows(rows, &total)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// scanEventRows drains rows into events. When total is non-nil the query is
// expected to carry a trailing count(*) OVER() column.
func scanEventRows(rows pgx.Rows, total *int) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		var e Event
		var raw eventRow
		dest := []any{
			&e.ID, &e.RoomID, &e.RoomName, &e.Name, &e.Description,
			&raw.date, &raw.timeStart, &raw.timeEnd,
			&e.AuthorID, &e.AuthorName,
			&e.EmployeeIDs,
			&raw.recUnit, &raw.recInterval, &raw.recEnd,
			&raw.recParent, &e.CreatedAt,
		}
		if total != nil {
			dest = append(dest, total)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan event failed: %w", err)
		}
		if err := fillEvent(&e, raw); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, nil
}

func (r *pgxRepository) CountRoles(ctx context.Context, employeeID string, f CanonicalFilter) (int, int, error) {
	// Role membership is what gets counted, not filtered by.
	f.EmployeeID = ""

	q := psql().
		Select().
		Column(squirrel.Expr("count(*) FILTER (WHERE e.author_id = ?)", employeeID)).
		Column(squirrel.Expr("count(*) FILTER (WHERE e.author_id <> ? AND e.employee_ids @> ARRAY[?]::uuid[])", employeeID, employeeID)).
		From("public.events e").
		Join("public.meeting_rooms r ON r.id = e.room_id")
	q = applyCanonicalFilter(q, f)

	query, args, err := q.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build count roles query failed: %w", err)
	}

	var author, member int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&author, &member); err != nil {
		return 0, 0, fmt.Errorf("count roles failed: %w", err)
	}
	return author, member, nil
}
