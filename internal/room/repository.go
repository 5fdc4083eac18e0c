package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for rooms and their photos.
type Repository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id string) error

	AddPhoto(ctx context.Context, photo *Photo) error
	GetPhoto(ctx context.Context, photoID string) (*Photo, error)
	ListPhotos(ctx context.Context, roomID string) ([]*Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.meeting_rooms").
		Columns("office_id", "name", "size", "is_active", "is_public", "description", "calendar_code").
		Values(rm.OfficeID, rm.Name, rm.Size, rm.IsActive, rm.IsPublic, rm.Description, rm.CalendarCode).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.CreatedAt); err != nil {
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.office_id", "o.name", "r.name", "r.size", "r.is_active", "r.is_public",
		"r.description", "r.calendar_code", "r.created_at",
		"coalesce(array_agg(p.path) FILTER (WHERE p.id IS NOT NULL), '{}')",
	).
		From("public.meeting_rooms r").
		Join("public.offices o ON r.office_id = o.id").
		LeftJoin("public.room_photos p ON p.room_id = r.id").
		Where(squirrel.Eq{"r.id": id}).
		GroupBy("r.id", "o.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var rm Room
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&rm.ID, &rm.OfficeID, &rm.OfficeName, &rm.Name, &rm.Size, &rm.IsActive, &rm.IsPublic,
		&rm.Description, &rm.CalendarCode, &rm.CreatedAt, &rm.PhotoPaths,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.office_id", "o.name", "r.name", "r.size", "r.is_active", "r.is_public",
		"r.description", "r.calendar_code", "r.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.meeting_rooms r").
		Join("public.offices o ON r.office_id = o.id")

	if filter.OfficeID != "" {
		query = query.Where(squirrel.Eq{"r.office_id": filter.OfficeID})
	}
	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"r.name": "%" + filter.Name + "%"})
	}
	if filter.SizeMin != nil {
		query = query.Where(squirrel.GtOrEq{"r.size": *filter.SizeMin})
	}
	if filter.IsPublic != nil {
		query = query.Where(squirrel.Eq{"r.is_public": *filter.IsPublic})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"r.is_active": *filter.IsActive})
	}

	query = query.OrderBy("r.name ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit
	query = query.Limit(uint64(filter.Limit)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.OfficeID, &rm.OfficeName, &rm.Name, &rm.Size, &rm.IsActive, &rm.IsPublic,
			&rm.Description, &rm.CalendarCode, &rm.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &rm)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.meeting_rooms").
		Set("name", rm.Name).
		Set("size", rm.Size).
		Set("is_active", rm.IsActive).
		Set("is_public", rm.IsPublic).
		Set("description", rm.Description).
		Set("calendar_code", rm.CalendarCode).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.meeting_rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddPhoto(ctx context.Context, p *Photo) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.room_photos").
		Columns("id", "room_id", "path", "thumbnail_path").
		Values(p.ID, p.RoomID, p.Path, p.ThumbnailPath).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add photo query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("add photo failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetPhoto(ctx context.Context, photoID string) (*Photo, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "room_id", "path", "thumbnail_path", "created_at").
		From("public.room_photos").
		Where(squirrel.Eq{"id": photoID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get photo query failed: %w", err)
	}

	var p Photo
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.RoomID, &p.Path, &p.ThumbnailPath, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get photo failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListPhotos(ctx context.Context, roomID string) ([]*Photo, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "room_id", "path", "thumbnail_path", "created_at").
		From("public.room_photos").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list photos query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list photos failed: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.RoomID, &p.Path, &p.ThumbnailPath, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo failed: %w", err)
		}
		photos = append(photos, &p)
	}
	return photos, nil
}

func (r *pgxRepository) DeletePhoto(ctx context.Context, photoID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.room_photos").
		Where(squirrel.Eq{"id": photoID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete photo query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete photo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPhotoNotFound
	}
	return nil
}
