package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/selfcare/backend/internal/models"
)

type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository создает репозиторий сохраненных расписаний.
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// tableFor выбирает таблицу по виду расписания.
func tableFor(kind models.ScheduleKind) (string, error) {
	switch kind {
	case models.ScheduleKindWorkout:
		return "workout_schedules", nil
	case models.ScheduleKindMeal:
		return "meal_schedules", nil
	default:
		return "", ErrInvalid
	}
}

// Create сохраняет расписание.
func (r *ScheduleRepository) Create(ctx context.Context, schedule models.SavedSchedule) (models.SavedSchedule, error) {
	table, err := tableFor(schedule.Kind)
	if err != nil {
		return schedule, err
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO `+table+` (id, user_id, days)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		schedule.ID, schedule.UserID, schedule.Days,
	).Scan(&schedule.CreatedAt)
	if err != nil {
		return schedule, err
	}

	return schedule, nil
}

// ListByUser возвращает расписания пользователя заданного вида,
// новые первыми. Порядок определяет индексы для DeleteByIndex.
func (r *ScheduleRepository) ListByUser(ctx context.Context, userID uuid.UUID, kind models.ScheduleKind) ([]models.SavedSchedule, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, days, created_at
		 FROM `+table+`
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []models.SavedSchedule{}
	for rows.Next() {
		schedule := models.SavedSchedule{Kind: kind}
		if err := rows.Scan(&schedule.ID, &schedule.UserID, &schedule.Days, &schedule.CreatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

// Latest возвращает последнее сохраненное расписание заданного вида.
func (r *ScheduleRepository) Latest(ctx context.Context, userID uuid.UUID, kind models.ScheduleKind) (models.SavedSchedule, error) {
	schedule := models.SavedSchedule{Kind: kind}

	table, err := tableFor(kind)
	if err != nil {
		return schedule, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, days, created_at
		 FROM `+table+`
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		userID,
	).Scan(&schedule.ID, &schedule.UserID, &schedule.Days, &schedule.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule, ErrNotFound
		}
		return schedule, err
	}

	return schedule, nil
}

// DeleteByIndex удаляет ровно одно расписание по позиции в списке
// ListByUser. Индекс вне диапазона дает ErrNotFound.
func (r *ScheduleRepository) DeleteByIndex(ctx context.Context, userID uuid.UUID, kind models.ScheduleKind, index int) error {
	if index < 0 {
		return ErrInvalid
	}

	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id
		 FROM `+table+`
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 OFFSET $2
		 LIMIT 1`,
		userID, index,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	cmd, err := tx.Exec(ctx,
		`DELETE FROM `+table+` WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
