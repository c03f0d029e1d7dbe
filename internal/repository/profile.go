package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/selfcare/backend/internal/models"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository создает репозиторий профилей.
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get возвращает профиль пользователя.
func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (models.UserProfile, error) {
	var profile models.UserProfile

	err := r.db.QueryRow(ctx,
		`SELECT user_id, username, gender, age, blood_type, height_cm, weight_kg,
		        bmi, bmi_category, bmr, tdee, avatar_url, is_setup_completed, updated_at
		 FROM user_profile
		 WHERE user_id = $1`,
		userID,
	).Scan(
		&profile.UserID, &profile.Username, &profile.Gender, &profile.Age,
		&profile.BloodType, &profile.HeightCM, &profile.WeightKG,
		&profile.BMI, &profile.BMICategory, &profile.BMR, &profile.TDEE,
		&profile.AvatarURL, &profile.IsSetupCompleted, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile, ErrNotFound
		}
		return profile, err
	}

	return profile, nil
}

// Save записывает профиль целиком. Слияние с текущим состоянием и пересчет
// метрик делает вызывающий код.
func (r *ProfileRepository) Save(ctx context.Context, profile models.UserProfile) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE user_profile
		 SET username = $2, gender = $3, age = $4, blood_type = $5,
		     height_cm = $6, weight_kg = $7, bmi = $8, bmi_category = $9,
		     bmr = $10, tdee = $11, avatar_url = $12, is_setup_completed = $13,
		     updated_at = NOW()
		 WHERE user_id = $1`,
		profile.UserID, profile.Username, profile.Gender, profile.Age,
		profile.BloodType, profile.HeightCM, profile.WeightKG,
		profile.BMI, profile.BMICategory, profile.BMR, profile.TDEE,
		profile.AvatarURL, profile.IsSetupCompleted,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SetAvatar обновляет только ссылку на аватар.
func (r *ProfileRepository) SetAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE user_profile
		 SET avatar_url = $2, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, avatarURL,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
