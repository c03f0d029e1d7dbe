package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/auth"
	"example.com/selfcare/backend/internal/config"
	"example.com/selfcare/backend/internal/health"
	"example.com/selfcare/backend/internal/models"
	"example.com/selfcare/backend/internal/notifications"
	"example.com/selfcare/backend/internal/repository"
)

type ProfileHandler struct {
	Profiles   *repository.ProfileRepository
	Users      *repository.UserRepository
	Onboarding *repository.OnboardingRepository
	Hub        *notifications.Hub
	Storage    config.StorageConfig
}

// NewProfileHandler создает обработчик профиля.
func NewProfileHandler(profiles *repository.ProfileRepository, users *repository.UserRepository, onboarding *repository.OnboardingRepository, hub *notifications.Hub, storage config.StorageConfig) *ProfileHandler {
	return &ProfileHandler{
		Profiles:   profiles,
		Users:      users,
		Onboarding: onboarding,
		Hub:        hub,
		Storage:    storage,
	}
}

type UpdateProfileRequest struct {
	Username  *string  `json:"username" validate:"omitempty,max=100"`
	Gender    *string  `json:"gender" validate:"omitempty,oneof=male female"`
	Age       *int     `json:"age" validate:"omitempty,min=1,max=130"`
	BloodType *string  `json:"blood_type" validate:"omitempty,max=10"`
	HeightCM  *float64 `json:"height" validate:"omitempty,gt=0"`
	WeightKG  *float64 `json:"weight" validate:"omitempty,gt=0"`
	TDEE      *int     `json:"tdee" validate:"omitempty,gt=0"`

	// Смена пароля из экрана профиля.
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

type SetupRequest struct {
	Username  string  `json:"username" validate:"required,max=100"`
	Gender    string  `json:"gender" validate:"required,oneof=male female"`
	HeightCM  float64 `json:"height" validate:"required,gt=0"`
	WeightKG  float64 `json:"weight" validate:"required,gt=0"`
	Age       int     `json:"age" validate:"required,min=1,max=130"`
	BloodType string  `json:"blood_type" validate:"required,max=10"`
}

type ProfileResponse struct {
	Profile models.UserProfile `json:"profile"`
}

type SetupResponse struct {
	Profile  models.UserProfile        `json:"profile"`
	Snapshot models.OnboardingSnapshot `json:"snapshot"`
}

// Get возвращает профиль текущего пользователя.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := h.Profiles.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
}

// Update применяет частичное обновление профиля. Непереданные поля не
// трогаются; при наличии роста и веса после слияния BMI и категория
// пересчитываются и перезаписываются. Опционально меняет пароль.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	profile, err := h.Profiles.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not found")
		}
		return serverError(c)
	}

	merged, err := applyProfileUpdate(profile, req)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if req.NewPassword != nil {
		if req.CurrentPassword == nil {
			return badRequest(c, "current password is required")
		}

		user, err := h.Users.GetByID(c.Request().Context(), userID)
		if err != nil {
			return serverError(c)
		}

		if err := auth.ComparePassword(user.PasswordHash, *req.CurrentPassword); err != nil {
			return unauthorized(c)
		}

		newPassword := strings.TrimSpace(*req.NewPassword)
		strength := auth.PasswordStrength(newPassword)
		if !strength.IsStrong() {
			return weakPassword(c, strength)
		}

		passwordHash, err := auth.HashPassword(newPassword)
		if err != nil {
			return serverError(c)
		}

		if err := h.Users.UpdatePassword(c.Request().Context(), userID, passwordHash); err != nil {
			return serverError(c)
		}
	}

	if err := h.Profiles.Save(c.Request().Context(), merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.ProfileEvent(merged.IsSetupCompleted))

	return c.JSON(http.StatusOK, ProfileResponse{Profile: merged})
}

// UploadAvatar принимает multipart-файл аватара и сохраняет его на диск.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return badRequest(c, "avatar file is required")
	}

	if fileHeader.Size > h.Storage.MaxAvatarBytes {
		return badRequest(c, "avatar exceeds size limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return serverError(c)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return serverError(c)
	}

	ext, ok := avatarExtension(http.DetectContentType(head[:n]))
	if !ok {
		return badRequest(c, "avatar must be png, jpeg or webp")
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return serverError(c)
	}

	if err := os.MkdirAll(h.Storage.AvatarDir, 0o755); err != nil {
		return serverError(c)
	}

	fileName := userID.String() + ext
	dst, err := os.Create(filepath.Join(h.Storage.AvatarDir, fileName))
	if err != nil {
		return serverError(c)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, h.Storage.MaxAvatarBytes)); err != nil {
		return serverError(c)
	}

	avatarURL := "/static/avatars/" + fileName
	if err := h.Profiles.SetAvatar(c.Request().Context(), userID, avatarURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.ProfileEvent(true))

	return c.JSON(http.StatusOK, map[string]string{"avatar_url": avatarURL})
}

// Setup завершает онбординг: заполняет профиль, считает метрики и сохраняет
// снимок анкеты.
func (h *ProfileHandler) Setup(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req SetupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	gender := models.Gender(req.Gender)

	bmi, err := health.BMI(req.WeightKG, req.HeightCM)
	if err != nil {
		return badRequest(c, err.Error())
	}
	category := health.BMICategory(bmi)

	bmr, err := health.BMR(gender, req.WeightKG, req.HeightCM, req.Age)
	if err != nil {
		return badRequest(c, err.Error())
	}

	profile, err := h.Profiles.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not found")
		}
		return serverError(c)
	}

	username := strings.TrimSpace(req.Username)
	profile.Username = username
	profile.Gender = &gender
	profile.Age = &req.Age
	profile.BloodType = &req.BloodType
	profile.HeightCM = &req.HeightCM
	profile.WeightKG = &req.WeightKG
	profile.BMI = &bmi
	profile.BMICategory = &category
	profile.BMR = &bmr
	profile.IsSetupCompleted = true

	if err := h.Profiles.Save(c.Request().Context(), profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not found")
		}
		return serverError(c)
	}

	snapshot := models.OnboardingSnapshot{
		ID:          uuid.New(),
		UserID:      userID,
		Username:    username,
		Gender:      gender,
		HeightCM:    req.HeightCM,
		WeightKG:    req.WeightKG,
		Age:         req.Age,
		BloodType:   req.BloodType,
		BMI:         bmi,
		BMICategory: category,
	}

	snapshot, err = h.Onboarding.Create(c.Request().Context(), snapshot)
	if err != nil {
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.ProfileEvent(true))

	return c.JSON(http.StatusCreated, SetupResponse{Profile: profile, Snapshot: snapshot})
}

// applyProfileUpdate сливает частичное обновление с текущим профилем и
// пересчитывает производные метрики, когда данных достаточно.
func applyProfileUpdate(profile models.UserProfile, req UpdateProfileRequest) (models.UserProfile, error) {
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		if trimmed == "" {
			return profile, fmt.Errorf("username cannot be empty")
		}
		profile.Username = trimmed
	}
	if req.Gender != nil {
		gender := models.Gender(*req.Gender)
		profile.Gender = &gender
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.BloodType != nil {
		profile.BloodType = req.BloodType
	}
	if req.HeightCM != nil {
		profile.HeightCM = req.HeightCM
	}
	if req.WeightKG != nil {
		profile.WeightKG = req.WeightKG
	}
	if req.TDEE != nil {
		profile.TDEE = req.TDEE
	}

	if profile.HeightCM != nil && profile.WeightKG != nil {
		bmi, err := health.BMI(*profile.WeightKG, *profile.HeightCM)
		if err != nil {
			return profile, err
		}
		category := health.BMICategory(bmi)
		profile.BMI = &bmi
		profile.BMICategory = &category

		if profile.Gender != nil && profile.Age != nil {
			bmr, err := health.BMR(*profile.Gender, *profile.WeightKG, *profile.HeightCM, *profile.Age)
			if err != nil {
				return profile, err
			}
			profile.BMR = &bmr
		}
	}

	return profile, nil
}

func avatarExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return ".png", true
	case "image/jpeg":
		return ".jpg", true
	case "image/webp":
		return ".webp", true
	default:
		return "", false
	}
}
