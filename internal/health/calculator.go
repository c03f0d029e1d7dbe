package health

import (
	"fmt"
	"math"

	"example.com/selfcare/backend/internal/models"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

// activityMultipliers — единственный источник истины по уровням активности,
// он же используется для валидации входа в обработчике TDEE.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtra:     1.9,
}

// CalorieGoals — целевые калории относительно TDEE: ±250 для плавного
// снижения/набора, ±500 для стандартного темпа (~0.25 и ~0.5 кг в неделю).
type CalorieGoals struct {
	Maintain int `json:"maintain"`
	MildLoss int `json:"mild_loss"`
	Loss     int `json:"loss"`
	MildGain int `json:"mild_gain"`
	Gain     int `json:"gain"`
}

// BMI считает индекс массы тела (кг/м²) с округлением до одного знака.
func BMI(weightKG, heightCM float64) (float64, error) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, fmt.Errorf("weight and height must be positive")
	}

	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)
	return math.Round(bmi*10) / 10, nil
}

// BMICategory возвращает категорию BMI по порогам ВОЗ.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obese"
	default:
		return "Morbidly Obese"
	}
}

// BMIStatusLabel — короткая метка статуса для главного экрана. Пороги 23/25
// азиатского варианта, намеренно отличаются от BMICategory.
func BMIStatusLabel(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 23:
		return "Normal"
	case bmi < 25:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR считает базовый метаболизм по формуле Миффлина-Сан Жеора,
// округление до целого через math.Round.
func BMR(gender models.Gender, weightKG, heightCM float64, ageYears int) (int, error) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, fmt.Errorf("weight and height must be positive")
	}
	if ageYears <= 0 || ageYears > 130 {
		return 0, fmt.Errorf("age must be between 1 and 130")
	}

	bmr := 10*weightKG + 6.25*heightCM - 5*float64(ageYears)
	switch gender {
	case models.GenderMale:
		bmr += 5
	case models.GenderFemale:
		bmr -= 161
	default:
		return 0, fmt.Errorf("unknown gender %q", gender)
	}

	return int(math.Round(bmr)), nil
}

// TDEE умножает BMR на множитель уровня активности.
func TDEE(bmr int, level ActivityLevel) (int, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("bmr must be positive")
	}

	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", level)
	}

	return int(math.Round(float64(bmr) * mult)), nil
}

// Goals возвращает целевые калории для поддержания, снижения и набора веса.
func Goals(tdee int) CalorieGoals {
	return CalorieGoals{
		Maintain: tdee,
		MildLoss: tdee - 250,
		Loss:     tdee - 500,
		MildGain: tdee + 250,
		Gain:     tdee + 500,
	}
}
