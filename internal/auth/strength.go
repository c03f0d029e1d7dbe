package auth

import "unicode"

// StrengthChecklist — четыре требования к паролю, по баллу за каждое.
type StrengthChecklist struct {
	MinLength bool `json:"min_length"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digit     bool `json:"digit"`
}

// Strength — итог проверки пароля: балл 0..4 и разбивка по требованиям.
type Strength struct {
	Score     int               `json:"score"`
	Checklist StrengthChecklist `json:"checklist"`
}

// PasswordStrength считает силу пароля: длина ≥ 8, строчная и заглавная
// буквы, цифра. Единственная реализация для регистрации, смены пароля
// в профиле и подтверждения сброса.
func PasswordStrength(password string) Strength {
	checklist := StrengthChecklist{
		MinLength: len(password) >= 8,
	}

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			checklist.Lowercase = true
		case unicode.IsUpper(r):
			checklist.Uppercase = true
		case unicode.IsDigit(r):
			checklist.Digit = true
		}
	}

	score := 0
	for _, ok := range []bool{checklist.MinLength, checklist.Lowercase, checklist.Uppercase, checklist.Digit} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Checklist: checklist}
}

// IsStrong сообщает, выполнены ли все четыре требования.
func (s Strength) IsStrong() bool {
	return s.Score == 4
}
