package planner

import (
	"fmt"
	"math/rand"
	"strings"
)

type BodyType string

type Goal string

const (
	BodyTypeEctomorph BodyType = "ectomorph"
	BodyTypeMesomorph BodyType = "mesomorph"
	BodyTypeEndomorph BodyType = "endomorph"

	GoalGain     Goal = "gain"
	GoalMaintain Goal = "maintain"
	GoalLose     Goal = "lose"
)

// Exercise — упражнение с подходами и повторениями (или временем для планки).
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// DayWorkout — тренировка одного дня недельного плана.
type DayWorkout struct {
	Day       string     `json:"day"`
	DayTh     string     `json:"day_th"`
	Focus     string     `json:"focus"`
	Duration  int        `json:"duration"`
	Exercises []Exercise `json:"exercises"`
	Color     string     `json:"color"`
}

// WeeklyWorkoutPlan — сгенерированный недельный план тренировок.
type WeeklyWorkoutPlan struct {
	Days []DayWorkout `json:"days"`
}

// WorkoutInput — параметры генерации плана.
type WorkoutInput struct {
	BodyType         BodyType `json:"body_type"`
	Goal             Goal     `json:"goal"`
	DailyTimeMinutes int      `json:"daily_time"`
	MedicalCondition string   `json:"medical_condition,omitempty"`
}

// restFocus и restLabel — плейсхолдер дня отдыха.
const (
	restFocus = "Rest"
	restLabel = "Recovery / Stretching"
)

// kneeUnsafe — упражнения, исключаемые при проблемах с коленями.
var kneeUnsafe = []string{"Squat", "Lunge", "Jumping Jack"}

var exerciseLibrary = map[string][]string{
	"Upper body":    {"Push-up", "Shoulder Press", "Pull-up"},
	"Lower body":    {"Squat", "Lunge", "Glute Bridge"},
	"Cardio":        {"Jumping Jack", "Mountain Climber"},
	"Core & Cardio": {"Plank", "Russian Twist", "Bicycle Crunch"},
}

var workoutWeekTemplate = []struct {
	day   string
	dayTh string
	focus string
	color string
}{
	{"Monday", "จันทร์", "Upper body", "bg-pink-100 border-pink-200"},
	{"Tuesday", "อังคาร", "Lower body", "bg-green-100 border-green-200"},
	{"Wednesday", "พุธ", "Cardio", "bg-orange-100 border-orange-200"},
	{"Thursday", "พฤหัสบดี", "Upper body", "bg-purple-100 border-purple-200"},
	{"Friday", "ศุกร์", "Lower body", "bg-emerald-100 border-emerald-200"},
	{"Saturday", "เสาร์", "Core & Cardio", "bg-yellow-100 border-yellow-200"},
	{"Sunday", "อาทิตย์", restFocus, "bg-gray-100 border-gray-200"},
}

// ExerciseLibrary возвращает копию библиотеки упражнений по группам.
func ExerciseLibrary() map[string][]string {
	out := make(map[string][]string, len(exerciseLibrary))
	for focus, names := range exerciseLibrary {
		copied := make([]string, len(names))
		copy(copied, names)
		out[focus] = copied
	}
	return out
}

// Validate проверяет вход генератора.
func (in WorkoutInput) Validate() error {
	switch in.BodyType {
	case BodyTypeEctomorph, BodyTypeMesomorph, BodyTypeEndomorph:
	default:
		return fmt.Errorf("unknown body type %q", in.BodyType)
	}
	switch in.Goal {
	case GoalGain, GoalMaintain, GoalLose:
	default:
		return fmt.Errorf("unknown goal %q", in.Goal)
	}
	if in.DailyTimeMinutes <= 0 {
		return fmt.Errorf("daily time must be positive")
	}
	return nil
}

// GenerateWorkoutPlan строит недельный план. Подходы и повторения зависят от
// цели и типа телосложения; при "knee" в медицинских противопоказаниях
// убираются приседания, выпады и джампинг-джеки. Перемешивание дневных
// упражнений идет через переданный rng, так что тесты могут зафиксировать
// seed; день может получить меньше трех упражнений, если библиотека короче.
func GenerateWorkoutPlan(in WorkoutInput, rng *rand.Rand) (WeeklyWorkoutPlan, error) {
	if err := in.Validate(); err != nil {
		return WeeklyWorkoutPlan{}, err
	}

	sets := 3
	if in.Goal == GoalGain {
		sets = 4
	}
	reps := "10–12"
	switch in.Goal {
	case GoalGain:
		reps = "8–10"
	case GoalLose:
		reps = "15–20"
	}

	if in.BodyType == BodyTypeEctomorph {
		sets++
	}
	if in.BodyType == BodyTypeEndomorph {
		if in.Goal == GoalGain {
			reps = "10–12"
		} else {
			reps = "18–20"
		}
	}

	hasKneeCondition := strings.Contains(strings.ToLower(in.MedicalCondition), "knee")

	days := make([]DayWorkout, 0, len(workoutWeekTemplate))
	for _, d := range workoutWeekTemplate {
		if d.focus == restFocus {
			days = append(days, DayWorkout{
				Day:       d.day,
				DayTh:     d.dayTh,
				Focus:     restLabel,
				Duration:  0,
				Exercises: []Exercise{},
				Color:     d.color,
			})
			continue
		}

		candidates := make([]string, 0, 3)
		for _, name := range exerciseLibrary[d.focus] {
			if hasKneeCondition && contains(kneeUnsafe, name) {
				continue
			}
			candidates = append(candidates, name)
		}

		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		if len(candidates) > 3 {
			candidates = candidates[:3]
		}

		exercises := make([]Exercise, 0, len(candidates))
		for _, name := range candidates {
			if name == "Plank" {
				// Планка на время, не на повторения.
				plankReps := "30–45s"
				if in.Goal == GoalGain {
					plankReps = "45–60s"
				}
				exercises = append(exercises, Exercise{Name: name, Sets: 3, Reps: plankReps})
				continue
			}
			exercises = append(exercises, Exercise{Name: name, Sets: sets, Reps: reps})
		}

		days = append(days, DayWorkout{
			Day:       d.day,
			DayTh:     d.dayTh,
			Focus:     d.focus,
			Duration:  in.DailyTimeMinutes,
			Exercises: exercises,
			Color:     d.color,
		})
	}

	return WeeklyWorkoutPlan{Days: days}, nil
}
