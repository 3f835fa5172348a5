package fitness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nick07092003/FitAI/internal/catalog"
)

// Допустимые значения пола.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// ErrInvalidInput — биометрия не прошла валидацию.
var ErrInvalidInput = errors.New("некорректные входные данные")

// BiometricInput — данные из биометрической формы: вес в килограммах,
// рост в метрах, возраст в полных годах.
type BiometricInput struct {
	Weight float64 `json:"weight" form:"weight"`
	Height float64 `json:"height" form:"height"`
	Age    int     `json:"age" form:"age"`
	Gender string  `json:"gender" form:"gender"`
}

// Assessment — итог оценки. После возврата значением владеет вызывающий,
// внутри пакета ссылок на него не остаётся.
type Assessment struct {
	BMI     float64 `json:"bmi"`
	BMICase string  `json:"bmi_case"`
	BFP     float64 `json:"bfp"`
	BFPCase string  `json:"bfp_case"`
	Plan    Plan    `json:"plan"`
}

// Result — полный ответ операции подбора плана: оценка плюс подборка упражнений.
type Result struct {
	Assessment Assessment         `json:"assessment"`
	Exercises  []catalog.Exercise `json:"exercises"`
}

// bfpBand — включительный диапазон процента жира.
type bfpBand struct {
	label  string
	lo, hi float64
}

// Таблицы процента жира по полу. Диапазоны включительные, проверяются
// по порядку; если ни один не подошёл — Obese.
var (
	bfpBandsMale = []bfpBand{
		{"Essential", 2, 5},
		{"Athletes", 6, 13},
		{"Fitness", 14, 17},
		{"Acceptable", 18, 24},
		{"Obese", 25, 100},
	}
	bfpBandsFemale = []bfpBand{
		{"Essential", 10, 13},
		{"Athletes", 14, 20},
		{"Fitness", 21, 24},
		{"Acceptable", 25, 31},
		{"Obese", 32, 100},
	}
)

// Classify — чистая функция биометрия → оценка. Без побочных эффектов,
// безопасна для параллельных вызовов.
func Classify(in BiometricInput) (Assessment, error) {
	gender, err := normalizeGender(in.Gender)
	if err != nil {
		return Assessment{}, err
	}
	if in.Weight <= 0 {
		return Assessment{}, fmt.Errorf("%w: вес должен быть больше нуля", ErrInvalidInput)
	}
	if in.Height <= 0 {
		return Assessment{}, fmt.Errorf("%w: рост должен быть больше нуля", ErrInvalidInput)
	}
	if in.Age <= 0 {
		return Assessment{}, fmt.Errorf("%w: возраст должен быть больше нуля", ErrInvalidInput)
	}

	bmi := in.Weight / (in.Height * in.Height)
	plan := planForBMI(bmi)
	bfp := estimateBFP(bmi, gender, in.Age)

	return Assessment{
		BMI:     bmi,
		BMICase: plan.Case(),
		BFP:     bfp,
		BFPCase: bfpCase(bfp, gender),
		Plan:    plan,
	}, nil
}

// GeneratePlan — операция generateFitnessPlan: валидация, оценка, подборка.
// Каталог может быть пустым или nil — тогда подборка пустая, оценка всё равно
// возвращается.
func GeneratePlan(in BiometricInput, cat []catalog.Exercise) (Result, error) {
	a, err := Classify(in)
	if err != nil {
		return Result{}, err
	}
	return Result{Assessment: a, Exercises: Recommend(a.Plan, cat)}, nil
}

// estimateBFP — линейная оценка процента жира по ИМТ, возрасту и полу.
// Отрицательные значения обрезаются до нуля.
func estimateBFP(bmi float64, gender string, age int) float64 {
	g := 0.0
	if gender == GenderMale {
		g = 1.0
	}
	bfp := 1.20*bmi + 0.23*float64(age) - 10.8*g - 5.4
	if bfp < 0 {
		return 0
	}
	return bfp
}

func bfpCase(bfp float64, gender string) string {
	bands := bfpBandsFemale
	if gender == GenderMale {
		bands = bfpBandsMale
	}
	for _, b := range bands {
		if b.lo <= bfp && bfp <= b.hi {
			return b.label
		}
	}
	return "Obese"
}

func normalizeGender(s string) (string, error) {
	switch g := strings.ToLower(strings.TrimSpace(s)); g {
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", fmt.Errorf("%w: пол должен быть male или female", ErrInvalidInput)
	}
}
