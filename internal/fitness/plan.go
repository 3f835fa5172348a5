package fitness

import (
	"math"
	"sort"

	"github.com/Nick07092003/FitAI/internal/catalog"
)

// Plan — номер плана тренировок, 1..7. Взаимно однозначно связан
// с категорией ИМТ.
type Plan int

// planSpec — строка единой таблицы планов: категория ИМТ, верхняя граница
// ИМТ (не включается) и предикат отбора упражнений. Таблица одна на оба
// компонента, чтобы связка категория→план и план→фильтр не разъезжалась.
type planSpec struct {
	bmiCase string
	upper   float64
	match   func(e catalog.Exercise) bool
}

var planTable = [7]planSpec{
	{"severe thinness", 16, matchMassGain},
	{"moderate thinness", 17, matchMassGain},
	{"mild thinness", 18.5, matchMassGain},
	{"normal", 25, matchIntermediate},
	{"overweight", 30, matchFatBurn},
	{"obese", 35, matchFatBurn},
	{"severe obese", math.Inf(1), matchBeginner},
}

// planForBMI — первая строка таблицы, чья верхняя граница выше ИМТ.
func planForBMI(bmi float64) Plan {
	for i, s := range planTable {
		if bmi < s.upper {
			return Plan(i + 1)
		}
	}
	return Plan(len(planTable))
}

// Case — текстовая категория ИМТ, соответствующая плану.
func (p Plan) Case() string {
	if p < 1 || p > Plan(len(planTable)) {
		return ""
	}
	return planTable[p-1].bmiCase
}

// matches — предикат отбора для плана. Значения вне 1..7 отбирают
// так же, как план 7.
func (p Plan) matches(e catalog.Exercise) bool {
	if p < 1 || p > Plan(len(planTable)) {
		return matchBeginner(e)
	}
	return planTable[p-1].match(e)
}

// Планы 1–3: дефицит массы — базовая силовая работа на крупные группы мышц.
func matchMassGain(e catalog.Exercise) bool {
	return oneOf(e.Type, "Strength", "Olympic Weightlifting") &&
		oneOf(e.Level, "Beginner", "Intermediate") &&
		oneOf(e.BodyPart, "Chest", "Back", "Legs", "Shoulders")
}

// План 4: норма — всё среднего уровня.
func matchIntermediate(e catalog.Exercise) bool {
	return e.Level == "Intermediate"
}

// Планы 5–6: лишний вес — кардио и сила на низ тела и корпус.
func matchFatBurn(e catalog.Exercise) bool {
	return oneOf(e.Type, "Cardio", "Strength") &&
		oneOf(e.BodyPart, "Legs", "Glutes", "Full Body", "Abdominals")
}

// План 7: только начальный уровень.
func matchBeginner(e catalog.Exercise) bool {
	return e.Level == "Beginner"
}

func oneOf(v string, set ...string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// RecommendLimit — сколько упражнений возвращает подборка.
const RecommendLimit = 10

// Recommend — отбирает упражнения по предикату плана, сортирует по рейтингу
// по убыванию (при равных рейтингах сохраняется исходный порядок каталога)
// и возвращает не более RecommendLimit записей. Каталог не изменяется,
// пустой каталог даёт пустую подборку — это не ошибка.
func Recommend(p Plan, cat []catalog.Exercise) []catalog.Exercise {
	picked := make([]catalog.Exercise, 0, RecommendLimit)
	for _, e := range cat {
		if p.matches(e) {
			picked = append(picked, e)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Rating > picked[j].Rating
	})
	if len(picked) > RecommendLimit {
		picked = picked[:RecommendLimit]
	}
	return picked
}
