package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nick07092003/FitAI/internal/catalog"
)

func ex(title, typ, part, level string, rating float64) catalog.Exercise {
	return catalog.Exercise{Title: title, Type: typ, BodyPart: part, Equipment: "Barbell", Level: level, Rating: rating}
}

func TestRecommend_Plan4OnlyIntermediate(t *testing.T) {
	cat := []catalog.Exercise{
		ex("a", "Strength", "Chest", "Intermediate", 9),
		ex("b", "Cardio", "Legs", "Beginner", 9.5),
		ex("c", "Stretching", "Lats", "Intermediate", 8),
		ex("d", "Strength", "Back", "Expert", 9.9),
	}

	got := Recommend(4, cat)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "Intermediate", e.Level)
	}
}

func TestRecommend_Plan1AllClauses(t *testing.T) {
	cat := []catalog.Exercise{
		ex("ok1", "Strength", "Chest", "Beginner", 8),
		ex("ok2", "Olympic Weightlifting", "Legs", "Intermediate", 9),
		ex("неверный тип", "Cardio", "Chest", "Beginner", 9.9),
		ex("неверный уровень", "Strength", "Chest", "Expert", 9.9),
		ex("неверная часть тела", "Strength", "Biceps", "Beginner", 9.9),
	}

	for _, p := range []Plan{1, 2, 3} {
		got := Recommend(p, cat)
		require.Len(t, got, 2, "plan %d", p)
		for _, e := range got {
			assert.Contains(t, []string{"Strength", "Olympic Weightlifting"}, e.Type)
			assert.Contains(t, []string{"Beginner", "Intermediate"}, e.Level)
			assert.Contains(t, []string{"Chest", "Back", "Legs", "Shoulders"}, e.BodyPart)
		}
	}
}

func TestRecommend_Plan5FatBurn(t *testing.T) {
	cat := []catalog.Exercise{
		ex("ok", "Cardio", "Glutes", "Expert", 7),
		ex("ok2", "Strength", "Full Body", "Beginner", 8),
		ex("неверный тип", "Stretching", "Legs", "Beginner", 9),
		ex("неверная часть тела", "Cardio", "Chest", "Beginner", 9),
	}

	for _, p := range []Plan{5, 6} {
		got := Recommend(p, cat)
		require.Len(t, got, 2, "plan %d", p)
	}
}

func TestRecommend_SortedAndLimited(t *testing.T) {
	var cat []catalog.Exercise
	for i := 0; i < 15; i++ {
		cat = append(cat, ex("e", "Strength", "Chest", "Intermediate", float64(i%7)))
	}

	got := Recommend(4, cat)
	require.Len(t, got, RecommendLimit)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestRecommend_StableTieBreak(t *testing.T) {
	// при равном рейтинге сохраняется порядок каталога
	cat := []catalog.Exercise{
		ex("первый", "Strength", "Chest", "Intermediate", 9),
		ex("второй", "Strength", "Back", "Intermediate", 9),
		ex("лучший", "Strength", "Legs", "Intermediate", 9.5),
		ex("третий", "Strength", "Shoulders", "Intermediate", 9),
	}

	got := Recommend(4, cat)
	require.Len(t, got, 4)
	assert.Equal(t, "лучший", got[0].Title)
	assert.Equal(t, "первый", got[1].Title)
	assert.Equal(t, "второй", got[2].Title)
	assert.Equal(t, "третий", got[3].Title)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	for p := Plan(1); p <= 7; p++ {
		assert.Empty(t, Recommend(p, nil), "plan %d", p)
		assert.Empty(t, Recommend(p, []catalog.Exercise{}), "plan %d", p)
	}
}

func TestRecommend_UnknownPlanActsAsBeginner(t *testing.T) {
	cat := []catalog.Exercise{
		ex("новичок", "Strength", "Chest", "Beginner", 8),
		ex("средний", "Strength", "Chest", "Intermediate", 9),
	}

	for _, p := range []Plan{0, 8, 42} {
		got := Recommend(p, cat)
		require.Len(t, got, 1, "plan %d", p)
		assert.Equal(t, "Beginner", got[0].Level)
	}
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	cat := []catalog.Exercise{
		ex("a", "Strength", "Chest", "Intermediate", 1),
		ex("b", "Strength", "Chest", "Intermediate", 9),
		ex("c", "Strength", "Chest", "Intermediate", 5),
	}
	orig := append([]catalog.Exercise(nil), cat...)

	_ = Recommend(4, cat)
	assert.Equal(t, orig, cat)
}

func TestGeneratePlan(t *testing.T) {
	cat := []catalog.Exercise{
		ex("средний", "Strength", "Chest", "Intermediate", 9),
		ex("новичок", "Cardio", "Legs", "Beginner", 8),
	}

	res, err := GeneratePlan(BiometricInput{Weight: 70, Height: 1.75, Age: 30, Gender: GenderMale}, cat)
	require.NoError(t, err)
	assert.Equal(t, Plan(4), res.Assessment.Plan)
	require.Len(t, res.Exercises, 1)
	assert.Equal(t, "средний", res.Exercises[0].Title)

	// оценка возвращается и без каталога
	res, err = GeneratePlan(BiometricInput{Weight: 70, Height: 1.75, Age: 30, Gender: GenderMale}, nil)
	require.NoError(t, err)
	assert.Equal(t, "normal", res.Assessment.BMICase)
	assert.Empty(t, res.Exercises)

	_, err = GeneratePlan(BiometricInput{Weight: -1, Height: 1.75, Age: 30, Gender: GenderMale}, cat)
	require.ErrorIs(t, err, ErrInvalidInput)
}
