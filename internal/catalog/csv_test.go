package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, `Unnamed: 0,Title,Desc,Type,BodyPart,Equipment,Level,Rating,RatingDesc
0, Bench Press ,desc,Strength,Chest,Barbell,Intermediate,9.1,Average
1,Squat,desc,Olympic_Weightlifting,Legs,Barbell,Beginner,8.7,Average
2,Без рейтинга,desc,Cardio,Legs,Body Only,Beginner,,
3,Plank,desc,Strength,Full_Body,Body_Only,Beginner,7.5,Average
`)

	list, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, list, 3, "строка без рейтинга отбрасывается")

	// пробелы обрезаны
	assert.Equal(t, "Bench Press", list[0].Title)
	assert.Equal(t, 9.1, list[0].Rating)

	// подчёркивания заменены пробелами
	assert.Equal(t, "Olympic Weightlifting", list[1].Type)
	assert.Equal(t, "Full Body", list[2].BodyPart)
	assert.Equal(t, "Body Only", list[2].Equipment)
}

func TestLoadCSV_KeepsFileOrder(t *testing.T) {
	path := writeCSV(t, `Title,Type,BodyPart,Equipment,Level,Rating
a,Strength,Chest,Barbell,Beginner,9
b,Strength,Chest,Barbell,Beginner,9
c,Strength,Chest,Barbell,Beginner,9
`)

	list, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "b", list[1].Title)
	assert.Equal(t, "c", list[2].Title)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	path := writeCSV(t, `Title,Type,BodyPart,Equipment,Level
a,Strength,Chest,Barbell,Beginner
`)

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rating")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "нет.csv"))
	require.Error(t, err)
}
