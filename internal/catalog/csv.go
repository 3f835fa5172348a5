package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Колонки датасета, без которых каталог не собрать.
var requiredColumns = []string{"Title", "Type", "BodyPart", "Equipment", "Level", "Rating"}

// LoadCSV читает каталог из CSV-файла megaGymDataset.
// Правила очистки те же, что применялись при обучении моделей:
// строки без рейтинга отбрасываются, подчёркивания в текстовых полях
// заменяются пробелами, пробелы по краям обрезаются.
// Служебная индексная колонка ("Unnamed: 0") игнорируется.
func LoadCSV(path string) ([]Exercise, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("каталог: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("каталог: чтение заголовка: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("каталог: в файле нет колонки %q", name)
		}
	}

	var list []Exercise
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("каталог: чтение строки: %w", err)
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(field(rec, col["Rating"])), 64)
		if err != nil {
			continue // пустой или нечисловой рейтинг — строка не попадает в каталог
		}
		list = append(list, Exercise{
			Title:     cleanText(field(rec, col["Title"])),
			Type:      cleanText(field(rec, col["Type"])),
			BodyPart:  cleanText(field(rec, col["BodyPart"])),
			Equipment: cleanText(field(rec, col["Equipment"])),
			Level:     cleanText(field(rec, col["Level"])),
			Rating:    rating,
		})
	}
	return list, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
}
