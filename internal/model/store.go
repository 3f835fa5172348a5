package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	json "github.com/goccy/go-json"
)

// Файлы артефактов в каталоге моделей.
const (
	encodersFile  = "label_encoders.json"
	titleFile     = "title_model.json"
	equipmentFile = "equipment_model.json"
	levelFile     = "level_model.json"
)

// tableArtifact — сериализованная модель: из какого поля признак,
// какое поле предсказывается и таблица правил код→код.
type tableArtifact struct {
	Feature string         `json:"feature"`
	Target  string         `json:"target"`
	Rules   map[string]int `json:"rules"`
}

// LoadStore читает энкодеры и три модели из dir и собирает конвейер.
// Согласованность словарей проверяется здесь, при загрузке: правило,
// выходящее за словарь, — ошибка загрузки, а не предсказания.
func LoadStore(dir string) (*Pipeline, error) {
	data, err := os.ReadFile(filepath.Join(dir, encodersFile))
	if err != nil {
		return nil, fmt.Errorf("энкодеры: %w", err)
	}
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("энкодеры: разбор %s: %w", encodersFile, err)
	}

	set := make(EncoderSet, len(raw))
	for field, classes := range raw {
		enc, err := NewLabelEncoder(classes)
		if err != nil {
			return nil, fmt.Errorf("энкодеры: поле %q: %w", field, err)
		}
		set[field] = enc
	}
	for _, field := range []string{FieldBodyPart, FieldTitle, FieldEquipment, FieldLevel} {
		if _, ok := set[field]; !ok {
			return nil, fmt.Errorf("энкодеры: в %s нет поля %q", encodersFile, field)
		}
	}

	title, err := loadTable(dir, titleFile, set, FieldTitle)
	if err != nil {
		return nil, err
	}
	equipment, err := loadTable(dir, equipmentFile, set, FieldEquipment)
	if err != nil {
		return nil, err
	}
	level, err := loadTable(dir, levelFile, set, FieldLevel)
	if err != nil {
		return nil, err
	}

	return NewPipeline(set, title, equipment, level), nil
}

func loadTable(dir, name string, set EncoderSet, target string) (*TablePredictor, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("модель %s: %w", target, err)
	}
	var a tableArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("модель %s: разбор %s: %w", target, name, err)
	}
	if a.Feature != FieldBodyPart {
		return nil, fmt.Errorf("модель %s: признак %q, ожидается %q", target, a.Feature, FieldBodyPart)
	}
	if a.Target != target {
		return nil, fmt.Errorf("модель %s: в %s целевое поле %q", target, name, a.Target)
	}

	bodyParts := set[FieldBodyPart].Len()
	targets := set[target].Len()
	rules := make(map[int]int, len(a.Rules))
	for k, v := range a.Rules {
		code, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("модель %s: нечисловой ключ правила %q", target, k)
		}
		if code < 0 || code >= bodyParts {
			return nil, fmt.Errorf("модель %s: признак %d вне словаря BodyPart", target, code)
		}
		if v < 0 || v >= targets {
			return nil, fmt.Errorf("модель %s: класс %d вне словаря %s", target, v, target)
		}
		rules[code] = v
	}
	return NewTablePredictor(target, rules), nil
}
