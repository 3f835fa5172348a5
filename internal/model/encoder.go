package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory — метка или код отсутствуют в словаре энкодера.
	ErrUnknownCategory = errors.New("неизвестная категория")
	// ErrModelUnavailable — модели или энкодеры не были загружены.
	ErrModelUnavailable = errors.New("модели недоступны")
)

// Поля, под которые обучены энкодеры и модели.
const (
	FieldBodyPart  = "BodyPart"
	FieldTitle     = "Title"
	FieldEquipment = "Equipment"
	FieldLevel     = "Level"
)

// LabelEncoder — биекция метка↔код. Код метки — её индекс в списке классов,
// как у LabelEncoder обучающего пайплайна. Метка, которой не было при
// построении энкодера, — ошибка, а не запасной вариант.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder строит энкодер по упорядоченному списку классов.
func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, errors.New("энкодер: пустой список классов")
	}
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("энкодер: класс %q повторяется", c)
		}
		index[c] = i
	}
	return &LabelEncoder{classes: append([]string(nil), classes...), index: index}, nil
}

// Encode — метка → код.
func (e *LabelEncoder) Encode(label string) (int, error) {
	code, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: метка %q вне словаря", ErrUnknownCategory, label)
	}
	return code, nil
}

// Decode — код → метка.
func (e *LabelEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("%w: код %d вне словаря", ErrUnknownCategory, code)
	}
	return e.classes[code], nil
}

// Classes — копия словаря в порядке кодов.
func (e *LabelEncoder) Classes() []string {
	return append([]string(nil), e.classes...)
}

// Len — размер словаря.
func (e *LabelEncoder) Len() int {
	return len(e.classes)
}

// EncoderSet — энкодеры по имени поля.
type EncoderSet map[string]*LabelEncoder

// Get возвращает энкодер поля или ошибку, если набора для поля нет.
func (s EncoderSet) Get(field string) (*LabelEncoder, error) {
	enc, ok := s[field]
	if !ok || enc == nil {
		return nil, fmt.Errorf("%w: нет энкодера для поля %q", ErrModelUnavailable, field)
	}
	return enc, nil
}
