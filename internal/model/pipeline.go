package model

import "fmt"

// Prediction — расшифрованный ответ трёх моделей.
type Prediction struct {
	Title     string `json:"title"`
	Equipment string `json:"equipment"`
	Level     string `json:"level"`
}

// Pipeline — конвейер предсказания: закодировать часть тела, опросить три
// независимые модели, расшифровать коды обратно в метки. Конвейер держит
// только read-only состояние и безопасен для параллельных вызовов.
// Нулевой указатель — валидное «модели не загружены»: все методы отвечают
// ErrModelUnavailable либо пустым словарём.
type Pipeline struct {
	enc       EncoderSet
	title     Predictor
	equipment Predictor
	level     Predictor
}

// NewPipeline собирает конвейер из готовых энкодеров и моделей.
func NewPipeline(enc EncoderSet, title, equipment, level Predictor) *Pipeline {
	return &Pipeline{enc: enc, title: title, equipment: equipment, level: level}
}

// BodyParts — словарь частей тела для выпадающего списка на странице.
func (p *Pipeline) BodyParts() []string {
	if p == nil {
		return nil
	}
	enc, err := p.enc.Get(FieldBodyPart)
	if err != nil {
		return nil
	}
	return enc.Classes()
}

// PredictExercise — операция predictExercise: по части тела возвращает
// предсказанные название, снаряд и уровень. Неизвестная часть тела —
// ErrUnknownCategory, незагруженные модели — ErrModelUnavailable.
func (p *Pipeline) PredictExercise(bodyPart string) (Prediction, error) {
	if p == nil {
		return Prediction{}, ErrModelUnavailable
	}
	bodyEnc, err := p.enc.Get(FieldBodyPart)
	if err != nil {
		return Prediction{}, err
	}
	code, err := bodyEnc.Encode(bodyPart)
	if err != nil {
		return Prediction{}, err
	}
	features := []int{code}

	title, err := p.predictLabel(p.title, FieldTitle, features)
	if err != nil {
		return Prediction{}, err
	}
	equipment, err := p.predictLabel(p.equipment, FieldEquipment, features)
	if err != nil {
		return Prediction{}, err
	}
	level, err := p.predictLabel(p.level, FieldLevel, features)
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{Title: title, Equipment: equipment, Level: level}, nil
}

// predictLabel — один шаг конвейера: предсказать код и расшифровать его
// энкодером целевого поля.
func (p *Pipeline) predictLabel(m Predictor, field string, features []int) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%w: модель %s не загружена", ErrModelUnavailable, field)
	}
	enc, err := p.enc.Get(field)
	if err != nil {
		return "", err
	}
	code, err := m.Predict(features)
	if err != nil {
		return "", fmt.Errorf("модель %s: %w", field, err)
	}
	return enc.Decode(code)
}
