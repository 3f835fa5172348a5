package model

import "fmt"

// Predictor — внешняя категориальная модель: вектор закодированных признаков
// → код класса. Реализация обязана выдерживать параллельные вызовы;
// внутреннее устройство модели конвейер не интересует.
type Predictor interface {
	Predict(features []int) (int, error)
}

// TablePredictor — модель-таблица: единственный признак (код части тела)
// → код целевого класса. В таком виде сериализуются обученные деревья.
type TablePredictor struct {
	target string
	rules  map[int]int
}

// NewTablePredictor собирает предиктор из готовой таблицы правил.
// target используется только в сообщениях об ошибках.
func NewTablePredictor(target string, rules map[int]int) *TablePredictor {
	copied := make(map[int]int, len(rules))
	for k, v := range rules {
		copied[k] = v
	}
	return &TablePredictor{target: target, rules: copied}
}

// Predict реализует Predictor.
func (t *TablePredictor) Predict(features []int) (int, error) {
	if len(features) != 1 {
		return 0, fmt.Errorf("модель %s: ожидается один признак, получено %d", t.target, len(features))
	}
	code, ok := t.rules[features[0]]
	if !ok {
		return 0, fmt.Errorf("%w: модель %s не знает признак %d", ErrUnknownCategory, t.target, features[0])
	}
	return code, nil
}
