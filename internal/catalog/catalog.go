package catalog

// Exercise — одна запись каталога упражнений megaGym.
// Каталог загружается один раз при старте и дальше только читается,
// поэтому записи безопасно раздавать без копирования.
type Exercise struct {
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	BodyPart  string  `json:"body_part"`
	Equipment string  `json:"equipment"`
	Level     string  `json:"level"`
	Rating    float64 `json:"rating"`
}
