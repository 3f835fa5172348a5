package main

import (
	"log"
	"time"

	"github.com/Nick07092003/FitAI/internal/catalog"
	"github.com/Nick07092003/FitAI/internal/config"
	"github.com/Nick07092003/FitAI/internal/database"
	"github.com/Nick07092003/FitAI/internal/handlers"
	"github.com/Nick07092003/FitAI/internal/model"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Переменные окружения из .env (файл необязателен)
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg := config.LoadConfig()
	handlers.SetProblemBaseURL(cfg.Server.ProblemBaseURL)

	// Каталог упражнений: CSV или PostgreSQL. При ошибке каталог пустой —
	// оценка продолжает работать, подборка будет пустой.
	cat := loadCatalog(cfg)

	// Модели: при ошибке предсказание отвечает 503, оценка не страдает.
	pipeline, err := model.LoadStore(cfg.Models.Dir)
	if err != nil {
		log.Printf("❌ Модели не загружены: %v", err)
		pipeline = nil
	} else {
		log.Printf("🧠 Модели загружены: %d частей тела в словаре", len(pipeline.BodyParts()))
	}

	// Инициализация шаблонов
	engine := html.New(cfg.Server.TemplatePath, ".html")

	// Создание приложения Fiber
	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "FitAI",
		ViewsLayout: "layouts/base",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	// -------------------------------
	// Middleware: безопасность и логика
	// -------------------------------

	app.Use(recover.New())  // Перехватывает паники, возвращает 500 вместо краша
	app.Use(helmet.New())   // Добавляет HTTP security-заголовки
	app.Use(compress.New()) // Сжимает ответы gzip/br
	app.Use(logger.New())   // Логи запросов
	app.Use(limiter.New(limiter.Config{
		Max:        120,         // 120 запросов
		Expiration: time.Minute, // за минуту
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Слишком много запросов. Попробуйте позже.")
		},
	}))
	app.Use(etag.New()) // Ускоряет GET-запросы через кэширование по ETag

	// -------------------------------
	// Статика и маршруты
	// -------------------------------
	app.Static("/static", cfg.Server.StaticPath)

	h := handlers.New(cat, pipeline)
	setupRoutes(app, h)

	log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)

	log.Fatal(app.Listen(cfg.Server.Port))
}

func loadCatalog(cfg *config.Config) []catalog.Exercise {
	var (
		list []catalog.Exercise
		err  error
	)
	switch cfg.Catalog.Source {
	case "postgres":
		db, derr := database.GetDB(cfg)
		if derr != nil {
			err = derr
			break
		}
		list, err = catalog.LoadPostgres(db)
	default:
		list, err = catalog.LoadCSV(cfg.Catalog.CSVPath)
	}
	if err != nil {
		log.Printf("❌ Каталог упражнений не загружен: %v", err)
		return nil
	}
	log.Printf("📚 Каталог упражнений: %d записей", len(list))
	return list
}

// setupRoutes — маршруты приложения
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	// страницы
	app.Get("/", h.Home)
	app.Post("/fitness", h.FitnessForm)
	app.Post("/predict", h.PredictForm)

	// JSON API
	app.Post("/api/fitness", h.APIFitness)
	app.Post("/api/predict", h.APIPredict)
	app.Get("/api/body-parts", h.BodyParts)
	app.Get("/health", h.Health)
}
