package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           string `yaml:"port"`
		TemplatePath   string `yaml:"template_path"`
		StaticPath     string `yaml:"static_path"`
		ProblemBaseURL string `yaml:"problem_base_url"`
	} `yaml:"server"`
	Catalog struct {
		Source  string `yaml:"source"` // csv | postgres
		CSVPath string `yaml:"csv_path"`
	} `yaml:"catalog"`
	Models struct {
		Dir string `yaml:"dir"`
	} `yaml:"models"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
}

// LoadConfig загружает конфигурацию из файлов
func LoadConfig() *Config {
	config := &Config{}

	// 1. Основной конфиг (без пароля)
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка чтения config.yaml: %v", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Fatalf("Ошибка парсинга config.yaml: %v", err)
	}

	// 2. Секретный конфиг (пароль БД). Нужен только при catalog.source=postgres,
	// поэтому отсутствие файла само по себе не ошибка.
	if secretData, err := os.ReadFile("config.secret.yaml"); err == nil {
		var secretConfig struct {
			Database struct {
				Password string `yaml:"password"`
			} `yaml:"database"`
		}
		if err := yaml.Unmarshal(secretData, &secretConfig); err != nil {
			log.Fatalf("Ошибка парсинга config.secret.yaml: %v", err)
		}
		config.Database.Password = secretConfig.Database.Password
	}

	if config.Catalog.Source == "postgres" && config.Database.Password == "" {
		log.Fatal("Для catalog.source=postgres нужен пароль БД в config.secret.yaml")
	}

	// 3. Переменная окружения PORT перекрывает порт из файла
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = ":" + port
	}
	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}

	log.Println("Конфигурация успешно загружена")
	return config
}
