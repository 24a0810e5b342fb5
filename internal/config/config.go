package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Nominatim NominatimConfig
	Ollama    OllamaConfig
	Trip      TripConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// CatalogConfig - откуда грузить каталог мест: csv-файл или postgres
type CatalogConfig struct {
	Source  string
	CSVPath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL   time.Duration
	RecommendCacheTTL time.Duration
}

// NominatimConfig - настройки внешнего геокодера
type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout int // seconds
}

// OllamaConfig - настройки LLM для генерации маршрутов
type OllamaConfig struct {
	BaseURL        string
	Model          string
	RequestTimeout int // seconds
	Temperature    float64
	TopP           float64
	NumPredict     int
}

// TripConfig - дефолты расчёта бюджета поездки и отбора городов
type TripConfig struct {
	DefaultSpeedKmh float64
	SleepHours      float64
	MealHours       float64
	BufferHours     float64
	ToleranceKm     float64
	ResultLimit     int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Catalog: CatalogConfig{
			Source:  viper.GetString("CATALOG_SOURCE"),
			CSVPath: viper.GetString("CATALOG_CSV_PATH"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL:   time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			RecommendCacheTTL: time.Duration(viper.GetInt("RECOMMEND_CACHE_TTL")) * time.Second,
		},
		Nominatim: NominatimConfig{
			BaseURL:        viper.GetString("NOMINATIM_BASE_URL"),
			UserAgent:      viper.GetString("NOMINATIM_USER_AGENT"),
			RequestTimeout: viper.GetInt("NOMINATIM_REQUEST_TIMEOUT"),
		},
		Ollama: OllamaConfig{
			BaseURL:        viper.GetString("OLLAMA_BASE_URL"),
			Model:          viper.GetString("OLLAMA_MODEL"),
			RequestTimeout: viper.GetInt("OLLAMA_REQUEST_TIMEOUT"),
			Temperature:    viper.GetFloat64("OLLAMA_TEMPERATURE"),
			TopP:           viper.GetFloat64("OLLAMA_TOP_P"),
			NumPredict:     viper.GetInt("OLLAMA_NUM_PREDICT"),
		},
		Trip: TripConfig{
			DefaultSpeedKmh: viper.GetFloat64("TRIP_DEFAULT_SPEED"),
			SleepHours:      viper.GetFloat64("TRIP_SLEEP_HOURS"),
			MealHours:       viper.GetFloat64("TRIP_MEAL_HOURS"),
			BufferHours:     viper.GetFloat64("TRIP_BUFFER_HOURS"),
			ToleranceKm:     viper.GetFloat64("TRIP_TOLERANCE_KM"),
			ResultLimit:     viper.GetInt("TRIP_RESULT_LIMIT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "csv"
	}
	if cfg.Catalog.CSVPath == "" {
		cfg.Catalog.CSVPath = "data/places.csv"
	}
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "trip-recommender"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 10
	}
	if cfg.Ollama.BaseURL == "" {
		cfg.Ollama.BaseURL = "http://localhost:11434"
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = "llama3"
	}
	if cfg.Ollama.RequestTimeout == 0 {
		cfg.Ollama.RequestTimeout = 120
	}
	if cfg.Ollama.Temperature == 0 {
		cfg.Ollama.Temperature = 0.3
	}
	if cfg.Ollama.TopP == 0 {
		cfg.Ollama.TopP = 0.9
	}
	if cfg.Ollama.NumPredict == 0 {
		cfg.Ollama.NumPredict = 1200
	}
	if cfg.Trip.DefaultSpeedKmh == 0 {
		cfg.Trip.DefaultSpeedKmh = 50
	}
	if cfg.Trip.SleepHours == 0 {
		cfg.Trip.SleepHours = 6
	}
	if cfg.Trip.MealHours == 0 {
		cfg.Trip.MealHours = 3
	}
	if cfg.Trip.BufferHours == 0 {
		cfg.Trip.BufferHours = 2
	}
	if cfg.Trip.ToleranceKm == 0 {
		cfg.Trip.ToleranceKm = 150
	}
	if cfg.Trip.ResultLimit == 0 {
		cfg.Trip.ResultLimit = 5
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "itinerary-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
