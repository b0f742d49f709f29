package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http      *HTTPConfig
	Redis     *RedisCfg
	Minio     *MinIOCfg
	Assistant *AssistantCfg
	Shop      *ShopCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название бакета с изображениями товаров
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PublicBaseURL     string // Базовый URL, по которому изображения доступны клиенту
}

type AssistantCfg struct {
	Addr       string // Адрес сервиса генерации текста
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// ShopCfg — параметры магазина, не изменяемые через админ-панель.
type ShopCfg struct {
	AdminEmail       string // Email администратора (сравнение без учета регистра)
	AdminPassword    string // Пароль по умолчанию; может быть переопределен в настройках магазина
	SnapshotPrefix   string // Префикс ключей снапшотов в Redis
	CurrencySymbol   string
	SessionTokenName string // Имя заголовка с токеном сессии
	CartTokenName    string // Имя заголовка с токеном корзины
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	assistant, err := loadAssistantCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:      http,
		Redis:     redis,
		Minio:     minio,
		Assistant: assistant,
		Shop:      loadShopCfg(),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetriesStr := getEnvOrDefault("MAX_RETRIES", strconv.Itoa(defaultMaxRetries))
	maxRetries, err := strconv.Atoi(maxRetriesStr)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
		defaultBucket   = "product-images"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	endpoint := getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint)

	return &MinIOCfg{
		MinioEndpoint:     endpoint,
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicBaseURL:     getEnvOrDefault("MINIO_PUBLIC_URL", "http://"+endpoint),
	}, nil
}

func loadAssistantCfg(log logger.Logger) (*AssistantCfg, error) {
	const (
		defaultModel      = "gemini-3-flash-preview"
		defaultMaxRetries = 3
		defaultTimeout    = 30 * time.Second
	)

	addr := getEnv("ASSISTANT_ADDR")
	if addr == "" {
		err := fmt.Errorf("ASSISTANT_ADDR environment variable is required")
		log.Errorf(err, "missing ASSISTANT_ADDR")
		return nil, err
	}

	maxRetries, err := parseIntEnv("ASSISTANT_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid ASSISTANT_MAX_RETRIES")
		return nil, err
	}

	timeout, err := parseDurationEnv("ASSISTANT_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid ASSISTANT_TIMEOUT")
		return nil, err
	}

	return &AssistantCfg{
		Addr:       addr,
		APIKey:     getEnv("ASSISTANT_API_KEY"),
		Model:      getEnvOrDefault("ASSISTANT_MODEL", defaultModel),
		MaxRetries: maxRetries,
		Timeout:    timeout,
	}, nil
}

func loadShopCfg() *ShopCfg {
	const (
		defaultAdminEmail    = "admin@akshop.com"
		defaultAdminPassword = "admin123"
		defaultPrefix        = "akshop"
		defaultCurrency      = "৳"
	)

	return &ShopCfg{
		AdminEmail:       getEnvOrDefault("ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword:    getEnvOrDefault("ADMIN_PASSWORD", defaultAdminPassword),
		SnapshotPrefix:   getEnvOrDefault("SNAPSHOT_PREFIX", defaultPrefix),
		CurrencySymbol:   getEnvOrDefault("CURRENCY_SYMBOL", defaultCurrency),
		SessionTokenName: "X-Session-Token",
		CartTokenName:    "X-Cart-Token",
	}
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(v)
}
