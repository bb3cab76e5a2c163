package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Leganyst/reserva-core/internal/schedule"
)

type DBConfig struct {
	// "sqlite" или "postgres".
	Driver string
	// Путь к файлу для sqlite либо DSN для postgres.
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

type Config struct {
	HTTPAddr string

	// Общая фраза доступа к админ-разделу.
	AdminPhrase string
	// Ключи подписи/шифрования админ-куки.
	CookieHashKey  []byte
	CookieBlockKey []byte

	DB DBConfig

	// Дневное окно по умолчанию.
	Day schedule.DayConfig

	// Закрытый список разрешённых дат; пустой — без ограничения.
	AllowedDates []string
}

// Load собирает конфигурацию из переменных окружения.
func Load() (*Config, error) {
	day, err := loadDayConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:       getEnv("RESERVA_HTTP_ADDR", ":8080"),
		AdminPhrase:    getEnv("RESERVA_ADMIN_PHRASE", "admin123"),
		CookieHashKey:  []byte(getEnv("RESERVA_COOKIE_HASH_KEY", "")),
		CookieBlockKey: []byte(getEnv("RESERVA_COOKIE_BLOCK_KEY", "")),
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			DSN:             getEnv("DB_DSN", "reservas.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		Day:          day,
		AllowedDates: splitDates(getEnv("RESERVA_ALLOWED_DATES", "")),
	}

	// минимальная валидация
	if cfg.DB.Driver != "sqlite" && cfg.DB.Driver != "postgres" {
		return nil, fmt.Errorf("invalid DB config: unknown driver %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("invalid DB config: DSN must not be empty")
	}
	for _, d := range cfg.AllowedDates {
		if _, err := time.Parse(schedule.DateLayout, d); err != nil {
			return nil, fmt.Errorf("RESERVA_ALLOWED_DATES: bad date %q", d)
		}
	}

	return cfg, nil
}

func loadDayConfig() (schedule.DayConfig, error) {
	var (
		day schedule.DayConfig
		err error
	)

	fields := []struct {
		dst *schedule.TimeOfDay
		env string
		def string
	}{
		{&day.Start, "RESERVA_DAY_START", "09:00"},
		{&day.End, "RESERVA_DAY_END", "18:00"},
		{&day.BlackoutStart, "RESERVA_BREAK_START", "13:00"},
		{&day.BlackoutEnd, "RESERVA_BREAK_END", "14:00"},
	}
	for _, f := range fields {
		*f.dst, err = schedule.ParseTimeOfDay(getEnv(f.env, f.def))
		if err != nil {
			return schedule.DayConfig{}, fmt.Errorf("%s: %w", f.env, err)
		}
	}

	day.Granularity = getEnvInt("RESERVA_SLOT_MINUTES", 20)

	if err := day.Validate(); err != nil {
		return schedule.DayConfig{}, fmt.Errorf("day window config: %w", err)
	}
	return day, nil
}

func splitDates(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	dates := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			dates = append(dates, p)
		}
	}
	return dates
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
