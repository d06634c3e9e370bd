package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"portfolio/internal/db"
	"portfolio/internal/mailer"
	"portfolio/internal/search"
	"portfolio/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	maxConns := 10
	if val, exists := os.LookupEnv("DB_MAX_CONNS"); exists {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for DB_MAX_CONNS: %v", err)
		}
		maxConns = parsed
	}

	searchTimeout := 5 * time.Second
	if val, exists := os.LookupEnv("SEARCH_TIMEOUT"); exists {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			log.Fatalf("Invalid value for SEARCH_TIMEOUT: %v", err)
		}
		searchTimeout = parsed
	}

	cfg := config{
		addr: os.Getenv("ADDR"),
		env:  os.Getenv("ENV"),
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    maxConns,
			maxIdleTime: getEnvDefault("DB_MAX_IDLE_TIME", "15m"),
		},
		search: searchConfig{
			baseURL:  os.Getenv("SEARCH_BASE_URL"),
			apiKey:   os.Getenv("SEARCH_API_KEY"),
			engineID: os.Getenv("SEARCH_ENGINE_ID"),
			timeout:  searchTimeout,
		},
		mail: mailConfig{
			fromEmail: os.Getenv("MAIL_FROM_EMAIL"),
			toEmail:   os.Getenv("MAIL_TO_EMAIL"),
			mailtrap: mailTrapConfig{
				apiKey: os.Getenv("MAILTRAP_API_KEY"),
			},
		},
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	database, err := db.New(
		cfg.db.addr,
		int32(cfg.db.maxConns),
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}
	defer database.Close()
	logger.Info("database connection pool established")

	//storage
	store := store.NewStorage(database)

	// Upstream search client
	searchClient := search.NewHTTPClient(
		cfg.search.baseURL,
		cfg.search.apiKey,
		cfg.search.engineID,
		cfg.search.timeout,
	)

	// Contact notifications are best-effort; the service runs without a
	// mail client when no key is configured.
	var mailClient mailer.Client
	if cfg.mail.mailtrap.apiKey != "" {
		mailClient, err = mailer.NewMailTrapClient(cfg.mail.mailtrap.apiKey, cfg.mail.fromEmail)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		logger.Warn("MAILTRAP_API_KEY not set, contact notifications disabled")
	}

	app := &application{
		config: cfg,
		logger: logger,
		store:  store,
		search: searchClient,
		mailer: mailClient,
	}

	//Metrics collected at /v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		stat := database.Stat()
		return map[string]any{
			"total_conns":    stat.TotalConns(),
			"idle_conns":     stat.IdleConns(),
			"acquired_conns": stat.AcquiredConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func getEnvDefault(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}
