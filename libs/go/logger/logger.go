package logger

import (
	"os"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/constants"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global logger instance
	Log *zap.Logger

	// helperLog backs the package-level Info/Error/... helpers. It skips one
	// frame so entries point at the helper's caller.
	helperLog *zap.Logger
)

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level string `json:"level"`
	Stage string `json:"stage"`
	// RouterMode and NonceBackend are attached to every entry when set.
	RouterMode   string `json:"router_mode"`
	NonceBackend string `json:"nonce_backend"`
	EnableJSON   bool   `json:"enable_json"`
	EnableColor  bool   `json:"enable_color"`
}

// InitLogger initializes the logger for stage. ROUTER_MODE and NONCE_BACKEND
// are read from the environment so relay entries can be told apart across
// deployments.
func InitLogger(stage string) {
	config := LoggerConfig{
		Level:        getEnvWithDefault("LOG_LEVEL", "info"),
		Stage:        stage,
		RouterMode:   os.Getenv("ROUTER_MODE"),
		NonceBackend: os.Getenv("NONCE_BACKEND"),
		EnableJSON:   stage == constants.ProdEnvironment || os.Getenv("LOG_FORMAT") == "json",
		EnableColor:  stage != constants.ProdEnvironment,
	}

	InitLoggerWithConfig(config)
}

// InitLoggerWithConfig initializes the logger with custom configuration
func InitLoggerWithConfig(config LoggerConfig) {
	level := parseLevel(config.Level)

	var zapConfig zap.Config
	if config.EnableJSON {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.EncoderConfig.LevelKey = "level"
		zapConfig.EncoderConfig.CallerKey = "caller"
		zapConfig.EncoderConfig.StacktraceKey = "stacktrace"
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		if config.EnableColor {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.DisableCaller = false
	// stacktraces only matter outside prod or when debugging
	zapConfig.DisableStacktrace = config.Stage == constants.ProdEnvironment && level > zapcore.DebugLevel

	fields := map[string]interface{}{
		"service": constants.ServiceName,
		"stage":   config.Stage,
	}
	if config.RouterMode != "" {
		fields["router_mode"] = config.RouterMode
	}
	if config.NonceBackend != "" {
		fields["nonce_backend"] = config.NonceBackend
	}
	if config.EnableJSON {
		zapConfig.InitialFields = fields
	}

	logger, err := zapConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	setLogger(logger)
}

func setLogger(l *zap.Logger) {
	Log = l
	helperLog = l.WithOptions(zap.AddCallerSkip(1))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// getEnvWithDefault returns environment variable value or default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Account tags an entry with the staking account.
func Account(account common.Address) zap.Field {
	return zap.String("account", account.Hex())
}

// Relayer tags an entry with the address submitting on an account's behalf.
func Relayer(relayer common.Address) zap.Field {
	return zap.String("relayer", relayer.Hex())
}

// Nonce tags an entry with the authorization nonce.
func Nonce(nonce uint64) zap.Field {
	return zap.Uint64("nonce", nonce)
}

// TaskID tags an entry with a relay task.
func TaskID(id uuid.UUID) zap.Field {
	return zap.String("task_id", id.String())
}

// CorrelationID tags an entry with the request's correlation ID.
func CorrelationID(id string) zap.Field {
	return zap.String("correlation_id", id)
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zapcore.Field) {
	helperLog.Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zapcore.Field) {
	helperLog.Error(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zapcore.Field) {
	helperLog.Debug(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zapcore.Field) {
	helperLog.Warn(msg, fields...)
}

// Fatal logs a message at FatalLevel
// and then calls os.Exit(1)
func Fatal(msg string, fields ...zapcore.Field) {
	helperLog.Fatal(msg, fields...)
}

// With creates a child logger and adds structured context to it
func With(fields ...zapcore.Field) *zap.Logger {
	return Log.With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
