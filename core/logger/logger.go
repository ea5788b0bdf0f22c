package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// appLogger là logger dùng chung cho toàn bộ ứng dụng
var appLogger *logrus.Logger

// appHook giữ tham chiếu async hook để có thể flush khi shutdown
var appHook *AsyncHook

// Init khởi tạo hệ thống logging cho toàn bộ ứng dụng.
// Nếu config là nil, cấu hình sẽ được đọc từ environment variables.
//
// Parameters:
// - config: Cấu hình logging (nil = dùng DefaultConfig)
//
// Returns:
// - error: Lỗi nếu không tạo được file log
func Init(config *LogConfig) error {
	if config == nil {
		config = DefaultConfig()
	}

	log := logrus.New()

	// Level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Format
	if config.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// Output
	writers := make([]io.Writer, 0, 2)
	switch config.Output {
	case "stdout":
		writers = append(writers, os.Stdout)
	case "file":
		w, err := openLogFile(config)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	case "both":
		writers = append(writers, os.Stdout)
		w, err := openLogFile(config)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	default:
		writers = append(writers, os.Stdout)
	}

	// Ghi log bất đồng bộ qua hook, discard output trực tiếp để tránh ghi đôi
	log.SetOutput(io.Discard)
	appHook = NewAsyncHookWithWriters(writers, 1000)
	log.AddHook(appHook)

	appLogger = log
	return nil
}

// openLogFile mở (hoặc tạo) file log theo cấu hình
func openLogFile(config *LogConfig) (io.Writer, error) {
	if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
		return nil, fmt.Errorf("không thể tạo thư mục log %s: %w", config.LogPath, err)
	}

	path := filepath.Join(config.LogPath, config.AppFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("không thể mở file log %s: %w", path, err)
	}
	return f, nil
}

// GetAppLogger trả về logger dùng chung của ứng dụng.
// Nếu chưa được Init, trả về logrus.StandardLogger để tránh nil panic.
func GetAppLogger() *logrus.Logger {
	if appLogger == nil {
		return logrus.StandardLogger()
	}
	return appLogger
}

// WithModule trả về entry đã gắn sẵn tên module (dùng cho các store)
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// Close flush các log entries còn lại trong buffer (gọi khi shutdown)
func Close() {
	if appHook != nil {
		appHook.Close()
	}
}
