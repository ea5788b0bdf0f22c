package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng console client.
// Nó chứa thông tin kết nối tới API nghiệp vụ và cấu hình server console.
type Configuration struct {
	Address          string `env:"ADDRESS" envDefault:":8090"`                   // Địa chỉ server console
	ApiBaseURL       string `env:"API_BASE_URL,required"`                        // URL gốc của API nghiệp vụ (ví dụ: https://api.example.com/api/v2)
	ApiAuthToken     string `env:"API_AUTH_TOKEN"`                               // Bearer token gửi kèm mọi request (optional, do tầng auth bên ngoài cấp)
	ApiTimeout       int    `env:"API_TIMEOUT" envDefault:"15"`                  // Timeout cho mỗi request API (giây)
	DefaultPageLimit int    `env:"DEFAULT_PAGE_LIMIT" envDefault:"10"`           // Số record mặc định trên một trang
	MaxFilters       int    `env:"MAX_FILTERS" envDefault:"5"`                   // Số filter field tối đa trên một module
	MaxViewTabs      int    `env:"MAX_VIEW_TABS" envDefault:"6"`                 // Số view tab tối đa trên một module
	CORS_Origins     string `env:"CORS_ORIGINS" envDefault:"*"`                  // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	MetricsEnabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`            // Bật/tắt endpoint /metrics (Prometheus)
	FrontendURL      string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend console
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Không fatal: cho phép chạy hoàn toàn bằng environment variables
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	err := env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
