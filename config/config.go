package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng storefront
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"` // Địa chỉ server

	// Thông tin đăng nhập admin (superuser từ environment, độc lập với collection users)
	AdminUsername string `env:"ADMIN_USERNAME,required"` // Tài khoản admin
	AdminPassword string `env:"ADMIN_PASSWORD,required"` // Mật khẩu admin

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_URI,required"`                  // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DB_NAME" envDefault:"skincare"` // Tên cơ sở dữ liệu

	// Data source: mongodb | google-sheets (chọn một lần khi khởi động, không hot-swap)
	DataSource          string `env:"DATA_SOURCE" envDefault:"mongodb"` // Backend lưu trữ
	GoogleSheetsBaseURL string `env:"GOOGLE_SHEETS_WEB_APP_URL"`        // URL web app Google Sheets (bắt buộc khi DATA_SOURCE=google-sheets)

	// Cookie phiên admin
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"` // Secure flag theo môi trường

	// Thư mục public chứa file tĩnh (ảnh bài viết lưu dưới <PublicDir>/articles)
	PublicDir string `env:"PUBLIC_DIR" envDefault:"./public"`

	// SMTP cho thông báo liên hệ (fire-and-forget)
	SMTPHost           string `env:"SMTP_HOST"`
	SMTPPort           int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername       string `env:"SMTP_USERNAME"`
	SMTPPassword       string `env:"SMTP_PASSWORD"`
	SMTPFrom           string `env:"SMTP_FROM"`
	ContactNotifyEmail string `env:"CONTACT_NOTIFY_EMAIL"` // Địa chỉ nhận thông báo liên hệ (rỗng = tắt)

	// API hành chính công (tỉnh/huyện/xã)
	ProvinceAPIBaseURL string `env:"PROVINCE_API_BASE_URL" envDefault:"https://provinces.open-api.vn/api"`

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi parse environment variables
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// File env là tùy chọn khi chạy trong container (env vars đã có sẵn)
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
