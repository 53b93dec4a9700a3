package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Gemini API
	GeminiAPIKey  string
	ImageModel    string // 기본 이미지 생성/편집 모델
	ImageModelPro string // 고해상도 이미지 생성 모델 (resolution 지원)
	TextModel     string // 분석/채팅용 텍스트 모델

	// Server
	Port string
}

// LoadConfig - 환경변수 로드
// main에서 한 번 호출하고 각 모듈에 주입
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	cfg := &Config{
		// Gemini API
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		ImageModel:    getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		ImageModelPro: getEnv("GEMINI_IMAGE_MODEL_PRO", "gemini-3-pro-image-preview"),
		TextModel:     getEnv("GEMINI_TEXT_MODEL", "gemini-3-pro-preview"),

		// Server
		Port: getEnv("PORT", "8080"),
	}

	// 필수 환경변수 검증
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Image model: %s (pro: %s)", cfg.ImageModel, cfg.ImageModelPro)
	log.Printf("   Text model: %s", cfg.TextModel)

	return cfg, nil
}

// validate - 필수 환경변수 검증
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
