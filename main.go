package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"aura-studio-server/modules/analyze"
	"aura-studio-server/modules/common/config"
	"aura-studio-server/modules/common/gemini"
	"aura-studio-server/modules/edit"
	"aura-studio-server/modules/generate"
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "aura-studio-server",
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Gemini 클라이언트 초기화 - 프로세스 전체에서 하나만 생성해서 모든 모듈에 주입
	ctx := context.Background()
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}

	// 모듈 초기화
	generateHandler := generate.NewHandler(generate.NewService(client.Models, cfg))
	editHandler := edit.NewHandler(edit.NewService(client.Models, cfg))
	analyzeHandler := analyze.NewHandler(analyze.NewService(client.Models, cfg))

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/api/generate", generateHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/edit", editHandler.HandleEdit).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/analyze", analyzeHandler.HandleAnalyze).Methods("POST", "OPTIONS")

	port := cfg.Port

	log.Printf("🚀 Aura Studio Server starting on port %s", port)
	log.Printf("❤️  Health check: http://localhost:%s/health", port)
	log.Printf("🎨 Generate: http://localhost:%s/api/generate", port)
	log.Printf("🖌️ Edit: http://localhost:%s/api/edit", port)
	log.Printf("🔍 Analyze: http://localhost:%s/api/analyze", port)

	// 서버 시작
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
