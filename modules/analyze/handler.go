package analyze

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleAnalyze - POST /api/analyze
// 이미지 설명 추출 - 분석 실패도 fallback 문구와 함께 success로 응답
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// OPTIONS 요청 처리
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	// POST만 허용
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Service 확인
	if h.service == nil {
		log.Println("❌ [Analyze] Service not initialized")
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	requestID := uuid.New().String()

	// Request 파싱
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Analyze] [%s] Invalid request: %v", requestID, err)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrorCodeInvalidRequest,
		})
		return
	}

	// 요청 검증
	if err := ValidateAnalyzeRequest(&req); err != nil {
		log.Printf("❌ [Analyze] [%s] Validation failed: %v", requestID, err)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrorCodeInvalidRequest,
		})
		return
	}

	log.Printf("🔍 [Analyze] [%s] Processing request: image=%d chars", requestID, len(req.ImageDataURL))

	// 이미지 분석 (실패해도 fallback 문구 반환)
	description := h.service.Analyze(r.Context(), &req)

	log.Printf("✅ [Analyze] [%s] Response sent: %d chars", requestID, len(description))

	json.NewEncoder(w).Encode(AnalyzeResponse{
		Success:     true,
		RequestID:   requestID,
		Description: description,
	})
}
