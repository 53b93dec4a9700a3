package generate

import (
	"encoding/json"
	"errors"
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

// HandleGenerate - POST /api/generate
// 참조 이미지 + 프롬프트 기반 제품 이미지 생성
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
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
		log.Println("❌ [Generate] Service not initialized")
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	requestID := uuid.New().String()

	// Request 파싱
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Generate] [%s] Invalid request: %v", requestID, err)
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrorCodeInvalidRequest,
		})
		return
	}

	// 요청 검증
	if err := ValidateGenerateRequest(&req); err != nil {
		log.Printf("❌ [Generate] [%s] Validation failed: %v", requestID, err)
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrorCodeInvalidRequest,
		})
		return
	}

	log.Printf("🎨 [Generate] [%s] Processing request: version=%s, ratio=%s, resolution=%s",
		requestID, req.ModelVersion, req.AspectRatio, req.Resolution)

	// 이미지 생성
	imageDataURL, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		log.Printf("❌ [Generate] [%s] Generation failed: %v", requestID, err)

		errorCode := ErrorCodeGenerationFailed
		errorMessage := "Generation failed"
		if errors.Is(err, ErrNoImageGenerated) {
			errorCode = ErrorCodeNoImageGenerated
			errorMessage = "No image generated. Please try again."
		}

		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: errorMessage,
			ErrorCode:    errorCode,
		})
		return
	}

	log.Printf("✅ [Generate] [%s] Response sent: %d chars", requestID, len(imageDataURL))

	json.NewEncoder(w).Encode(GenerateResponse{
		Success:      true,
		RequestID:    requestID,
		ImageDataURL: imageDataURL,
	})
}
