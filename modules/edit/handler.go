package edit

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

// HandleEdit - POST /api/edit
// 원본 이미지 + 프롬프트(+선택 마스크) 편집
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
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
		log.Println("❌ [Edit] Service not initialized")
		json.NewEncoder(w).Encode(EditResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
		})
		return
	}

	requestID := uuid.New().String()

	// Request 파싱
	var req EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Edit] [%s] Invalid request: %v", requestID, err)
		json.NewEncoder(w).Encode(EditResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrorCodeInvalidRequest,
		})
		return
	}

	// 요청 검증
	if err := ValidateEditRequest(&req); err != nil {
		log.Printf("❌ [Edit] [%s] Validation failed: %v", requestID, err)
		json.NewEncoder(w).Encode(EditResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrorCodeInvalidRequest,
		})
		return
	}

	log.Printf("🖌️ [Edit] [%s] Processing request: mask=%v, image=%d chars",
		requestID, req.MaskDataURL != "", len(req.ImageDataURL))

	// 이미지 편집
	imageDataURL, err := h.service.Edit(r.Context(), &req)
	if err != nil {
		log.Printf("❌ [Edit] [%s] Edit failed: %v", requestID, err)

		errorCode := ErrorCodeEditFailed
		errorMessage := "Edit failed"
		if errors.Is(err, ErrNoEditedImageGenerated) {
			errorCode = ErrorCodeNoEditedImage
			errorMessage = "No edited image generated. Please try again."
		}

		json.NewEncoder(w).Encode(EditResponse{
			Success:      false,
			RequestID:    requestID,
			ErrorMessage: errorMessage,
			ErrorCode:    errorCode,
		})
		return
	}

	log.Printf("✅ [Edit] [%s] Response sent: %d chars", requestID, len(imageDataURL))

	json.NewEncoder(w).Encode(EditResponse{
		Success:      true,
		RequestID:    requestID,
		ImageDataURL: imageDataURL,
	})
}
