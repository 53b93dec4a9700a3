package edit

import (
	"fmt"
	"strings"
)

// EditRequest - 이미지 편집 요청
type EditRequest struct {
	ImageDataURL string `json:"imageDataUrl"`          // 원본 이미지 (data URI)
	Prompt       string `json:"prompt"`                // 편집 지시사항
	MaskDataURL  string `json:"maskDataUrl,omitempty"` // 스케치/마스크 이미지 (optional)
}

// EditResponse - 이미지 편집 응답
type EditResponse struct {
	Success      bool   `json:"success"`
	RequestID    string `json:"requestId,omitempty"`
	ImageDataURL string `json:"imageDataUrl,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// 응답 에러 코드
const (
	ErrorCodeInvalidRequest = "INVALID_REQUEST"
	ErrorCodeNoEditedImage  = "NO_EDITED_IMAGE"
	ErrorCodeEditFailed     = "EDIT_FAILED"
)

// ValidateEditRequest - 기본 요청 검증
func ValidateEditRequest(req *EditRequest) error {
	if strings.TrimSpace(req.ImageDataURL) == "" {
		return fmt.Errorf("imageDataUrl is required")
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}

	if len(req.Prompt) > 2000 {
		return fmt.Errorf("prompt too long (max 2000 characters)")
	}

	return nil
}
