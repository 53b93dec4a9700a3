package generate

import (
	"fmt"
	"strings"
)

// ReferenceImages - 역할별 참조 이미지 (data URI, 비어있으면 생략)
type ReferenceImages struct {
	Product    string `json:"product,omitempty"`
	Model      string `json:"model,omitempty"`
	Background string `json:"background,omitempty"`
}

// GenerateRequest - 이미지 생성 요청
type GenerateRequest struct {
	Prompt       string          `json:"prompt"`
	AspectRatio  string          `json:"aspectRatio"`  // 1:1, 16:9, 9:16, 4:3, 3:4
	Resolution   string          `json:"resolution"`   // 1K, 2K, 4K (modelVersion "3"에서만 적용)
	ModelVersion string          `json:"modelVersion"` // "3" 또는 "2.5" (기본)
	References   ReferenceImages `json:"references"`
}

// GenerateResponse - 이미지 생성 응답
type GenerateResponse struct {
	Success      bool   `json:"success"`
	RequestID    string `json:"requestId,omitempty"`
	ImageDataURL string `json:"imageDataUrl,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// 응답 에러 코드
const (
	ErrorCodeInvalidRequest   = "INVALID_REQUEST"
	ErrorCodeNoImageGenerated = "NO_IMAGE_GENERATED"
	ErrorCodeGenerationFailed = "GENERATION_FAILED"
)

var validAspectRatios = map[string]bool{
	"1:1":  true,
	"16:9": true,
	"9:16": true,
	"4:3":  true,
	"3:4":  true,
}

var validResolutions = map[string]bool{
	"1K": true,
	"2K": true,
	"4K": true,
}

// ValidateGenerateRequest - 기본 요청 검증
func ValidateGenerateRequest(req *GenerateRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}

	if len(req.Prompt) > 2000 {
		return fmt.Errorf("prompt too long (max 2000 characters)")
	}

	if req.AspectRatio != "" && !validAspectRatios[req.AspectRatio] {
		return fmt.Errorf("invalid aspect ratio: %s", req.AspectRatio)
	}

	if req.Resolution != "" && !validResolutions[req.Resolution] {
		return fmt.Errorf("invalid resolution: %s", req.Resolution)
	}

	return nil
}
