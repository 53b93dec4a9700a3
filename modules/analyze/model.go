package analyze

import (
	"fmt"
	"strings"
)

// AnalyzeRequest - 이미지 분석 요청
type AnalyzeRequest struct {
	ImageDataURL string `json:"imageDataUrl"` // 분석할 이미지 (data URI)
}

// AnalyzeResponse - 이미지 분석 응답
// 분석 실패는 서비스가 흡수하므로 검증을 통과한 요청은 항상 success=true,
// 실패 시 fallback 문구가 description으로 내려감
type AnalyzeResponse struct {
	Success      bool   `json:"success"`
	RequestID    string `json:"requestId,omitempty"`
	Description  string `json:"description,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// 응답 에러 코드
const ErrorCodeInvalidRequest = "INVALID_REQUEST"

// ValidateAnalyzeRequest - 기본 요청 검증
func ValidateAnalyzeRequest(req *AnalyzeRequest) error {
	if strings.TrimSpace(req.ImageDataURL) == "" {
		return fmt.Errorf("imageDataUrl is required")
	}
	return nil
}
