package gemini

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// ContentGenerator - Gemini 컨텐츠 생성 호출 인터페이스 (*genai.Models가 구현)
// 서비스들은 이 인터페이스로 호출해서 테스트에서 교체 가능
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ ContentGenerator = (*genai.Models)(nil)

// NewClient - 프로세스 전체에서 공유하는 Gemini 클라이언트 생성
// main에서 한 번 만들고 모든 모듈에 주입
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Println("✅ [Gemini] Client initialized")
	return client, nil
}
