package analyze

import (
	"context"
	"log"

	"google.golang.org/genai"

	"aura-studio-server/modules/common/config"
	"aura-studio-server/modules/common/gemini"
	"aura-studio-server/modules/common/utils"
)

const (
	// 고정 분석 지시문 - 이미지 파트 다음에 붙음
	analysisInstruction = "Analyze this image in detail. Describe the main subject, colors, materials, lighting, mood, and composition so the description can be used to recreate a similar product shot."

	// 분석 실패 시 에러 대신 내려가는 고정 문구
	fallbackDescription = "Analysis failed. Please try again."
)

type Service struct {
	generator gemini.ContentGenerator
	cfg       *config.Config
}

// NewService - main에서 공유 클라이언트와 설정을 주입
func NewService(generator gemini.ContentGenerator, cfg *config.Config) *Service {
	return &Service{
		generator: generator,
		cfg:       cfg,
	}
}

// Analyze - 이미지 설명 생성, 어떤 실패든 fallback 문구로 대체 (에러 반환 없음)
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) string {
	mimeType, payload := utils.DecodeDataURI(req.ImageDataURL)

	parts := []*genai.Part{
		genai.NewPartFromBytes(utils.DecodeBase64Payload(payload), mimeType),
		genai.NewPartFromText(analysisInstruction),
	}

	log.Printf("🔍 [Analyze] Calling %s - image: %d chars", s.cfg.TextModel, len(req.ImageDataURL))

	result, err := s.generator.GenerateContent(
		ctx,
		s.cfg.TextModel,
		[]*genai.Content{{Parts: parts}},
		nil,
	)
	if err != nil {
		log.Printf("❌ [Analyze] Gemini API error: %v", err)
		return fallbackDescription
	}

	description, ok := gemini.CandidateText(result)
	if !ok {
		log.Printf("⚠️ [Analyze] No text in Gemini response")
		return fallbackDescription
	}

	log.Printf("✅ [Analyze] Image analyzed: %s", truncateString(description, 100))
	return description
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
