package edit

import (
	"context"
	"errors"
	"log"

	"google.golang.org/genai"

	"aura-studio-server/modules/common/config"
	"aura-studio-server/modules/common/gemini"
	"aura-studio-server/modules/common/utils"
)

// ErrNoEditedImageGenerated - Gemini 응답에 편집된 이미지가 없을 때
var ErrNoEditedImageGenerated = errors.New("no edited image in Gemini response")

// 마스크 파트 뒤에 붙는 고정 안내 문구
const maskGuidance = "Use the provided sketch/mask image as a guide for the edit."

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

// Edit - 원본 이미지를 프롬프트(+선택 마스크)로 편집, 결과는 PNG data URI
// 파트 순서: 원본 이미지 → (마스크 → 안내 문구) → 프롬프트
func (s *Service) Edit(ctx context.Context, req *EditRequest) (string, error) {
	mimeType, payload := utils.DecodeDataURI(req.ImageDataURL)
	parts := []*genai.Part{
		genai.NewPartFromBytes(utils.DecodeBase64Payload(payload), mimeType),
	}

	if req.MaskDataURL != "" {
		maskMime, maskPayload := utils.DecodeDataURI(req.MaskDataURL)
		parts = append(parts, genai.NewPartFromBytes(utils.DecodeBase64Payload(maskPayload), maskMime))
		parts = append(parts, genai.NewPartFromText(maskGuidance))
	}

	// 편집 지시는 프리픽스 없이 마지막 파트로
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	log.Printf("🖌️ [Edit] Calling %s - mask: %v, parts: %d, prompt: %s",
		s.cfg.ImageModel, req.MaskDataURL != "", len(parts), truncateString(req.Prompt, 50))

	result, err := s.generator.GenerateContent(
		ctx,
		s.cfg.ImageModel,
		[]*genai.Content{{Parts: parts}},
		nil,
	)
	if err != nil {
		log.Printf("❌ [Edit] Gemini API error: %v", err)
		return "", err
	}

	imageData, ok := gemini.FirstInlineImage(result)
	if !ok {
		return "", ErrNoEditedImageGenerated
	}

	log.Printf("✅ [Edit] Image edited: %d bytes", len(imageData))
	return utils.EncodeImageDataURI(imageData), nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
