package generate

import (
	"context"
	"errors"
	"log"

	"google.golang.org/genai"

	"aura-studio-server/modules/common/config"
	"aura-studio-server/modules/common/gemini"
	"aura-studio-server/modules/common/utils"
)

// ErrNoImageGenerated - Gemini 응답에 인라인 이미지가 없을 때
var ErrNoImageGenerated = errors.New("no image generated from Gemini")

// 참조 이미지 라벨 - 라벨 텍스트 다음에 인라인 이미지가 오는 고정 순서
const (
	labelProduct    = "Primary Product Reference (preserve this product's exact design, colors, materials, and details):"
	labelModel      = "Model Reference (use this person's face and body for the shot):"
	labelBackground = "Background/Scene Reference (place the product in this environment):"
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

// Generate - 참조 이미지 기반 제품 이미지 생성, 결과는 PNG data URI
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	// 모델 선택: "3"이면 pro 모델 + resolution, 나머지는 기본 모델
	model := s.cfg.ImageModel
	imageConfig := &genai.ImageConfig{
		AspectRatio: req.AspectRatio,
	}
	if req.ModelVersion == "3" {
		model = s.cfg.ImageModelPro
		// imageSize는 pro 모델에서만 유효 (기본 모델에서는 무시됨)
		imageConfig.ImageSize = req.Resolution
	}

	parts := buildGenerateParts(req)

	log.Printf("🎨 [Generate] Calling %s - ratio: %s, resolution: %s, parts: %d, prompt: %s",
		model, req.AspectRatio, req.Resolution, len(parts), truncateString(req.Prompt, 50))

	result, err := s.generator.GenerateContent(
		ctx,
		model,
		[]*genai.Content{{Parts: parts}},
		&genai.GenerateContentConfig{
			ImageConfig: imageConfig,
		},
	)
	if err != nil {
		log.Printf("❌ [Generate] Gemini API error: %v", err)
		return "", err
	}

	imageData, ok := gemini.FirstInlineImage(result)
	if !ok {
		return "", ErrNoImageGenerated
	}

	log.Printf("✅ [Generate] Image generated: %d bytes", len(imageData))
	return utils.EncodeImageDataURI(imageData), nil
}

// buildGenerateParts - product → model → background 고정 순서로 라벨+이미지 파트를
// 쌓고 마지막에 "Instructions: " 프롬프트 파트 추가
func buildGenerateParts(req *GenerateRequest) []*genai.Part {
	parts := []*genai.Part{}

	if req.References.Product != "" {
		parts = appendReference(parts, labelProduct, req.References.Product)
	}
	if req.References.Model != "" {
		parts = appendReference(parts, labelModel, req.References.Model)
	}
	if req.References.Background != "" {
		parts = appendReference(parts, labelBackground, req.References.Background)
	}

	return append(parts, genai.NewPartFromText("Instructions: "+req.Prompt))
}

func appendReference(parts []*genai.Part, label, dataURI string) []*genai.Part {
	mimeType, payload := utils.DecodeDataURI(dataURI)
	parts = append(parts, genai.NewPartFromText(label))
	return append(parts, genai.NewPartFromBytes(utils.DecodeBase64Payload(payload), mimeType))
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
