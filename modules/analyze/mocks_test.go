package analyze

import (
	"context"

	"google.golang.org/genai"

	"aura-studio-server/modules/common/config"
)

// fakeGenerator - ContentGenerator 테스트 더블, 마지막 호출 인자를 기록
type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	calls        int
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastModel = model
	f.lastContents = contents
	f.lastConfig = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: text},
					},
				},
			},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		GeminiAPIKey:  "test-key",
		ImageModel:    "gemini-2.5-flash-image",
		ImageModelPro: "gemini-3-pro-image-preview",
		TextModel:     "gemini-3-pro-preview",
		Port:          "8080",
	}
}
