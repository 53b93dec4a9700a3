package chat

import (
	"context"
	"log"

	"google.golang.org/genai"

	"aura-studio-server/modules/common/config"
)

// 세션마다 고정으로 설정되는 페르소나
const systemInstruction = "You are Aura, the creative assistant of a product photography studio. " +
	"You help users plan product shots, refine generation prompts, and choose edits. " +
	"Be concise and concrete: suggest specific lighting, angles, materials, and moods. " +
	"Answer in the language the user writes in."

type Service struct {
	client *genai.Client
	cfg    *config.Config
}

// NewService - main에서 공유 클라이언트와 설정을 주입
func NewService(client *genai.Client, cfg *config.Config) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
	}
}

// CreateSession - 페르소나가 설정된 새 대화 세션 생성
// 메시지 송수신은 반환된 핸들(*genai.Chat)이 직접 담당
func (s *Service) CreateSession(ctx context.Context) (*genai.Chat, error) {
	session, err := s.client.Chats.Create(
		ctx,
		s.cfg.TextModel,
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		},
		nil,
	)
	if err != nil {
		log.Printf("❌ [Chat] Failed to create session: %v", err)
		return nil, err
	}

	log.Printf("✅ [Chat] Session created - model: %s", s.cfg.TextModel)
	return session, nil
}
