package gemini

import "google.golang.org/genai"

// FirstInlineImage - 첫 번째 후보의 파트에서 첫 인라인 이미지 바이너리 추출
// 후보/컨텐츠/이미지가 없으면 ok=false
func FirstInlineImage(result *genai.GenerateContentResponse) ([]byte, bool) {
	candidate := firstCandidate(result)
	if candidate == nil {
		return nil, false
	}

	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, true
		}
	}
	return nil, false
}

// CandidateText - 첫 번째 후보의 텍스트 파트를 순서대로 이어붙여 반환
// 인라인 파트는 건너뛰고, 텍스트가 하나도 없으면 ok=false
func CandidateText(result *genai.GenerateContentResponse) (string, bool) {
	candidate := firstCandidate(result)
	if candidate == nil {
		return "", false
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}
	return text, text != ""
}

func firstCandidate(result *genai.GenerateContentResponse) *genai.Candidate {
	if result == nil || len(result.Candidates) == 0 {
		return nil
	}
	if result.Candidates[0].Content == nil {
		return nil
	}
	return result.Candidates[0]
}
