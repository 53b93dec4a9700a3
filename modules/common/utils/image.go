package utils

import (
	"encoding/base64"
	"log"
	"strings"
)

const (
	dataURIPrefix    = "data:"
	base64Separator  = ";base64,"
	defaultImageMime = "image/png"
)

// DecodeDataURI - data URI에서 MIME 타입과 base64 페이로드 추출
// "data:<mime>;base64,<payload>" 형식이 아니면 (image/png, 입력 그대로) 반환
func DecodeDataURI(uri string) (mimeType string, payload string) {
	if strings.HasPrefix(uri, dataURIPrefix) {
		if idx := strings.Index(uri, base64Separator); idx > len(dataURIPrefix) {
			return uri[len(dataURIPrefix):idx], uri[idx+len(base64Separator):]
		}
	}
	return defaultImageMime, uri
}

// DecodeBase64Payload - base64 페이로드를 바이너리로 디코딩
// 페이로드 검증은 하지 않음: 손상된 입력도 디코딩된 부분까지 그대로 전달하고
// 거부 여부는 원격 API가 판단
func DecodeBase64Payload(payload string) []byte {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		log.Printf("⚠️ [Utils] Base64 payload malformed, forwarding %d decoded bytes: %v", len(data), err)
	}
	return data
}

// EncodeImageDataURI - 이미지 바이너리를 PNG data URI로 변환
func EncodeImageDataURI(imageData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageData)
}
