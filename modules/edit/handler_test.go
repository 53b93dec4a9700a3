package edit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postEdit(t *testing.T, h *Handler, body string) *EditResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/edit", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.HandleEdit(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp EditResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return &resp
}

func TestHandleEdit_Success(t *testing.T) {
	fake := &fakeGenerator{resp: imageResponse("image/png", []byte("edited"))}
	h := NewHandler(NewService(fake, testConfig()))

	resp := postEdit(t, h, `{"imageDataUrl":"data:image/png;base64,aW1n","prompt":"soften shadows"}`)

	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.ImageDataURL, "data:image/png;base64,"))
	assert.NotEmpty(t, resp.RequestID)
}

func TestHandleEdit_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "missing image",
			body:        `{"prompt":"soften shadows"}`,
			wantMessage: "imageDataUrl is required",
		},
		{
			name:        "missing prompt",
			body:        `{"imageDataUrl":"data:image/png;base64,aW1n"}`,
			wantMessage: "prompt is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGenerator{}
			h := NewHandler(NewService(fake, testConfig()))

			resp := postEdit(t, h, tt.body)

			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.ErrorMessage)
			assert.Equal(t, ErrorCodeInvalidRequest, resp.ErrorCode)
			assert.Zero(t, fake.calls)
		})
	}
}

func TestHandleEdit_ServiceErrors(t *testing.T) {
	t.Run("no edited image", func(t *testing.T) {
		fake := &fakeGenerator{resp: imageResponse("image/png", nil)}
		h := NewHandler(NewService(fake, testConfig()))

		resp := postEdit(t, h, `{"imageDataUrl":"data:image/png;base64,aW1n","prompt":"soften"}`)

		assert.False(t, resp.Success)
		assert.Equal(t, "No edited image generated. Please try again.", resp.ErrorMessage)
		assert.Equal(t, ErrorCodeNoEditedImage, resp.ErrorCode)
	})

	t.Run("transport failure", func(t *testing.T) {
		fake := &fakeGenerator{err: errors.New("rpc error: deadline exceeded")}
		h := NewHandler(NewService(fake, testConfig()))

		resp := postEdit(t, h, `{"imageDataUrl":"data:image/png;base64,aW1n","prompt":"soften"}`)

		assert.False(t, resp.Success)
		assert.Equal(t, "Edit failed", resp.ErrorMessage)
		assert.Equal(t, ErrorCodeEditFailed, resp.ErrorCode)
	})
}

func TestHandleEdit_MethodGuards(t *testing.T) {
	h := NewHandler(NewService(&fakeGenerator{}, testConfig()))

	t.Run("OPTIONS is acknowledged", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/edit", nil)
		rr := httptest.NewRecorder()
		h.HandleEdit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("GET is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/edit", nil)
		rr := httptest.NewRecorder()
		h.HandleEdit(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
