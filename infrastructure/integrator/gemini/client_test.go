package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analytics-api/internal/config"
)

func TestNewGeneratorWithoutKey(t *testing.T) {
	generator := NewGenerator(context.Background(), config.Gemini{Model: "gemini-2.5-flash"})

	assert.False(t, generator.Available())

	_, err := generator.Generate(context.Background(), "qualquer coisa")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerate(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"  SELECT 1;  "}]}}]}`)
	}))
	defer server.Close()

	generator := NewGenerator(context.Background(),
		config.Gemini{APIKey: "key", Model: "gemini-2.5-flash"},
		WithBaseURL(server.URL+"/"),
	)
	require.True(t, generator.Available())

	text, err := generator.Generate(context.Background(), "quantas campanhas?")
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1;", text)
	assert.True(t, strings.HasSuffix(gotPath, "gemini-2.5-flash:generateContent"), gotPath)
	assert.Contains(t, gotBody, "quantas campanhas?")
}

func TestGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	generator := NewGenerator(context.Background(),
		config.Gemini{APIKey: "key", Model: "gemini-2.5-flash"},
		WithBaseURL(server.URL+"/"),
	)

	_, err := generator.Generate(context.Background(), "oi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer server.Close()

	generator := NewGenerator(context.Background(),
		config.Gemini{APIKey: "key", Model: "gemini-2.5-flash"},
		WithBaseURL(server.URL+"/"),
	)

	_, err := generator.Generate(context.Background(), "oi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao gerar conteúdo")
}
