package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateClient_Translate(t *testing.T) {
	t.Run("successful translation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/translate", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req TranslateRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "bonjour le monde", req.Query)
			assert.Equal(t, "fr", req.Source)
			assert.Equal(t, "en", req.Target)
			assert.Equal(t, "text", req.Format)

			resp := TranslateResponse{TranslatedText: "hello world"}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewTranslateClient(server.URL, "", 5*time.Second)
		result, err := client.Translate(context.Background(), "bonjour le monde", "fr", "en")

		require.NoError(t, err)
		assert.Equal(t, "hello world", result.TranslatedText)
		assert.Nil(t, result.DetectedLanguage)
	})

	t.Run("auto source returns detected language", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req TranslateRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "auto", req.Source)

			resp := TranslateResponse{
				TranslatedText:   "hello world",
				DetectedLanguage: &DetectedLanguage{Confidence: 0.92, Language: "fr"},
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewTranslateClient(server.URL, "", 5*time.Second)
		result, err := client.Translate(context.Background(), "bonjour le monde", "auto", "en")

		require.NoError(t, err)
		require.NotNil(t, result.DetectedLanguage)
		assert.Equal(t, "fr", result.DetectedLanguage.Language)
	})

	t.Run("sends api key when configured", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req TranslateRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "secret-key", req.APIKey)

			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(TranslateResponse{TranslatedText: "ok"})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewTranslateClient(server.URL, "secret-key", 5*time.Second)
		_, err := client.Translate(context.Background(), "text", "auto", "en")

		require.NoError(t, err)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, err := w.Write([]byte("upstream unavailable"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewTranslateClient(server.URL, "", 5*time.Second)
		_, err := client.Translate(context.Background(), "text", "auto", "en")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "upstream unavailable")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewTranslateClient("http://localhost:99999", "", 1*time.Second)
		_, err := client.Translate(context.Background(), "text", "auto", "en")

		assert.Error(t, err)
	})
}

func TestTranslateClient_Languages(t *testing.T) {
	t.Run("lists supported languages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/languages", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			resp := []LanguageInfo{
				{Code: "en", Name: "English"},
				{Code: "fr", Name: "French"},
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewTranslateClient(server.URL, "", 5*time.Second)
		langs, err := client.Languages(context.Background())

		require.NoError(t, err)
		require.Len(t, langs, 2)
		assert.Equal(t, "en", langs[0].Code)
		assert.Equal(t, "French", langs[1].Name)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewTranslateClient(server.URL, "", 5*time.Second)
		_, err := client.Languages(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}
