package classify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	client, err := NewHTTPClient(Config{BaseURL: baseURL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestClassifySuccess(t *testing.T) {
	var gotPath, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "blouse.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"filename": "abc123.jpg",
			"image_url": "/images/abc123.jpg",
			"predicted_class": "Blouse",
			"era": "1940s",
			"confidence": 87.42,
			"description": "Structured shoulders",
			"historicalContext": "Film noir staple"
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Classify(context.Background(), []byte("fake-image-bytes"), "blouse.jpg")
	require.NoError(t, err)

	assert.Equal(t, "/upload", gotPath)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, model.Era1940s, result.DetectedEra)
	assert.Equal(t, 87.42, result.Confidence)
	assert.Equal(t, "Blouse", result.Name)
	assert.Equal(t, "Structured shoulders", result.Description)
	assert.Equal(t, "Film noir staple", result.HistoricalContext)
	assert.Equal(t, server.URL+"/images/abc123.jpg", result.ImageURL)
}

func TestClassifyNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // immediately unreachable

	client := newTestClient(t, server.URL)
	_, err := client.Classify(context.Background(), []byte("img"), "img.jpg")
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestClassifyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Classify(context.Background(), []byte("img"), "img.jpg")
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestClassifyMalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>oops</html>"},
		{name: "missing era", body: `{"image_url": "/images/a.jpg", "confidence": 90}`},
		{name: "era outside fixed set", body: `{"era": "2100s", "image_url": "/images/a.jpg", "confidence": 90}`},
		{name: "missing image url", body: `{"era": "1960s", "confidence": 90}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Classify(context.Background(), []byte("img"), "img.jpg")
			assert.ErrorIs(t, err, common.ErrMalformedResponse)
		})
	}
}

func TestClassifyDefaultsName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"era": "1970s", "image_url": "/images/a.jpg", "confidence": 65.5}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Classify(context.Background(), []byte("img"), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Wardrobe Piece", result.Name)
}

func TestClassifyTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"era": "1940s", "image_url": "/images/a.jpg"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), []byte("img"), "img.jpg")
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestNewHTTPClientConfig(t *testing.T) {
	_, err := NewHTTPClient(Config{})
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	client, err := NewHTTPClient(Config{BaseURL: "http://localhost:8000/"})
	require.NoError(t, err)
	hc, ok := client.(*httpClient)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8000", hc.baseURL)
	assert.Equal(t, DefaultConfig().Timeout, hc.httpClient.Timeout)
}
