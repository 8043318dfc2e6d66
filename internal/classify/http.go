package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

// httpClient implements the Client interface against the upload endpoint.
type httpClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPClient creates a classification client for the configured backend.
func NewHTTPClient(cfg Config) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: backend base URL is required", common.ErrMissingConfig)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid backend base URL: %v", common.ErrInvalidConfig, err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultConfig().Timeout
	}

	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// uploadResponse mirrors the backend's JSON response. Only era and
// image_url are required; the rest are optional enrichments.
type uploadResponse struct {
	Filename          string  `json:"filename"`
	ImageURL          string  `json:"image_url"`
	PredictedClass    string  `json:"predicted_class"`
	Era               string  `json:"era"`
	Description       string  `json:"description"`
	HistoricalContext string  `json:"historicalContext"`
	Confidence        float64 `json:"confidence"`
}

// Classify uploads one image and returns the normalized classification
// result. The image payload is forwarded as-is; no local size or format
// validation is performed. Failures are returned as values and are never
// retried here.
func (c *httpClient) Classify(ctx context.Context, image []byte, filename string) (model.ClassificationResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("failed to build multipart payload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("failed to write image payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("failed to finalize multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("%w: failed to read response: %v", common.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.ClassificationResult{}, fmt.Errorf("%w: classifier returned status %d: %s",
			common.ErrNetwork, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded uploadResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	return c.normalize(decoded)
}

// normalize re-validates the untrusted response against the classifier
// contract. An era outside the fixed enumerated set is a contract
// violation, never silently accepted.
func (c *httpClient) normalize(resp uploadResponse) (model.ClassificationResult, error) {
	if resp.Era == "" {
		return model.ClassificationResult{}, fmt.Errorf("%w: missing era", common.ErrMalformedResponse)
	}

	era := model.Era(resp.Era)
	if !era.Valid() {
		return model.ClassificationResult{}, fmt.Errorf("%w: era %q is outside the fixed set", common.ErrMalformedResponse, resp.Era)
	}

	if resp.ImageURL == "" {
		return model.ClassificationResult{}, fmt.Errorf("%w: missing image_url", common.ErrMalformedResponse)
	}

	name := resp.PredictedClass
	if name == "" {
		name = "Wardrobe Piece"
	}

	return model.ClassificationResult{
		Name:              name,
		DetectedEra:       era,
		Confidence:        resp.Confidence,
		Description:       resp.Description,
		HistoricalContext: resp.HistoricalContext,
		ImageURL:          c.resolveImageURL(resp.ImageURL),
	}, nil
}

// resolveImageURL turns the backend's server-relative image path into a
// displayable absolute reference.
func (c *httpClient) resolveImageURL(imagePath string) string {
	if strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://") {
		return imagePath
	}
	if !strings.HasPrefix(imagePath, "/") {
		imagePath = "/" + imagePath
	}
	return c.baseURL + imagePath
}
