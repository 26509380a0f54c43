package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

const (
	DefaultProbeTimeout  = 5 * time.Second
	DefaultUploadTimeout = 30 * time.Second
)

// ErrConnectivity means no HTTP response arrived at all: connection refused,
// timeout, DNS failure. A received non-2xx response is not a connectivity
// error.
var ErrConnectivity = errors.New("no response from ocr service")

// Response is one received HTTP response, whatever its status.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Client talks to the OCR service under test. One request per call, no
// retries.
type Client struct {
	baseURL string
	ocrPath string

	probeClient  *http.Client
	uploadClient *http.Client

	log *slog.Logger
}

func NewClient(baseURL, ocrPath string, probeTimeout, uploadTimeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		ocrPath:      ocrPath,
		probeClient:  &http.Client{Timeout: probeTimeout},
		uploadClient: &http.Client{Timeout: uploadTimeout},
		log:          log.WithGroup("UPLOAD"),
	}
}

// Probe issues a GET against the service root and returns the raw status
// code of whatever response arrives.
func (c *Client) Probe(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return 0, fmt.Errorf("building probe request, %w", err)
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probing %s, %v, %w", c.baseURL, err, ErrConnectivity)
	}
	defer resp.Body.Close()

	c.log.Info("probe response", slog.Int("status", resp.StatusCode))

	return resp.StatusCode, nil
}

// Upload posts the file as a single multipart field named "image", declared
// under fileName. Any received response is returned as-is, including
// non-2xx; the part content type is whatever the multipart writer defaults
// to.
func (c *Client) Upload(ctx context.Context, filePath, fileName string) (Response, error) {
	body, contentType, err := multipartBody(filePath, fileName)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.ocrPath, body)
	if err != nil {
		return Response{}, fmt.Errorf("building upload request, %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("uploading %s to %s, %v, %w", fileName, c.baseURL+c.ocrPath, err, ErrConnectivity)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response body for %s, %v, %w", fileName, err, ErrConnectivity)
	}

	c.log.Info("upload response",
		slog.String("file", fileName),
		slog.Int("status", resp.StatusCode),
	)

	return Response{StatusCode: resp.StatusCode, Body: respBody, Header: resp.Header}, nil
}

func multipartBody(filePath, fileName string) (*bytes.Buffer, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("opening sample file %s, %w", filePath, err)
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	part, err := mw.CreateFormFile("image", fileName)
	if err != nil {
		return nil, "", fmt.Errorf("creating multipart field, %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copying %s into request, %w", filePath, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body, %w", err)
	}

	return buf, mw.FormDataContentType(), nil
}
