package meme

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

const createMemePath = "/create-meme"

// Submission is everything the rendering service receives: the preview PNG
// plus the layer text, positions and style it was drawn with.
type Submission struct {
	PNG    []byte
	Top    TextLayer
	Bottom TextLayer
	Style  Style
}

// Client posts submissions to {BaseURL}/create-meme.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  "memeforge/1",
	}
}

func (c *Client) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + createMemePath
}

// CreateMeme issues exactly one POST and returns the rendered image bytes.
// Non-2xx answers come back as *RemoteError, network failures as
// *TransportError. Nothing is retried.
func (c *Client) CreateMeme(ctx context.Context, sub Submission) ([]byte, error) {
	if len(sub.PNG) == 0 {
		return nil, fmt.Errorf("%w: empty preview", ErrExportFailure)
	}
	body, contentType, err := sub.encode()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	logger().Info("submitting meme", "endpoint", c.Endpoint(), "png_bytes", len(sub.PNG))
	resp, err := hc.Do(req)
	if err != nil {
		logger().Warn("submission failed", "err", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger().Warn("submission rejected", "status", resp.StatusCode)
		return nil, &RemoteError{StatusCode: resp.StatusCode}
	}
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	logger().Info("submission rendered", "status", resp.StatusCode, "bytes", len(out))
	return out, nil
}

func (s Submission) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="meme"; filename="`+ResultFilename+`"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("build form: %w", err)
	}
	if _, err := part.Write(s.PNG); err != nil {
		return nil, "", fmt.Errorf("build form: %w", err)
	}

	style := s.Style.Normalized()
	fields := []struct{ name, value string }{
		{"topText", s.Top.Text},
		{"bottomText", s.Bottom.Text},
		{"fontSize", strconv.Itoa(style.FontSizePx)},
		{"fontColor", style.ColorHex()},
		{"topX", formatCoord(s.Top.Pos.X)},
		{"topY", formatCoord(s.Top.Pos.Y)},
		{"bottomX", formatCoord(s.Bottom.Pos.X)},
		{"bottomY", formatCoord(s.Bottom.Pos.Y)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("build form: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
