package shelfsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	apiKeyHeader = "x-api-key"
	tokenHeader  = "x-auth-token"
)

// do sends in as JSON (when non-nil), and decodes the envelope into out when
// the status matches expected. Any other status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any, expected int) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.APIKey)
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expected {
		return parseErrorResponse(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseErrorResponse(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status}

	var env Response[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Message = env.Message
		apiErr.Details = env.Details
	}
	return apiErr
}
