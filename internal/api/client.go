// Package api talks to the external emotion-classification and chat
// completion services.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ayoisaiah/moodlift/internal/apperr"
	"github.com/ayoisaiah/moodlift/internal/capture"
	"github.com/ayoisaiah/moodlift/internal/emotion"
)

var (
	// ErrNetwork is reported when a request fails before a response is
	// received.
	ErrNetwork = &apperr.Error{
		Message: "network error: %v",
	}

	// ErrClassificationFailed carries the classifier's error message when
	// one is provided.
	ErrClassificationFailed = &apperr.Error{
		Message: "classification failed: %s",
	}

	// ErrChatUnavailable is reported when the chat endpoint cannot
	// produce a reply.
	ErrChatUnavailable = &apperr.Error{
		Message: "the assistant is unavailable right now",
	}
)

const defaultTimeout = 30 * time.Second

// Model selects which backend model the classifier should run.
type Model string

const (
	ModelTensorflow Model = "tensorflow"
	ModelDeepface   Model = "deepface"
)

// Client calls the classification and chat endpoints.
type Client struct {
	predictURL string
	chatURL    string
	model      Model
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint base URLs. An empty
// model omits the model field from classification requests, leaving the
// choice to the server.
func NewClient(predictURL, chatURL string, model Model) *Client {
	return &Client{
		predictURL: predictURL,
		chatURL:    chatURL,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type predictRequest struct {
	Image string `json:"image"`
	Model string `json:"model,omitempty"`
}

type predictResponse struct {
	Emotion    string   `json:"emotion"`
	Confidence *float64 `json:"confidence"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Classify sends the image payload to the classification endpoint. Failures
// never carry a partial result: callers should treat any error as "no
// emotion known" and leave prior state untouched. No retry is performed;
// a fresh capture is required to try again.
func (c *Client) Classify(
	ctx context.Context,
	payload capture.Payload,
) (emotion.Result, error) {
	reqBody := predictRequest{
		Image: payload.DataURL,
		Model: string(c.model),
	}

	respBody, err := c.post(ctx, c.predictURL+"/predict", reqBody)
	if err != nil {
		return emotion.Result{}, err
	}

	var resp predictResponse

	err = json.Unmarshal(respBody, &resp)
	if err != nil || resp.Emotion == "" {
		return emotion.Result{}, ErrClassificationFailed.Fmt(
			"malformed response from server",
		)
	}

	result := emotion.Result{
		Label: emotion.Normalize(resp.Emotion),
	}

	if resp.Confidence != nil {
		result.Confidence = *resp.Confidence
		result.HasConfidence = true
	}

	return result, nil
}

// Chat sends a user message to the chat endpoint and returns the
// assistant's reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	respBody, err := c.post(ctx, c.chatURL+"/chat", chatRequest{
		Message: message,
	})
	if err != nil {
		return "", ErrChatUnavailable
	}

	var resp chatResponse

	err = json.Unmarshal(respBody, &resp)
	if err != nil || resp.Response == "" {
		return "", ErrChatUnavailable
	}

	return resp.Response, nil
}

// post sends a JSON body and returns the response body, converting non-2xx
// statuses into classification errors with the server message preserved.
func (c *Client) post(
	ctx context.Context,
	url string,
	body any,
) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewReader(b),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrNetwork.Fmt(err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrNetwork.Fmt(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse

		msg := "the server returned an unexpected response"

		if json.Unmarshal(respBody, &e) == nil && e.Error != "" {
			msg = e.Error
		}

		return nil, ErrClassificationFailed.Fmt(msg)
	}

	return respBody, nil
}
