// Package notify sends tier-specific confirmation emails through a
// Resend-compatible HTTP API. Delivery failures are collaborator errors: the
// caller logs them and the diagnostic pipeline carries on.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.resend.com"

// Mailer sends a single email.
type Mailer interface {
	Send(ctx context.Context, email Email) (*SendResponse, error)
}

// Email is the request body for POST /emails.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendResponse is the acknowledgement from the API.
type SendResponse struct {
	ID string `json:"id"`
}

// apiError is a non-200 response from the email API. Kept as a type so the
// retry logic can tell rate limiting and server errors from payload problems.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("notify: unexpected status %d: %s", e.Status, e.Body)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit caps outbound sends per second.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithRetry sets the total number of attempts for transient send failures.
func WithRetry(maxAttempts int) Option {
	return func(c *httpClient) {
		if maxAttempts > 0 {
			c.retry.maxAttempts = maxAttempts
		}
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	retry   retryConfig
}

// NewClient creates a Resend API client. The default rate limit matches the
// API's 2 requests per second allowance.
func NewClient(apiKey string, opts ...Option) Mailer {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 2),
		retry:   defaultRetryConfig(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Send(ctx context.Context, email Email) (*SendResponse, error) {
	return doWithRetry(ctx, c.retry, func(ctx context.Context) (*SendResponse, error) {
		return c.send(ctx, email)
	})
}

func (c *httpClient) send(ctx context.Context, email Email) (*SendResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "notify: rate limit wait")
	}

	body, err := json.Marshal(email)
	if err != nil {
		return nil, eris.Wrap(err, "notify: marshal email")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "notify: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "notify: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "notify: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &apiError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result SendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "notify: unmarshal response")
	}

	return &result, nil
}
