package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	mailport "github.com/fintomate/receipt-matcher/internal/domain/port/mail"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/config"
)

// Client talks to the mailbox gateway over HTTP. Requests are spaced out
// with a minimum interval plus jitter because the upstream provider
// throttles aggressively.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	minSpacing time.Duration
	jitter     time.Duration

	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient creates a mailbox gateway client
func NewClient(cfg config.MailConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		timeProvider: timeProvider,
		logger:       logger,
		minSpacing:   cfg.MinRequestSpacing,
		jitter:       cfg.SpacingJitter,
	}
}

// searchResponse is the gateway's search payload
type searchResponse struct {
	MessageIDs    []string `json:"messageIds"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// messageResponse is the gateway's message payload
type messageResponse struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	From        string    `json:"from"`
	Snippet     string    `json:"snippet"`
	SentAt      time.Time `json:"sentAt"`
	BodyText    string    `json:"bodyText"`
	BodyHTML    string    `json:"bodyHtml"`
	Attachments []struct {
		ID       string `json:"id"`
		Filename string `json:"filename"`
		MimeType string `json:"mimeType"`
		Size     int64  `json:"size"`
	} `json:"attachments"`
}

// attachmentResponse is the gateway's attachment payload
type attachmentResponse struct {
	Data []byte `json:"data"`
}

// Search runs a query against one mailbox
func (c *Client) Search(ctx context.Context, mailboxID, query string, maxResults int) (*mailport.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/v1/mailboxes/%s/messages", c.baseURL, url.PathEscape(mailboxID))
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))

	var payload searchResponse
	if err := c.get(ctx, endpoint+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	return &mailport.SearchResult{
		MessageIDs:    payload.MessageIDs,
		NextPageToken: payload.NextPageToken,
	}, nil
}

// GetMessage fetches one message with headers, bodies and attachment metadata
func (c *Client) GetMessage(ctx context.Context, mailboxID, messageID string) (*mailport.Message, error) {
	endpoint := fmt.Sprintf("%s/v1/mailboxes/%s/messages/%s",
		c.baseURL, url.PathEscape(mailboxID), url.PathEscape(messageID))

	var payload messageResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	msg := &mailport.Message{
		ID:       payload.ID,
		Subject:  payload.Subject,
		From:     payload.From,
		Snippet:  payload.Snippet,
		SentAt:   payload.SentAt,
		BodyText: payload.BodyText,
		BodyHTML: payload.BodyHTML,
	}
	for _, att := range payload.Attachments {
		msg.Attachments = append(msg.Attachments, mailport.AttachmentInfo{
			ID:       att.ID,
			Filename: att.Filename,
			MimeType: att.MimeType,
			Size:     att.Size,
		})
	}
	return msg, nil
}

// GetAttachment downloads one attachment's bytes
func (c *Client) GetAttachment(ctx context.Context, mailboxID, messageID, attachmentID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v1/mailboxes/%s/messages/%s/attachments/%s",
		c.baseURL, url.PathEscape(mailboxID), url.PathEscape(messageID), url.PathEscape(attachmentID))

	var payload attachmentResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// get performs a spaced GET request and decodes the JSON response
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	c.waitForSlot()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail gateway request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.ErrMailboxAuthExpired
	case http.StatusTooManyRequests:
		c.logger.Warn("Mail gateway rate limit hit", map[string]any{"url": rawURL})
		return errs.ErrMailRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail gateway returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode mail gateway response: %w", err)
	}
	return nil
}

// waitForSlot enforces the minimum spacing between requests. Jitter keeps
// multiple workers from synchronizing on the provider's rate window.
func (c *Client) waitForSlot() {
	c.mu.Lock()
	now := c.timeProvider.Now()
	wait := c.minSpacing - now.Sub(c.lastRequest)
	if wait < 0 {
		wait = 0
	}
	if c.jitter > 0 {
		wait += time.Duration(rand.Int63n(int64(c.jitter)))
	}
	c.lastRequest = now.Add(wait)
	c.mu.Unlock()

	if wait > 0 {
		c.timeProvider.Sleep(wait)
	}
}
