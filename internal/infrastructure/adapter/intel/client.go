package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	intelport "github.com/fintomate/receipt-matcher/internal/domain/port/intel"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/config"
)

// Client implements the query suggestion and message classification ports
// against an OpenAI-compatible chat completions endpoint. Both calls ask
// for a strict JSON object response and report token usage back to the
// caller for accounting.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates an intel service client
func NewClient(cfg config.IntelConfig, logger coreport.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

const suggestSystemPrompt = `You generate email search queries that help find the invoice or receipt for a bank transaction.
Return a JSON object: {"queries": ["...", "..."]} ordered from most to least promising.
Queries must be short keyword expressions, no operators other than quoted phrases.`

const classifySystemPrompt = `You decide whether an email relates to an invoice for a given bank transaction.
Return a JSON object:
{"bodyIsInvoice": bool, "confidence": number between 0 and 1,
 "invoiceLinks": [{"url": "...", "anchorText": "..."}]}.
bodyIsInvoice is true only when the email body itself contains the full invoice or receipt.
invoiceLinks lists links in the body that lead to an invoice download, empty when there are none.`

// SuggestQueries asks for ranked mailbox search strings
func (c *Client) SuggestQueries(ctx context.Context, req intelport.SuggestRequest) ([]string, entity.IntelUsage, error) {
	user := fmt.Sprintf(
		"Transaction: %q, amount %d minor units %s, booked %s, partner %q. Suggest up to %d queries.",
		req.Transaction.Name, req.Transaction.AmountMinor, req.Transaction.Currency,
		req.Transaction.BookingDate, req.Transaction.PartnerName, req.MaxQueries,
	)

	var parsed struct {
		Queries []string `json:"queries"`
	}
	usage, err := c.complete(ctx, suggestSystemPrompt, user, &parsed)
	if err != nil {
		return nil, usage, err
	}

	if len(parsed.Queries) > req.MaxQueries {
		parsed.Queries = parsed.Queries[:req.MaxQueries]
	}
	return parsed.Queries, usage, nil
}

// ClassifyMessage submits a fetched message for invoice classification
func (c *Client) ClassifyMessage(ctx context.Context, req intelport.ClassifyRequest) (*intelport.Classification, entity.IntelUsage, error) {
	body := req.BodyText
	if body == "" {
		body = req.BodyHTML
	}
	// Keep the prompt bounded; the decisive content is at the top
	if len(body) > 8000 {
		body = body[:8000]
	}

	user := fmt.Sprintf(
		"Transaction: %q, amount %d minor units %s, booked %s, partner %q.\nSubject: %s\nSender: %s\nBody:\n%s",
		req.Transaction.Name, req.Transaction.AmountMinor, req.Transaction.Currency,
		req.Transaction.BookingDate, req.Transaction.PartnerName,
		req.Subject, req.Sender, body,
	)

	var parsed struct {
		BodyIsInvoice bool    `json:"bodyIsInvoice"`
		Confidence    float64 `json:"confidence"`
		InvoiceLinks  []struct {
			URL        string `json:"url"`
			AnchorText string `json:"anchorText"`
		} `json:"invoiceLinks"`
	}
	usage, err := c.complete(ctx, classifySystemPrompt, user, &parsed)
	if err != nil {
		return nil, usage, err
	}

	classification := &intelport.Classification{
		BodyIsInvoice: parsed.BodyIsInvoice,
		Confidence:    parsed.Confidence,
	}
	for _, link := range parsed.InvoiceLinks {
		if link.URL == "" {
			continue
		}
		classification.InvoiceLinks = append(classification.InvoiceLinks, entity.InvoiceLink{
			URL:        link.URL,
			AnchorText: link.AnchorText,
		})
	}
	return classification, usage, nil
}

// complete runs one chat completion and decodes the JSON content into out
func (c *Client) complete(ctx context.Context, system, user string, out any) (entity.IntelUsage, error) {
	usage := entity.IntelUsage{Calls: 1}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return usage, fmt.Errorf("failed to encode intel request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return usage, fmt.Errorf("failed to build intel request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return usage, fmt.Errorf("intel request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return usage, fmt.Errorf("intel service returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return usage, fmt.Errorf("failed to decode intel response: %w", err)
	}
	usage.PromptTokens = chatResp.Usage.PromptTokens
	usage.CompletionTokens = chatResp.Usage.CompletionTokens

	if len(chatResp.Choices) == 0 {
		return usage, fmt.Errorf("intel service returned no choices")
	}
	content := chatResp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		c.logger.Warn("Intel service returned unparsable content", map[string]any{
			"error": err.Error(),
		})
		return usage, fmt.Errorf("failed to parse intel content: %w", err)
	}
	return usage, nil
}
