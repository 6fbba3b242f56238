package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
)

// Sender delivers one SMS. The Twilio client and the mock client both
// implement it.
type Sender interface {
	Send(ctx context.Context, to, body string) (SendResult, error)
}

// SendResult is the delivery outcome for one number.
type SendResult struct {
	MessageSID string
	To         string
	Status     string
}

// TwilioClient sends messages through the Twilio REST API.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

const twilioBaseURL = "https://api.twilio.com"

// NewTwilioClient builds a client from the SMS configuration.
func NewTwilioClient(cfg config.SMSConfig, log *logger.Logger) *TwilioClient {
	return &TwilioClient{
		accountSID: cfg.GetTwilioAccountSID(),
		authToken:  cfg.GetTwilioAuthToken(),
		fromNumber: cfg.GetTwilioFromNumber(),
		baseURL:    twilioBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

type twilioMessageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Send posts one message to the Twilio Messages endpoint.
func (c *TwilioClient) Send(ctx context.Context, to, body string) (SendResult, error) {
	if !strings.HasPrefix(to, "+") {
		to = "+" + to
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return SendResult{}, fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return SendResult{}, fmt.Errorf("read twilio response: %w", err)
	}

	var parsed twilioMessageResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return SendResult{}, fmt.Errorf("decode twilio response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SendResult{}, fmt.Errorf("twilio rejected message (code %d): %s", parsed.Code, parsed.Message)
	}

	return SendResult{MessageSID: parsed.SID, To: to, Status: parsed.Status}, nil
}

// MockClient logs what would have been sent and reports success. Used when
// Twilio is disabled by configuration.
type MockClient struct {
	log *logger.Logger
}

func NewMockClient(log *logger.Logger) *MockClient {
	return &MockClient{log: log}
}

func (c *MockClient) Send(_ context.Context, to, body string) (SendResult, error) {
	c.log.SMSEvent(to, true, "mock delivery: "+body)
	return SendResult{
		MessageSID: "mock_sms_id_" + to,
		To:         to,
		Status:     "mock_delivered",
	}, nil
}
