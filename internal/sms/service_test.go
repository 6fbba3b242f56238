package sms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankwise_support_backend/platform/logger"
)

type smsConfig struct {
	enabled    bool
	accountSID string
	authToken  string
	fromNumber string
}

func (c smsConfig) GetSMSEnabled() bool         { return c.enabled }
func (c smsConfig) GetTwilioAccountSID() string { return c.accountSID }
func (c smsConfig) GetTwilioAuthToken() string  { return c.authToken }
func (c smsConfig) GetTwilioFromNumber() string { return c.fromNumber }

// failingSender rejects every delivery.
type failingSender struct{}

func (failingSender) Send(context.Context, string, string) (SendResult, error) {
	return SendResult{}, errors.New("carrier timeout")
}

func TestComplaintConfirmationTemplateWording(t *testing.T) {
	got := ComplaintConfirmation("COMPLAINT12345", "Priya Sharma")
	want := "Dear Priya Sharma, your complaint has been registered with ticket ID: COMPLAINT12345. We will resolve it within 7-10 business days. Thank you for banking with us."
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestDisputeTemplatesFormatAmountAndStatus(t *testing.T) {
	got := DisputeConfirmation("DISPUTE12345", "Rohan Verma", 2499.5)
	want := "Dear Rohan Verma, your dispute for ₹2499.5 has been registered with ticket ID: DISPUTE12345. We will investigate and respond within 15-30 business days."
	if got != want {
		t.Fatalf("confirmation: got %q", got)
	}

	whole := DisputeConfirmation("DISPUTE12345", "Rohan Verma", 5000)
	if !strings.Contains(whole, "₹5000 ") {
		t.Fatalf("whole amounts must not carry decimals: %q", whole)
	}

	resolved := DisputeResolution("DISPUTE12345", "Rohan Verma", "APPROVED")
	if !strings.Contains(resolved, "has been approved.") {
		t.Fatalf("resolution must lowercase the status: %q", resolved)
	}
}

func TestTransactionAlertTemplateWording(t *testing.T) {
	got := TransactionAlert("Priya Sharma", 1500, "debited")
	want := "Dear Priya Sharma, your account has been debited with ₹1500. If this wasn't authorized by you, please contact us immediately."
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestDisabledServiceUsesMockSender(t *testing.T) {
	svc := NewService(smsConfig{enabled: false}, logger.New("development"))

	if svc.Enabled() {
		t.Fatal("service must report disabled")
	}

	res, err := svc.Send(context.Background(), "+919876543210", "hello")
	if err != nil {
		t.Fatalf("mock send failed: %v", err)
	}
	if res.MessageSID != "mock_sms_id_+919876543210" {
		t.Fatalf("mock sid: got %q", res.MessageSID)
	}
	if res.Status != "mock_delivered" {
		t.Fatalf("mock status: got %q", res.Status)
	}
}

func TestSendNormalizesNumbersBeforeDelivery(t *testing.T) {
	svc := NewService(smsConfig{enabled: false}, logger.New("development"))

	// A bare national number is normalized to E.164 for the default region.
	res, err := svc.Send(context.Background(), "98765 43210", "hello")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if res.To != "+919876543210" {
		t.Fatalf("number not normalized: %q", res.To)
	}
}

func TestSendBulkSucceedsWhenAnyDeliverySucceeds(t *testing.T) {
	svc := NewService(smsConfig{enabled: false}, logger.New("development"))

	result := svc.SendBulk(context.Background(), []string{"+919876543210", "+919876543211"}, "hello")
	if !result.Success {
		t.Fatal("bulk send with deliveries must succeed")
	}
	if result.TotalNumbers != 2 || len(result.SuccessfulSends) != 2 || len(result.FailedSends) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.SuccessfulSends[0].MessageSID == "" {
		t.Fatal("successful sends must carry the message sid")
	}
}

func TestSendBulkFailsWhenEveryDeliveryFails(t *testing.T) {
	svc := &Service{sender: failingSender{}, log: logger.New("development")}

	result := svc.SendBulk(context.Background(), []string{"+919876543210", "+919876543211"}, "hello")
	if result.Success {
		t.Fatal("bulk send without a single delivery must fail")
	}
	if len(result.FailedSends) != 2 {
		t.Fatalf("failed sends: got %d, want 2", len(result.FailedSends))
	}
	if result.FailedSends[0].Error != "carrier timeout" {
		t.Fatalf("failure detail lost: %q", result.FailedSends[0].Error)
	}
}

func TestTwilioClientPostsFormAndParsesResponse(t *testing.T) {
	var gotPath, gotTo, gotFrom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTo = r.PostForm.Get("To")
		gotFrom = r.PostForm.Get("From")
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("request must carry basic auth")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer server.Close()

	client := NewTwilioClient(smsConfig{
		enabled:    true,
		accountSID: "AC42",
		authToken:  "token",
		fromNumber: "+10000000000",
	}, logger.New("development"))
	client.baseURL = server.URL

	res, err := client.Send(context.Background(), "919876543210", "hello")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/AC42/Messages.json" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotTo != "+919876543210" {
		t.Fatalf("bare numbers must gain a plus prefix, got %q", gotTo)
	}
	if gotFrom != "+10000000000" {
		t.Fatalf("from: got %q", gotFrom)
	}
	if res.MessageSID != "SM123" || res.Status != "queued" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestTwilioClientSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' phone number"}`))
	}))
	defer server.Close()

	client := NewTwilioClient(smsConfig{accountSID: "AC42"}, logger.New("development"))
	client.baseURL = server.URL

	_, err := client.Send(context.Background(), "+1", "hello")
	if err == nil {
		t.Fatal("expected an error for a rejected message")
	}
	if !strings.Contains(err.Error(), "21211") {
		t.Fatalf("error must carry the twilio code: %v", err)
	}
}
