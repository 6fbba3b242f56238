package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func accessibilityRouter(t *testing.T, store Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(store, validator.New())
	router.POST("/api/accessibility", handler.HandleAccessibility)
	return router
}

func postAccessibility(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/accessibility", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAccessibilitySlowerSpeechAcknowledges(t *testing.T) {
	router := accessibilityRouter(t, NewMemoryStore(time.Hour))

	rec := postAccessibility(t, router, AccessibilityRequest{SessionID: "sess-1", Action: ActionSlowerSpeech})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp AccessibilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "I will speak slower." {
		t.Fatalf("message: got %q", resp.Message)
	}
}

func TestAccessibilityRepeatsLastAnswer(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	session := NewSession("sess-1", time.Now())
	session.LastResponse = json.RawMessage(`{"intent":"account_info","session_id":"sess-1"}`)
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	router := accessibilityRouter(t, store)

	rec := postAccessibility(t, router, AccessibilityRequest{SessionID: "sess-1", Action: ActionRepeatLastAnswer})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp AccessibilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Here is the last message again." {
		t.Fatalf("message: got %q", resp.Message)
	}
	if resp.Data["intent"] != "account_info" {
		t.Fatalf("repeated payload missing intent: %v", resp.Data)
	}
}

func TestAccessibilityRepeatWithNoHistory(t *testing.T) {
	router := accessibilityRouter(t, NewMemoryStore(time.Hour))

	rec := postAccessibility(t, router, AccessibilityRequest{SessionID: "sess-new", Action: ActionRepeatLastAnswer})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp AccessibilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "There is no previous message to repeat." {
		t.Fatalf("message: got %q", resp.Message)
	}
}

func TestAccessibilityRejectsUnknownActions(t *testing.T) {
	router := accessibilityRouter(t, NewMemoryStore(time.Hour))

	rec := postAccessibility(t, router, AccessibilityRequest{SessionID: "sess-1", Action: "shout_louder"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Invalid accessibility action")) {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestAccessibilityRequiresSessionAndAction(t *testing.T) {
	router := accessibilityRouter(t, NewMemoryStore(time.Hour))

	rec := postAccessibility(t, router, map[string]string{"action": ActionSlowerSpeech})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing session id: got %d, want 400", rec.Code)
	}
}

func TestModuleServesAccessibilityWithoutTrailingSlash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.RedirectTrailingSlash = false

	module := NewModule(sessionConfig{ttl: time.Hour}, validator.New(), logger.New("development"))
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine, API: engine.Group("/api")})

	rec := postAccessibility(t, engine, AccessibilityRequest{SessionID: "sess-1", Action: ActionSlowerSpeech})
	if rec.Code != http.StatusOK {
		t.Fatalf("exact path must be served without a redirect, got %d", rec.Code)
	}
}
