package pipeline

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"greenmenu/internal/menu"
)

func setupTestRouter(classifier ItemClassifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(identityNormalizer{}, classifier)
	handler := NewHandler(service, nil, nil)

	r.POST("/process-menu", handler.ProcessMenu)
	return r
}

func TestProcessMenuTextField(t *testing.T) {
	router := setupTestRouter(&keywordFake{veg: map[string]bool{"Грильовані овочі": true}})

	form := url.Values{}
	form.Set("text", "Стейк з яловичини 450\nГрильовані овочі 210")

	req := httptest.NewRequest(http.MethodPost, "/process-menu", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result menu.MenuProcessingResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not a MenuProcessingResult: %v", err)
	}

	if len(result.VegetarianItems) != 1 {
		t.Fatalf("expected 1 vegetarian item, got %d", len(result.VegetarianItems))
	}
	if result.TotalSum != 210 {
		t.Errorf("expected total 210, got %d", result.TotalSum)
	}
	if result.RequestID == "" {
		t.Error("expected a request id in the response")
	}
}

func TestProcessMenuNoFiles(t *testing.T) {
	router := setupTestRouter(&keywordFake{})

	req := httptest.NewRequest(http.MethodPost, "/process-menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestProcessMenuEmptyTextStillWellFormed(t *testing.T) {
	router := setupTestRouter(&keywordFake{})

	form := url.Values{}
	form.Set("text", "   \n  ")

	req := httptest.NewRequest(http.MethodPost, "/process-menu", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Whitespace-only text falls through to the file path and fails with
	// "no files uploaded"; the transport error is explicit, not a panic.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
