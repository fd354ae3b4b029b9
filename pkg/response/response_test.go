package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"json-error-responder/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Message != response.MessageSuccess {
			t.Errorf("expected success message, got %q", resp.Message)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Err", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Err(c, response.ErrBody{Status: http.StatusNotFound, Message: "gone"})

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if !c.IsAborted() {
			t.Errorf("expected context to be aborted")
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if got["message"] != "gone" {
			t.Errorf("expected message 'gone', got %v", got["message"])
		}
		// Empty optional attributes must not serialize.
		for _, k := range []string{"code", "name", "type", "stack"} {
			if _, present := got[k]; present {
				t.Errorf("field %q must be omitted when empty", k)
			}
		}
	})

	t.Run("Err With Optionals", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Err(c, response.ErrBody{
			Status:  http.StatusBadRequest,
			Message: "bad input",
			Code:    42,
			Name:    "ValidationError",
			Type:    "field",
		})

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if got["code"] != float64(42) || got["name"] != "ValidationError" || got["type"] != "field" {
			t.Errorf("unexpected body: %v", got)
		}
	})
}
