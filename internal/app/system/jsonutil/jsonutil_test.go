package jsonutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "200 OK with data",
			status:     http.StatusOK,
			data:       map[string]string{"message": "hello"},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"hello"}`,
		},
		{
			name:       "500 with data",
			status:     http.StatusInternalServerError,
			data:       map[string]string{"error": "boom"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"boom"}`,
		},
		{
			name:       "nil data",
			status:     http.StatusOK,
			data:       nil,
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.status, tt.data)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			body := strings.TrimSpace(rec.Body.String())
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, http.StatusBadRequest, "Invalid email format")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}
	if got["message"] != "Invalid email format" {
		t.Errorf("message = %q, want %q", got["message"], "Invalid email format")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(http.ResponseWriter, string)
		wantStatus int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"NotFound", NotFound, http.StatusNotFound},
		{"InternalError", InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "something went wrong")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var got map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("json unmarshal error: %v", err)
			}
			if got["error"] != "something went wrong" {
				t.Errorf("error = %q, want %q", got["error"], "something went wrong")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	type inquiry struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	body := bytes.NewBufferString(`{"name":"Asha Nair","email":"asha@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)

	var got inquiry
	if err := Decode(req, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Name != "Asha Nair" || got.Email != "asha@example.com" {
		t.Errorf("Decode() = %+v, want decoded inquiry", got)
	}

	bad := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	if err := Decode(bad, &got); err == nil {
		t.Error("Decode() with malformed body should return error")
	}
}
