package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Plox/internal/token"
)

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestTokenize(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp := post(t, srv, "/tokenize", `{"source": "1 >= 2 @"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Errorf("Expected a request ID header")
	}

	var body TokenizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	expected := []token.TokenType{token.INTEGER, token.GREATER_EQUAL, token.INTEGER, token.EOF}
	if len(body.Tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(body.Tokens))
	}
	for i, typ := range expected {
		if body.Tokens[i].Type != typ {
			t.Errorf("Token %d: expected %s, got %s", i, typ, body.Tokens[i].Type)
		}
	}
	if len(body.Diagnostics) != 1 || !strings.Contains(body.Diagnostics[0], "unknown symbol") {
		t.Errorf("Expected one unknown symbol diagnostic, got %v", body.Diagnostics)
	}
}

func TestParse(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp := post(t, srv, "/parse", `{"source": "-(1 + 2)"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var body ParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if body.Nodes != 5 {
		t.Errorf("Expected 5 nodes, got %d", body.Nodes)
	}
	if body.Invalid {
		t.Errorf("Expected a valid tree")
	}
	if body.Sexpr != "Unary(MINUS, Group(Binary(Literal(1), PLUS, Literal(2))))" {
		t.Errorf("Unexpected sexpr: %s", body.Sexpr)
	}
	if lines := strings.Split(body.Tree, "\n"); len(lines) != body.Nodes {
		t.Errorf("Expected %d tree lines, got %d:\n%s", body.Nodes, len(lines), body.Tree)
	}
}

func TestParseInvalid(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp := post(t, srv, "/parse", `{"source": "1 +"}`)
	defer resp.Body.Close()

	var body ParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Invalid {
		t.Errorf("Expected invalid tree for %q", "1 +")
	}
}

func TestErrors(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"lex error", "/parse", `{"source": "\"open"}`, http.StatusUnprocessableEntity},
		{"lex error on tokenize", "/tokenize", `{"source": "1."}`, http.StatusUnprocessableEntity},
		{"bad body", "/parse", `{"source":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.path, tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}

	resp, err := http.Get(srv.URL + "/parse")
	if err != nil {
		t.Fatalf("GET /parse failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestLexErrorPosition(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	tests := []struct {
		source string
		line   int
		column int
		kind   string
	}{
		{`1 +\n  x_1`, 2, 2, "invalid identifier"},
		{`0123`, 1, 0, "invalid number literal"},
		{`_1abc`, 1, 0, "invalid identifier"},
		{`\"unterminated`, 1, 0, "unterminated string"},
	}

	for _, tt := range tests {
		resp := post(t, srv, "/parse", `{"source": "`+tt.source+`"}`)
		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("Failed to read response: %v", err)
		}

		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", tt.source, resp.StatusCode)
		}
		if !strings.Contains(string(raw), fmt.Sprintf(`"line":%d`, tt.line)) ||
			!strings.Contains(string(raw), fmt.Sprintf(`"column":%d`, tt.column)) {
			t.Errorf("%s: expected line %d and column %d in body, got %s", tt.source, tt.line, tt.column, raw)
		}

		var body ErrorResponse
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !strings.Contains(body.Error, tt.kind) {
			t.Errorf("%s: expected %s error, got %q", tt.source, tt.kind, body.Error)
		}
	}
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "localhost:8080", false},
		{"http://localhost:8080", "localhost:8080", false},
		{"http://localhost:8080/", "localhost:8080", false},
		{":9000", ":9000", false},
		{"https://localhost:8443", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		got, err := ListenAddr(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ListenAddr(%q): expected error=%v, got %v", tt.in, tt.wantErr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ListenAddr(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
