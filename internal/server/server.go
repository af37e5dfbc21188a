package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"Plox/internal/ast"
	"Plox/internal/frontend"
	"Plox/internal/lexer"
	l "Plox/internal/logger"
	"Plox/internal/token"
)

type sourceRequest struct {
	Source string `json:"source"`
}

type TokenizeResponse struct {
	Tokens      []token.Token `json:"tokens"`
	Diagnostics []string      `json:"diagnostics"`
}

type ParseResponse struct {
	Tree        string   `json:"tree"`
	Sexpr       string   `json:"sexpr"`
	Nodes       int      `json:"nodes"`
	Invalid     bool     `json:"invalid"`
	Diagnostics []string `json:"diagnostics"`
	Trailing    int      `json:"trailing"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func NewHandler() http.Handler {
	mux := http.NewServeMux()

	// Health & readiness
	mux.HandleFunc("/health", health)

	// POST /tokenize -> token stream and unknown-symbol diagnostics
	mux.HandleFunc("/tokenize", withRequestID(tokenizeHandler))

	// POST /parse -> rendered expression tree
	mux.HandleFunc("/parse", withRequestID(parseHandler))

	return mux
}

// ListenAddr turns a client address such as http://localhost:8080 into
// the host:port form ListenAndServe expects. https is refused since the
// server has no TLS setup.
func ListenAddr(addr string) (string, error) {
	if strings.HasPrefix(addr, "https://") {
		return "", fmt.Errorf("cannot serve %s: TLS is not supported", addr)
	}
	addr = strings.TrimRight(strings.TrimPrefix(addr, "http://"), "/")
	if addr == "" {
		return "", errors.New("empty listen address")
	}
	return addr, nil
}

func Start(addr string) error {
	logger := l.Get("server")

	addr, err := ListenAddr(addr)
	if err != nil {
		logger.Error("Invalid listen address: %v", err)
		return err
	}
	logger.Info("Listening on %s", addr)

	server := &http.Server{Addr: addr, Handler: NewHandler()}
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server stopped: %v", err)
		return err
	}
	return nil
}

// health returns 200 OK for liveness checks
func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, logger *l.Logger)

func withRequestID(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next(w, r, l.Get("server").WithSession(id))
	}
}

func tokenizeHandler(w http.ResponseWriter, r *http.Request, logger *l.Logger) {
	req, ok := decodeSource(w, r, logger)
	if !ok {
		return
	}

	lx := lexer.New(req.Source)
	tokens, err := lx.Tokenize()
	if err != nil {
		writeLexError(w, err, logger)
		return
	}

	logger.Debug("Tokenized %d tokens", len(tokens))
	writeJSON(w, http.StatusOK, TokenizeResponse{
		Tokens:      tokens,
		Diagnostics: diagnostics(lx.Diagnostics()),
	}, logger)
}

func parseHandler(w http.ResponseWriter, r *http.Request, logger *l.Logger) {
	req, ok := decodeSource(w, r, logger)
	if !ok {
		return
	}

	res, err := frontend.Run(req.Source)
	if err != nil {
		writeLexError(w, err, logger)
		return
	}

	logger.Debug("Parsed %d nodes", ast.Count(res.Tree))
	writeJSON(w, http.StatusOK, ParseResponse{
		Tree:        res.Rendered,
		Sexpr:       ast.Sexpr(res.Tree),
		Nodes:       ast.Count(res.Tree),
		Invalid:     !res.Valid(),
		Diagnostics: diagnostics(res.Diagnostics),
		Trailing:    len(res.Trailing),
	}, logger)
}

func decodeSource(w http.ResponseWriter, r *http.Request, logger *l.Logger) (sourceRequest, bool) {
	var req sourceRequest

	if r.Method != http.MethodPost {
		logger.Error("Invalid method used: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}

	return req, true
}

func writeLexError(w http.ResponseWriter, err error, logger *l.Logger) {
	logger.Warn("Rejected source: %v", err)

	resp := ErrorResponse{Error: err.Error()}
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		resp.Line = lexErr.Line
		resp.Column = lexErr.Column
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp, logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *l.Logger) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to marshal response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func diagnostics(diags []lexer.UnknownSymbol) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}
