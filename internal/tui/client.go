package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"Plox/internal/server"
)

type sourceRequest struct {
	Source string `json:"source"`
}

// parseSource performs the HTTP call to the server and returns the rendered
// tree followed by any warnings the server reported.
func parseSource(addr, source string) (string, error) {
	reqBody, err := json.Marshal(sourceRequest{Source: source})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(addr, "/") + "/parse"
	resp, err := http.Post(url, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var er server.ErrorResponse
		if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
			return "", fmt.Errorf("%s", er.Error)
		}
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
	}

	var pr server.ParseResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return formatParse(pr), nil
}

func formatParse(pr server.ParseResponse) string {
	var sb strings.Builder
	sb.WriteString(pr.Tree)
	for _, d := range pr.Diagnostics {
		sb.WriteString("\n" + warnStyle.Render("warning: "+d))
	}
	if pr.Trailing > 0 {
		sb.WriteString("\n" + warnStyle.Render(fmt.Sprintf("warning: %d token(s) after expression ignored", pr.Trailing)))
	}
	return sb.String()
}
