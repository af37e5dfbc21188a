package frontend

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"Plox/internal/token"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// FormatTokens renders a token stream for display or export.
func FormatTokens(tokens []token.Token, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode tokens: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(tokens)
		if err != nil {
			return "", fmt.Errorf("failed to encode tokens: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return tokenLines(tokens), nil
	}
}

func tokenLines(tokens []token.Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}

// FormatResult is the human-readable output shared by the CLI, the REPL
// and the HTTP API.
func FormatResult(res *Result, showTokens bool) string {
	var sb strings.Builder

	if showTokens {
		sb.WriteString(tokenLines(res.Tokens))
		sb.WriteString("\n\n")
	}

	sb.WriteString(res.Rendered)

	for _, diag := range res.Diagnostics {
		fmt.Fprintf(&sb, "\nwarning: %s", diag)
	}
	if len(res.Trailing) > 0 {
		fmt.Fprintf(&sb, "\nwarning: %d token(s) after expression ignored, starting at %s", len(res.Trailing), res.Trailing[0])
	}

	return sb.String()
}
