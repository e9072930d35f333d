// Package template renders helper file content from configuration data.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dosanma1/sysgen/internal/directive"
)

// Engine renders text/template sources with a fixed set of functions.
type Engine struct {
	funcMap template.FuncMap
}

// NewEngine creates a new template engine.
func NewEngine() *Engine {
	return &Engine{
		funcMap: template.FuncMap{
			"upper":   strings.ToUpper,
			"lower":   strings.ToLower,
			"replace": strings.ReplaceAll,
			"join":    join,
			"quote":   directive.Quote,
			"default": defaultValue,
		},
	}
}

// Render renders text with data. Referencing a missing map key is an error.
func (e *Engine) Render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcMap).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// join accepts the []any produced by configuration sequences as well as
// []string.
func join(sep string, items any) (string, error) {
	switch v := items.(type) {
	case []string:
		return strings.Join(v, sep), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), nil
	default:
		return "", fmt.Errorf("join: unsupported value of type %T", items)
	}
}

func defaultValue(def, value any) any {
	if value == nil {
		return def
	}
	if s, ok := value.(string); ok && s == "" {
		return def
	}
	return value
}
