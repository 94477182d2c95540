package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"perflog-analytics/internal/shared/svcerrors"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	mediaTypeJSON = "application/json"
	mediaTypeYAML = "application/yaml"
)

// responseFormat picks json or yaml from ?format=, then from the Accept header.
func responseFormat(r *http.Request) (string, *svcerrors.ServiceError) {
	if format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))); format != "" {
		switch format {
		case formatJSON, formatYAML:
			return format, nil
		default:
			return "", errUnsupportedFormat(format)
		}
	}
	acceptHeader := accept(r)
	if strings.Contains(acceptHeader, "yaml") && !strings.Contains(acceptHeader, mediaTypeJSON) {
		return formatYAML, nil
	}
	return formatJSON, nil
}

// writeResponse renders v in the requested format. YAML keys are the JSON field names.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, v any) error {
	format, svcErr := responseFormat(r)
	if svcErr != nil {
		return svcErr
	}

	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	mediaType := mediaTypeJSON
	if format == formatYAML {
		if body, err = jsonToYAML(body); err != nil {
			return err
		}
		mediaType = mediaTypeYAML
	}

	w.Header().Set("Content-Type", mediaType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
	return nil
}

// jsonToYAML re-encodes a JSON document as block-style YAML, keeping key order.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)
	return yaml.Marshal(&node)
}

func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}
