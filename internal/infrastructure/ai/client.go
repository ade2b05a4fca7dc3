package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoAPIKey el proveedor no tiene clave configurada.
var ErrNoAPIKey = errors.New("AI: API key no configurada")

const maxResponseBytes = 256 * 1024

func newHTTPClient() *http.Client {
	// Timeout de red; el use case además impone un context.WithTimeout.
	return &http.Client{Timeout: 30 * time.Second}
}

// postJSON envía payload y devuelve el cuerpo y el status HTTP.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload interface{}) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, 0, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	return raw, resp.StatusCode, nil
}
