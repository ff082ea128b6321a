package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// PostJSON envia um corpo JSON já serializado e devolve o corpo da resposta
func PostJSON(ctx context.Context, client *http.Client, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return data, fmt.Errorf("error on request status: %s", resp.Status)
	}

	return data, nil
}
