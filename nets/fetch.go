package nets

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/turing/logs"
)

// Fetch downloads a document, returning its body and content type.
type Fetch func(ctx context.Context, url string) (body []byte, contentType string, err error)

const maxFetchSize = 16 << 20

func (Module) Fetch(
	client HTTPClient,
	logger logs.Logger,
) Fetch {
	return func(ctx context.Context, url string) ([]byte, string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, "", fmt.Errorf("fetch %s: %s", url, resp.Status)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
		if err != nil {
			return nil, "", err
		}
		logger.InfoContext(ctx, "fetched",
			"url", url,
			"bytes", len(body),
		)
		return body, resp.Header.Get("Content-Type"), nil
	}
}
