package nets

import (
	"net/http"
	"time"

	"github.com/reusee/turing/configs"
)

type HTTPClient = *http.Client

type FetchTimeout time.Duration

var _ configs.Configurable = FetchTimeout(0)

func (FetchTimeout) ConfigExpr() string {
	return "fetch_timeout"
}

const defaultFetchTimeout = 30 * time.Second

func (Module) FetchTimeout(
	loader configs.Loader,
) FetchTimeout {
	if str := configs.First[string](loader, FetchTimeout(0).ConfigExpr()); str != "" {
		if d, err := time.ParseDuration(str); err == nil {
			return FetchTimeout(d)
		}
	}
	return FetchTimeout(defaultFetchTimeout)
}

func (Module) HTTPClient(
	dialer Dialer,
	timeout FetchTimeout,
) HTTPClient {
	return &http.Client{
		Timeout: time.Duration(timeout),
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
	}
}
