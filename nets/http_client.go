package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

const FetchTimeout = time.Minute

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Timeout: FetchTimeout,
		Transport: &http.Transport{
			// proxying is decided per address by the dialer
			Proxy:               nil,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
