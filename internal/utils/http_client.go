package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a resty.Client preconfigured for the users API: JSON accept
// header, base URL, timeout and a fresh trace id on every request.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client. A zero timeout means no
// client-side timeout.
//
//	client := utils.NewHTTPClient("http://localhost:8000", 15*time.Second)
//	resp, err := client.R().Get("/users/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(TraceIDHeader) == "" {
				req.SetHeader(TraceIDHeader, uuid.NewString())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
