package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full request builder.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetResult(&out).Get("/api/version")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
