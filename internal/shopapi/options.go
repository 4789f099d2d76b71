package shopapi

import (
	"net/http"
	"time"
)

type Options struct {
	BaseURL      string        `validate:"required,url"`
	Timeout      time.Duration `default:"10s"`
	RetryMax     int           `default:"2"`
	RetryWaitMin time.Duration `default:"100ms"`
	RetryWaitMax time.Duration `default:"2s"`
	UserAgent    string        `default:"music-storefront"`
	// HTTPClient replaces the transport used for every call when set.
	HTTPClient *http.Client
}
