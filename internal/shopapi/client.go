// Package shopapi is the transport to the remote shop API. It owns request
// construction, retries of idempotent reads and decoding of every response
// into an explicit Go type.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	defaults "github.com/mcuadros/go-defaults"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	retrying  *http.Client
	userAgent string
	logger    *zap.Logger
}

func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	defaults.SetDefaults(&opts)
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid shop api options: %w", err)
	}

	baseURL, err := url.Parse(strings.TrimRight(opts.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = httpClient
	retryClient.RetryMax = opts.RetryMax
	retryClient.RetryWaitMin = opts.RetryWaitMin
	retryClient.RetryWaitMax = opts.RetryWaitMax
	retryClient.CheckRetry = shouldRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = retryLogger{log: logger.Sugar()}

	return &Client{
		baseURL:   baseURL,
		http:      httpClient,
		retrying:  retryClient.StandardClient(),
		userAgent: opts.UserAgent,
		logger:    logger,
	}, nil
}

// Request describes one call. Token is the shop API bearer token, if any.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Token  string

	body        io.Reader
	contentType string
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Token: token}, out)
}

func (c *Client) Delete(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Token: token}, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, token string, out any) error {
	req, err := jsonRequest(http.MethodPost, path, body, token)
	if err != nil {
		return err
	}
	return c.Do(ctx, req, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, token string, out any) error {
	req, err := jsonRequest(http.MethodPatch, path, body, token)
	if err != nil {
		return err
	}
	return c.Do(ctx, req, out)
}

func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        path,
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, out)
}

func (c *Client) PostFile(ctx context.Context, path, field, filename string, content io.Reader, token string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        path,
		Token:       token,
		body:        &buf,
		contentType: writer.FormDataContentType(),
	}, out)
}

// Blob is a non-JSON body, such as an avatar image.
type Blob struct {
	ContentType string
	Data        []byte
}

func (c *Client) GetBlob(ctx context.Context, path string) (*Blob, error) {
	res, body, err := c.send(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}
	return &Blob{ContentType: res.Header.Get("Content-Type"), Data: body}, nil
}

func (c *Client) Do(ctx context.Context, req Request, out any) error {
	res, body, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || res.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Method: req.Method, Path: req.Path, Err: err}
	}
	return nil
}

func (c *Client) send(ctx context.Context, req Request) (*http.Response, []byte, error) {
	r, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	httpClient := c.http
	if req.Method == http.MethodGet {
		httpClient = c.retrying
	}

	res, err := httpClient.Do(r)
	if err != nil {
		return nil, nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	c.logger.Debug("shop api call",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", res.StatusCode),
		zap.String("request_id", r.Header.Get(requestIDHeader)),
	)

	if res.StatusCode >= http.StatusBadRequest {
		return res, body, &APIError{
			StatusCode: res.StatusCode,
			Method:     req.Method,
			Path:       req.Path,
			Detail:     parseDetail(body),
		}
	}
	return res, body, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := c.baseURL.Parse(strings.TrimLeft(req.Path, "/"))
	if err != nil {
		return nil, err
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	r, err := http.NewRequestWithContext(ctx, req.Method, u.String(), req.body)
	if err != nil {
		return nil, err
	}

	r.Header.Set("Accept", "application/json")
	r.Header.Set("User-Agent", c.userAgent)
	if requestID, ok := RequestIDFromContext(ctx); ok {
		r.Header.Set(requestIDHeader, requestID)
	} else {
		r.Header.Set(requestIDHeader, uuid.NewString())
	}
	if req.contentType != "" {
		r.Header.Set("Content-Type", req.contentType)
	}
	if req.Token != "" {
		r.Header.Set("Authorization", "Bearer "+req.Token)
	}
	return r, nil
}

func jsonRequest(method, path string, body any, token string) (Request, error) {
	req := Request{Method: method, Path: path, Token: token}
	if body == nil {
		return req, nil
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return req, err
	}
	req.body = buf
	req.contentType = "application/json"
	return req, nil
}

// shouldRetry retries transport failures and gateway errors only.
func shouldRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && errors.Is(urlErr.Err, context.Canceled) {
			return false, err
		}
		return true, nil
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout, nil
}

type retryLogger struct {
	log *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) { l.log.Errorw(msg, keysAndValues...) }
func (l retryLogger) Info(msg string, keysAndValues ...interface{})  { l.log.Debugw(msg, keysAndValues...) }
func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) { l.log.Debugw(msg, keysAndValues...) }
func (l retryLogger) Warn(msg string, keysAndValues ...interface{})  { l.log.Warnw(msg, keysAndValues...) }
