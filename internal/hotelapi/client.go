package hotelapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/pgk/httpclient"
	"github.com/ibeloyar/hotelportal/pgk/session"
)

const (
	pathUser              = "/api/v1/user"
	pathUserUpdate        = "/api/v1/user/"
	pathUserLogin         = "/api/v1/user/login"
	pathUserSignup        = "/api/v1/user/signup"
	pathUserForgot        = "/api/v1/user/forgot"
	pathUserCheck         = "/api/v1/user/check"
	pathVerifyEmail       = "/api/v1/verify/email"
	pathGenerateEmailCode = "/api/v1/verify/generateEmailCode"
	pathOrders            = "/api/v1/orders"
	pathRooms             = "/api/v1/rooms"
	pathNews              = "/api/v1/home/news"
	pathCulinary          = "/api/v1/home/culinary"
)

var ErrDecode = errors.New("hotel service returned a malformed response")

type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL    string
	HTTPClient Doer
}

type Client struct {
	baseURL string
	doer    Doer
	session session.Session
}

func New(config Config, sess session.Session) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = httpclient.New(httpclient.Config{})
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		doer:    config.HTTPClient,
		session: sess,
	}
}

func (c *Client) Session() session.Session {
	return c.session
}

// call sends one request and decodes the envelope into Result[T].
// Errors are returned only for transport and decoding failures.
func call[T any](ctx context.Context, c *Client, method, path string, body any, authorized bool) (Result[T], error) {
	req, err := httpclient.NewJSONRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Result[T]{}, err
	}

	if authorized {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		return Result[T]{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result[T]{}, fmt.Errorf("%s %s: failed to read response body: %w", method, path, err)
	}

	var envelope model.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Result[T]{}, fmt.Errorf("%w: %s %s (%d): %v", ErrDecode, method, path, resp.StatusCode, err)
	}

	code := envelope.StatusCode
	if code == 0 {
		code = resp.StatusCode
	}

	if envelope.Token != "" {
		c.session.SetToken(envelope.Token)
	}

	if IsNormalized(code) {
		return Result[T]{
			Status:     envelope.Status,
			StatusCode: code,
			Message:    envelope.Message,
		}, nil
	}

	result := Result[T]{
		Status:     envelope.Status,
		StatusCode: code,
		Message:    envelope.Message,
		Token:      envelope.Token,
	}

	if len(envelope.Result) > 0 && string(envelope.Result) != "null" {
		var payload T
		if err := json.Unmarshal(envelope.Result, &payload); err != nil {
			return Result[T]{}, fmt.Errorf("%w: %s %s result: %v", ErrDecode, method, path, err)
		}
		result.Result = &payload
	}

	return result, nil
}

// withID appends an optional path segment; an empty id selects the collection.
func withID(path, id string) string {
	return path + "/" + url.PathEscape(id)
}
