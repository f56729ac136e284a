package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Client is the shared REST transport for the stores. One fixed
// timeout, no automatic retries; a circuit breaker fails calls fast
// while the backend is down instead of letting every caller wait out
// the timeout.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "velleta-api",
		Timeout: 30 * time.Second,
		IsSuccessful: func(err error) bool {
			// Not-found and conflict responses reached the server fine;
			// only transport-level failures should trip the breaker.
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(log.Fields{"breaker": name, "from": from.String(), "to": to.String()}).Warn("Circuit breaker state changed")
		},
	})

	return &Client{http: httpClient, breaker: breaker}
}

// SetAuthToken attaches the bearer credential to every outgoing
// request. The stores only consume the token; issuing and refreshing it
// is the auth collaborator's job.
func (c *Client) SetAuthToken(token string) {
	c.http.SetAuthToken(token)
}

func (c *Client) get(ctx context.Context, path string, out interface{}, queryParams map[string]string) error {
	return c.execute(ctx, http.MethodGet, path, nil, out, queryParams)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.execute(ctx, http.MethodPost, path, body, out, nil)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.execute(ctx, http.MethodPut, path, body, out, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.execute(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) execute(ctx context.Context, method, path string, body, out interface{}, queryParams map[string]string) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		req := c.http.R().SetContext(ctx)
		if body != nil {
			req.SetBody(body)
		}
		if out != nil {
			req.SetResult(out)
		}
		if queryParams != nil {
			req.SetQueryParams(queryParams)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrRemote, method, path, err)
		}
		if resp.IsError() {
			switch resp.StatusCode() {
			case http.StatusNotFound:
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			case http.StatusConflict:
				return nil, fmt.Errorf("%w: %s", ErrConflict, path)
			default:
				return nil, fmt.Errorf("%w: %s %s returned %s", ErrRemote, method, path, resp.Status())
			}
		}
		return nil, nil
	})
	return err
}
