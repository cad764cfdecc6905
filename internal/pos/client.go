// Package pos is a client for the ready2order point-of-sale REST API.
package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/config"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/breaker"
	"github.com/TemirB/catalog-sync/internal/pkg/retry"
)

const api = "pos"

// StatusError is an unexpected HTTP answer.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Temporary reports whether the request may succeed when repeated.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type RemoteObserver interface {
	ObserveRemote(api, op string, ms float64, ok bool)
}

type Client struct {
	baseURL   string
	token     string
	pageLimit int

	http     *http.Client
	policy   config.Retry
	breaker  *breaker.Breaker
	logger   *zap.Logger
	observer RemoteObserver
}

// NewClient expects hc to carry the rate limiting transport.
func NewClient(cfg config.POS, hc *http.Client, policy config.Retry, brk *breaker.Breaker, logger *zap.Logger, obs RemoteObserver) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		token:     cfg.Token,
		pageLimit: cfg.PageLimit,
		http:      hc,
		policy:    policy,
		breaker:   brk,
		logger:    logger,
		observer:  obs,
	}
}

func (c *Client) ListGroups(ctx context.Context, page int) ([]*domain.Group, error) {
	var dtos []groupDTO
	if err := c.do(ctx, "productgroups.list", http.MethodGet, "/productgroups", c.pageQuery(page, ""), nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]*domain.Group, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, groupFromDTO(d))
	}
	return out, nil
}

// ListItems lists one page of products; name filters by product name when
// not empty.
func (c *Client) ListItems(ctx context.Context, page int, name string) ([]*domain.Item, error) {
	var dtos []itemDTO
	if err := c.do(ctx, "products.list", http.MethodGet, "/products", c.pageQuery(page, name), nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]*domain.Item, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, itemFromDTO(d))
	}
	return out, nil
}

func (c *Client) CreateItem(ctx context.Context, it domain.UnsavedItem) (*domain.Item, error) {
	var d itemDTO
	if err := c.do(ctx, "products.create", http.MethodPut, "/products", nil, itemToDTO(it), &d); err != nil {
		return nil, err
	}
	return itemFromDTO(d), nil
}

func (c *Client) UpdateItem(ctx context.Context, id int, it domain.UnsavedItem) (*domain.Item, error) {
	var d itemDTO
	if err := c.do(ctx, "products.update", http.MethodPost, "/products/"+strconv.Itoa(id), nil, itemToDTO(it), &d); err != nil {
		return nil, err
	}
	return itemFromDTO(d), nil
}

func (c *Client) DeleteItem(ctx context.Context, id int) error {
	return c.do(ctx, "products.delete", http.MethodDelete, "/products/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) CreateGroup(ctx context.Context, g domain.UnsavedGroup) (*domain.Group, error) {
	var d groupDTO
	if err := c.do(ctx, "productgroups.create", http.MethodPut, "/productgroups", nil, groupToDTO(g), &d); err != nil {
		return nil, err
	}
	return groupFromDTO(d), nil
}

func (c *Client) UpdateGroup(ctx context.Context, id int, g domain.UnsavedGroup) (*domain.Group, error) {
	var d groupDTO
	if err := c.do(ctx, "productgroups.update", http.MethodPost, "/productgroups/"+strconv.Itoa(id), nil, groupToDTO(g), &d); err != nil {
		return nil, err
	}
	return groupFromDTO(d), nil
}

func (c *Client) DeleteGroup(ctx context.Context, id int) error {
	return c.do(ctx, "productgroups.delete", http.MethodDelete, "/productgroups/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) pageQuery(page int, name string) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(c.pageLimit))
	if name != "" {
		q.Set("name", name)
	}
	return q
}

// do runs one API call behind the breaker with retries. Caller errors
// (validation, not found, other 4xx) are neither retried nor counted
// against the breaker.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("pos %s: encode: %w", op, err)
		}
		body = b
	}

	start := time.Now()
	err := retry.Do(ctx, c.policy, func() error {
		err := c.breaker.Execute(func() error {
			return c.roundTrip(ctx, op, method, path, query, body, out)
		}, isCallerError)
		if errors.Is(err, breaker.ErrOpenState) || isCallerError(err) {
			return retry.Permanent(err)
		}
		return err
	})
	ms := float64(time.Since(start).Microseconds()) / 1000.0
	c.observer.ObserveRemote(api, op, ms, err == nil)

	if err != nil {
		c.logger.Warn("pos call failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.Float64("ms", ms),
			zap.Error(err),
		)
		return fmt.Errorf("pos %s: %w", op, err)
	}
	c.logger.Debug("pos call", zap.String("op", op), zap.Float64("ms", ms))
	return nil
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, query url.Values, body []byte, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return retry.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		var ae apiError
		msg := string(raw)
		if json.Unmarshal(raw, &ae) == nil && ae.Msg != "" {
			msg = ae.Msg
		}
		return &domain.ValidationError{Operation: op, UserErrors: []domain.UserError{{Message: msg}}}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return retry.Permanent(fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

func isCallerError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && !se.Temporary()
}
