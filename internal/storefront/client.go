// Package storefront is a client for the Shopify-style GraphQL Admin API.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/config"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/breaker"
	"github.com/TemirB/catalog-sync/internal/pkg/paging"
	"github.com/TemirB/catalog-sync/internal/pkg/retry"
)

const api = "storefront"

// ErrThrottled is returned when the API reports THROTTLED after all retries.
var ErrThrottled = errors.New("storefront: throttled")

type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storefront: status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// QueryError holds top-level GraphQL errors other than throttling.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return "storefront: " + strings.Join(e.Messages, "; ")
}

// CreateStrategy decides what happens to the standalone default variant when
// variants are added.
type CreateStrategy string

const (
	StrategyDefault          CreateStrategy = "DEFAULT"
	StrategyRemoveStandalone CreateStrategy = "REMOVE_STANDALONE_VARIANT"
)

// MetafieldRef identifies a metafield to delete.
type MetafieldRef struct {
	OwnerID   string
	Namespace string
	Key       string
}

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RemoteObserver interface {
	ObserveRemote(api, op string, ms float64, ok bool)
}

type Client struct {
	endpoint string
	token    string
	pageSize int

	http     *http.Client
	policy   config.Retry
	breaker  *breaker.Breaker
	logger   *zap.Logger
	observer RemoteObserver
}

func NewClient(endpoint string, cfg config.Storefront, hc *http.Client, policy config.Retry, brk *breaker.Breaker, logger *zap.Logger, obs RemoteObserver) *Client {
	return &Client{
		endpoint: endpoint,
		token:    cfg.Token,
		pageSize: cfg.PageSize,
		http:     hc,
		policy:   policy,
		breaker:  brk,
		logger:   logger,
		observer: obs,
	}
}

func (c *Client) ListProducts(ctx context.Context, cursor string) ([]*domain.Product, paging.PageInfo, error) {
	vars := map[string]any{"first": c.pageSize}
	if cursor != "" {
		vars["after"] = cursor
	}
	var data struct {
		Products struct {
			PageInfo pageInfo      `json:"pageInfo"`
			Nodes    []productNode `json:"nodes"`
		} `json:"products"`
	}
	if err := c.do(ctx, "products", listProductsQuery, vars, &data); err != nil {
		return nil, paging.PageInfo{}, err
	}
	out := make([]*domain.Product, 0, len(data.Products.Nodes))
	for _, n := range data.Products.Nodes {
		out = append(out, n.toDomain())
	}
	pi := paging.PageInfo{HasNextPage: data.Products.PageInfo.HasNextPage, EndCursor: data.Products.PageInfo.EndCursor}
	return out, pi, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.UnsavedProduct) (*domain.Product, error) {
	var data struct {
		ProductCreate struct {
			Product    *productNode       `json:"product"`
			UserErrors []domain.UserError `json:"userErrors"`
		} `json:"productCreate"`
	}
	const op = "productCreate"
	if err := c.do(ctx, op, createProductMutation, map[string]any{"product": productCreateInput(p)}, &data); err != nil {
		return nil, err
	}
	if err := domain.CheckUserErrors(op, data.ProductCreate.UserErrors); err != nil {
		return nil, err
	}
	if data.ProductCreate.Product == nil {
		return nil, fmt.Errorf("storefront %s: empty product", op)
	}
	return data.ProductCreate.Product.toDomain(), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.UnsavedProduct) (*domain.Product, error) {
	in := productInput(p)
	in["id"] = id
	var data struct {
		ProductUpdate struct {
			Product    *productNode       `json:"product"`
			UserErrors []domain.UserError `json:"userErrors"`
		} `json:"productUpdate"`
	}
	const op = "productUpdate"
	if err := c.do(ctx, op, updateProductMutation, map[string]any{"product": in}, &data); err != nil {
		return nil, err
	}
	if err := domain.CheckUserErrors(op, data.ProductUpdate.UserErrors); err != nil {
		return nil, err
	}
	if data.ProductUpdate.Product == nil {
		return nil, fmt.Errorf("storefront %s: %w", op, domain.ErrNotFound)
	}
	return data.ProductUpdate.Product.toDomain(), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	var data struct {
		ProductDelete struct {
			UserErrors []domain.UserError `json:"userErrors"`
		} `json:"productDelete"`
	}
	const op = "productDelete"
	if err := c.do(ctx, op, deleteProductMutation, map[string]any{"input": map[string]any{"id": id}}, &data); err != nil {
		return err
	}
	return domain.CheckUserErrors(op, data.ProductDelete.UserErrors)
}

// CreateVariants adds variants to a product. When locationID is set the
// variants start with their inventory quantity at that location.
func (c *Client) CreateVariants(ctx context.Context, productID string, vs []domain.UnsavedVariant, strategy CreateStrategy, locationID string) ([]*domain.Variant, error) {
	inputs := make([]map[string]any, 0, len(vs))
	for _, v := range vs {
		in := variantInput(v)
		if locationID != "" {
			in["inventoryQuantities"] = []map[string]any{{"locationId": locationID, "availableQuantity": v.InventoryQuantity}}
		}
		inputs = append(inputs, in)
	}
	var data struct {
		Result struct {
			ProductVariants []variantNode      `json:"productVariants"`
			UserErrors      []domain.UserError `json:"userErrors"`
		} `json:"productVariantsBulkCreate"`
	}
	const op = "productVariantsBulkCreate"
	vars := map[string]any{"productId": productID, "variants": inputs, "strategy": strategy}
	if err := c.do(ctx, op, createVariantsMutation, vars, &data); err != nil {
		return nil, err
	}
	if err := domain.CheckUserErrors(op, data.Result.UserErrors); err != nil {
		return nil, err
	}
	return variantsToDomain(data.Result.ProductVariants), nil
}

func (c *Client) UpdateVariants(ctx context.Context, productID string, vs []*domain.Variant) ([]*domain.Variant, error) {
	inputs := make([]map[string]any, 0, len(vs))
	for _, v := range vs {
		in := variantInput(v.Values())
		in["id"] = v.ID
		inputs = append(inputs, in)
	}
	var data struct {
		Result struct {
			ProductVariants []variantNode      `json:"productVariants"`
			UserErrors      []domain.UserError `json:"userErrors"`
		} `json:"productVariantsBulkUpdate"`
	}
	const op = "productVariantsBulkUpdate"
	if err := c.do(ctx, op, updateVariantsMutation, map[string]any{"productId": productID, "variants": inputs}, &data); err != nil {
		return nil, err
	}
	if err := domain.CheckUserErrors(op, data.Result.UserErrors); err != nil {
		return nil, err
	}
	return variantsToDomain(data.Result.ProductVariants), nil
}

func (c *Client) DeleteVariants(ctx context.Context, productID string, ids []string) error {
	var data struct {
		Result struct {
			UserErrors []domain.UserError `json:"userErrors"`
		} `json:"productVariantsBulkDelete"`
	}
	const op = "productVariantsBulkDelete"
	if err := c.do(ctx, op, deleteVariantsMutation, map[string]any{"productId": productID, "variantsIds": ids}, &data); err != nil {
		return err
	}
	return domain.CheckUserErrors(op, data.Result.UserErrors)
}

func (c *Client) DeleteMetafields(ctx context.Context, refs []MetafieldRef) error {
	ids := make([]map[string]any, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, map[string]any{"ownerId": r.OwnerID, "namespace": r.Namespace, "key": r.Key})
	}
	var data struct {
		Result struct {
			UserErrors []domain.UserError `json:"userErrors"`
		} `json:"metafieldsDelete"`
	}
	const op = "metafieldsDelete"
	if err := c.do(ctx, op, deleteMetafieldsMutation, map[string]any{"metafields": ids}, &data); err != nil {
		return err
	}
	return domain.CheckUserErrors(op, data.Result.UserErrors)
}

// PrimaryLocation returns the shop's primary inventory location.
func (c *Client) PrimaryLocation(ctx context.Context) (Location, error) {
	var data struct {
		Location *Location `json:"location"`
	}
	if err := c.do(ctx, "location", primaryLocationQuery, nil, &data); err != nil {
		return Location{}, err
	}
	if data.Location == nil {
		return Location{}, fmt.Errorf("storefront location: %w", domain.ErrNotFound)
	}
	return *data.Location, nil
}

func variantsToDomain(nodes []variantNode) []*domain.Variant {
	out := make([]*domain.Variant, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.toDomain())
	}
	return out
}

func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("storefront %s: encode: %w", op, err)
	}

	start := time.Now()
	err = retry.Do(ctx, c.policy, func() error {
		err := c.breaker.Execute(func() error {
			return c.roundTrip(ctx, body, out)
		}, remoteHealthy)
		if errors.Is(err, breaker.ErrOpenState) || isCallerError(err) {
			return retry.Permanent(err)
		}
		return err
	})
	ms := float64(time.Since(start).Microseconds()) / 1000.0
	c.observer.ObserveRemote(api, op, ms, err == nil)

	if err != nil {
		c.logger.Warn("storefront call failed", zap.String("op", op), zap.Float64("ms", ms), zap.Error(err))
		return fmt.Errorf("storefront %s: %w", op, err)
	}
	c.logger.Debug("storefront call", zap.String("op", op), zap.Float64("ms", ms))
	return nil
}

func (c *Client) roundTrip(ctx context.Context, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return retry.Permanent(fmt.Errorf("decode response: %w", err))
	}
	if len(envelope.Errors) > 0 {
		var msgs []string
		for _, e := range envelope.Errors {
			if e.Extensions.Code == "THROTTLED" {
				return ErrThrottled
			}
			msgs = append(msgs, e.Message)
		}
		return &QueryError{Messages: msgs}
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return retry.Permanent(fmt.Errorf("decode data: %w", err))
	}
	return nil
}

// remoteHealthy reports errors that say nothing about the remote being down.
func remoteHealthy(err error) bool {
	return errors.Is(err, ErrThrottled) || isCallerError(err)
}

func isCallerError(err error) bool {
	if err == nil {
		return false
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && !se.Temporary()
}
