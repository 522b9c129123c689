package hotelapi

import (
	"context"
	"net/http"

	"github.com/ibeloyar/hotelportal/internal/model"
)

func (c *Client) ListOrders(ctx context.Context) (Result[[]model.Order], error) {
	return call[[]model.Order](ctx, c, http.MethodGet, withID(pathOrders, ""), nil, true)
}

func (c *Client) GetOrder(ctx context.Context, id string) (Result[model.Order], error) {
	return call[model.Order](ctx, c, http.MethodGet, withID(pathOrders, id), nil, true)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) (Result[model.Order], error) {
	return call[model.Order](ctx, c, http.MethodDelete, withID(pathOrders, id), nil, true)
}

func (c *Client) CreateOrder(ctx context.Context, input model.OrderPostDTO) (Result[model.Order], error) {
	return call[model.Order](ctx, c, http.MethodPost, pathOrders, input, true)
}
