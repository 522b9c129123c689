package hotelapi

import (
	"context"
	"net/http"

	"github.com/ibeloyar/hotelportal/internal/model"
)

func (c *Client) ListRooms(ctx context.Context) (Result[[]model.Room], error) {
	return call[[]model.Room](ctx, c, http.MethodGet, withID(pathRooms, ""), nil, false)
}

func (c *Client) GetRoom(ctx context.Context, id string) (Result[model.Room], error) {
	return call[model.Room](ctx, c, http.MethodGet, withID(pathRooms, id), nil, false)
}

func (c *Client) ListNews(ctx context.Context) (Result[[]model.News], error) {
	return call[[]model.News](ctx, c, http.MethodGet, withID(pathNews, ""), nil, false)
}

func (c *Client) GetNews(ctx context.Context, id string) (Result[model.News], error) {
	return call[model.News](ctx, c, http.MethodGet, withID(pathNews, id), nil, false)
}

func (c *Client) ListCulinary(ctx context.Context) (Result[[]model.Culinary], error) {
	return call[[]model.Culinary](ctx, c, http.MethodGet, withID(pathCulinary, ""), nil, false)
}

func (c *Client) GetCulinary(ctx context.Context, id string) (Result[model.Culinary], error) {
	return call[model.Culinary](ctx, c, http.MethodGet, withID(pathCulinary, id), nil, false)
}
