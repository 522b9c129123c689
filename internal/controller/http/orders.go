package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/hotelportal/internal/model"
)

// MemberOrders отдаёт страницу заказов для окна и выбора, которые прислал браузер.
func (c *Controller) MemberOrders(w http.ResponseWriter, r *http.Request) {
	q, err := readOrdersQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	writeJSON(w, c.service.OrdersView(r.Context(), c.session(w, r), q), http.StatusOK)
}

func (c *Controller) MoreOrders(w http.ResponseWriter, r *http.Request) {
	q, err := readOrdersQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	writeJSON(w, c.service.MoreOrders(r.Context(), c.session(w, r), q), http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, apiErr := c.service.GetOrder(r.Context(), c.session(w, r), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, order, http.StatusOK)
}

func (c *Controller) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	q, err := readOrdersQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	view, apiErr := c.service.DeleteOrder(r.Context(), c.session(w, r), chi.URLParam(r, "id"), q)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, view, http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.OrderPostDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	order, apiErr := c.service.CreateOrder(r.Context(), c.session(w, r), body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, order, http.StatusCreated)
}
