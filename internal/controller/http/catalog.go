package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (c *Controller) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, apiErr := c.service.ListRooms(r.Context(), c.session(w, r))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, rooms, http.StatusOK)
}

func (c *Controller) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, apiErr := c.service.GetRoom(r.Context(), c.session(w, r), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, room, http.StatusOK)
}

func (c *Controller) Home(w http.ResponseWriter, r *http.Request) {
	home, apiErr := c.service.Home(r.Context(), c.session(w, r))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, home, http.StatusOK)
}

func (c *Controller) GetNews(w http.ResponseWriter, r *http.Request) {
	news, apiErr := c.service.GetNews(r.Context(), c.session(w, r), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, news, http.StatusOK)
}

func (c *Controller) GetCulinary(w http.ResponseWriter, r *http.Request) {
	culinary, apiErr := c.service.GetCulinary(r.Context(), c.session(w, r), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, culinary, http.StatusOK)
}
