package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/hotelportal/internal/controller/http/mocks"
	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/internal/orders"
	"github.com/ibeloyar/hotelportal/pgk/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)

	return InitRoutes(chi.NewRouter(), New(mockSvc, nil, session.CookieConfig{})), mockSvc
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestController_Ping(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_Login_Success(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	input := model.LoginDTO{
		Email:    "jane@example.com",
		Password: "secret",
		Remember: true,
	}

	mockSvc.EXPECT().
		Login(gomock.Any(), gomock.Any(), input).
		DoAndReturn(func(_ context.Context, sess session.Session, _ model.LoginDTO) (*model.User, *model.APIError) {
			sess.SetToken("fresh-token")
			return &model.User{ID: "u1", Email: input.Email}, nil
		}).
		Times(1)

	w := doRequest(router, jsonRequest(t, http.MethodPost, "/api/user/login", input))

	assert.Equal(t, http.StatusOK, w.Code)

	token := findCookie(w, session.TokenCookieName)
	require.NotNil(t, token)
	assert.Equal(t, "fresh-token", token.Value)
	assert.True(t, token.HttpOnly)

	account := findCookie(w, session.AccountCookieName)
	require.NotNil(t, account)
	assert.Equal(t, input.Email, account.Value)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "u1", user.ID)
}

func TestController_Login_ForgetAccount(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	input := model.LoginDTO{Email: "jane@example.com", Password: "secret"}

	mockSvc.EXPECT().
		Login(gomock.Any(), gomock.Any(), input).
		Return(&model.User{ID: "u1"}, nil)

	w := doRequest(router, jsonRequest(t, http.MethodPost, "/api/user/login", input))

	account := findCookie(w, session.AccountCookieName)
	require.NotNil(t, account)
	assert.Equal(t, -1, account.MaxAge)
}

func TestController_Login_Rejected(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	input := model.LoginDTO{Email: "jane@example.com", Password: "wrong"}

	mockSvc.EXPECT().
		Login(gomock.Any(), gomock.Any(), input).
		Return(nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidLoginOrPasswordMessage,
			Fields:  map[string]string{"password": model.ErrInvalidLoginOrPasswordMessage},
		})

	w := doRequest(router, jsonRequest(t, http.MethodPost, "/api/user/login", input))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr model.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, model.ErrInvalidLoginOrPasswordMessage, apiErr.Fields["password"])
	assert.Nil(t, findCookie(w, session.AccountCookieName))
}

func TestController_Login_BadBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrInvalidRequestBodyMessage)
}

func TestController_Signup_Conflict(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	input := model.SignupDTO{Name: "Jane", Email: "jane@example.com"}

	mockSvc.EXPECT().
		Signup(gomock.Any(), gomock.Any(), input).
		Return(nil, &model.APIError{Code: http.StatusConflict, Message: model.ErrUserAlreadyExistMessage})

	w := doRequest(router, jsonRequest(t, http.MethodPost, "/api/user/signup", input))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestController_Logout(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "old"})
	w := doRequest(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	token := findCookie(w, session.TokenCookieName)
	require.NotNil(t, token)
	assert.Empty(t, token.Value)
	assert.Equal(t, -1, token.MaxAge)
}

func TestController_Account(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/account", nil)
	req.AddCookie(&http.Cookie{Name: session.AccountCookieName, Value: "jane@example.com"})
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"jane@example.com"}`, w.Body.String())
}

func TestController_GetUser_ReadsTokenCookie(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess session.Session) (model.MemberView, *model.APIError) {
			assert.Equal(t, "stored-token", sess.Token())
			return model.MemberView{LoggedIn: true, User: &model.User{ID: "u1"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "stored-token"})
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view model.MemberView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.LoggedIn)
}

func TestController_CheckLogin(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().CheckLogin(gomock.Any(), gomock.Any()).Return(false, nil)

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/user/check", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedIn":false,"user":null}`, w.Body.String())
}

func TestController_UpdatePassword_Validation(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	input := model.ChangePasswordDTO{UserID: "u1", OldPassword: "a", NewPassword: "b", ConfirmPassword: "c"}

	mockSvc.EXPECT().
		UpdatePassword(gomock.Any(), gomock.Any(), input).
		Return(&model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrValidationMessage,
			Fields:  map[string]string{"confirmPassword": "passwords do not match"},
		})

	w := doRequest(router, jsonRequest(t, http.MethodPut, "/api/user/password", input))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "passwords do not match")
}

func TestController_VerifyEmail(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	input := model.EmailDTO{Email: "jane@example.com"}

	mockSvc.EXPECT().
		VerifyEmail(gomock.Any(), gomock.Any(), input).
		Return(&model.EmailCheck{IsEmailExists: true}, nil)

	w := doRequest(router, jsonRequest(t, http.MethodPost, "/api/verify/email", input))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isEmailExists":true}`, w.Body.String())
}

func TestController_MemberOrders_PassesBrowserState(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().
		OrdersView(gomock.Any(), gomock.Any(), model.OrdersQuery{Visible: 10, Selected: "o2"}).
		Return(orders.View{State: orders.StatePopulated, Visible: 10, Total: 12, HasMore: true, History: []orders.Row{}})

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/member/orders?visible=10&selected=o2", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "populated", got["state"])
	assert.Equal(t, true, got["hasMore"])
}

func TestController_MemberOrders_BadVisible(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/member/orders?visible=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_MoreOrders(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().
		MoreOrders(gomock.Any(), gomock.Any(), model.OrdersQuery{Visible: 5}).
		Return(orders.View{State: orders.StatePopulated, Visible: 6, Total: 6, History: []orders.Row{}})

	w := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/member/orders/more?visible=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"visible":6`)
}

func TestController_DeleteOrder(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().
		DeleteOrder(gomock.Any(), gomock.Any(), "o1", model.OrdersQuery{Visible: 5}).
		Return(orders.View{State: orders.StateEmpty, EmptyLink: orders.EmptyLink, History: []orders.Row{}}, nil)

	w := doRequest(router, httptest.NewRequest(http.MethodDelete, "/api/member/orders/o1?visible=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emptyLink":"/rooms"`)
}

func TestController_DeleteOrder_NotFound(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().
		DeleteOrder(gomock.Any(), gomock.Any(), "missing", model.OrdersQuery{}).
		Return(orders.View{}, &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage})

	w := doRequest(router, httptest.NewRequest(http.MethodDelete, "/api/member/orders/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_GetOrder(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().
		GetOrder(gomock.Any(), gomock.Any(), "o1").
		Return(&model.Order{ID: "o1", PeopleNum: 2}, nil)

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/member/orders/o1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 2, order.PeopleNum)
}

func TestController_CreateOrder(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	input := model.OrderPostDTO{RoomID: "r1", PeopleNum: 2}

	mockSvc.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), input).
		Return(&model.Order{ID: "o9"}, nil)

	w := doRequest(router, jsonRequest(t, http.MethodPost, "/api/orders", input))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"_id":"o9"`)
}

func TestController_Catalog(t *testing.T) {
	router, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return([]model.Room{{ID: "r1"}}, nil)
	mockSvc.EXPECT().GetRoom(gomock.Any(), gomock.Any(), "missing").
		Return(nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrRoomNotFoundMessage})
	mockSvc.EXPECT().Home(gomock.Any(), gomock.Any()).
		Return(&model.Home{News: []model.News{}, Culinary: []model.Culinary{}, Rooms: []model.Room{}}, nil)
	mockSvc.EXPECT().GetNews(gomock.Any(), gomock.Any(), "n1").Return(&model.News{ID: "n1"}, nil)
	mockSvc.EXPECT().GetCulinary(gomock.Any(), gomock.Any(), "c1").Return(&model.Culinary{ID: "c1"}, nil)

	tests := []struct {
		target string
		code   int
	}{
		{target: "/api/rooms", code: http.StatusOK},
		{target: "/api/rooms/missing", code: http.StatusNotFound},
		{target: "/api/home", code: http.StatusOK},
		{target: "/api/news/n1", code: http.StatusOK},
		{target: "/api/culinary/c1", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := doRequest(router, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
