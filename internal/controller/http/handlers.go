package http

import (
	"context"
	"net/http"

	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/internal/orders"
	"github.com/ibeloyar/hotelportal/pgk/session"
	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, sess session.Session, input model.LoginDTO) (*model.User, *model.APIError)
	Signup(ctx context.Context, sess session.Session, input model.SignupDTO) (*model.User, *model.APIError)
	CheckLogin(ctx context.Context, sess session.Session) (bool, *model.APIError)
	GetUser(ctx context.Context, sess session.Session) (model.MemberView, *model.APIError)
	UpdateProfile(ctx context.Context, sess session.Session, input model.UpdateProfileDTO) *model.APIError
	UpdatePassword(ctx context.Context, sess session.Session, input model.ChangePasswordDTO) *model.APIError
	ForgotPassword(ctx context.Context, sess session.Session, input model.ForgotPasswordDTO) *model.APIError
	VerifyEmail(ctx context.Context, sess session.Session, input model.EmailDTO) (*model.EmailCheck, *model.APIError)
	GenerateEmailCode(ctx context.Context, sess session.Session, input model.EmailDTO) *model.APIError

	OrdersView(ctx context.Context, sess session.Session, q model.OrdersQuery) orders.View
	MoreOrders(ctx context.Context, sess session.Session, q model.OrdersQuery) orders.View
	DeleteOrder(ctx context.Context, sess session.Session, id string, q model.OrdersQuery) (orders.View, *model.APIError)
	GetOrder(ctx context.Context, sess session.Session, id string) (*model.Order, *model.APIError)
	CreateOrder(ctx context.Context, sess session.Session, input model.OrderPostDTO) (*model.Order, *model.APIError)

	ListRooms(ctx context.Context, sess session.Session) ([]model.Room, *model.APIError)
	GetRoom(ctx context.Context, sess session.Session, id string) (*model.Room, *model.APIError)
	Home(ctx context.Context, sess session.Session) (*model.Home, *model.APIError)
	GetNews(ctx context.Context, sess session.Session, id string) (*model.News, *model.APIError)
	GetCulinary(ctx context.Context, sess session.Session, id string) (*model.Culinary, *model.APIError)
}

type Controller struct {
	service   Service
	lg        *zap.SugaredLogger
	cookieCfg session.CookieConfig
}

func New(s Service, lg *zap.SugaredLogger, cookieCfg session.CookieConfig) *Controller {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Controller{
		lg:        lg,
		service:   s,
		cookieCfg: cookieCfg,
	}
}

// session - токен участника живёт в cookie; обновлённый токен пишется в ответ
func (c *Controller) session(w http.ResponseWriter, r *http.Request) *session.Cookie {
	return session.NewCookie(w, r, c.cookieCfg)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	sess := c.session(w, r)

	user, apiErr := c.service.Login(r.Context(), sess, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	if body.Remember {
		sess.RememberAccount(body.Email)
	} else {
		sess.ForgetAccount()
	}

	writeJSON(w, user, http.StatusOK)
}

func (c *Controller) Signup(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SignupDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	user, apiErr := c.service.Signup(r.Context(), c.session(w, r), body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	c.session(w, r).Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) CheckLogin(w http.ResponseWriter, r *http.Request) {
	loggedIn, apiErr := c.service.CheckLogin(r.Context(), c.session(w, r))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, model.MemberView{LoggedIn: loggedIn}, http.StatusOK)
}

// Account returns the e-mail the login form should be prefilled with.
func (c *Controller) Account(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.RememberedAccount{Email: c.session(w, r).RememberedAccount()}, http.StatusOK)
}

func (c *Controller) GetUser(w http.ResponseWriter, r *http.Request) {
	view, apiErr := c.service.GetUser(r.Context(), c.session(w, r))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, view, http.StatusOK)
}

func (c *Controller) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UpdateProfileDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	if apiErr := c.service.UpdateProfile(r.Context(), c.session(w, r), body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ChangePasswordDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	if apiErr := c.service.UpdatePassword(r.Context(), c.session(w, r), body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ForgotPasswordDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	if apiErr := c.service.ForgotPassword(r.Context(), c.session(w, r), body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.EmailDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	check, apiErr := c.service.VerifyEmail(r.Context(), c.session(w, r), body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, check, http.StatusOK)
}

func (c *Controller) GenerateEmailCode(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.EmailDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeBadRequest(w, model.ErrInvalidRequestBodyMessage)
		return
	}

	if apiErr := c.service.GenerateEmailCode(r.Context(), c.session(w, r), body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}
