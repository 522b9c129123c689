package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ibeloyar/hotelportal/internal/hotelapi"
	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/internal/orders"
	"github.com/ibeloyar/hotelportal/pgk/clock"
	"github.com/ibeloyar/hotelportal/pgk/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the hotel service as seen through one member session.
type API interface {
	GetUser(ctx context.Context) (hotelapi.Result[model.User], error)
	UpdateProfile(ctx context.Context, input model.UpdateProfileDTO) (hotelapi.Result[hotelapi.Empty], error)
	UpdatePassword(ctx context.Context, input model.UpdatePasswordDTO) (hotelapi.Result[hotelapi.Empty], error)
	Login(ctx context.Context, input model.LoginDTO) (hotelapi.Result[model.User], error)
	Signup(ctx context.Context, input model.SignupDTO) (hotelapi.Result[model.User], error)
	ForgotPassword(ctx context.Context, input model.ForgotPasswordDTO) (hotelapi.Result[hotelapi.Empty], error)
	CheckLogin(ctx context.Context) (hotelapi.Result[hotelapi.Empty], error)
	VerifyEmail(ctx context.Context, email string) (hotelapi.Result[model.EmailCheck], error)
	GenerateEmailCode(ctx context.Context, email string) (hotelapi.Result[hotelapi.Empty], error)

	ListOrders(ctx context.Context) (hotelapi.Result[[]model.Order], error)
	GetOrder(ctx context.Context, id string) (hotelapi.Result[model.Order], error)
	DeleteOrder(ctx context.Context, id string) (hotelapi.Result[model.Order], error)
	CreateOrder(ctx context.Context, input model.OrderPostDTO) (hotelapi.Result[model.Order], error)

	ListRooms(ctx context.Context) (hotelapi.Result[[]model.Room], error)
	GetRoom(ctx context.Context, id string) (hotelapi.Result[model.Room], error)
	ListNews(ctx context.Context) (hotelapi.Result[[]model.News], error)
	GetNews(ctx context.Context, id string) (hotelapi.Result[model.News], error)
	ListCulinary(ctx context.Context) (hotelapi.Result[[]model.Culinary], error)
	GetCulinary(ctx context.Context, id string) (hotelapi.Result[model.Culinary], error)
}

// ClientFactory binds an API client to the session of the current request.
type ClientFactory func(sess session.Session) API

type Service struct {
	newClient ClientFactory
	clock     clock.Clock
	pageSize  int
	validator *validator.Validate
	lg        *zap.SugaredLogger
}

func New(f ClientFactory, c clock.Clock, pageSize int, lg *zap.SugaredLogger) *Service {
	if pageSize <= 0 {
		pageSize = orders.DefaultPageSize
	}
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Service{
		newClient: f,
		clock:     c,
		pageSize:  pageSize,
		validator: newValidator(),
		lg:        lg,
	}
}

// Login - вход по e-mail и паролю; ошибка сервиса показывается под полем пароля
func (s *Service) Login(ctx context.Context, sess session.Session, input model.LoginDTO) (*model.User, *model.APIError) {
	if apiErr := s.validate(input); apiErr != nil {
		return nil, apiErr
	}

	res, err := s.newClient(sess).Login(ctx, input)
	if err != nil {
		return nil, s.upstreamError("login", err)
	}

	if apiErr := res.Err(); apiErr != nil {
		message := apiErr.Message
		if message == "" {
			message = model.ErrInvalidLoginOrPasswordMessage
		}

		return nil, &model.APIError{
			Code:    apiErr.Code,
			Message: message,
			Fields:  map[string]string{"password": message},
		}
	}

	return res.Result, nil
}

func (s *Service) Signup(ctx context.Context, sess session.Session, input model.SignupDTO) (*model.User, *model.APIError) {
	if apiErr := s.validate(input); apiErr != nil {
		return nil, apiErr
	}

	client := s.newClient(sess)

	check, err := client.VerifyEmail(ctx, input.Email)
	if err != nil {
		return nil, s.upstreamError("verify email", err)
	}
	if check.Err() == nil && check.Result != nil && check.Result.IsEmailExists {
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrUserAlreadyExistMessage,
			Fields:  map[string]string{"email": model.ErrUserAlreadyExistMessage},
		}
	}

	res, err := client.Signup(ctx, input)
	return unwrap(s, "signup", res, err)
}

// CheckLogin reports whether the session token is still accepted.
func (s *Service) CheckLogin(ctx context.Context, sess session.Session) (bool, *model.APIError) {
	res, err := s.newClient(sess).CheckLogin(ctx)
	if err != nil {
		return false, s.upstreamError("check login", err)
	}

	return res.Err() == nil, nil
}

// GetUser treats a rejected token as an anonymous visitor, not as a failure.
func (s *Service) GetUser(ctx context.Context, sess session.Session) (model.MemberView, *model.APIError) {
	res, err := s.newClient(sess).GetUser(ctx)
	if err != nil {
		return model.MemberView{}, s.upstreamError("get user", err)
	}

	if res.StatusCode == http.StatusForbidden || res.StatusCode == http.StatusUnauthorized {
		return model.MemberView{LoggedIn: false}, nil
	}

	user, apiErr := unwrap(s, "get user", res, nil)
	if apiErr != nil {
		return model.MemberView{}, apiErr
	}

	return model.MemberView{LoggedIn: user != nil, User: user}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, sess session.Session, input model.UpdateProfileDTO) *model.APIError {
	if apiErr := s.validate(input); apiErr != nil {
		return apiErr
	}

	res, err := s.newClient(sess).UpdateProfile(ctx, input)
	_, apiErr := unwrap(s, "update profile", res, err)
	return apiErr
}

func (s *Service) UpdatePassword(ctx context.Context, sess session.Session, input model.ChangePasswordDTO) *model.APIError {
	if apiErr := s.validate(input); apiErr != nil {
		return apiErr
	}

	res, err := s.newClient(sess).UpdatePassword(ctx, model.UpdatePasswordDTO{
		UserID:      input.UserID,
		OldPassword: input.OldPassword,
		NewPassword: input.NewPassword,
	})
	_, apiErr := unwrap(s, "update password", res, err)
	if apiErr != nil && apiErr.Code == http.StatusBadRequest {
		apiErr.Fields = map[string]string{"oldPassword": apiErr.Message}
	}

	return apiErr
}

func (s *Service) ForgotPassword(ctx context.Context, sess session.Session, input model.ForgotPasswordDTO) *model.APIError {
	if apiErr := s.validate(input); apiErr != nil {
		return apiErr
	}

	res, err := s.newClient(sess).ForgotPassword(ctx, input)
	_, apiErr := unwrap(s, "forgot password", res, err)
	return apiErr
}

func (s *Service) VerifyEmail(ctx context.Context, sess session.Session, input model.EmailDTO) (*model.EmailCheck, *model.APIError) {
	if apiErr := s.validate(input); apiErr != nil {
		return nil, apiErr
	}

	res, err := s.newClient(sess).VerifyEmail(ctx, input.Email)
	return unwrap(s, "verify email", res, err)
}

func (s *Service) GenerateEmailCode(ctx context.Context, sess session.Session, input model.EmailDTO) *model.APIError {
	if apiErr := s.validate(input); apiErr != nil {
		return apiErr
	}

	res, err := s.newClient(sess).GenerateEmailCode(ctx, input.Email)
	_, apiErr := unwrap(s, "generate email code", res, err)
	return apiErr
}

// OrdersView builds the order page for the window and selection the browser holds.
func (s *Service) OrdersView(ctx context.Context, sess session.Session, q model.OrdersQuery) orders.View {
	page := s.loadPage(ctx, sess, q.Visible)
	if q.Selected != "" {
		page.SelectOrder(q.Selected)
	}

	return page.View()
}

// MoreOrders reveals the next slice of history past q.Visible.
func (s *Service) MoreOrders(ctx context.Context, sess session.Session, q model.OrdersQuery) orders.View {
	page := s.loadPage(ctx, sess, q.Visible)
	page.ShowMore()
	if q.Selected != "" {
		page.SelectOrder(q.Selected)
	}

	return page.View()
}

// DeleteOrder cancels an order and returns the refreshed page. The selection
// is dropped so the page falls back to the upcoming stay.
func (s *Service) DeleteOrder(ctx context.Context, sess session.Session, id string, q model.OrdersQuery) (orders.View, *model.APIError) {
	page := orders.NewPage(s.newClient(sess), s.clock, s.lg, s.pageSize)

	res, err := page.Delete(ctx, id)
	if _, apiErr := unwrap(s, "delete order", res, err); apiErr != nil {
		if apiErr.Code == http.StatusNotFound {
			apiErr.Message = model.ErrOrderNotFoundMessage
		}
		return orders.View{}, apiErr
	}

	page.RestoreWindow(q.Visible)
	return page.View(), nil
}

func (s *Service) GetOrder(ctx context.Context, sess session.Session, id string) (*model.Order, *model.APIError) {
	res, err := s.newClient(sess).GetOrder(ctx, id)
	order, apiErr := unwrap(s, "get order", res, err)
	order, apiErr = present(order, apiErr)
	if apiErr != nil {
		if apiErr.Code == http.StatusNotFound {
			apiErr.Message = model.ErrOrderNotFoundMessage
		}
		return nil, apiErr
	}

	return order, nil
}

// CreateOrder books a room after checking the form and the room capacity.
func (s *Service) CreateOrder(ctx context.Context, sess session.Session, input model.OrderPostDTO) (*model.Order, *model.APIError) {
	if apiErr := s.validateOrder(input); apiErr != nil {
		return nil, apiErr
	}

	client := s.newClient(sess)

	room, apiErr := s.room(ctx, client, input.RoomID)
	if apiErr != nil {
		return nil, apiErr
	}
	if room.MaxPeople > 0 && input.PeopleNum > room.MaxPeople {
		return nil, fieldError("peopleNum", model.ErrRoomCapacityMessage)
	}

	res, err := client.CreateOrder(ctx, input)
	return unwrap(s, "create order", res, err)
}

func (s *Service) ListRooms(ctx context.Context, sess session.Session) ([]model.Room, *model.APIError) {
	res, err := s.newClient(sess).ListRooms(ctx)
	rooms, apiErr := unwrap(s, "list rooms", res, err)
	if apiErr != nil {
		return nil, apiErr
	}
	if rooms == nil {
		return []model.Room{}, nil
	}

	return *rooms, nil
}

func (s *Service) GetRoom(ctx context.Context, sess session.Session, id string) (*model.Room, *model.APIError) {
	return s.room(ctx, s.newClient(sess), id)
}

func (s *Service) room(ctx context.Context, client API, id string) (*model.Room, *model.APIError) {
	res, err := client.GetRoom(ctx, id)
	room, apiErr := unwrap(s, "get room", res, err)
	room, apiErr = present(room, apiErr)
	if apiErr != nil {
		if apiErr.Code == http.StatusNotFound {
			apiErr.Message = model.ErrRoomNotFoundMessage
		}
		return nil, apiErr
	}

	return room, nil
}

// Home fetches news, culinary and rooms concurrently; any failure fails the page.
func (s *Service) Home(ctx context.Context, sess session.Session) (*model.Home, *model.APIError) {
	client := s.newClient(sess)
	home := &model.Home{
		News:     []model.News{},
		Culinary: []model.Culinary{},
		Rooms:    []model.Room{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := client.ListNews(gctx)
		news, apiErr := unwrap(s, "list news", res, err)
		if apiErr != nil {
			return apiErr
		}
		if news != nil {
			home.News = *news
		}
		return nil
	})
	g.Go(func() error {
		res, err := client.ListCulinary(gctx)
		culinary, apiErr := unwrap(s, "list culinary", res, err)
		if apiErr != nil {
			return apiErr
		}
		if culinary != nil {
			home.Culinary = *culinary
		}
		return nil
	})
	g.Go(func() error {
		res, err := client.ListRooms(gctx)
		rooms, apiErr := unwrap(s, "list rooms", res, err)
		if apiErr != nil {
			return apiErr
		}
		if rooms != nil {
			home.Rooms = *rooms
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, s.upstreamError("home", err)
	}

	return home, nil
}

func (s *Service) GetNews(ctx context.Context, sess session.Session, id string) (*model.News, *model.APIError) {
	res, err := s.newClient(sess).GetNews(ctx, id)
	news, apiErr := unwrap(s, "get news", res, err)
	return present(news, apiErr)
}

func (s *Service) GetCulinary(ctx context.Context, sess session.Session, id string) (*model.Culinary, *model.APIError) {
	res, err := s.newClient(sess).GetCulinary(ctx, id)
	culinary, apiErr := unwrap(s, "get culinary", res, err)
	return present(culinary, apiErr)
}

func (s *Service) loadPage(ctx context.Context, sess session.Session, visible int) *orders.Page {
	page := orders.NewPage(s.newClient(sess), s.clock, s.lg, s.pageSize)
	page.Load(ctx)
	page.RestoreWindow(visible)

	return page
}

// unwrap - переводит ответ сервиса отеля в результат или APIError
func unwrap[T any](s *Service, op string, res hotelapi.Result[T], err error) (*T, *model.APIError) {
	if err != nil {
		return nil, s.upstreamError(op, err)
	}

	if apiErr := res.Err(); apiErr != nil {
		if apiErr.Message == "" {
			apiErr.Message = defaultMessage(apiErr.Code)
		}
		return nil, apiErr
	}

	return res.Result, nil
}

// present treats an accepted response without a payload as a missing item.
func present[T any](item *T, apiErr *model.APIError) (*T, *model.APIError) {
	if apiErr == nil && item == nil {
		return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrNotFoundMessage}
	}

	return item, apiErr
}

func (s *Service) upstreamError(op string, err error) *model.APIError {
	s.lg.Errorf("%s: hotel service call failed: %v", op, err)

	return &model.APIError{
		Code:    http.StatusBadGateway,
		Message: model.ErrUpstreamUnavailableMessage,
	}
}

func defaultMessage(code int) string {
	switch code {
	case http.StatusForbidden, http.StatusUnauthorized:
		return model.ErrNotLoggedInMessage
	case http.StatusNotFound:
		return model.ErrNotFoundMessage
	case http.StatusConflict:
		return model.ErrUserAlreadyExistMessage
	case http.StatusBadRequest:
		return model.ErrValidationMessage
	default:
		return model.ErrInternalServerMessage
	}
}
