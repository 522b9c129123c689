package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/hotelportal/internal/hotelapi"
	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/internal/orders"
	"github.com/ibeloyar/hotelportal/pgk/clock"
	"github.com/ibeloyar/hotelportal/pgk/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeloyar/hotelportal/internal/service/mocks"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	svc := New(func(session.Session) API { return api }, clock.NewFixedClock(testNow), orders.DefaultPageSize, nil)
	return svc, api
}

func ok[T any](v T) hotelapi.Result[T] {
	return hotelapi.Result[T]{Status: true, StatusCode: http.StatusOK, Result: &v}
}

func rejected[T any](code int, message string) hotelapi.Result[T] {
	return hotelapi.Result[T]{Status: false, StatusCode: code, Message: message}
}

func validAddress() model.Address {
	return model.Address{ZipCode: 802, Detail: "No. 7 Harbor Rd"}
}

func validSignup() model.SignupDTO {
	return model.SignupDTO{
		Name:            "Jane",
		Email:           "jane@example.com",
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
		Phone:           "0912345678",
		Birthday:        "1990/01/02",
		Address:         validAddress(),
	}
}

func validOrderInput() model.OrderPostDTO {
	return model.OrderPostDTO{
		RoomID:       "r1",
		CheckInDate:  testNow.Add(24 * time.Hour),
		CheckOutDate: testNow.Add(72 * time.Hour),
		PeopleNum:    2,
		UserInfo: model.UserInfo{
			Name:    "Jane",
			Phone:   "0912345678",
			Email:   "jane@example.com",
			Address: validAddress(),
		},
	}
}

func activeOrder(id string, checkIn time.Time) model.Order {
	return model.Order{ID: id, CheckInDate: checkIn, CheckOutDate: checkIn.Add(48 * time.Hour), Status: model.OrderStatusActive}
}

func TestService_Login_Success(t *testing.T) {
	svc, api := newTestService(t)
	input := model.LoginDTO{Email: "jane@example.com", Password: "secret"}

	api.EXPECT().
		Login(gomock.Any(), input).
		Return(ok(model.User{ID: "u1", Email: input.Email}), nil).
		Times(1)

	user, apiErr := svc.Login(context.Background(), session.NewMemory(""), input)

	assert.Nil(t, apiErr)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestService_Login_InvalidEmail(t *testing.T) {
	svc, _ := newTestService(t)

	user, apiErr := svc.Login(context.Background(), session.NewMemory(""), model.LoginDTO{Email: "jane", Password: "x"})

	assert.Nil(t, user)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, "please enter a valid e-mail address", apiErr.Fields["email"])
}

func TestService_Login_Rejected(t *testing.T) {
	svc, api := newTestService(t)
	input := model.LoginDTO{Email: "jane@example.com", Password: "wrong"}

	api.EXPECT().
		Login(gomock.Any(), input).
		Return(rejected[model.User](http.StatusBadRequest, "wrong password"), nil)

	_, apiErr := svc.Login(context.Background(), session.NewMemory(""), input)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, "wrong password", apiErr.Fields["password"])
}

func TestService_Login_Unavailable(t *testing.T) {
	svc, api := newTestService(t)
	input := model.LoginDTO{Email: "jane@example.com", Password: "secret"}

	api.EXPECT().
		Login(gomock.Any(), input).
		Return(hotelapi.Result[model.User]{}, errors.New("connection refused"))

	_, apiErr := svc.Login(context.Background(), session.NewMemory(""), input)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
	assert.Equal(t, model.ErrUpstreamUnavailableMessage, apiErr.Message)
}

func TestService_Signup_Success(t *testing.T) {
	svc, api := newTestService(t)
	input := validSignup()

	gomock.InOrder(
		api.EXPECT().VerifyEmail(gomock.Any(), input.Email).Return(ok(model.EmailCheck{IsEmailExists: false}), nil),
		api.EXPECT().Signup(gomock.Any(), input).Return(ok(model.User{ID: "u1"}), nil),
	)

	user, apiErr := svc.Signup(context.Background(), session.NewMemory(""), input)

	assert.Nil(t, apiErr)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestService_Signup_EmailExists(t *testing.T) {
	svc, api := newTestService(t)
	input := validSignup()

	api.EXPECT().VerifyEmail(gomock.Any(), input.Email).Return(ok(model.EmailCheck{IsEmailExists: true}), nil)

	_, apiErr := svc.Signup(context.Background(), session.NewMemory(""), input)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
	assert.Equal(t, model.ErrUserAlreadyExistMessage, apiErr.Fields["email"])
}

func TestService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.SignupDTO)
		field   string
		message string
	}{
		{
			name:    "passwords differ",
			mutate:  func(in *model.SignupDTO) { in.ConfirmPassword = "abc12346" },
			field:   "confirmPassword",
			message: "passwords do not match",
		},
		{
			name:    "password without digits",
			mutate:  func(in *model.SignupDTO) { in.Password, in.ConfirmPassword = "abcdefgh", "abcdefgh" },
			field:   "password",
			message: "must contain both letters and digits",
		},
		{
			name:    "short password",
			mutate:  func(in *model.SignupDTO) { in.Password, in.ConfirmPassword = "ab1", "ab1" },
			field:   "password",
			message: "must be at least 8 characters",
		},
		{
			name:    "bad phone",
			mutate:  func(in *model.SignupDTO) { in.Phone = "12345" },
			field:   "phone",
			message: "invalid phone number",
		},
		{
			name:    "bad birthday",
			mutate:  func(in *model.SignupDTO) { in.Birthday = "02.01.1990" },
			field:   "birthday",
			message: "invalid date, expected YYYY/MM/DD",
		},
		{
			name:    "missing address detail",
			mutate:  func(in *model.SignupDTO) { in.Address.Detail = "" },
			field:   "address.detail",
			message: "required",
		},
		{
			name:    "bad email",
			mutate:  func(in *model.SignupDTO) { in.Email = "jane@" },
			field:   "email",
			message: "please enter a valid e-mail address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			input := validSignup()
			tt.mutate(&input)

			_, apiErr := svc.Signup(context.Background(), session.NewMemory(""), input)

			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
			assert.Equal(t, model.ErrValidationMessage, apiErr.Message)
			assert.Equal(t, tt.message, apiErr.Fields[tt.field])
		})
	}
}

func TestService_CheckLogin(t *testing.T) {
	svc, api := newTestService(t)

	api.EXPECT().CheckLogin(gomock.Any()).Return(hotelapi.Result[hotelapi.Empty]{Status: true, StatusCode: http.StatusOK}, nil)
	loggedIn, apiErr := svc.CheckLogin(context.Background(), session.NewMemory("t"))
	assert.Nil(t, apiErr)
	assert.True(t, loggedIn)

	api.EXPECT().CheckLogin(gomock.Any()).Return(rejected[hotelapi.Empty](http.StatusForbidden, "expired"), nil)
	loggedIn, apiErr = svc.CheckLogin(context.Background(), session.NewMemory("t"))
	assert.Nil(t, apiErr)
	assert.False(t, loggedIn)
}

func TestService_GetUser(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetUser(gomock.Any()).Return(ok(model.User{ID: "u1", Name: "Jane"}), nil)

		view, apiErr := svc.GetUser(context.Background(), session.NewMemory("t"))

		assert.Nil(t, apiErr)
		assert.True(t, view.LoggedIn)
		require.NotNil(t, view.User)
		assert.Equal(t, "Jane", view.User.Name)
	})

	t.Run("forbidden is anonymous", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetUser(gomock.Any()).Return(rejected[model.User](http.StatusForbidden, "please log in"), nil)

		view, apiErr := svc.GetUser(context.Background(), session.NewMemory(""))

		assert.Nil(t, apiErr)
		assert.False(t, view.LoggedIn)
		assert.Nil(t, view.User)
	})

	t.Run("server error", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetUser(gomock.Any()).Return(rejected[model.User](http.StatusInternalServerError, ""), nil)

		_, apiErr := svc.GetUser(context.Background(), session.NewMemory("t"))

		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
		assert.Equal(t, model.ErrInternalServerMessage, apiErr.Message)
	})
}

func TestService_UpdatePassword(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		svc, _ := newTestService(t)

		apiErr := svc.UpdatePassword(context.Background(), session.NewMemory("t"), model.ChangePasswordDTO{
			UserID: "u1", OldPassword: "old", NewPassword: "new1", ConfirmPassword: "new2",
		})

		require.NotNil(t, apiErr)
		assert.Equal(t, "passwords do not match", apiErr.Fields["confirmPassword"])
	})

	t.Run("sends old and new password only", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().
			UpdatePassword(gomock.Any(), model.UpdatePasswordDTO{UserID: "u1", OldPassword: "old", NewPassword: "new1"}).
			Return(hotelapi.Result[hotelapi.Empty]{Status: true, StatusCode: http.StatusOK}, nil)

		apiErr := svc.UpdatePassword(context.Background(), session.NewMemory("t"), model.ChangePasswordDTO{
			UserID: "u1", OldPassword: "old", NewPassword: "new1", ConfirmPassword: "new1",
		})

		assert.Nil(t, apiErr)
	})

	t.Run("wrong old password", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().
			UpdatePassword(gomock.Any(), gomock.Any()).
			Return(rejected[hotelapi.Empty](http.StatusBadRequest, "old password is incorrect"), nil)

		apiErr := svc.UpdatePassword(context.Background(), session.NewMemory("t"), model.ChangePasswordDTO{
			UserID: "u1", OldPassword: "bad", NewPassword: "new1", ConfirmPassword: "new1",
		})

		require.NotNil(t, apiErr)
		assert.Equal(t, "old password is incorrect", apiErr.Fields["oldPassword"])
	})
}

func TestService_OrdersView(t *testing.T) {
	svc, api := newTestService(t)
	list := []model.Order{
		activeOrder("past", testNow.Add(-72*time.Hour)),
		activeOrder("next", testNow.Add(24*time.Hour)),
	}
	api.EXPECT().ListOrders(gomock.Any()).Return(ok(list), nil).Times(2)

	view := svc.OrdersView(context.Background(), session.NewMemory("t"), model.OrdersQuery{})
	assert.Equal(t, orders.StatePopulated, view.State)
	require.NotNil(t, view.Current)
	assert.Equal(t, "next", view.Current.ID)
	assert.True(t, view.Upcoming)

	view = svc.OrdersView(context.Background(), session.NewMemory("t"), model.OrdersQuery{Selected: "past"})
	require.NotNil(t, view.Current)
	assert.Equal(t, "past", view.Current.ID)
	assert.True(t, view.Selected)
}

func TestService_OrdersView_NotLoggedIn(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ListOrders(gomock.Any()).Return(rejected[[]model.Order](http.StatusForbidden, "please log in"), nil)

	view := svc.OrdersView(context.Background(), session.NewMemory(""), model.OrdersQuery{})

	assert.Equal(t, orders.StateEmpty, view.State)
	assert.Equal(t, orders.EmptyLink, view.EmptyLink)
}

func TestService_MoreOrders(t *testing.T) {
	svc, api := newTestService(t)
	list := make([]model.Order, 0, 12)
	for i := 0; i < 12; i++ {
		list = append(list, activeOrder(string(rune('a'+i)), testNow.Add(-time.Duration(i+1)*24*time.Hour)))
	}
	api.EXPECT().ListOrders(gomock.Any()).Return(ok(list), nil).Times(2)

	view := svc.MoreOrders(context.Background(), session.NewMemory("t"), model.OrdersQuery{Visible: 5})
	assert.Equal(t, 10, view.Visible)
	assert.Len(t, view.History, 10)
	assert.True(t, view.HasMore)

	view = svc.MoreOrders(context.Background(), session.NewMemory("t"), model.OrdersQuery{Visible: 10})
	assert.Equal(t, 12, view.Visible)
	assert.False(t, view.HasMore)
}

func TestService_DeleteOrder(t *testing.T) {
	t.Run("success refreshes", func(t *testing.T) {
		svc, api := newTestService(t)
		gomock.InOrder(
			api.EXPECT().DeleteOrder(gomock.Any(), "next").Return(ok(model.Order{ID: "next"}), nil),
			api.EXPECT().ListOrders(gomock.Any()).Return(ok([]model.Order{activeOrder("later", testNow.Add(96*time.Hour))}), nil),
		)

		view, apiErr := svc.DeleteOrder(context.Background(), session.NewMemory("t"), "next", model.OrdersQuery{Selected: "next"})

		assert.Nil(t, apiErr)
		require.NotNil(t, view.Current)
		assert.Equal(t, "later", view.Current.ID)
		assert.False(t, view.Selected)
	})

	t.Run("not found", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().DeleteOrder(gomock.Any(), "missing").Return(rejected[model.Order](http.StatusNotFound, ""), nil)

		_, apiErr := svc.DeleteOrder(context.Background(), session.NewMemory("t"), "missing", model.OrdersQuery{})

		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
		assert.Equal(t, model.ErrOrderNotFoundMessage, apiErr.Message)
	})
}

func TestService_CreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, api := newTestService(t)
		input := validOrderInput()
		api.EXPECT().GetRoom(gomock.Any(), "r1").Return(ok(model.Room{ID: "r1", MaxPeople: 4}), nil)
		api.EXPECT().CreateOrder(gomock.Any(), input).Return(ok(model.Order{ID: "o1"}), nil)

		order, apiErr := svc.CreateOrder(context.Background(), session.NewMemory("t"), input)

		assert.Nil(t, apiErr)
		require.NotNil(t, order)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		svc, _ := newTestService(t)
		input := validOrderInput()
		input.CheckInDate = testNow.Add(-48 * time.Hour)

		_, apiErr := svc.CreateOrder(context.Background(), session.NewMemory("t"), input)

		require.NotNil(t, apiErr)
		assert.Equal(t, checkInPastMessage, apiErr.Fields["checkInDate"])
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		svc, _ := newTestService(t)
		input := validOrderInput()
		input.CheckOutDate = input.CheckInDate.Add(-time.Hour)

		_, apiErr := svc.CreateOrder(context.Background(), session.NewMemory("t"), input)

		require.NotNil(t, apiErr)
		assert.Equal(t, checkOutMessage, apiErr.Fields["checkOutDate"])
	})

	t.Run("too many guests", func(t *testing.T) {
		svc, api := newTestService(t)
		input := validOrderInput()
		input.PeopleNum = 5
		api.EXPECT().GetRoom(gomock.Any(), "r1").Return(ok(model.Room{ID: "r1", MaxPeople: 4}), nil)

		_, apiErr := svc.CreateOrder(context.Background(), session.NewMemory("t"), input)

		require.NotNil(t, apiErr)
		assert.Equal(t, model.ErrRoomCapacityMessage, apiErr.Fields["peopleNum"])
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetRoom(gomock.Any(), "r1").Return(rejected[model.Room](http.StatusNotFound, ""), nil)

		_, apiErr := svc.CreateOrder(context.Background(), session.NewMemory("t"), validOrderInput())

		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
		assert.Equal(t, model.ErrRoomNotFoundMessage, apiErr.Message)
	})
}

func TestService_Home(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().ListNews(gomock.Any()).Return(ok([]model.News{{ID: "n1"}}), nil)
		api.EXPECT().ListCulinary(gomock.Any()).Return(ok([]model.Culinary{{ID: "c1"}}), nil)
		api.EXPECT().ListRooms(gomock.Any()).Return(ok([]model.Room{{ID: "r1"}, {ID: "r2"}}), nil)

		home, apiErr := svc.Home(context.Background(), session.NewMemory(""))

		assert.Nil(t, apiErr)
		require.NotNil(t, home)
		assert.Len(t, home.News, 1)
		assert.Len(t, home.Culinary, 1)
		assert.Len(t, home.Rooms, 2)
	})

	t.Run("one source unavailable", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().ListNews(gomock.Any()).Return(hotelapi.Result[[]model.News]{}, errors.New("timeout"))
		api.EXPECT().ListCulinary(gomock.Any()).Return(ok([]model.Culinary{}), nil).AnyTimes()
		api.EXPECT().ListRooms(gomock.Any()).Return(ok([]model.Room{}), nil).AnyTimes()

		home, apiErr := svc.Home(context.Background(), session.NewMemory(""))

		assert.Nil(t, home)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Code)
	})
}

func TestService_ListRooms_NullResult(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ListRooms(gomock.Any()).Return(hotelapi.Result[[]model.Room]{Status: true, StatusCode: http.StatusOK}, nil)

	rooms, apiErr := svc.ListRooms(context.Background(), session.NewMemory(""))

	assert.Nil(t, apiErr)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestService_DetailsWithoutPayloadAreNotFound(t *testing.T) {
	t.Run("news", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetNews(gomock.Any(), "n1").Return(hotelapi.Result[model.News]{Status: true, StatusCode: http.StatusOK}, nil)

		news, apiErr := svc.GetNews(context.Background(), session.NewMemory(""), "n1")

		assert.Nil(t, news)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
		assert.Equal(t, model.ErrNotFoundMessage, apiErr.Message)
	})

	t.Run("culinary", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetCulinary(gomock.Any(), "c1").Return(hotelapi.Result[model.Culinary]{Status: true, StatusCode: http.StatusOK}, nil)

		culinary, apiErr := svc.GetCulinary(context.Background(), session.NewMemory(""), "c1")

		assert.Nil(t, culinary)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
	})

	t.Run("order", func(t *testing.T) {
		svc, api := newTestService(t)
		api.EXPECT().GetOrder(gomock.Any(), "o1").Return(hotelapi.Result[model.Order]{Status: true, StatusCode: http.StatusOK}, nil)

		order, apiErr := svc.GetOrder(context.Background(), session.NewMemory("token"), "o1")

		assert.Nil(t, order)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
		assert.Equal(t, model.ErrOrderNotFoundMessage, apiErr.Message)
	})
}

func TestService_GetNews(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().GetNews(gomock.Any(), "n1").Return(ok(model.News{ID: "n1", Title: "Spring offer"}), nil)

	news, apiErr := svc.GetNews(context.Background(), session.NewMemory(""), "n1")

	assert.Nil(t, apiErr)
	require.NotNil(t, news)
	assert.Equal(t, "Spring offer", news.Title)
}

func TestService_VerifyEmail(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().VerifyEmail(gomock.Any(), "jane@example.com").Return(ok(model.EmailCheck{IsEmailExists: true}), nil)

	check, apiErr := svc.VerifyEmail(context.Background(), session.NewMemory(""), model.EmailDTO{Email: "jane@example.com"})

	assert.Nil(t, apiErr)
	require.NotNil(t, check)
	assert.True(t, check.IsEmailExists)
}

func TestService_ForgotPassword_InvalidCode(t *testing.T) {
	svc, api := newTestService(t)
	input := model.ForgotPasswordDTO{Email: "jane@example.com", Code: "000000", NewPassword: "abc12345"}
	api.EXPECT().ForgotPassword(gomock.Any(), input).Return(rejected[hotelapi.Empty](http.StatusBadRequest, model.ErrInvalidEmailCodeMessage), nil)

	apiErr := svc.ForgotPassword(context.Background(), session.NewMemory(""), input)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, model.ErrInvalidEmailCodeMessage, apiErr.Message)
}
