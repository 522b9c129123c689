package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/pgk/auth"
	"github.com/ibeloyar/hotelportal/pgk/clock"
	"go.uber.org/zap"
)

const (
	errPleaseLogInMessage = "please log in"
	errBadRequestMessage  = "invalid request body"
	emailCodeLength       = 6
	defaultTokenLifetime  = 3 * time.Hour
	defaultSecretKey      = "secret"
)

// Member is the token payload.
type Member struct {
	UserID string `json:"userId"`
}

type Hasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

type Config struct {
	SecretKey     string
	TokenLifetime time.Duration
}

// Server answers the hotel REST contract from a Store.
type Server struct {
	store  *Store
	hasher Hasher
	clock  clock.Clock
	cfg    Config
	lg     *zap.SugaredLogger
}

func NewServer(store *Store, hasher Hasher, c clock.Clock, cfg Config, lg *zap.SugaredLogger) *Server {
	if cfg.SecretKey == "" {
		cfg.SecretKey = defaultSecretKey
	}
	if cfg.TokenLifetime <= 0 {
		cfg.TokenLifetime = defaultTokenLifetime
	}
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Server{
		store:  store,
		hasher: hasher,
		clock:  c,
		cfg:    cfg,
		lg:     lg,
	}
}

func (s *Server) InitRoutes(r *chi.Mux) *chi.Mux {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/user/login", s.login)
		r.Post("/user/signup", s.signup)
		r.Post("/user/forgot", s.forgotPassword)
		r.Post("/verify/email", s.verifyEmail)
		r.Post("/verify/generateEmailCode", s.generateEmailCode)

		// collections answer with and without the trailing slash
		r.Get("/rooms", s.listRooms)
		r.Get("/rooms/", s.listRooms)
		r.Get("/rooms/{id}", s.getRoom)
		r.Get("/home/news", s.listNews)
		r.Get("/home/news/", s.listNews)
		r.Get("/home/news/{id}", s.getNews)
		r.Get("/home/culinary", s.listCulinary)
		r.Get("/home/culinary/", s.listCulinary)
		r.Get("/home/culinary/{id}", s.getCulinary)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware[Member](s.cfg.SecretKey, s.forbidden))

			r.Get("/user", s.getUser)
			r.Put("/user/", s.updateUser)
			r.Get("/user/check", s.checkLogin)

			r.Get("/orders", s.listOrders)
			r.Get("/orders/", s.listOrders)
			r.Post("/orders", s.createOrder)
			r.Get("/orders/{id}", s.getOrder)
			r.Delete("/orders/{id}", s.deleteOrder)
		})
	})

	return r
}

func (s *Server) issueToken(userID string) (string, error) {
	return auth.GenerateToken(Member{UserID: userID}, s.clock.Now(), s.cfg.TokenLifetime, s.cfg.SecretKey)
}

func (s *Server) forbidden(w http.ResponseWriter, _ *http.Request) {
	writeFail(w, http.StatusForbidden, errPleaseLogInMessage)
}

// member resolves the token owner; a token of an unknown user is rejected.
func (s *Server) member(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	info := auth.GetTokenInfo[Member](r)
	if info == nil {
		s.forbidden(w, r)
		return model.User{}, false
	}

	user, ok := s.store.UserByID(info.UserID)
	if !ok {
		s.forbidden(w, r)
		return model.User{}, false
	}

	return user, true
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body model.LoginDTO
	if !decode(w, r, &body) {
		return
	}

	user, hash, ok := s.store.Credentials(body.Email)
	if !ok || !s.hasher.Check(body.Password, hash) {
		writeFail(w, http.StatusBadRequest, model.ErrInvalidLoginOrPasswordMessage)
		return
	}

	s.writeWithToken(w, user.ID, user)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var body model.SignupDTO
	if !decode(w, r, &body) {
		return
	}

	if !strings.Contains(body.Email, "@") || body.Name == "" {
		writeFail(w, http.StatusBadRequest, model.ErrValidationMessage)
		return
	}

	hash, err := s.hasher.Hash(body.Password)
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.store.CreateUser(model.User{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Birthday: body.Birthday,
		Address:  body.Address,
	}, hash, s.clock.Now())
	if err != nil {
		if errors.Is(err, model.ErrUserAlreadyExist) {
			writeFail(w, http.StatusBadRequest, model.ErrUserAlreadyExistMessage)
			return
		}
		s.lg.Errorf("create user: %v", err)
		writeFail(w, http.StatusInternalServerError, model.ErrInternalServerMessage)
		return
	}

	s.writeWithToken(w, user.ID, user)
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var body model.ForgotPasswordDTO
	if !decode(w, r, &body) {
		return
	}

	user, _, ok := s.store.Credentials(body.Email)
	if !ok {
		writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
		return
	}

	if !s.store.UseEmailCode(body.Email, body.Code) {
		writeFail(w, http.StatusBadRequest, model.ErrInvalidEmailCodeMessage)
		return
	}

	hash, err := s.hasher.Hash(body.NewPassword)
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SetPasswordHash(user.ID, hash, s.clock.Now()); err != nil {
		writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
		return
	}

	writeOK(w, nil, "")
}

func (s *Server) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var body model.EmailDTO
	if !decode(w, r, &body) {
		return
	}

	if !strings.Contains(body.Email, "@") {
		writeFail(w, http.StatusBadRequest, errBadRequestMessage)
		return
	}

	writeOK(w, model.EmailCheck{IsEmailExists: s.store.EmailExists(body.Email)}, "")
}

func (s *Server) generateEmailCode(w http.ResponseWriter, r *http.Request) {
	var body model.EmailDTO
	if !decode(w, r, &body) {
		return
	}

	if !s.store.EmailExists(body.Email) {
		writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
		return
	}

	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:emailCodeLength])
	s.store.SetEmailCode(body.Email, code)
	s.lg.Infof("verification code for %s: %s", body.Email, code)

	writeOK(w, nil, "")
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	s.writeWithToken(w, user.ID, user)
}

func (s *Server) checkLogin(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	s.writeWithToken(w, user.ID, nil)
}

// updateUser serves both the profile form and the password form.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	var body struct {
		model.UpdateProfileDTO
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if !decode(w, r, &body) {
		return
	}

	if body.NewPassword == "" {
		if _, err := s.store.UpdateProfile(user.ID, body.UpdateProfileDTO, s.clock.Now()); err != nil {
			writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
			return
		}
		writeOK(w, nil, "")
		return
	}

	_, hash, _ := s.store.Credentials(user.Email)
	if !s.hasher.Check(body.OldPassword, hash) {
		writeFail(w, http.StatusBadRequest, model.ErrInvalidOldPasswordMessage)
		return
	}

	newHash, err := s.hasher.Hash(body.NewPassword)
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SetPasswordHash(user.ID, newHash, s.clock.Now()); err != nil {
		writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
		return
	}

	writeOK(w, nil, "")
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	writeOK(w, s.store.OrdersByUser(user.ID), "")
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	order, ok := s.store.Order(user.ID, chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusNotFound, model.ErrOrderNotFoundMessage)
		return
	}

	writeOK(w, order, "")
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	order, err := s.store.CancelOrder(user.ID, chi.URLParam(r, "id"), s.clock.Now())
	if err != nil {
		writeFail(w, http.StatusNotFound, model.ErrOrderNotFoundMessage)
		return
	}

	writeOK(w, order, "")
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := s.member(w, r)
	if !ok {
		return
	}

	var body model.OrderPostDTO
	if !decode(w, r, &body) {
		return
	}

	if body.RoomID == "" || body.PeopleNum < 1 || !body.CheckOutDate.After(body.CheckInDate) {
		writeFail(w, http.StatusBadRequest, model.ErrValidationMessage)
		return
	}

	room, ok := s.store.Room(body.RoomID)
	if !ok {
		writeFail(w, http.StatusNotFound, model.ErrRoomNotFoundMessage)
		return
	}
	if body.PeopleNum > room.MaxPeople {
		writeFail(w, http.StatusBadRequest, model.ErrRoomCapacityMessage)
		return
	}

	order, err := s.store.CreateOrder(user.ID, body, s.clock.Now())
	if err != nil {
		writeFail(w, http.StatusNotFound, model.ErrRoomNotFoundMessage)
		return
	}

	writeOK(w, order, "")
}

func (s *Server) listRooms(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, s.store.Rooms(), "")
}

func (s *Server) getRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := s.store.Room(chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusNotFound, model.ErrRoomNotFoundMessage)
		return
	}

	writeOK(w, room, "")
}

func (s *Server) listNews(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, s.store.News(), "")
}

func (s *Server) getNews(w http.ResponseWriter, r *http.Request) {
	news, ok := s.store.NewsItem(chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
		return
	}

	writeOK(w, news, "")
}

func (s *Server) listCulinary(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, s.store.Culinary(), "")
}

func (s *Server) getCulinary(w http.ResponseWriter, r *http.Request) {
	culinary, ok := s.store.CulinaryItem(chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusNotFound, model.ErrNotFoundMessage)
		return
	}

	writeOK(w, culinary, "")
}

// writeWithToken answers with a freshly issued token for the user.
func (s *Server) writeWithToken(w http.ResponseWriter, userID string, result any) {
	token, err := s.issueToken(userID)
	if err != nil {
		s.lg.Errorf("issue token: %v", err)
		writeFail(w, http.StatusInternalServerError, model.ErrInternalServerMessage)
		return
	}

	writeOK(w, result, token)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFail(w, http.StatusBadRequest, errBadRequestMessage)
		return false
	}

	return true
}

func writeOK(w http.ResponseWriter, result any, token string) {
	env := model.Envelope{Status: true, Token: token}

	if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			writeFail(w, http.StatusInternalServerError, model.ErrInternalServerMessage)
			return
		}
		env.Result = raw
	}

	writeEnvelope(w, http.StatusOK, env)
}

func writeFail(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, code, model.Envelope{
		StatusCode: code,
		Status:     false,
		Message:    message,
	})
}

func writeEnvelope(w http.ResponseWriter, code int, env model.Envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
