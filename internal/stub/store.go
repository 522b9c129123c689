package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/hotelportal/internal/model"
)

type account struct {
	user         model.User
	passwordHash string
}

// Store keeps the hotel data in process memory.
type Store struct {
	mu         sync.RWMutex
	accounts   map[string]*account
	byEmail    map[string]string
	orders     map[string]*model.Order
	rooms      []model.Room
	news       []model.News
	culinary   []model.Culinary
	emailCodes map[string]string
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]*account),
		byEmail:    make(map[string]string),
		orders:     make(map[string]*model.Order),
		emailCodes: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) CreateUser(user model.User, passwordHash string, now time.Time) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, ok := s.byEmail[email]; ok {
		return model.User{}, model.ErrUserAlreadyExist
	}

	user.ID = uuid.NewString()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	s.accounts[user.ID] = &account{user: user, passwordHash: passwordHash}
	s.byEmail[email] = user.ID

	return user, nil
}

func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return model.User{}, false
	}

	return acc.user, true
}

// Credentials returns the user and password hash registered for the e-mail.
func (s *Store) Credentials(email string) (model.User, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return model.User{}, "", false
	}

	acc := s.accounts[id]
	return acc.user, acc.passwordHash, true
}

func (s *Store) EmailExists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byEmail[normalizeEmail(email)]
	return ok
}

func (s *Store) UpdateProfile(id string, input model.UpdateProfileDTO, now time.Time) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if input.Name != "" {
		acc.user.Name = input.Name
	}
	if input.Phone != "" {
		acc.user.Phone = input.Phone
	}
	if input.Birthday != "" {
		acc.user.Birthday = input.Birthday
	}
	if input.Address.Detail != "" {
		acc.user.Address = input.Address
	}
	acc.user.UpdatedAt = now

	return acc.user, nil
}

func (s *Store) SetPasswordHash(id, passwordHash string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return model.ErrNotFound
	}

	acc.passwordHash = passwordHash
	acc.user.UpdatedAt = now

	return nil
}

func (s *Store) SetEmailCode(email, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.emailCodes[normalizeEmail(email)] = code
}

// EmailCode returns the last verification code generated for the e-mail.
func (s *Store) EmailCode(email string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.emailCodes[normalizeEmail(email)]
}

// UseEmailCode consumes a matching code.
func (s *Store) UseEmailCode(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = normalizeEmail(email)
	stored, ok := s.emailCodes[email]
	if !ok || stored != code {
		return false
	}

	delete(s.emailCodes, email)
	return true
}

func (s *Store) CreateOrder(userID string, input model.OrderPostDTO, now time.Time) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.roomLocked(input.RoomID)
	if !ok {
		return model.Order{}, model.ErrNotFound
	}

	order := model.Order{
		ID:           uuid.NewString(),
		RoomID:       room,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		PeopleNum:    input.PeopleNum,
		UserInfo:     input.UserInfo,
		OrderUserID:  userID,
		Status:       model.OrderStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.orders[order.ID] = &order

	return order, nil
}

// OrdersByUser returns every order of the user, cancelled ones included, oldest first.
func (s *Store) OrdersByUser(userID string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.OrderUserID == userID {
			result = append(result, *o)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

func (s *Store) Order(userID, id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok || o.OrderUserID != userID {
		return model.Order{}, false
	}

	return *o, true
}

func (s *Store) CancelOrder(userID, id string, now time.Time) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok || o.OrderUserID != userID || o.Status == model.OrderStatusCancelled {
		return model.Order{}, model.ErrNotFound
	}

	o.Status = model.OrderStatusCancelled
	o.UpdatedAt = now

	return *o, nil
}

func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Room{}, s.rooms...)
}

func (s *Store) Room(id string) (model.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roomLocked(id)
}

func (s *Store) roomLocked(id string) (model.Room, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}

	return model.Room{}, false
}

func (s *Store) News() []model.News {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.News{}, s.news...)
}

func (s *Store) NewsItem(id string) (model.News, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.news {
		if n.ID == id {
			return n, true
		}
	}

	return model.News{}, false
}

func (s *Store) Culinary() []model.Culinary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Culinary{}, s.culinary...)
}

func (s *Store) CulinaryItem(id string) (model.Culinary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.culinary {
		if c.ID == id {
			return c, true
		}
	}

	return model.Culinary{}, false
}
