package orders

import (
	"context"
	"sync"

	"github.com/ibeloyar/hotelportal/internal/hotelapi"
	"github.com/ibeloyar/hotelportal/internal/model"
	"github.com/ibeloyar/hotelportal/pgk/clock"
	"go.uber.org/zap"
)

// EmptyLink is where the empty order page sends the member.
const EmptyLink = "/rooms"

type Fetcher interface {
	ListOrders(ctx context.Context) (hotelapi.Result[[]model.Order], error)
	DeleteOrder(ctx context.Context, id string) (hotelapi.Result[model.Order], error)
}

type State int

const (
	StateEmpty State = iota
	StateLoading
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	default:
		return "empty"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Row is an order as the page shows it, with the length of the stay.
type Row struct {
	model.Order
	Nights int `json:"nights"`
}

func newRow(o model.Order) Row {
	return Row{Order: o, Nights: o.Nights()}
}

type View struct {
	State     State  `json:"state"`
	Current   *Row   `json:"current"`
	Upcoming  bool   `json:"upcoming"`
	Selected  bool   `json:"selected"`
	History   []Row  `json:"history"`
	Visible   int    `json:"visible"`
	Total     int    `json:"total"`
	HasMore   bool   `json:"hasMore"`
	EmptyLink string `json:"emptyLink,omitempty"`
}

// Page is the state of one order-list view.
//
// Fetches are not fenced: when two loads overlap, whichever resolves last
// overwrites the orders.
type Page struct {
	fetcher  Fetcher
	clock    clock.Clock
	lg       *zap.SugaredLogger
	pageSize int

	mu       sync.Mutex
	state    State
	orders   []model.Order
	current  *model.Order
	selected bool
	visible  int
}

func NewPage(f Fetcher, c clock.Clock, lg *zap.SugaredLogger, pageSize int) *Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Page{
		fetcher:  f,
		clock:    c,
		lg:       lg,
		pageSize: pageSize,
		state:    StateEmpty,
		visible:  pageSize,
	}
}

// Load fetches the orders, keeps the active ones and points the page at the
// upcoming stay. A failed fetch leaves the page empty.
func (p *Page) Load(ctx context.Context) {
	p.mu.Lock()
	p.state = StateLoading
	p.mu.Unlock()

	active := p.fetch(ctx)
	upcoming := SelectUpcoming(active, p.clock.Now())

	p.mu.Lock()
	defer p.mu.Unlock()

	p.orders = active
	p.current = upcoming
	p.selected = false

	if len(active) == 0 {
		p.state = StateEmpty
		return
	}
	p.state = StatePopulated
}

func (p *Page) fetch(ctx context.Context) []model.Order {
	res, err := p.fetcher.ListOrders(ctx)
	if err != nil {
		p.lg.Warnf("failed to load orders: %v", err)
		return nil
	}

	if apiErr := res.Err(); apiErr != nil {
		p.lg.Warnf("orders request rejected: %d %s", apiErr.Code, apiErr.Message)
		return nil
	}

	if res.Result == nil {
		return nil
	}

	return FilterActive(*res.Result)
}

// SelectOrder shows the given order instead of the upcoming one. It reports
// false and changes nothing when the id is not on the page.
func (p *Page) SelectOrder(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.orders {
		if p.orders[i].ID == id {
			order := p.orders[i]
			p.current = &order
			p.selected = true
			return true
		}
	}

	return false
}

func (p *Page) ShowMore() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visible = ExpandVisibleWindow(p.visible, len(p.orders), p.pageSize)
	return p.visible
}

// RestoreWindow reapplies a visible count the browser already reached.
// The window never shrinks and never grows past the loaded orders.
func (p *Page) RestoreWindow(visible int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if visible > len(p.orders) {
		visible = len(p.orders)
	}
	if visible > p.visible {
		p.visible = visible
	}
}

// RefreshAfterMutation drops the current selection and derives everything
// again from a fresh fetch.
func (p *Page) RefreshAfterMutation(ctx context.Context) {
	p.mu.Lock()
	p.current = nil
	p.selected = false
	p.mu.Unlock()

	p.Load(ctx)
}

// Delete removes an order through the hotel service and refreshes the page
// when the service accepted it.
func (p *Page) Delete(ctx context.Context, id string) (hotelapi.Result[model.Order], error) {
	res, err := p.fetcher.DeleteOrder(ctx, id)
	if err != nil {
		return res, err
	}

	if res.Err() == nil {
		p.RefreshAfterMutation(ctx)
	}

	return res, nil
}

func (p *Page) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	view := View{
		State:   p.state,
		Visible: p.visible,
		Total:   len(p.orders),
		History: []Row{},
	}

	if p.state == StateEmpty {
		view.EmptyLink = EmptyLink
	}
	if p.state != StatePopulated {
		return view
	}

	shown := p.visible
	if shown > len(p.orders) {
		shown = len(p.orders)
	}
	for _, o := range p.orders[:shown] {
		view.History = append(view.History, newRow(o))
	}
	view.HasMore = len(p.orders) > p.pageSize && p.visible < len(p.orders)

	if p.current != nil {
		current := newRow(*p.current)
		view.Current = &current
		view.Selected = p.selected
		view.Upcoming = !p.selected
	}

	return view
}
