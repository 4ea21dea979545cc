package pagebar

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Observer is notified with the new page after every navigation that changed
// the current page.
type Observer func(page int)

// Controller holds the current page of a page selector and applies
// navigation to it.
//
// All methods are safe for concurrent use. Navigation calls are applied one
// at a time in the order they acquire the controller, and the observer sees
// the resulting pages in that same order. The observer may read the
// controller but must not navigate from inside the callback.
//
// Controllers are built with NewController. The zero Controller has no pages:
// it never moves and its Range is empty.
type Controller struct {
	// navMu serializes navigation together with its observer call. current
	// only changes while it is held.
	navMu sync.Mutex
	// mu guards current, observer and logger. Reads take only mu.
	mu sync.Mutex

	total   int
	current int

	observer Observer
	logger   zerolog.Logger
}

// NewController returns a controller for total pages positioned on current.
// Returns an error wrapping ErrInvalidArgument when total < 1 and one
// wrapping ErrInvalidPage when current is outside [1, total].
func NewController(total, current int) (*Controller, error) {
	if total < 1 {
		return nil, fmt.Errorf("cannot create controller for %d pages: %w", total, ErrInvalidArgument)
	}

	if err := checkPage(current, total); err != nil {
		return nil, fmt.Errorf("cannot create controller: %w", err)
	}

	return &Controller{
		total:   total,
		current: current,
		logger:  zerolog.Nop(),
	}, nil
}

// WithObserver sets the callback invoked after each page change. A nil
// receiver yields a new single-page controller, so call NewController first.
//
// The observer may read the controller but must not navigate it: calling
// Prev, Next, Jump or Select from inside the observer deadlocks.
func (c *Controller) WithObserver(observer Observer) *Controller {
	if c == nil {
		c = newSinglePageController()
	}

	c.mu.Lock()
	c.observer = observer
	c.mu.Unlock()

	return c
}

// WithLogger sets the logger used to trace navigation. A nil receiver yields
// a new single-page controller.
func (c *Controller) WithLogger(logger zerolog.Logger) *Controller {
	if c == nil {
		c = newSinglePageController()
	}

	c.mu.Lock()
	c.logger = logger.With().Str("component", "pagebar.controller").Logger()
	c.mu.Unlock()

	return c
}

func newSinglePageController() *Controller {
	return &Controller{total: 1, current: 1, logger: zerolog.Nop()}
}

// Prev moves to the previous page. Returns false and does nothing on the
// first page.
func (c *Controller) Prev() bool {
	return c.move(-1)
}

// Next moves to the next page. Returns false and does nothing on the last
// page.
func (c *Controller) Next() bool {
	return c.move(1)
}

// Jump moves to page. Returns an error wrapping ErrInvalidPage and leaves the
// current page unchanged when page is outside [1, total]. Jumping to the
// current page succeeds without notifying the observer.
func (c *Controller) Jump(page int) error {
	c.navMu.Lock()
	defer c.navMu.Unlock()

	if err := checkPage(page, c.total); err != nil {
		c.mu.Lock()
		logger := c.logger
		c.mu.Unlock()

		logger.Debug().
			Int("page", page).
			Int("total", c.total).
			Msg("jump rejected")

		return fmt.Errorf("cannot jump: %w", err)
	}

	c.transition(page)

	return nil
}

// Select jumps to the idx-th page of group, the path taken when a page is
// picked from an overflow list. It goes through the same validation and
// notification as Jump.
func (c *Controller) Select(group Item, idx int) error {
	page, ok := group.At(idx)
	if !ok {
		return fmt.Errorf("cannot select entry %d of group %s: %w", idx, group, ErrInvalidPage)
	}

	return c.Jump(page)
}

func (c *Controller) move(delta int) bool {
	c.navMu.Lock()
	defer c.navMu.Unlock()

	page := c.CurrentPage() + delta
	if page < 1 || page > c.total {
		return false
	}

	return c.transition(page)
}

// transition sets the current page and notifies the observer when the page
// changed. It must be called with navMu held. mu is released before the
// observer runs.
func (c *Controller) transition(page int) bool {
	c.mu.Lock()
	from := c.current
	if page == from {
		c.mu.Unlock()
		return false
	}

	c.current = page
	observer := c.observer
	logger := c.logger
	c.mu.Unlock()

	logger.Debug().
		Int("from", from).
		Int("page", page).
		Int("total", c.total).
		Msg("page changed")

	if observer != nil {
		observer(page)
	}

	return true
}

// CurrentPage returns the current page.
func (c *Controller) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// Total returns the page count. It never changes for a controller.
func (c *Controller) Total() int {
	return c.total
}

// HasPrev reports whether Prev would change the page.
func (c *Controller) HasPrev() bool {
	return c.State().HasPrev
}

// HasNext reports whether Next would change the page.
func (c *Controller) HasNext() bool {
	return c.State().HasNext
}

// Snapshot is a consistent view of a controller.
type Snapshot struct {
	Total       int
	CurrentPage int
	HasPrev     bool
	HasNext     bool
}

// State returns the controller state read at a single point in time.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Total:       c.total,
		CurrentPage: c.current,
		HasPrev:     c.current > 1,
		HasNext:     c.current < c.total,
	}
}

// Range computes the slots for the current page. The range is derived on
// every call and never cached. It is empty for the zero Controller.
func (c *Controller) Range() Range {
	r, err := ComputeRange(c.total, c.CurrentPage())
	if err != nil {
		return Range{}
	}

	return r
}

// GroupPages returns the pages of group as a new ascending slice, ready to be
// windowed. group itself is not modified. Returns an error wrapping
// ErrInvalidPage when group covers a page outside [1, total].
func (c *Controller) GroupPages(group Item) ([]int, error) {
	if group.Empty() {
		return group.Pages(), nil
	}

	first, _ := group.At(0)
	last, _ := group.At(group.Len() - 1)
	for _, page := range []int{first, last} {
		if err := checkPage(page, c.total); err != nil {
			return nil, fmt.Errorf("cannot list group %s: %w", group, err)
		}
	}

	return group.Pages(), nil
}

func checkPage(page, total int) error {
	if page < 1 || page > total {
		return fmt.Errorf("page %d is outside [1, %d]: %w", page, total, ErrInvalidPage)
	}

	return nil
}
