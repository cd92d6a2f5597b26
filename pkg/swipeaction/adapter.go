package swipeaction

// SwipeActionListener is the application side of swipe handling.
type SwipeActionListener interface {
	// HasActions reports whether the row at position can be swiped.
	HasActions(position int) bool
	// ShouldDismiss is asked after a committed row has slid out. Returning
	// false slides it back; it is still passed to OnSwipe.
	ShouldDismiss(position int, direction Direction) bool
	// OnSwipe receives each batch, positions in descending order.
	OnSwipe(positions []int, directions []Direction)
}

// BackgroundFactory creates the background widget for one row and direction.
type BackgroundFactory func(direction Direction) Background

// Adapter is the application-facing entry point. It keeps the per-direction
// background factories used when rows are created, forwards engine callbacks
// to a SwipeActionListener and exposes the tunables as chainable setters.
//
//	adapter := swipeaction.NewAdapter(nil).
//	    SetSwipeActionListener(app).
//	    AddBackground(swipeaction.DirectionNormalLeft, newArchiveBackground).
//	    SetFadeOut(true)
//	listener := adapter.Attach(list, animator)
type Adapter struct {
	cfg       *GeometryConfig
	listener  SwipeActionListener
	factories map[Direction]BackgroundFactory
	touch     *Listener
}

// NewAdapter creates an adapter. A nil cfg uses the defaults.
func NewAdapter(cfg *GeometryConfig) *Adapter {
	if cfg == nil {
		cfg = NewGeometryConfig()
	}
	return &Adapter{
		cfg:       cfg,
		factories: make(map[Direction]BackgroundFactory),
	}
}

// Attach creates the touch listener for list. Calling it again replaces the
// previous listener.
func (a *Adapter) Attach(list List, animator Animator) *Listener {
	a.touch = NewListener(list, a, animator, a.cfg)
	return a.touch
}

// Listener returns the attached touch listener, or nil.
func (a *Adapter) Listener() *Listener {
	return a.touch
}

// Config returns the configuration shared with the listener.
func (a *Adapter) Config() *GeometryConfig {
	return a.cfg
}

// SetSwipeActionListener sets the application listener. Without one, rows
// report no actions.
func (a *Adapter) SetSwipeActionListener(l SwipeActionListener) *Adapter {
	a.listener = l
	return a
}

// AddBackground registers the factory used to build the background for d on
// every new row. Directions outside AllDirections are ignored.
func (a *Adapter) AddBackground(d Direction, factory BackgroundFactory) *Adapter {
	if d.Valid() && factory != nil {
		a.factories[d] = factory
	}
	return a
}

// NewRow wraps a host row and gives it its own backgrounds.
func (a *Adapter) NewRow(frame, content View) *SwipeRow {
	row := NewSwipeRow(frame, content)
	for _, d := range allDirections {
		if factory, ok := a.factories[d]; ok {
			row.AddBackground(d, factory(d))
		}
	}
	return row
}

// SetFadeOut fades rows as they are dragged and slid out.
func (a *Adapter) SetFadeOut(enabled bool) *Adapter {
	a.cfg.SetFadeOut(enabled)
	return a
}

// SetFixedBackgrounds keeps backgrounds still and moves only the content.
func (a *Adapter) SetFixedBackgrounds(enabled bool) *Adapter {
	a.cfg.SetFixedBackgrounds(enabled)
	return a
}

// SetDimBackgrounds dims backgrounds until the normal threshold is passed.
func (a *Adapter) SetDimBackgrounds(enabled bool) *Adapter {
	a.cfg.SetDimBackgrounds(enabled)
	return a
}

// SetFarSwipeFraction fails with ErrInvalidArgument outside [0,1].
func (a *Adapter) SetFarSwipeFraction(f float64) error {
	return a.cfg.SetFarSwipeFraction(f)
}

// SetNormalSwipeFraction fails with ErrInvalidArgument outside [0,1].
func (a *Adapter) SetNormalSwipeFraction(f float64) error {
	return a.cfg.SetNormalSwipeFraction(f)
}

// HasActions implements ActionCallbacks. Without a listener no row has actions.
func (a *Adapter) HasActions(position int) bool {
	return a.listener != nil && a.listener.HasActions(position)
}

// OnPreAction implements ActionCallbacks by asking ShouldDismiss.
func (a *Adapter) OnPreAction(position int, direction Direction) bool {
	return a.listener != nil && a.listener.ShouldDismiss(position, direction)
}

// OnAction implements ActionCallbacks by forwarding the batch to OnSwipe.
func (a *Adapter) OnAction(positions []int, directions []Direction) {
	if a.listener != nil {
		a.listener.OnSwipe(positions, directions)
	}
}
