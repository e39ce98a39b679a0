package tui

import "go.uber.org/zap"

// navResult reports what a navigation request did.
type navResult int

const (
	navChanged navResult = iota
	navBlocked
	navNotFound
)

// router is the page state machine. Programmatic requests and route-id
// changes go through the same Navigate call.
type router struct {
	current  Page
	notFound string
	gate     func() bool
	log      *zap.Logger
}

// newRouter starts on the setup page. gate reports whether the gated pages
// are reachable (patient name set).
func newRouter(gate func() bool, log *zap.Logger) *router {
	if log == nil {
		log = zap.NewNop()
	}
	return &router{current: PageSetup, gate: gate, log: log}
}

// Navigate moves to the page under id. Unknown ids switch the view to the
// visible not-found fallback and log; they never fail hard. Before setup
// completes every page except setup is refused.
func (r *router) Navigate(id string) navResult {
	page, ok := ParsePage(id)
	if !ok {
		r.notFound = id
		r.log.Error("no page registered for id", zap.String("id", id))
		return navNotFound
	}
	if page != PageSetup && !r.gate() {
		r.log.Info("navigation blocked before setup", zap.String("id", id))
		return navBlocked
	}
	r.current = page
	r.notFound = ""
	return navChanged
}

// Current is the active page.
func (r *router) Current() Page { return r.current }

// NotFound returns the unknown id when the fallback view is showing.
func (r *router) NotFound() (string, bool) { return r.notFound, r.notFound != "" }
