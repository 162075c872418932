package viewer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/jgivc/docviewer/internal/service/resolver"
)

const (
	StateAtRoot State = iota
	StateAtDirectory
	StateAtFile
	StateNotFound
)

const (
	FetchStateIdle FetchState = iota
	FetchStateFetching
	FetchStateRendered
	FetchStateFailed
)

type State int

func (s State) String() string {
	return [...]string{"AtRoot", "AtDirectory", "AtFile", "NotFound"}[s]
}

// FetchState tracks the file-view sub-machine: Idle -> Fetching ->
// Rendered or Failed. Every navigation to a file restarts it.
type FetchState int

func (s FetchState) String() string {
	return [...]string{"Idle", "Fetching", "Rendered", "Failed"}[s]
}

// View is what the dispatcher hands to the presentation layer. Exactly one
// of Listing/Document is set, depending on State and FetchState.
type View struct {
	State      State
	FetchState FetchState
	Path       string
	Listing    *entity.Listing
	Document   *entity.Document
	Err        error
}

type ManifestService interface {
	Root() (*entity.Node, error)
}

type ListingService interface {
	Listing(node *entity.Node, segments []string) *entity.Listing
}

type PageService interface {
	GetDocument(ctx context.Context, segments []string) (*entity.Document, error)
}

// Viewer is the navigation dispatcher. It is long-lived: every navigation
// re-enters it and replaces the current view. Each in-flight content fetch
// carries the token of the navigation that started it; a result whose token
// no longer matches the live navigation is discarded, so a slow fetch can
// never overwrite the view of a later navigation.
type Viewer struct {
	mu        sync.Mutex
	manifests ManifestService
	listings  ListingService
	pages     PageService
	timeout   time.Duration
	current   View
	token     uuid.UUID
	log       *slog.Logger
}

func NewViewer(manifests ManifestService, listings ListingService, pages PageService, timeout time.Duration, log *slog.Logger) *Viewer {
	return &Viewer{
		manifests: manifests,
		listings:  listings,
		pages:     pages,
		timeout:   timeout,
		log:       log.With(slog.String("item", "Viewer")),
	}
}

// Dispatch resolves a navigation path and, for file nodes, fetches and
// renders the document before returning. It does not touch the session
// state, so it is safe for concurrent per-request use.
func (v *Viewer) Dispatch(ctx context.Context, path string) View {
	view, segments, node := v.resolve(path)
	if node == nil || node.Type != entity.NodeFile {
		return view
	}

	doc, err := v.pages.GetDocument(ctx, segments)
	if err != nil {
		view.FetchState = FetchStateFailed
		view.Err = err

		return view
	}

	view.FetchState = FetchStateRendered
	view.Document = doc

	return view
}

// Navigate starts a navigation on the session. Directory views and misses
// settle synchronously; a file view is returned in the Fetching state and
// settles in the background. Current reflects the latest settled state.
func (v *Viewer) Navigate(path string) View {
	view, segments, node := v.resolve(path)

	v.mu.Lock()
	v.token = uuid.New()
	v.current = view
	token := v.token
	v.mu.Unlock()

	if node != nil && node.Type == entity.NodeFile {
		go v.fetch(token, segments)
	}

	return view
}

func (v *Viewer) Current() View {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

func (v *Viewer) resolve(path string) (View, []string, *entity.Node) {
	segments := resolver.Split(path)

	view := View{Path: path}

	root, err := v.manifests.Root()
	if err != nil {
		v.log.Error("No manifest to resolve against", slog.Any("error", err))
		view.State = StateNotFound

		return view, segments, nil
	}

	node, ok := resolver.Resolve(root, segments)
	if !ok {
		view.State = StateNotFound

		return view, segments, nil
	}

	switch node.Type {
	case entity.NodeDirectory:
		if len(segments) == 0 {
			view.State = StateAtRoot
		} else {
			view.State = StateAtDirectory
		}
		view.Listing = v.listings.Listing(node, segments)
	case entity.NodeFile:
		view.State = StateAtFile
		view.FetchState = FetchStateFetching
	}

	return view, segments, node
}

func (v *Viewer) fetch(token uuid.UUID, segments []string) {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	doc, err := v.pages.GetDocument(ctx, segments)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.token != token {
		v.log.Debug("Discard stale fetch result", slog.String("path", v.current.Path))

		return
	}

	if err != nil {
		v.current.FetchState = FetchStateFailed
		v.current.Err = err

		return
	}

	v.current.FetchState = FetchStateRendered
	v.current.Document = doc
}
