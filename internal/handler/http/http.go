package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jgivc/docviewer/internal/common"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/jgivc/docviewer/internal/service/resolver"
	"github.com/jgivc/docviewer/internal/service/viewer"
)

type Navigator interface {
	Dispatch(ctx context.Context, path string) viewer.View
}

type PageRenderer interface {
	RenderListing(lst *entity.Listing) (string, error)
	RenderDocument(doc *entity.Document) (string, error)
	RenderNotFound(path string) (string, error)
	RenderError(path, message string) (string, error)
}

type ManifestService interface {
	Root() (*entity.Node, error)
	Rebuild(ctx context.Context) error
}

type ContentRepository interface {
	Fetch(ctx context.Context, segments []string) ([]byte, error)
}

// NewTreeHandler serves both routes of the viewer: the exact root route and
// the catch-all tree route. Whatever happens inside dispatch, the response is
// one of: directory listing, rendered document, not-found page or a
// human-readable load-error page.
func NewTreeHandler(nav Navigator, tpl PageRenderer, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "TreeHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		view := nav.Dispatch(r.Context(), r.PathValue("path"))

		switch view.State {
		case viewer.StateNotFound:
			content, err := tpl.RenderNotFound(view.Path)
			writePage(w, http.StatusNotFound, content, err, log)
		case viewer.StateAtRoot, viewer.StateAtDirectory:
			content, err := tpl.RenderListing(view.Listing)
			writePage(w, http.StatusOK, content, err, log)
		case viewer.StateAtFile:
			writeDocument(w, r, view, tpl, log)
		default:
			log.Error("Unexpected view state", slog.String("state", view.State.String()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}
}

func writeDocument(w http.ResponseWriter, r *http.Request, view viewer.View, tpl PageRenderer, log *slog.Logger) {
	if view.FetchState != viewer.FetchStateRendered {
		log.Error("Cannot load document", slog.String("path", view.Path), slog.Any("error", view.Err))

		status := http.StatusBadGateway
		if errors.Is(view.Err, common.ErrContentNotFoundError) {
			status = http.StatusNotFound
		}

		content, err := tpl.RenderError(view.Path, "The document content could not be loaded.")
		writePage(w, status, content, err, log)

		return
	}

	etag := fmt.Sprintf("%q", view.Document.Hash)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)

		return
	}

	w.Header().Set("ETag", etag)
	content, err := tpl.RenderDocument(view.Document)
	writePage(w, http.StatusOK, content, err, log)
}

func writePage(w http.ResponseWriter, status int, content string, err error, log *slog.Logger) {
	if err != nil {
		log.Error("Cannot render page", slog.Any("error", err))
		http.Error(w, "Internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(content))
}

// NewRawHandler exposes the content-retrieval endpoint: the raw markdown of
// a file, addressed by its tree path. The HTTP content repository of another
// viewer instance can point straight at it.
func NewRawHandler(repo ContentRepository, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "RawHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		segments := resolver.Split(r.PathValue("path"))

		data, err := repo.Fetch(r.Context(), segments)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrContentNotFoundError):
				http.Error(w, "Not found", http.StatusNotFound)
			default:
				log.Error("Cannot fetch content", slog.Any("error", err))
				http.Error(w, "Cannot fetch content", http.StatusInternalServerError)
			}

			return
		}

		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(data)
	}
}

func NewManifestHandler(srv ManifestService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "ManifestHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		root, err := srv.Root()
		if err != nil {
			http.Error(w, "Manifest is not ready", http.StatusServiceUnavailable)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(root); err != nil {
			log.Error("Cannot encode manifest", slog.Any("error", err))
		}
	}
}

func NewRebuildHandler(srv ManifestService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "RebuildHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		if err := srv.Rebuild(r.Context()); err != nil {
			switch {
			case errors.Is(err, common.ErrScanProcessHasAlreadyStarted):
				http.Error(w, "Rebuild has already started", http.StatusConflict)
			default:
				log.Error("Cannot rebuild manifest", slog.Any("error", err))
				http.Error(w, "Cannot rebuild manifest", http.StatusInternalServerError)
			}

			return
		}

		w.Write([]byte("done"))
	}
}
