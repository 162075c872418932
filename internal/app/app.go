package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jgivc/docviewer/internal/adapter/fsadapter"
	"github.com/jgivc/docviewer/internal/adapter/mdadapter"
	"github.com/jgivc/docviewer/internal/adapter/tpladapter"
	"github.com/jgivc/docviewer/internal/config"
	httphandler "github.com/jgivc/docviewer/internal/handler/http"
	"github.com/jgivc/docviewer/internal/repository/content"
	"github.com/jgivc/docviewer/internal/service/listing"
	smanifest "github.com/jgivc/docviewer/internal/service/manifest"
	"github.com/jgivc/docviewer/internal/service/page"
	"github.com/jgivc/docviewer/internal/service/viewer"
	"github.com/jgivc/docviewer/internal/storage/manifest"
)

const (
	rebuildTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type App struct {
	cfgPath   string
	cfg       *config.Config
	srv       *http.Server
	manifests *smanifest.ManifestService
	log       *slog.Logger
}

func New(cfgPath string) *App {
	return &App{
		cfgPath: cfgPath,
	}
}

func (a *App) Start() {
	a.cfg = config.MustLoad(a.cfgPath)

	lo := &slog.HandlerOptions{}
	switch a.cfg.LogLevel {
	case config.LogLevelInfo:
		lo.Level = slog.LevelInfo
	case config.LogLevelWarn:
		lo.Level = slog.LevelWarn
	case config.LogLevelError:
		lo.Level = slog.LevelError
	case config.LogLevelDebug:
		lo.Level = slog.LevelDebug
	default:
		panic("unknown log level")
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, lo))
	a.log = log

	fsa := fsadapter.NewFSAdapter(&a.cfg.ScannerConfig, log)
	store := manifest.NewManifestStorage(fsa, &a.cfg.ScannerConfig, log)
	a.manifests = smanifest.NewManifestService(store, log)

	// The viewer is useless without a manifest, so the first build happens
	// before the listener comes up and failure is fatal.
	ctx, cancel := context.WithTimeout(context.Background(), rebuildTimeout)
	defer cancel()
	if err := a.manifests.Rebuild(ctx); err != nil {
		panic(err)
	}

	var repo page.ContentRepository
	switch a.cfg.ContentConfig.Source {
	case config.ContentSourceHTTP:
		repo = content.NewHTTPRepository(&a.cfg.ContentConfig, log)
	default:
		repo = content.NewFSRepository(&a.cfg.ScannerConfig, log)
	}

	md := mdadapter.NewMDAdapter(a.manifests, log)
	pages := page.NewPageService(repo, md, log)
	listings := listing.NewListingService(log)
	nav := viewer.NewViewer(a.manifests, listings, pages, time.Duration(a.cfg.ContentConfig.FetchTimeout), log)

	tpl, err := tpladapter.NewTplAdapter(a.cfg.TemplateFileName)
	if err != nil {
		panic(err)
	}

	http.Handle("GET /{$}", httphandler.NewTreeHandler(nav, tpl, log))
	http.Handle("GET /tree/{path...}", httphandler.NewTreeHandler(nav, tpl, log))
	http.Handle("GET /raw/{path...}", httphandler.NewRawHandler(repo, log))
	http.Handle("GET /manifest.json", httphandler.NewManifestHandler(a.manifests, log))
	http.Handle("POST /rebuild/{$}", httphandler.NewRebuildHandler(a.manifests, log))

	a.srv = &http.Server{
		Addr: a.cfg.Listen,
	}

	go func() {
		log.Info("Start listen", slog.String("addr", a.cfg.Listen))

		if err := a.srv.ListenAndServe(); err != nil {
			log.Error("Could not serve", slog.String("listen_addr", a.cfg.Listen), slog.Any("error", err))
			os.Exit(2)
		}
	}()
}

func (a *App) Rebuild() {
	ctx, cancel := context.WithTimeout(context.Background(), rebuildTimeout)
	defer cancel()

	if err := a.manifests.Rebuild(ctx); err != nil {
		a.log.Error("Cannot rebuild manifest", slog.Any("error", err))

		return
	}

	a.log.Info("Manifest rebuild done")
}

func (a *App) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.srv.Shutdown(ctx)
}
