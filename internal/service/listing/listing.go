package listing

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/jgivc/docviewer/internal/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	serviceName = "listing"
)

type listingService struct {
	lang language.Tag
	log  *slog.Logger
}

func NewListingService(log *slog.Logger) *listingService {
	return &listingService{
		lang: language.Und,
		log:  log.With(slog.String("service", serviceName)),
	}
}

// Listing turns a resolved directory node into a display-ready view.
// Ordering is recomputed here on every call: directories before files,
// locale-aware lexicographic by name within each group. The manifest itself
// stays in filesystem order.
func (s *listingService) Listing(node *entity.Node, segments []string) *entity.Listing {
	entries := make([]entity.ListingEntry, 0, len(node.Children))
	for _, child := range node.Children {
		entries = append(entries, entity.ListingEntry{
			Name:   child.Name,
			Type:   child.Type,
			Target: target(segments, child.Name),
		})
	}

	// Collators carry internal buffers, so a fresh one is built per call
	// instead of sharing one across goroutines.
	coll := collate.New(s.lang)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == entity.NodeDirectory
		}

		return coll.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	return &entity.Listing{
		Path:        "/" + strings.Join(segments, "/"),
		Entries:     entries,
		Breadcrumbs: Breadcrumbs(segments),
	}
}

// Breadcrumbs derives the trail for a navigation path: crumb i carries the
// label of segment i and the accumulated prefix as target. The root ("Home")
// is implicit and never part of the trail; the final crumb is marked as the
// current, non-navigable location.
func Breadcrumbs(segments []string) []entity.Breadcrumb {
	crumbs := make([]entity.Breadcrumb, 0, len(segments))

	var prefix strings.Builder
	for i, segment := range segments {
		prefix.WriteByte('/')
		prefix.WriteString(segment)

		crumbs = append(crumbs, entity.Breadcrumb{
			Label:   segment,
			Target:  prefix.String(),
			Current: i == len(segments)-1,
		})
	}

	return crumbs
}

func target(segments []string, name string) string {
	if len(segments) == 0 {
		return "/" + name
	}

	return "/" + strings.Join(segments, "/") + "/" + name
}
