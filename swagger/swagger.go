package swagger

import (
	_ "embed"
	"net/http"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/cors"
)

//go:embed swagger.html
var swaggerUIBase string

func buildSwaggerUI(documentUrl, eventsUrl string) []byte {
	replacer := strings.NewReplacer(
		"%OPENAPI_DOCUMENT_URL%", documentUrl,
		"%EVENTS_URL%", eventsUrl,
	)

	return []byte(replacer.Replace(swaggerUIBase))
}

type Options struct {
	DebounceTime time.Duration
	BaseUrl      string
	// AllowedOrigins enables CORS for the document and events endpoints.
	// Empty disables CORS handling.
	AllowedOrigins []string
}

func DefaultOptions() Options {
	return Options{
		DebounceTime: DEFAULT_DEBOUNCE_TIME,
		BaseUrl:      "/",
	}
}

type urls struct {
	UI       string
	Document string
	Events   string
}

func makeUrls(base string) urls {
	return urls{
		UI:       path.Clean("/" + base),
		Document: path.Join("/", base, "openapi.json"),
		Events:   path.Join("/", base, "events"),
	}
}

// Swagger serves a compiled document, a Swagger UI page for it and an
// event stream that tells open pages to reload after SetDocument.
type Swagger struct {
	options Options

	broadcaster *broadcaster
	urls        urls
	mu          sync.RWMutex
	document    []byte
}

func New(document []byte, opt Options) *Swagger {
	return &Swagger{
		options:     opt,
		broadcaster: NewBroadcaster(),
		urls:        makeUrls(opt.BaseUrl),
		document:    slices.Clone(document),
	}
}

func (s *Swagger) Document() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// Handler serves the documentation endpoints and passes anything else to h.
func (s *Swagger) Handler(h http.Handler) http.Handler {
	swaggerUI := buildSwaggerUI(s.urls.Document, s.urls.Events)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case s.urls.UI:
			w.Header().Set("Content-Type", "text/html")
			w.Write(swaggerUI)
		case s.urls.Document:
			w.Header().Set("Content-Type", "application/json")
			w.Write(s.Document())
		case s.urls.Events:
			s.broadcaster.ServeHTTP(w, r)
		default:
			if h != nil {
				h.ServeHTTP(w, r)
			} else {
				http.NotFound(w, r)
			}
		}
	})

	if len(s.options.AllowedOrigins) == 0 {
		return handler
	}

	return cors.New(cors.Options{
		AllowedOrigins: s.options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(handler)
}

func (s *Swagger) SetDocument(document []byte) {
	s.mu.Lock()
	s.document = slices.Clone(document)
	s.mu.Unlock()
	s.broadcaster.Broadcast("reload")
}
