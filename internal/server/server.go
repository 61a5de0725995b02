package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"rentinspect/internal/photo"
	"rentinspect/internal/session"
	"rentinspect/internal/storage"
	"rentinspect/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	sessions  *session.Store
	ingestor  *photo.Ingestor
	archive   *storage.ReportArchive
	templates *template.Template

	cookie *securecookie.SecureCookie

	server *http.Server
}

// New wires the HTTP service. archive may be nil, in which case generated reports
// are not copied anywhere.
func New(
	config *types.Config,
	logger *logrus.Logger,
	sessions *session.Store,
	ingestor *photo.Ingestor,
	archive *storage.ReportArchive,
) (*Service, error) {
	mux := flow.New()

	hashKey, err := cookieKey(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie hash key: %w", err)
	}
	blockKey, err := cookieKey(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie block key: %w", err)
	}
	if hashKey == nil {
		logger.Warn("COOKIE_HASH_KEY not set, sessions will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
	}

	s := &Service{
		logger:   logger,
		config:   config,
		sessions: sessions,
		ingestor: ingestor,
		archive:  archive,
		cookie:   securecookie.New(hashKey, blockKey),

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}
	s.cookie.MaxAge(config.SessionMaxAgeSec)
	// Trailing slashes are stripped before routing since flow never matches them.
	s.server.Handler = s.StripTrailingSlash(mux)

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func cookieKey(v string) ([]byte, error) {
	if v == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(v)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireSession)

		r.HandleFunc("/", s.handleHome, http.MethodGet)
		r.HandleFunc("/inspection", s.handleGetInspection, http.MethodGet)
		r.HandleFunc("/inspection/nav", s.handlePostNav, http.MethodPost)
		r.HandleFunc("/inspection/step/:step", s.handlePostStep, http.MethodPost)
		r.HandleFunc("/inspection/reset", s.handlePostReset, http.MethodPost)

		r.HandleFunc("/inspection/rooms/:roomID", s.handlePostRoom, http.MethodPost)
		r.HandleFunc("/inspection/rooms/:roomID/appliances", s.handlePostAppliance, http.MethodPost)
		r.HandleFunc("/inspection/rooms/:roomID/appliances/:applianceID", s.handlePostApplianceFields, http.MethodPost)
		r.HandleFunc("/inspection/rooms/:roomID/appliances/:applianceID/delete", s.handlePostApplianceDelete, http.MethodPost)

		r.HandleFunc("/inspection/rooms/:roomID/photos", s.handlePostPhotos, http.MethodPost)
		r.HandleFunc("/inspection/rooms/:roomID/photos/:photoID/comment", s.handlePostPhotoComment, http.MethodPost)
		r.HandleFunc("/inspection/rooms/:roomID/photos/:photoID/delete", s.handlePostPhotoDelete, http.MethodPost)

		r.HandleFunc("/inspection/report", s.handleGetReport, http.MethodGet)
		r.HandleFunc("/inspection/report/scrape", s.handlePostScrape, http.MethodPost)
		r.HandleFunc("/inspection/state", s.handlePostState, http.MethodPost)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
		"hasProgram": func(d types.InspectionData, p types.ProgramType) bool {
			return d.HasProgram(p)
		},
		"itemField": func(t types.Topic, attr string) string {
			return types.ItemField(t, attr)
		},
		"detail": func(a *types.Appliance, key string) string {
			if a == nil || a.Details == nil {
				return ""
			}
			return a.Details[key]
		},
		"isYesNo": func(k types.VariantKind) bool {
			return k == types.VariantYesNo
		},
		"isNumber": func(k types.VariantKind) bool {
			return k == types.VariantNumber
		},
		"isPresence": func(k types.TopicKind) bool {
			return k == types.KindPresence
		},
		"photoSrc": func(p *types.Photo) template.URL {
			if p == nil || !strings.HasPrefix(p.DataURI, "data:image/") {
				return ""
			}
			return template.URL(p.DataURI)
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
