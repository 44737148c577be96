package static

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/yiroma/budgetmanagement/internal/services/web/routepath"
)

// GlobalStylesheet is the file holding the process-wide style rules.
const GlobalStylesheet = "globals.css"

const immutableCacheControl = "public, max-age=31536000, immutable"

// Stylesheet describes a loaded stylesheet and where browsers fetch it.
type Stylesheet struct {
	Name        string
	Href        string
	Fingerprint string
	Size        int
}

// StyleSet loads one stylesheet from a filesystem exactly once per process.
// Every Load after the first returns the cached outcome, error included.
type StyleSet struct {
	fsys fs.FS
	name string

	once   sync.Once
	loads  atomic.Int32
	loaded atomic.Bool
	sheet  Stylesheet
	data   []byte
	err    error
}

// Global is the process-wide style set referenced by the root layout.
var Global = NewStyleSet(FS, GlobalStylesheet)

// NewStyleSet builds an unloaded style set for name inside fsys.
func NewStyleSet(fsys fs.FS, name string) *StyleSet {
	return &StyleSet{fsys: fsys, name: strings.TrimSpace(name)}
}

// Load reads and fingerprints the stylesheet on the first call.
func (s *StyleSet) Load() (Stylesheet, error) {
	if s == nil {
		return Stylesheet{}, errors.New("style set is nil")
	}
	s.once.Do(s.load)
	return s.sheet, s.err
}

func (s *StyleSet) load() {
	s.loads.Add(1)
	if s.fsys == nil || s.name == "" {
		s.err = errors.New("stylesheet source is required")
		return
	}
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		s.err = fmt.Errorf("read stylesheet %s: %w", s.name, err)
		return
	}
	fingerprint := fmt.Sprintf("%016x", xxhash.Sum64(data))
	s.data = data
	s.sheet = Stylesheet{
		Name:        s.name,
		Href:        routepath.StaticAsset(fingerprintedName(s.name, fingerprint)),
		Fingerprint: fingerprint,
		Size:        len(data),
	}
	s.loaded.Store(true)
}

// Stylesheet returns the loaded stylesheet. It reports false until Load
// has completed successfully.
func (s *StyleSet) Stylesheet() (Stylesheet, bool) {
	if s == nil || !s.loaded.Load() {
		return Stylesheet{}, false
	}
	return s.sheet, true
}

// Loads reports how many times the underlying read ran.
func (s *StyleSet) Loads() int {
	if s == nil {
		return 0
	}
	return int(s.loads.Load())
}

func (s *StyleSet) serveFingerprinted(w http.ResponseWriter, r *http.Request, name string) bool {
	sheet, ok := s.Stylesheet()
	if !ok || name != path.Base(sheet.Href) {
		return false
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", immutableCacheControl)
	http.ServeContent(w, r, sheet.Name, time.Time{}, bytes.NewReader(s.data))
	return true
}

// Handler serves the embedded asset set with the /static/ prefix already
// stripped. Fingerprinted names of loaded style sets are served from memory
// with a long-lived cache policy.
func Handler(sets ...*StyleSet) http.Handler {
	files := http.FileServer(http.FS(FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		for _, set := range sets {
			if set != nil && set.serveFingerprinted(w, r, name) {
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

func fingerprintedName(name, fingerprint string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + fingerprint + ext
}
