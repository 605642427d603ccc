// Package res loads the assets a dialog box needs: scripts, plain text,
// stylesheets, fonts and indicator images.
package res

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gompdf/gomdialog/internal/logger"
)

// Kind represents the kind of asset
type Kind int

const (
	KindOther Kind = iota
	KindImage
	KindFont
	KindStyle
	KindScript
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindFont:
		return "font"
	case KindStyle:
		return "stylesheet"
	case KindScript:
		return "script"
	case KindText:
		return "text"
	}
	return "other"
}

// ErrNotFound is returned when no search path holds a local asset.
var ErrNotFound = errors.New("asset not found")

// Asset represents a loaded asset
type Asset struct {
	URL      string
	Kind     Kind
	Data     []byte
	MimeType string
}

// Reader returns a reader over the asset data.
func (a *Asset) Reader() *bytes.Reader {
	return bytes.NewReader(a.Data)
}

// String returns the asset data as a string.
func (a *Asset) String() string {
	return string(a.Data)
}

// Loader resolves and caches assets. It is safe for concurrent use.
type Loader struct {
	// BaseURL is a file path or http(s) URL relative names resolve against.
	BaseURL string

	cache     map[string]*Asset
	cacheLock sync.RWMutex

	searchPaths []string
	client      *http.Client
	log         *logger.Logger
}

// NewLoader creates a new asset loader
func NewLoader(baseURL string, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{
		BaseURL: baseURL,
		cache:   make(map[string]*Asset),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// AddSearchPath adds a directory to search for local assets
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads an asset from a URL, data URL or file path. Assets are cached
// by resolved location, so different spellings of one file share an entry.
func (l *Loader) Load(ctx context.Context, urlStr string) (*Asset, error) {
	key := urlStr
	if !strings.HasPrefix(urlStr, "data:") {
		resolved, err := l.resolveURL(urlStr)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", urlStr, err)
		}
		key = resolved
	}

	l.cacheLock.RLock()
	if a, ok := l.cache[key]; ok {
		l.cacheLock.RUnlock()
		return a, nil
	}
	l.cacheLock.RUnlock()

	var a *Asset
	var err error
	switch {
	case strings.HasPrefix(key, "data:"):
		a, err = parseDataURL(key)
	case isRemote(key):
		a, err = l.loadRemote(ctx, key)
	default:
		a, err = l.loadLocal(key)
	}
	if err != nil {
		return nil, err
	}

	l.log.Debug("loaded %s %s (%d bytes)", a.Kind, a.URL, len(a.Data))

	l.cacheLock.Lock()
	l.cache[key] = a
	l.cacheLock.Unlock()
	return a, nil
}

// parseDataURL parses a data URL (RFC 2397) such as
// data:image/png;base64,<base64> or data:text/plain,Hello%20there
func parseDataURL(u string) (*Asset, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	mime := "text/plain"
	isBase64 := false
	if meta != "" {
		comps := strings.Split(meta, ";")
		if comps[0] != "" {
			mime = strings.ToLower(comps[0])
		}
		for _, c := range comps[1:] {
			if strings.EqualFold(strings.TrimSpace(c), "base64") {
				isBase64 = true
			}
		}
	}

	var data []byte
	if isBase64 {
		var err error
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
	} else if d, err := url.PathUnescape(payload); err == nil {
		data = []byte(d)
	} else {
		data = []byte(payload)
	}

	return &Asset{URL: "data:" + mime, Data: data, MimeType: mime, Kind: kindOf(mime, "")}, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// resolveURL resolves a URL relative to the base URL
func (l *Loader) resolveURL(urlStr string) (string, error) {
	if isRemote(urlStr) {
		return urlStr, nil
	}
	if filepath.IsAbs(urlStr) {
		return filepath.Clean(urlStr), nil
	}

	if !isRemote(l.BaseURL) {
		if l.BaseURL == "" {
			return filepath.Clean(urlStr), nil
		}
		return filepath.Join(filepath.Dir(l.BaseURL), urlStr), nil
	}

	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(urlStr)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(rel).String(), nil
}

// loadRemote loads an asset over http(s)
func (l *Loader) loadRemote(ctx context.Context, urlStr string) (*Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %s", urlStr, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", urlStr, err)
	}

	mime, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	mime = strings.TrimSpace(mime)
	if mime == "" {
		mime = mimeOf(urlStr)
	}
	return &Asset{URL: urlStr, Data: data, MimeType: mime, Kind: kindOf(mime, urlStr)}, nil
}

// loadLocal loads an asset from disk, falling back to the search paths
func (l *Loader) loadLocal(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l.loadFromSearchPaths(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	mime := mimeOf(path)
	return &Asset{URL: path, Data: data, MimeType: mime, Kind: kindOf(mime, path)}, nil
}

// loadFromSearchPaths tries each search path in order
func (l *Loader) loadFromSearchPaths(filename string) (*Asset, error) {
	base := filepath.Base(filename)
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		mime := mimeOf(path)
		return &Asset{URL: path, Data: data, MimeType: mime, Kind: kindOf(mime, path)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
}

// mimeOf guesses a MIME type from a file extension
func mimeOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	case ".css":
		return "text/css"
	case ".html", ".htm":
		return "text/html"
	case ".txt":
		return "text/plain"
	}
	return "application/octet-stream"
}

// kindOf classifies an asset by MIME type, then by extension
func kindOf(mime, path string) Kind {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	case strings.HasPrefix(mime, "font/"), mime == "application/x-font-ttf":
		return KindFont
	case mime == "text/css":
		return KindStyle
	case mime == "text/html":
		return KindScript
	case mime == "text/plain":
		return KindText
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".tiff", ".tif", ".bmp":
		return KindImage
	case ".ttf", ".otf":
		return KindFont
	case ".css":
		return KindStyle
	case ".html", ".htm":
		return KindScript
	case ".txt":
		return KindText
	}
	return KindOther
}

func (l *Loader) loadKind(ctx context.Context, urlStr string, want Kind) (*Asset, error) {
	a, err := l.Load(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	if a.Kind != want {
		return nil, fmt.Errorf("asset %s is a %s, not a %s", urlStr, a.Kind, want)
	}
	return a, nil
}

// LoadImage loads an indicator image
func (l *Loader) LoadImage(ctx context.Context, urlStr string) (*Asset, error) {
	return l.loadKind(ctx, urlStr, KindImage)
}

// LoadFont loads a TrueType font
func (l *Loader) LoadFont(ctx context.Context, urlStr string) (*Asset, error) {
	return l.loadKind(ctx, urlStr, KindFont)
}

// LoadStyle loads a stylesheet
func (l *Loader) LoadStyle(ctx context.Context, urlStr string) (*Asset, error) {
	return l.loadKind(ctx, urlStr, KindStyle)
}

// LoadScript loads a dialog script. Plain text is accepted too and is
// treated as a single dialog by callers.
func (l *Loader) LoadScript(ctx context.Context, urlStr string) (*Asset, error) {
	a, err := l.Load(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	if a.Kind != KindScript && a.Kind != KindText {
		return nil, fmt.Errorf("asset %s is a %s, not a script", urlStr, a.Kind)
	}
	return a, nil
}
