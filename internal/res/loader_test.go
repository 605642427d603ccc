package res

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestLoadDataURL(t *testing.T) {
	l := NewLoader("", nil)
	ctx := context.Background()

	a, err := l.LoadScript(ctx, "data:text/plain,Hello%20there")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if a.String() != "Hello there" || a.Kind != KindText {
		t.Errorf("got %q (%s), want %q (text)", a.String(), a.Kind, "Hello there")
	}

	img, err := l.LoadImage(ctx, "data:image/png;base64,iVBORw0K")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.MimeType != "image/png" || len(img.Data) != 6 {
		t.Errorf("got %s with %d bytes, want image/png with 6", img.MimeType, len(img.Data))
	}

	if _, err := l.Load(ctx, "data:image/png;base64,***"); err == nil {
		t.Error("Load of bad base64 succeeded")
	}
}

func TestLoadLocalAndSearchPaths(t *testing.T) {
	dir := t.TempDir()
	fonts := filepath.Join(dir, "fonts")
	if err := os.Mkdir(fonts, 0o755); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "intro.html")
	if err := os.WriteFile(script, []byte("<dialog>Hi</dialog>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(fonts, "mono.ttf"), []byte("ttf"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(script, nil)
	l.AddSearchPath(fonts)
	ctx := context.Background()

	a, err := l.LoadScript(ctx, "intro.html")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if a.Kind != KindScript || a.String() != "<dialog>Hi</dialog>" {
		t.Errorf("got %s %q", a.Kind, a.String())
	}

	f, err := l.LoadFont(ctx, "mono.ttf")
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.URL != filepath.Join(fonts, "mono.ttf") {
		t.Errorf("URL = %s, want the search path copy", f.URL)
	}

	if _, err := l.LoadImage(ctx, "intro.html"); err == nil {
		t.Error("LoadImage of a script succeeded")
	}
	if _, err := l.Load(ctx, "missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing.png) error = %v, want ErrNotFound", err)
	}
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scripts/intro.html" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<dialog>Remote</dialog>"))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL+"/scripts/", nil)
	a, err := l.LoadScript(context.Background(), "intro.html")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if a.MimeType != "text/html" || a.String() != "<dialog>Remote</dialog>" {
		t.Errorf("got %s %q", a.MimeType, a.String())
	}

	if _, err := l.Load(context.Background(), "gone.png"); err == nil {
		t.Error("Load of a 404 succeeded")
	}
}

func TestLoadCachesByResolvedLocation(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "css"), 0o755); err != nil {
		t.Fatal(err)
	}
	sheet := filepath.Join(dir, "dialog.css")
	if err := os.WriteFile(sheet, []byte("dialog { color: red; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(filepath.Join(dir, "intro.html"), nil)
	ctx := context.Background()

	first, err := l.LoadStyle(ctx, "dialog.css")
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if first.Kind != KindStyle || first.String() != "dialog { color: red; }" {
		t.Errorf("got %s %q", first.Kind, first.String())
	}

	for _, name := range []string{"./dialog.css", "css/../dialog.css", sheet} {
		a, err := l.LoadStyle(ctx, name)
		if err != nil {
			t.Fatalf("LoadStyle(%s): %v", name, err)
		}
		if a != first {
			t.Errorf("LoadStyle(%s) loaded the file again", name)
		}
	}
	if len(l.cache) != 1 {
		t.Errorf("cache holds %d entries, want 1", len(l.cache))
	}

	if _, err := l.LoadStyle(ctx, "intro.html"); err == nil {
		t.Error("LoadStyle of a missing script succeeded")
	}
}

func TestLoadRemoteFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte("dialog { color: blue; }"))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL+"/scripts/intro.html", nil)
	ctx := context.Background()
	for _, name := range []string{"dialog.css", "./dialog.css", srv.URL + "/scripts/dialog.css"} {
		if _, err := l.LoadStyle(ctx, name); err != nil {
			t.Fatalf("LoadStyle(%s): %v", name, err)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}
