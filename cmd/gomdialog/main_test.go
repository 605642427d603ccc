package main

import (
	"testing"
)

func TestParseViewport(t *testing.T) {
	w, h, err := parseViewport("1024X768")
	if err != nil || w != 1024 || h != 768 {
		t.Errorf("parseViewport(1024X768) = %v, %v, %v", w, h, err)
	}
	for _, bad := range []string{"", "800", "x480", "800x-1", "axb"} {
		if _, _, err := parseViewport(bad); err == nil {
			t.Errorf("parseViewport(%q) succeeded", bad)
		}
	}
}

func TestScriptName(t *testing.T) {
	tests := map[string]string{
		"scripts/intro.html":             "intro.html",
		"https://example.com/intro.html": "https://example.com/intro.html",
		"data:text/plain,hi":             "data:text/plain,hi",
	}
	for in, want := range tests {
		if got := scriptName(in); got != want {
			t.Errorf("scriptName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultOutput(t *testing.T) {
	if got := defaultOutput("a/intro.html", "pdf"); got != "a/intro.pdf" {
		t.Errorf("got %q", got)
	}
	if got := defaultOutput("", "png"); got != "dialog-frames" {
		t.Errorf("got %q", got)
	}
}
