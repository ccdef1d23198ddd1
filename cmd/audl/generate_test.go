package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-audl/internal/audl"
)

func TestGenerateFile(t *testing.T) {
	type tc struct {
		source       string
		cfg          generateConfig
		wantOutput   string
		wantContains []string
	}

	tests := map[string]tc{
		"vue template": {
			source:     `P("Hi")`,
			cfg:        generateConfig{commonFlags: commonFlags{indent: 2}},
			wantOutput: "page.vue",
			wantContains: []string{
				"<template>\n<p>\n  Hi\n</p>\n</template>\n",
			},
		},
		"custom indent": {
			source:     `P("Hi")`,
			cfg:        generateConfig{commonFlags: commonFlags{indent: 4}},
			wantOutput: "page.vue",
			wantContains: []string{
				"<p>\n    Hi\n</p>",
			},
		},
		"go embedding": {
			source:     `Div.card{ P("Hi") }`,
			cfg:        generateConfig{commonFlags: commonFlags{indent: 2}, goOut: true, pkg: "views"},
			wantOutput: "page_audl.go",
			wantContains: []string{
				"package views",
				"const PageTemplate = `<template>\n<div class=\"card\">",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "page.audl")
			writeFiles(t, dir, map[string]string{"page.audl": tt.source})

			outputPath, err := generateFile(input, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := filepath.Join(dir, tt.wantOutput); outputPath != want {
				t.Errorf("output path = %q, want %q", outputPath, want)
			}

			data, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(string(data), want) {
					t.Errorf("output missing %q:\n%s", want, data)
				}
			}
		})
	}
}

func TestGenerateAll_ReportsPerFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"good.audl": `P("ok")`,
		"bad.audl":  "1bad",
	})
	files := []string{filepath.Join(dir, "good.audl"), filepath.Join(dir, "bad.audl")}

	errs := generateAll(files, generateConfig{commonFlags: commonFlags{indent: 2}})

	if errs[0] != nil {
		t.Errorf("good.audl: unexpected error %v", errs[0])
	}
	if errs[1] == nil {
		t.Fatal("bad.audl: expected error, got nil")
	}
	if kind, ok := audl.KindOf(errs[1]); !ok || kind != audl.HeaderSyntaxError {
		t.Errorf("bad.audl: kind = %v (ok=%v), want %v", kind, ok, audl.HeaderSyntaxError)
	}

	if _, err := os.Stat(filepath.Join(dir, "good.vue")); err != nil {
		t.Errorf("good.vue not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.vue")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("bad.vue should not exist, stat err = %v", err)
	}
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.audl":     `A`,
		"sub/b.audl": `B("x")`,
	})

	if err := runGenerate([]string{dir + "/..."}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	for _, name := range []string{"a.vue", "sub/b.vue"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRunGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"bad.audl": "Div {"})

	err := runGenerate([]string{dir})
	if err == nil || !strings.Contains(err.Error(), "1 file(s) had errors") {
		t.Errorf("err = %v, want a per-file error count", err)
	}

	if err := runGenerate([]string{t.TempDir()}); err == nil {
		t.Error("expected error for a directory without sources, got nil")
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"ok.audl": `Div.card{ P("Hi") }`})

	if err := runCheck([]string{dir}); err != nil {
		t.Errorf("runCheck: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ok.vue")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("check must not write output, stat err = %v", err)
	}

	writeFiles(t, dir, map[string]string{"bad.audl": "For x of xs { P }"})
	if err := runCheck([]string{dir}); err == nil {
		t.Error("expected error, got nil")
	}
}
