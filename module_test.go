package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestModuleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := moduleInfo{Package: "zoo", Version: "1.2.0", Extension: ".zoo"}

	if err := writeModule(dir, want); err != nil {
		t.Fatal(err)
	}
	got, err := readModule(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestModuleDefaults(t *testing.T) {
	dir := t.TempDir()
	data := "Package: zoo\nVersion: 0.1.0\n"
	if err := ioutil.WriteFile(filepath.Join(dir, moduleFile), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := readModule(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.extension() != ".cls" {
		t.Errorf("got extension %q", m.extension())
	}

	m, err = moduleOrDefault(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m.Package != "main" || m.extension() != ".cls" {
		t.Errorf("got %+v", m)
	}
}

func TestModuleValidate(t *testing.T) {
	bad := []moduleInfo{
		{Version: "1.0.0"},
		{Package: "a/b", Version: "1.0.0"},
		{Package: "zoo", Version: "one"},
		{Package: "zoo", Version: "1.0.0", Extension: "cls"},
	}

	for _, m := range bad {
		if err := m.validate(); err == nil {
			t.Errorf("%+v: expected an error", m)
		}
		if err := writeModule(t.TempDir(), m); err == nil {
			t.Errorf("%+v: wrote an invalid module", m)
		}
	}
}

func TestHeader(t *testing.T) {
	h := moduleInfo{Package: "zoo", Version: "v1.2"}.header()
	if !strings.Contains(h, "zoo v1.2.0") || !strings.HasSuffix(h, "\n") {
		t.Errorf("got %q", h)
	}
}
