package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const (
	moduleFile       = "Module Information"
	defaultExtension = ".cls"
	defaultVersion   = "0.1.0"
)

type moduleInfo struct {
	Package   string `yaml:"Package"`
	Version   string `yaml:"Version"`
	Extension string `yaml:"Extension,omitempty"`
}

func (m moduleInfo) extension() string {
	if m.Extension == "" {
		return defaultExtension
	}
	return m.Extension
}

func (m moduleInfo) validate() error {
	if m.Package == "" {
		return fmt.Errorf("%s: no package name", moduleFile)
	}
	if strings.ContainsAny(m.Package, `/\`) {
		return fmt.Errorf("%s: package name %q contains a path separator", moduleFile, m.Package)
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return fmt.Errorf("%s: version %q: %w", moduleFile, m.Version, err)
	}
	if !strings.HasPrefix(m.extension(), ".") {
		return fmt.Errorf("%s: extension %q must start with a dot", moduleFile, m.Extension)
	}
	return nil
}

// header is the first line of every generated file.
func (m moduleInfo) header() string {
	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return fmt.Sprintf("// Code generated by classjs from %s. DO NOT EDIT.\n", m.Package)
	}
	return fmt.Sprintf("// Code generated by classjs from %s v%s. DO NOT EDIT.\n", m.Package, v)
}

func readModule(dir string) (moduleInfo, error) {
	data, err := ioutil.ReadFile(filepath.Join(dir, moduleFile))
	if err != nil {
		return moduleInfo{}, tracerr.Wrap(err)
	}

	var doc moduleInfo
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return moduleInfo{}, tracerr.Wrap(fmt.Errorf("reading %s: %w", moduleFile, err))
	}
	if err := doc.validate(); err != nil {
		return moduleInfo{}, tracerr.Wrap(err)
	}

	return doc, nil
}

// moduleOrDefault is readModule, but a missing module file is not an error.
func moduleOrDefault(dir string) (moduleInfo, error) {
	m, err := readModule(dir)
	if err != nil && os.IsNotExist(tracerr.Unwrap(err)) {
		return moduleInfo{Package: "main", Version: defaultVersion}, nil
	}
	return m, err
}

func writeModule(dir string, m moduleInfo) error {
	if err := m.validate(); err != nil {
		return tracerr.Wrap(err)
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(filepath.Join(dir, moduleFile), out, 0644))
}
