// Package reader finds, reads, and watches source files.
package reader

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/pontaoski/classjs/errors"
	"github.com/ztrue/tracerr"
)

// Sources lists the files in dir ending in ext, sorted by name.
func Sources(dir, ext string) ([]string, error) {
	fis, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	var ret []string
	for _, fi := range fis {
		if fi.IsDir() || filepath.Ext(fi.Name()) != ext {
			continue
		}
		ret = append(ret, filepath.Join(dir, fi.Name()))
	}
	sort.Strings(ret)

	return ret, nil
}

// ReadSource reads path, which must end in ext.
func ReadSource(path, ext string) (string, error) {
	if filepath.Ext(path) != ext {
		return "", tracerr.Wrap(errors.WrongExtension{Path: path, Want: ext})
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", tracerr.Wrap(err)
	}

	return string(data), nil
}

const changed = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch calls onChange with the path of every source file in dir that is
// created, written, removed or renamed. It returns nil once ctx is done.
func Watch(ctx context.Context, dir, ext string, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return tracerr.Wrap(err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&changed == 0 || filepath.Ext(ev.Name) != ext {
				continue
			}
			onChange(ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return tracerr.Wrap(err)
		}
	}
}
