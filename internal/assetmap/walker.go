package assetmap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Matcher decides whether a bare filename is included in the tree.
// *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

// DegenerateKind classifies a key that was accepted but is probably not what
// the author of the asset folder intended.
type DegenerateKind int

const (
	// EmptyKey means the filename normalized to "".
	EmptyKey DegenerateKind = iota + 1
	// DuplicateKey means the key already existed at its level and the earlier
	// value was overwritten.
	DuplicateKey
	// InvalidName means the entry name is not valid UTF-8. It cannot be
	// written as a string literal that still names the file, so the entry is
	// skipped.
	InvalidName
)

// Degenerate describes one empty or duplicate key seen during a walk.
type Degenerate struct {
	Kind DegenerateKind
	Key  string
	Path string
}

func (d Degenerate) String() string {
	switch d.Kind {
	case EmptyKey:
		return fmt.Sprintf("%s normalizes to an empty key", d.Path)
	case DuplicateKey:
		return fmt.Sprintf("%s overwrites existing key %q", d.Path, d.Key)
	case InvalidName:
		return fmt.Sprintf("%q is not valid UTF-8 and was skipped", d.Path)
	default:
		return fmt.Sprintf("%s: key %q", d.Path, d.Key)
	}
}

// Result is the outcome of a successful walk.
type Result struct {
	Tree        *Branch
	Degenerates []Degenerate
}

// Walker builds an asset tree from a directory.
type Walker struct {
	// Fs is the filesystem to read from.
	Fs afero.Fs
	// ProjectRoot is the base that leaf references are made relative to.
	ProjectRoot string
	// Include tests bare filenames. Files that do not match are skipped.
	Include Matcher
	// Normalizer turns filenames into keys.
	Normalizer Normalizer
	// KeepEmptyDirs keeps directories without any matched file as empty
	// branches instead of dropping them.
	KeepEmptyDirs bool
	// Strict fails the walk on the first empty or duplicate key.
	Strict bool
}

// Walk visits dir depth-first and returns the tree rooted at it.
//
// Entries are processed in lexicographic order. Files are keyed by their
// normalized name and directories by their verbatim name; a later entry with
// the same key replaces an earlier one. Symlinks and other special files are
// skipped.
//
// The walk fails with a *FilesystemError if dir is missing, is not a
// directory, or any listing or stat fails below it. No partial tree is
// returned.
func (w *Walker) Walk(dir string) (*Result, error) {
	fi, err := w.Fs.Stat(dir)
	if err != nil {
		return nil, &FilesystemError{Op: "stat", Path: dir, Err: err}
	}
	if !fi.IsDir() {
		return nil, &FilesystemError{Op: "list", Path: dir, Err: errors.New("not a directory")}
	}

	res := &Result{}
	tree, err := w.walkDir(dir, res)
	if err != nil {
		return nil, err
	}
	res.Tree = tree
	return res, nil
}

func (w *Walker) walkDir(dir string, res *Result) (*Branch, error) {
	names, err := w.list(dir)
	if err != nil {
		return nil, err
	}

	branch := NewBranch()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !utf8.ValidString(name) {
			if err := w.degenerate(res, Degenerate{Kind: InvalidName, Path: path}); err != nil {
				return nil, err
			}
			continue
		}
		fi, err := w.lstat(path)
		if err != nil {
			return nil, &FilesystemError{Op: "stat", Path: path, Err: err}
		}

		switch {
		case fi.Mode().IsRegular():
			if !w.Include.MatchString(name) {
				slog.Debug("skipping unmatched file", "path", path)
				continue
			}
			key := w.Normalizer.Key(name)
			ref, err := w.ref(path)
			if err != nil {
				return nil, err
			}
			if key == "" {
				if err := w.degenerate(res, Degenerate{Kind: EmptyKey, Path: path}); err != nil {
					return nil, err
				}
			}
			if branch.Set(key, &Leaf{Ref: ref}) {
				if err := w.degenerate(res, Degenerate{Kind: DuplicateKey, Key: key, Path: path}); err != nil {
					return nil, err
				}
			}

		case fi.IsDir():
			sub, err := w.walkDir(path, res)
			if err != nil {
				return nil, err
			}
			if sub.Len() == 0 && !w.KeepEmptyDirs {
				continue
			}
			if branch.Set(name, sub) {
				if err := w.degenerate(res, Degenerate{Kind: DuplicateKey, Key: name, Path: path}); err != nil {
					return nil, err
				}
			}

		default:
			slog.Debug("skipping special file", "path", path, "mode", fi.Mode().String())
		}
	}
	return branch, nil
}

// list returns the entry names of dir sorted lexicographically.
func (w *Walker) list(dir string) ([]string, error) {
	f, err := w.Fs.Open(dir)
	if err != nil {
		return nil, &FilesystemError{Op: "list", Path: dir, Err: err}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &FilesystemError{Op: "list", Path: dir, Err: err}
	}
	sort.Strings(names)
	return names, nil
}

// lstat does not follow symlinks when the filesystem supports it.
func (w *Walker) lstat(path string) (os.FileInfo, error) {
	if l, ok := w.Fs.(afero.Lstater); ok {
		fi, _, err := l.LstatIfPossible(path)
		return fi, err
	}
	return w.Fs.Stat(path)
}

// ref returns the root-relative, slash-separated reference for path.
func (w *Walker) ref(path string) (string, error) {
	rel, err := filepath.Rel(w.ProjectRoot, path)
	if err == nil && (rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		err = fmt.Errorf("outside project root %s", w.ProjectRoot)
	}
	if err != nil {
		return "", &FilesystemError{Op: "relative", Path: path, Err: err}
	}
	return "/" + filepath.ToSlash(rel), nil
}

func (w *Walker) degenerate(res *Result, d Degenerate) error {
	if w.Strict {
		return &KeyConflictError{Degenerate: d}
	}
	slog.Debug("degenerate asset key", "detail", d.String())
	res.Degenerates = append(res.Degenerates, d)
	return nil
}
