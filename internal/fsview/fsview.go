// Package fsview provides the read-only filesystem capability the validators
// use to inspect a candidate artifact's shape. Validators never touch the os
// package directly; they receive a View so tests can run against an
// in-memory filesystem.
package fsview

import (
	"os"

	"github.com/spf13/afero"
)

// View is the minimal read-only surface the classifier and validators need.
type View interface {
	// Stat returns file info for path.
	Stat(path string) (os.FileInfo, error)
	// ReadDir lists the entries directly under path.
	ReadDir(path string) ([]os.FileInfo, error)
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)
}

// AferoView adapts any afero.Fs into a View.
type AferoView struct {
	fs afero.Fs
}

// NewView wraps an afero filesystem.
func NewView(afs afero.Fs) *AferoView {
	return &AferoView{fs: afs}
}

// NewOSView returns a View over the real filesystem, rooted at basePath.
// All paths passed to the view are resolved relative to basePath.
func NewOSView(basePath string) *AferoView {
	return &AferoView{fs: afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), basePath)}
}

// NewMemView returns a View over a fresh in-memory filesystem together with
// the writable afero.Fs used to populate it. Intended for tests.
func NewMemView() (*AferoView, afero.Fs) {
	mem := afero.NewMemMapFs()
	return &AferoView{fs: mem}, mem
}

// Stat implements View.
func (v *AferoView) Stat(path string) (os.FileInfo, error) {
	return v.fs.Stat(path)
}

// ReadDir implements View.
func (v *AferoView) ReadDir(path string) ([]os.FileInfo, error) {
	return afero.ReadDir(v.fs, path)
}

// ReadFile implements View.
func (v *AferoView) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(v.fs, path)
}
