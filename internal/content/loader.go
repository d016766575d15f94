package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound means the content file does not exist.
	ErrNotFound = errors.New("content: not found")

	// ErrInvalid means the file exists but does not decode or validate.
	ErrInvalid = errors.New("content: invalid")
)

// File names inside the data directory.
const (
	ProfileFile      = "profile.json"
	CVFile           = "cv.json"
	ProjectsFile     = "projects.json"
	TechnologiesFile = "technologies.json"
	InfoPointsFile   = "info-points.json"
	EvangelistFile   = "evangelist.json"
	CVPDFFile        = "CV.pdf"
)

// Loader reads content files from a data directory. Files are read on every
// call so edits show up without a restart.
type Loader struct {
	dir      string
	validate *validator.Validate
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, validate: validator.New()}
}

// Path returns the path of name inside the data directory.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.dir, name)
}

func (l *Loader) Profile() (Profile, error) { return readOne[Profile](l, ProfileFile) }

func (l *Loader) CV() (CV, error) { return readOne[CV](l, CVFile) }

func (l *Loader) Projects() ([]Project, error) { return readList[Project](l, ProjectsFile) }

func (l *Loader) Technologies() ([]Technology, error) {
	return readList[Technology](l, TechnologiesFile)
}

func (l *Loader) InfoPoints() ([]InfoPoint, error) { return readList[InfoPoint](l, InfoPointsFile) }

func (l *Loader) EvangelistPanels() ([]EvangelistPanel, error) {
	return readList[EvangelistPanel](l, EvangelistFile)
}

func readOne[T any](l *Loader, name string) (T, error) {
	var v T
	if err := l.decode(name, &v); err != nil {
		return v, err
	}
	if err := l.validate.Struct(v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return v, nil
}

func readList[T any](l *Loader, name string) ([]T, error) {
	list := []T{}
	if err := l.decode(name, &list); err != nil {
		return []T{}, err
	}
	if list == nil {
		list = []T{}
	}
	for i := range list {
		if err := l.validate.Struct(list[i]); err != nil {
			return []T{}, fmt.Errorf("%w: %s[%d]: %v", ErrInvalid, name, i, err)
		}
	}
	return list, nil
}

func (l *Loader) decode(name string, v any) error {
	data, err := os.ReadFile(l.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return nil
}

// LoadOr calls load and returns fallback, with a logged warning, when it
// fails. Pages render with empty sections instead of failing outright.
func LoadOr[T any](name string, load func() (T, error), fallback T) T {
	v, err := load()
	if err != nil {
		log.Printf("Content %s unavailable, using fallback: %v", name, err)
		return fallback
	}
	return v
}
