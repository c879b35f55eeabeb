package catalog

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

const errNameEmpty = "catalog name cannot be empty"

var fileExtensions = []string{".json", ".yaml", ".yml"}

type fileRepository struct {
	dir  string
	fsys fs.FS
}

// FileConfig contains configuration for the file catalog repository.
type FileConfig struct {
	// Dir is the directory relative names resolve against. Empty means the
	// working directory.
	Dir string

	// FS, when set, serves reads from a read-only file system such as the
	// bundled catalogs. Put fails with FAILED_PRECONDITION.
	FS fs.FS
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// NewFile creates a catalog repository backed by JSON or YAML files. A
// name with an extension is a file path; a bare name tries .json, .yaml
// and .yml in turn.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		dir:  cfg.Dir,
		fsys: cfg.FS,
	}, nil
}

func (r *fileRepository) resolve(name string) string {
	if r.fsys != nil {
		return path.Join(r.dir, name)
	}
	if filepath.IsAbs(name) || r.dir == "" {
		return name
	}
	return filepath.Join(r.dir, name)
}

func (r *fileRepository) read(name string) ([]byte, error) {
	if r.fsys != nil {
		return fs.ReadFile(r.fsys, name)
	}
	return os.ReadFile(name)
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "catalog load interrupted")
	}

	candidates := []string{r.resolve(input.Name)}
	if filepath.Ext(input.Name) == "" {
		candidates = candidates[:0]
		for _, ext := range fileExtensions {
			candidates = append(candidates, r.resolve(input.Name+ext))
		}
	}

	for _, candidate := range candidates {
		data, err := r.read(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read catalog %s", candidate)
		}

		items, err := Decode(bytes.NewReader(data), FormatFromPath(candidate))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load catalog %s", candidate)
		}
		return &GetOutput{
			Name:  input.Name,
			Items: items,
		}, nil
	}

	return nil, errors.NotFoundf("catalog %s not found", input.Name).
		WithMeta("paths", candidates)
}

func (r *fileRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if r.fsys != nil {
		return nil, errors.FailedPreconditionf("catalog %s is read-only", input.Name)
	}
	if err := Validate(input.Items); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "catalog store interrupted")
	}

	target := input.Name
	if filepath.Ext(target) == "" {
		target += ".json"
	}
	target = r.resolve(target)

	var buf bytes.Buffer
	if err := Encode(&buf, FormatFromPath(target), input.Items); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create catalog directory for %s", target)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write catalog %s", target)
	}

	return &PutOutput{
		Name:  input.Name,
		Count: len(input.Items),
	}, nil
}

// List returns every catalog file in the directory, without its extension.
// Subdirectories are not searched.
func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "catalog listing interrupted")
	}

	var (
		entries []fs.DirEntry
		err     error
	)
	switch {
	case r.fsys != nil:
		dir := r.dir
		if dir == "" {
			dir = "."
		}
		entries, err = fs.ReadDir(r.fsys, dir)
	case r.dir == "":
		entries, err = os.ReadDir(".")
	default:
		entries, err = os.ReadDir(r.dir)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ListOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to list catalogs")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !slices.Contains(fileExtensions, strings.ToLower(ext)) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	slices.Sort(names)

	return &ListOutput{Names: slices.Compact(names)}, nil
}
