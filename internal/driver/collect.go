package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"sexpfmt/internal/project"
)

// CollectFiles expands command-line paths into a sorted, deduplicated file
// list. Directories are walked recursively keeping files whose extension is
// configured; glob patterns ("boards/**/*.kicad_pcb") expand via doublestar;
// explicit file paths pass through without an extension check.
func CollectFiles(ctx context.Context, paths []string, cfg project.Config) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if strings.ContainsAny(p, "*?[{") {
			matches, err := doublestar.FilepathGlob(p)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				if info, err := os.Stat(m); err == nil && !info.IsDir() {
					addFile(m)
				}
			}
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if cfg.MatchesExtension(path) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// Явно названный файл форматируем независимо от расширения.
		addFile(p)
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
