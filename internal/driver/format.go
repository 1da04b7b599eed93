package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"sexpfmt/internal/diag"
	"sexpfmt/internal/format"
	"sexpfmt/internal/parser"
	"sexpfmt/internal/project"
	"sexpfmt/internal/source"
)

// FormatOptions configures canonical re-rendering.
type FormatOptions struct {
	// Check leaves files untouched; Changed reports what would rewrite.
	Check bool
	// Stdout returns formatted content in the results instead of writing.
	Stdout bool
	// Jobs caps parallel workers; 0 means one worker per CPU.
	Jobs           int
	MaxDiagnostics int
	Options        format.Options
	// Cache, когда не nil, хранит вердикты "уже канонично" между запусками.
	Cache *DiskCache
	// OnResult, when set, observes each result as it completes. Called from
	// worker goroutines under an internal lock.
	OnResult func(FormatResult)
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
	Bag       *diag.Bag
	// FileSet resolves the bag's spans for rendering.
	FileSet *source.FileSet
}

// FormatPaths formats the files collected from paths in parallel. Per-file
// failures (I/O, structural errors) land in the corresponding result, not in
// the returned error; the error covers collection and cancellation only.
func FormatPaths(ctx context.Context, paths []string, cfg project.Config, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectFiles(ctx, paths, cfg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no input files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индекс i уникален для горутины, мьютекс нужен только для OnResult.
	results := make([]FormatResult, len(files))
	var notifyMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = formatOneFile(path, opts)
			if opts.OnResult != nil {
				notifyMu.Lock()
				opts.OnResult(results[i])
				notifyMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOneFile(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	res.Bag = diag.NewBag(maxDiag)

	fs := source.NewFileSet()
	res.FileSet = fs
	fileID, err := fs.Load(path)
	if err != nil {
		res.Err = err
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
			Primary:  source.Span{},
		})
		return res
	}
	sf := fs.Get(fileID)

	// Load уже нормализовал CRLF/BOM; если нормализация что-то изменила,
	// файл по определению не канонический.
	normalized := sf.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0

	key := cacheKey(sf, opts.Options)
	if !normalized && opts.Cache != nil {
		var payload DiskPayload
		if ok, _ := opts.Cache.Get(key, &payload); ok && payload.Canonical {
			if opts.Stdout {
				res.Formatted = append([]byte(nil), sf.Content...)
			}
			return res
		}
	}

	// Структурная валидация до любой записи: кривые скобки не форматируем.
	if _, err := parser.Parse(sf, parser.Options{Reporter: &diag.BagReporter{Bag: res.Bag}}); err != nil {
		res.Err = err
		return res
	}

	formatted := format.Format(sf.Content, opts.Options)
	changed := normalized || !bytes.Equal(sf.Content, formatted)

	if !changed && opts.Cache != nil {
		_ = opts.Cache.Put(key, &DiskPayload{
			Schema:    diskCacheSchemaVersion,
			Canonical: true,
			Compact:   opts.Options.CompactSave,
		})
	}

	res.Changed = changed
	if opts.Check {
		return res
	}
	if opts.Stdout {
		res.Formatted = formatted
		return res
	}

	if changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			res.Err = err
			res.Changed = false
		}
	}
	return res
}
