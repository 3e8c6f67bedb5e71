package driver

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/lexer"
	"vhdlsema/internal/parser"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
	"vhdlsema/internal/trace"
)

// DefaultMaxDiagnostics is the per-bag limit used when none is given.
const DefaultMaxDiagnostics = 100

// ParseResult содержит результат парсинга одного файла
type ParseResult struct {
	Path     string
	FileID   source.FileID
	Tree     *parsetree.Node // nil when the file failed to load or parse
	Bag      *diag.Bag
	CacheHit bool
}

// Failed reports whether the file produced no tree.
func (r *ParseResult) Failed() bool { return r.Tree == nil }

// ParseOptions control one parse batch.
type ParseOptions struct {
	MaxDiagnostics int
	Jobs           int        // 0 = GOMAXPROCS
	Cache          *DiskCache // nil disables caching
}

// Parse loads and parses a single file into a fresh FileSet.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*source.FileSet, *ParseResult, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	res, err := parseOne(ctx, fs, id, ParseOptions{MaxDiagnostics: maxDiagnostics})
	if err != nil {
		return nil, nil, err
	}
	return fs, res, nil
}

// ParseFiles parses the already loaded files ids in parallel. Results keep
// the order of ids. The FileSet must not be modified while this runs.
func ParseFiles(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts ParseOptions) ([]*ParseResult, error) {
	results := make([]*ParseResult, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))

	for i, id := range ids {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := parseOne(gctx, fs, id, opts)
			if err != nil {
				return err
			}
			// индекс i уникален для горутины: мьютекс не нужен
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func parseOne(ctx context.Context, fs *source.FileSet, id source.FileID, opts ParseOptions) (*ParseResult, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("parse: unknown file id %d", id)
	}
	res := &ParseResult{Path: file.Path, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}

	_, sp := trace.Start(ctx, trace.ScopePass, "parse")
	sp.WithExtra("file", file.Path)

	if tree, ok, err := opts.Cache.Get(file.Hash, id); err == nil && ok {
		res.Tree = tree
		res.CacheHit = true
		sp.End("cache hit")
		return res, nil
	} else if err != nil {
		diag.ReportWarning(&diag.BagReporter{Bag: res.Bag}, diag.IOCacheError,
			source.FileSpan(id), "ignoring unreadable parse cache entry: "+err.Error()).Emit()
	}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("maxDiagnostics overflow: %w", err)
	}
	reporter := diag.NewDedupReporter(&diag.BagReporter{Bag: res.Bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	pr := parser.ParseFile(lx, parser.Options{Reporter: reporter, MaxErrors: maxErrors})
	res.Tree = pr.Tree

	if res.Tree != nil {
		if err := opts.Cache.Put(file.Hash, file.Path, res.Tree); err != nil {
			diag.ReportWarning(&diag.BagReporter{Bag: res.Bag}, diag.IOCacheError,
				source.FileSpan(id), "could not write parse cache: "+err.Error()).Emit()
		}
	}
	sp.EndOK(res.Tree != nil)
	return res, nil
}
