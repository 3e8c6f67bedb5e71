package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/library"
	"vhdlsema/internal/observ"
	"vhdlsema/internal/sema"
	"vhdlsema/internal/source"
	"vhdlsema/internal/trace"
)

// Options configure one analysis run.
type Options struct {
	Files          []string
	LibraryName    string // "work" when empty
	ExtendedLib    bool   // LibraryName is an extended identifier
	MaxDiagnostics int    // per file and phase; 0 means DefaultMaxDiagnostics
	Jobs           int
	Cache          *DiskCache
	Timer          *observ.Timer // optional
	BaseDir        string
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path     string
	FileID   source.FileID
	ParseBag *diag.Bag
	SemaBag  *diag.Bag // nil when the file was never analysed
	Parsed   bool
	Analyzed bool
	OK       bool
	CacheHit bool
}

// Diagnostics returns parse and analysis diagnostics of the file in order.
func (r *FileResult) Diagnostics() []diag.Diagnostic {
	out := append([]diag.Diagnostic(nil), r.ParseBag.Items()...)
	if r.SemaBag != nil {
		out = append(out, r.SemaBag.Items()...)
	}
	return out
}

// Result is the outcome of Run.
type Result struct {
	FileSet *source.FileSet
	DB      *library.DesignDatabase
	Library *library.Library
	Files   []FileResult
}

// OK reports whether every file was parsed and analysed without errors.
func (r *Result) OK() bool {
	if len(r.Files) == 0 {
		return false
	}
	for i := range r.Files {
		if !r.Files[i].OK {
			return false
		}
	}
	return true
}

// Run loads and parses every file in parallel, then analyses them one by one
// into a fresh library. Files are analysed in argument order. Analysis stops
// at the first file that failed to parse; files after it stay unanalysed.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Files) == 0 {
		return nil, errors.New("no input files")
	}
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	name := opts.LibraryName
	if name == "" {
		name = "work"
	}
	libID, err := ident.FromUTF8(name, opts.ExtendedLib)
	if err != nil {
		return nil, fmt.Errorf("library name %q: %w", name, err)
	}

	ctx, runSpan := trace.Start(ctx, trace.ScopeDriver, "run")
	runSpan.WithExtra("files", strconv.Itoa(len(opts.Files)))
	defer runSpan.End("")

	timer := opts.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}

	db := library.NewDesignDatabase()
	db.PopulateBuiltins()
	lib := library.New(libID)
	if err := db.AddLibrary(lib); err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	if opts.BaseDir != "" {
		fs.SetBaseDir(opts.BaseDir)
	}
	res := &Result{FileSet: fs, DB: db, Library: lib, Files: make([]FileResult, len(opts.Files))}

	// загружаем все файлы до запуска горутин: FileSet не потокобезопасен
	endLoad := timer.Measure("load")
	ids := make([]source.FileID, len(opts.Files))
	loadErrs := make([]error, len(opts.Files))
	for i, path := range opts.Files {
		id, loadErr := fs.Load(path)
		if loadErr != nil {
			id = fs.AddVirtual(path, nil)
			loadErrs[i] = loadErr
			trace.Point(trace.FromContext(ctx), trace.ScopePass, "load", "failed: "+path, trace.ParentID(ctx))
		}
		ids[i] = id
	}
	endLoad(strconv.Itoa(len(ids)) + " files")

	endParse := timer.Measure("parse")
	parseIDs := make([]source.FileID, 0, len(ids))
	for i, id := range ids {
		if loadErrs[i] == nil {
			parseIDs = append(parseIDs, id)
		}
	}
	parsed, err := ParseFiles(ctx, fs, parseIDs, ParseOptions{
		MaxDiagnostics: opts.MaxDiagnostics,
		Jobs:           opts.Jobs,
		Cache:          opts.Cache,
	})
	if err != nil {
		endParse("cancelled")
		return nil, err
	}
	hits := 0
	next := 0
	for i, id := range ids {
		fr := &res.Files[i]
		fr.Path = opts.Files[i]
		fr.FileID = id
		if loadErrs[i] != nil {
			fr.ParseBag = diag.NewBag(opts.MaxDiagnostics)
			diag.ReportError(&diag.BagReporter{Bag: fr.ParseBag}, diag.IOLoadFileError,
				source.FileSpan(id), "cannot open file: "+loadErrs[i].Error()).Emit()
			continue
		}
		pr := parsed[next]
		next++
		fr.ParseBag = pr.Bag
		fr.Parsed = !pr.Failed()
		fr.CacheHit = pr.CacheHit
		if pr.CacheHit {
			hits++
		}
	}
	endParse(fmt.Sprintf("%d cached", hits))

	endSema := timer.Measure("analyse")
	analysed := 0
	next = 0
	for i := range res.Files {
		fr := &res.Files[i]
		if !fr.Parsed {
			break
		}
		if err := ctx.Err(); err != nil {
			endSema("cancelled")
			return nil, err
		}
		pr := parsed[next]
		next++
		fr.SemaBag = diag.NewBag(opts.MaxDiagnostics)
		// *sema.UnsupportedError panics abort the whole run.
		// Без dedup: повторные литералы дают одинаковые диагностики, и каждая нужна.
		ok := sema.AnalyzeDesignFile(ctx, pr.Tree, sema.Options{
			Reporter: &diag.BagReporter{Bag: fr.SemaBag},
			FileSet:  fs,
			File:     fr.FileID,
			FileName: fr.Path,
			Library:  lib,
		})
		fr.Analyzed = true
		fr.OK = ok && !fr.ParseBag.HasErrors()
		analysed++
	}
	endSema(strconv.Itoa(analysed) + " files")

	return res, nil
}
