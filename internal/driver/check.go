package driver

import (
	"fmt"
	"os"
	"strings"

	"assay/internal/check"
	"assay/internal/diag"
	"assay/internal/eval"
	"assay/internal/source"
)

// assumePrefix marks an assertion whose failure cancels the run instead of
// failing it.
const assumePrefix = "assume "

// LineResult is the outcome of one assertion line.
type LineResult struct {
	Line    int    // 1-based line number in the assertion file
	Source  string // the expression text as written
	Assume  bool   // true when the line carried the assume prefix
	Outcome check.Outcome
	Err     string // parse or evaluation error text; empty on a clean run
}

// Ok reports whether the line neither failed nor errored. Canceled lines
// count as ok: they skip, they do not fail.
func (r LineResult) Ok() bool {
	return r.Err == "" && r.Outcome.Kind != check.Failed
}

// FileReport aggregates the results of checking one assertion file.
type FileReport struct {
	Path      string
	Results   []LineResult
	FromCache bool
}

// Counts tallies the results by category.
func (r *FileReport) Counts() (passed, failed, canceled, errored int) {
	for _, lr := range r.Results {
		switch {
		case lr.Err != "":
			errored++
		case lr.Outcome.Kind == check.Passed:
			passed++
		case lr.Outcome.Kind == check.Canceled:
			canceled++
		default:
			failed++
		}
	}
	return
}

// Ok reports whether every line in the file is ok.
func (r *FileReport) Ok() bool {
	for _, lr := range r.Results {
		if !lr.Ok() {
			return false
		}
	}
	return true
}

// Options configures one check run.
type Options struct {
	// Bindings seed the environment of every assertion. May be nil.
	Bindings Bindings

	// Equality replaces the '===' / '!==' collaborator. Nil keeps the native
	// one.
	Equality eval.EqualityFunc

	// Cache, when non-nil, short-circuits re-checking unchanged files. Only
	// sound while bindings are pure values, which LoadBindings guarantees.
	Cache *DiskCache
}

// CheckFile checks one assertion file from disk, consulting the cache when
// one is configured.
func CheckFile(path string, opts Options) (*FileReport, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key := resultKey(content, opts.Bindings)
	if opts.Cache != nil {
		if report, ok, err := opts.Cache.Lookup(key); err == nil && ok {
			report.Path = path
			report.FromCache = true
			for i := range report.Results {
				report.Results[i].Outcome.File = path
			}
			return report, nil
		}
	}

	report, err := CheckSource(path, content, opts)
	if err != nil {
		return nil, err
	}
	if opts.Cache != nil {
		// Best effort: a cache write failure never fails the run.
		_ = opts.Cache.Store(key, report)
	}
	return report, nil
}

// CheckSource checks assertion source held in memory. Each non-blank,
// non-comment line is one assertion; a leading "assume " switches the line
// from Assert to Assume semantics.
func CheckSource(path string, content []byte, opts Options) (*FileReport, error) {
	report := &FileReport{Path: path}
	fs := source.NewFileSet()

	for i, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lineNo := i + 1

		assume := strings.HasPrefix(line, assumePrefix)
		exprText := line
		if assume {
			exprText = strings.TrimSpace(strings.TrimPrefix(line, assumePrefix))
		}

		report.Results = append(report.Results,
			checkLine(fs, path, lineNo, exprText, assume, opts))
	}

	return report, nil
}

func checkLine(fs *source.FileSet, path string, lineNo int, exprText string, assume bool, opts Options) LineResult {
	result := LineResult{Line: lineNo, Source: exprText, Assume: assume}

	parsed := ParseSource(fs, fmt.Sprintf("%s#%d", path, lineNo), exprText)
	if !parsed.Root.IsValid() {
		parsed.Bag.Sort()
		result.Err = diag.Format(parsed.Bag, fs)
		return result
	}

	var checkOpts []check.Option
	if opts.Equality != nil {
		checkOpts = append(checkOpts, check.WithEquality(opts.Equality))
	}
	checker := check.New(parsed.File, parsed.Exprs, checkOpts...)

	var env *eval.Env
	if opts.Bindings != nil {
		env = opts.Bindings.Env()
	} else {
		env = eval.NewEnv()
	}

	loc := check.Location{File: path, Line: lineNo}
	var outcome check.Outcome
	var err error
	if assume {
		outcome, err = checker.Assume(parsed.Root, env, "", loc)
	} else {
		outcome, err = checker.Assert(parsed.Root, env, "", loc)
	}
	if err != nil {
		result.Err = err.Error()
		return result
	}
	result.Outcome = outcome
	return result
}
