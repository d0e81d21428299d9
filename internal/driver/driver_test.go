package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"assay/internal/check"
	"assay/internal/driver"
	"assay/internal/eval"
	"assay/internal/source"
	"assay/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "t.assay", "a == 3")

	result, err := driver.Tokenize(path)
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]token.Kind, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Ident, token.EqEq, token.IntLit, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind %d = %s, want %s", i, kinds[i], want[i])
		}
	}
	if result.Bag.HasErrors() {
		t.Errorf("diagnostics: %v", result.Bag.Items())
	}
}

func TestParseSource(t *testing.T) {
	fs := source.NewFileSet()

	result := driver.ParseSource(fs, "p#1", "a == b")
	if !result.Root.IsValid() {
		t.Fatalf("parse failed: %v", result.Bag.Items())
	}
	if got := result.Exprs.Dump(result.Root); got != "(== a b)" {
		t.Errorf("Dump = %s", got)
	}

	bad := driver.ParseSource(fs, "p#2", "a ==")
	if bad.Root.IsValid() {
		t.Error("parse of malformed input succeeded")
	}
	if !bad.Bag.HasErrors() {
		t.Error("no diagnostics for malformed input")
	}
}

func TestCheckSource(t *testing.T) {
	content := strings.Join([]string{
		"// comment lines and blanks are skipped",
		"",
		"x == 3",
		"x == 4",
		"assume x == 5",
		"x ==",
	}, "\n")

	bindings := driver.Bindings{"x": int64(3)}
	report, err := driver.CheckSource("mem.assay", []byte(content), driver.Options{Bindings: bindings})
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Results) != 4 {
		t.Fatalf("results = %d, want 4", len(report.Results))
	}

	if r := report.Results[0]; r.Line != 3 || r.Outcome.Kind != check.Passed {
		t.Errorf("line 3 = %+v", r)
	}
	if r := report.Results[1]; r.Outcome.Kind != check.Failed || !strings.Contains(r.Outcome.Message, "x == 4") {
		t.Errorf("line 4 = %+v", r)
	}
	if r := report.Results[2]; !r.Assume || r.Outcome.Kind != check.Canceled {
		t.Errorf("line 5 = %+v", r)
	}
	if r := report.Results[3]; r.Err == "" {
		t.Errorf("line 6 should carry a parse error: %+v", r)
	}

	passed, failed, canceled, errored := report.Counts()
	if passed != 1 || failed != 1 || canceled != 1 || errored != 1 {
		t.Errorf("counts = %d/%d/%d/%d", passed, failed, canceled, errored)
	}
	if report.Ok() {
		t.Error("report with failures is Ok")
	}
}

func TestCheckSourceDiagram(t *testing.T) {
	report, err := driver.CheckSource("d.assay", []byte("3 == 5"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"",
		"3 == 5",
		"| |  |",
		"3 |  5",
		"  false",
	}, "\n")
	if got := report.Results[0].Outcome.Message; got != want {
		t.Errorf("message:\n%q\nwant:\n%q", got, want)
	}
}

func TestCheckFileCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.assay", "1 == 2")
	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{Cache: cache}

	first, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Error("first run reported a cache hit")
	}

	second, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache {
		t.Error("second run missed the cache")
	}
	if len(second.Results) != 1 ||
		second.Results[0].Outcome.Kind != first.Results[0].Outcome.Kind ||
		second.Results[0].Outcome.Message != first.Results[0].Outcome.Message {
		t.Errorf("cached report diverged: %+v vs %+v", second.Results, first.Results)
	}

	// Changed content misses the old entry.
	writeFile(t, dir, "c.assay", "1 == 1")
	third, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.FromCache {
		t.Error("changed file still hit the cache")
	}
	if third.Results[0].Outcome.Kind != check.Passed {
		t.Errorf("outcome = %+v", third.Results[0])
	}
}

func TestCheckFileCacheKeyedByBindings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "b.assay", "x == 1")
	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	one, err := driver.CheckFile(path, driver.Options{
		Cache:    cache,
		Bindings: driver.Bindings{"x": int64(1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if one.Results[0].Outcome.Kind != check.Passed {
		t.Errorf("outcome = %+v", one.Results[0])
	}

	// Different bindings must not reuse the old verdict.
	two, err := driver.CheckFile(path, driver.Options{
		Cache:    cache,
		Bindings: driver.Bindings{"x": int64(2)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if two.FromCache {
		t.Error("different bindings hit the cache")
	}
	if two.Results[0].Outcome.Kind != check.Failed {
		t.Errorf("outcome = %+v", two.Results[0])
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.assay", "1 == 1"),
		writeFile(t, dir, "b.assay", "1 == 2"),
		writeFile(t, dir, "c.assay", "2 == 2\n3 == 3"),
	}

	reports, err := driver.CheckFiles(context.Background(), paths, driver.Options{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("reports = %d", len(reports))
	}
	// Order matches the input paths regardless of scheduling.
	if !reports[0].Ok() || reports[1].Ok() || !reports[2].Ok() {
		t.Errorf("verdicts = %v/%v/%v", reports[0].Ok(), reports[1].Ok(), reports[2].Ok())
	}
}

func TestCheckFilesCanceledContext(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 8; i++ {
		paths = append(paths, writeFile(t, dir, filepath.Base(dir)+string(rune('a'+i))+".assay", "1 == 1"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.CheckFiles(ctx, paths, driver.Options{}, 1); err == nil {
		t.Error("canceled context did not surface an error")
	}
}

func TestListAssertionFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.assay", "")
	writeFile(t, dir, "a.assay", "")
	writeFile(t, dir, "notes.txt", "")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "m.assay", "")

	files, err := driver.ListAssertionFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v", files)
	}
	// Sorted, recursive, *.assay only.
	if filepath.Base(files[0]) != "a.assay" || filepath.Base(files[2]) != "z.assay" {
		t.Errorf("order = %v", files)
	}
}

func TestBindingsEnv(t *testing.T) {
	b := driver.Bindings{
		"flag": true,
		"n":    int64(3),
		"f":    1.5,
		"s":    "hi",
		"xs":   []any{int64(1), int64(2)},
	}
	env := b.Env()

	tests := []struct {
		name string
		kind eval.ValueKind
	}{
		{"flag", eval.VKBool},
		{"n", eval.VKInt},
		{"f", eval.VKFloat},
		{"s", eval.VKString},
		{"xs", eval.VKSeq},
	}
	for _, tt := range tests {
		v, ok := env.Lookup(tt.name)
		if !ok || v.Kind != tt.kind {
			t.Errorf("%s = (%v, %v), want kind %s", tt.name, v, ok, tt.kind)
		}
	}
}

func TestLoadBindings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "env.toml", "x = 3\nname = \"Bob\"\nxs = [1, 2, 3]\n")

	b, err := driver.LoadBindings(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 3 {
		t.Errorf("bindings = %v", b)
	}

	// Nested tables have no engine value.
	bad := writeFile(t, dir, "bad.toml", "[table]\nx = 1\n")
	if _, err := driver.LoadBindings(bad); err == nil {
		t.Error("nested table accepted")
	}
}

func TestBindingsHashStable(t *testing.T) {
	a := driver.Bindings{"x": int64(1), "y": "s"}
	b := driver.Bindings{"y": "s", "x": int64(1)}
	if a.Hash() != b.Hash() {
		t.Error("same bindings hash differently")
	}
	c := driver.Bindings{"x": int64(2), "y": "s"}
	if a.Hash() == c.Hash() {
		t.Error("different bindings collide")
	}
}
