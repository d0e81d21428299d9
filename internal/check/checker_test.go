package check_test

import (
	"errors"
	"strings"
	"testing"

	"assay/internal/ast"
	"assay/internal/check"
	"assay/internal/diag"
	"assay/internal/eval"
	"assay/internal/parser"
	"assay/internal/source"
)

func compile(t *testing.T, input string) (*source.File, *ast.Exprs, ast.ExprID) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("check.assay", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	exprs := ast.NewExprs(0)
	p := parser.New(file, exprs, &diag.BagReporter{Bag: bag})
	root, ok := p.ParseExpression()
	if !ok {
		t.Fatalf("parse %q failed: %v", input, bag.Items())
	}
	return file, exprs, root
}

var testLoc = check.Location{File: "case.assay", Line: 7}

func assertInput(t *testing.T, input, clue string, env *eval.Env) (check.Outcome, error) {
	t.Helper()
	file, exprs, root := compile(t, input)
	return check.New(file, exprs).Assert(root, env, clue, testLoc)
}

func TestCheckerPassed(t *testing.T) {
	out, err := assertInput(t, "3 == 3", "", eval.NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	if !out.Ok() || out.Kind != check.Passed {
		t.Errorf("outcome = %+v", out)
	}
	if out.Message != "" {
		t.Errorf("passing assertion produced output: %q", out.Message)
	}
	if out.File != "case.assay" || out.Line != 7 {
		t.Errorf("location = %s:%d", out.File, out.Line)
	}
}

func TestCheckerFailedDiagram(t *testing.T) {
	out, err := assertInput(t, "3 == 5", "", eval.NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != check.Failed {
		t.Fatalf("kind = %s", out.Kind)
	}

	want := strings.Join([]string{
		"",
		"3 == 5",
		"| |  |",
		"3 |  5",
		"  false",
	}, "\n")
	if out.Message != want {
		t.Errorf("message:\n%q\nwant:\n%q", out.Message, want)
	}
	if len(out.Diagram) != 5 {
		t.Errorf("diagram rows = %d", len(out.Diagram))
	}
}

func TestCheckerConjunctionDiagram(t *testing.T) {
	env := eval.NewEnv()
	env.Bind("a", eval.IntVal(3))
	env.Bind("b", eval.IntVal(5))

	out, err := assertInput(t, "a == 3 && b == 6", "", env)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"",
		"a == 3 && b == 6",
		"| |  |    | |  |",
		"3 |  3    5 |  6",
		"  true      false",
	}, "\n")
	if out.Message != want {
		t.Errorf("message:\n%q\nwant:\n%q", out.Message, want)
	}
}

func TestCheckerClueConcatenation(t *testing.T) {
	// The clue is followed by a blank line, then the same diagram the
	// clue-less assertion produces.
	bare, err := assertInput(t, "3 == 5", "", eval.NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	clued, err := assertInput(t, "3 == 5", "my clue", eval.NewEnv())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(clued.Message, "my clue\n\n") {
		t.Errorf("message does not start with clue and blank line: %q", clued.Message)
	}
	if clued.Message != "my clue\n"+bare.Message {
		t.Errorf("clued message diverged:\n%q\nvs bare:\n%q", clued.Message, bare.Message)
	}
	if clued.Clue != "my clue" {
		t.Errorf("Clue = %q", clued.Clue)
	}
}

func TestCheckerLiteralFallback(t *testing.T) {
	// A bare literal has nothing to diagram.
	out, err := assertInput(t, "false", "", eval.NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != check.Failed {
		t.Fatalf("kind = %s", out.Kind)
	}
	if out.Message != "false was false" {
		t.Errorf("message = %q", out.Message)
	}
	if out.Diagram != nil {
		t.Errorf("fallback produced diagram rows: %v", out.Diagram)
	}
}

func TestCheckerLiteralFallbackWithClue(t *testing.T) {
	out, err := assertInput(t, "false", "my clue", eval.NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.Message, "my clue\n\n") {
		t.Errorf("message = %q", out.Message)
	}
	if out.Message != "my clue\n\nfalse was false" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestCheckerBlockFallback(t *testing.T) {
	env := eval.NewEnv()
	env.BlockEval = func(text string) (any, error) { return false, nil }

	out, err := assertInput(t, "{ x = 1; x > 2 }", "", env)
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "{ x = 1; x > 2 } was false" {
		t.Errorf("message = %q", out.Message)
	}
	if out.Diagram != nil {
		t.Errorf("block produced diagram rows: %v", out.Diagram)
	}
}

func TestCheckerNegatedBlockFallback(t *testing.T) {
	env := eval.NewEnv()
	env.BlockEval = func(text string) (any, error) { return true, nil }

	out, err := assertInput(t, "!{ x > 0 }", "", env)
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "{ x > 0 } was true" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestCheckerAssumeCanceled(t *testing.T) {
	file, exprs, root := compile(t, "3 == 5")
	out, err := check.New(file, exprs).Assume(root, eval.NewEnv(), "", testLoc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != check.Canceled {
		t.Fatalf("kind = %s", out.Kind)
	}

	// Same rendering pipeline as Assert.
	ref, err := check.New(file, exprs).Assert(root, eval.NewEnv(), "", testLoc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != ref.Message {
		t.Errorf("assume message diverged from assert:\n%q\nvs\n%q", out.Message, ref.Message)
	}
}

func TestCheckerErrorPropagates(t *testing.T) {
	boom := errors.New("expression blew up")
	env := eval.NewEnv()
	env.BindFunc("explode", func(args []eval.Value) (eval.Value, error) {
		return eval.Value{}, boom
	})

	_, err := assertInput(t, "explode()", "", env)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the user's error unchanged", err)
	}
}

func TestCheckerNonBooleanResult(t *testing.T) {
	env := eval.NewEnv()
	env.Bind("n", eval.IntVal(3))
	_, err := assertInput(t, "n", "", env)
	if !errors.Is(err, eval.ErrNotBoolean) {
		t.Fatalf("err = %v, want ErrNotBoolean", err)
	}
}

func TestCheckerCustomEquality(t *testing.T) {
	always := func(a, b eval.Value) bool { return true }
	file, exprs, root := compile(t, "3 === 5")
	out, err := check.New(file, exprs, check.WithEquality(always)).
		Assert(root, eval.NewEnv(), "", testLoc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != check.Passed {
		t.Errorf("kind = %s, want Passed under the custom equality", out.Kind)
	}
}

func TestCheckerIdempotent(t *testing.T) {
	file, exprs, root := compile(t, "3 == 5")
	c := check.New(file, exprs)

	out1, err := c.Assert(root, eval.NewEnv(), "", testLoc)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := c.Assert(root, eval.NewEnv(), "", testLoc)
	if err != nil {
		t.Fatal(err)
	}
	if out1.Message != out2.Message {
		t.Errorf("messages differ:\n%q\nvs\n%q", out1.Message, out2.Message)
	}
}
