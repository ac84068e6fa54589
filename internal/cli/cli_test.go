package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/primer/internal/domain"
)

func executeCommand(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()

	cmd, opts := newRootCmd()
	opts.environ = func() []string { return env }

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	opts.closeLogger()
	return out.String(), err
}

// workspace chdirs into a fresh directory holding the given doctest files.
func workspace(t *testing.T, doctests map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	if len(doctests) > 0 {
		if err := os.MkdirAll(filepath.Join(dir, "doctests"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for name, body := range doctests {
		if err := os.WriteFile(filepath.Join(dir, "doctests", name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const twoFailures = `CREATE TABLE t (n INTEGER);
INSERT INTO t VALUES (1), (2);

SELECT count(*) FROM t;
-- EQUALS [[2]]

SELECT max(n) FROM t;
-- EQUALS [[3]]

SELECT min(n) FROM t;
-- EQUALS [[0]]
`

const allGood = `SELECT 1 + 1;
-- EQUALS [[2]]

SELECT 'x';
-- EQUALS [["x"]]
`

// --- run ---

func TestRun_EmptyRegistrySucceeds(t *testing.T) {
	workspace(t, nil)

	out, err := executeCommand(t, nil, "run", "--no-builtin", "--no-save")
	if err != nil {
		t.Fatalf("expected success, got %v\n%s", err, out)
	}
	if !strings.Contains(out, "OK  0 passed, 0 failed") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	workspace(t, map[string]string{"bad.sql": twoFailures})

	out, err := executeCommand(t, nil, "run", "--no-builtin", "--no-save")
	if err == nil {
		t.Fatalf("expected failure, got success:\n%s", out)
	}
	if got := strings.Count(out, "FAIL bad/line"); got != 1 {
		t.Fatalf("expected one reported failure, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "1 passed, 1 failed") {
		t.Fatalf("expected 1 passed / 1 failed:\n%s", out)
	}
	if !strings.Contains(out, "--keep-going") {
		t.Fatalf("expected halt hint:\n%s", out)
	}
}

func TestRun_KeepGoingListsEveryFailure(t *testing.T) {
	workspace(t, map[string]string{"bad.sql": twoFailures})

	out, err := executeCommand(t, nil, "run", "--no-builtin", "--no-save", "--keep-going")
	if err == nil {
		t.Fatalf("expected failure, got success:\n%s", out)
	}
	if got := strings.Count(out, "FAIL bad/line"); got != 2 {
		t.Fatalf("expected two reported failures, got %d:\n%s", got, out)
	}
	if strings.Index(out, "max(n)") > strings.Index(out, "min(n)") {
		t.Fatalf("expected failures in file order:\n%s", out)
	}
	if !strings.Contains(out, "1 passed, 2 failed") {
		t.Fatalf("expected 1 passed / 2 failed:\n%s", out)
	}
}

func TestRun_KeepGoingFromEnvironment(t *testing.T) {
	workspace(t, map[string]string{"bad.sql": twoFailures})

	out, _ := executeCommand(t, []string{"PRIMER_RUN_STOP_ON_FIRST_FAILURE=false"}, "run", "--no-builtin", "--no-save")
	if !strings.Contains(out, "1 passed, 2 failed") {
		t.Fatalf("expected keep-going from env:\n%s", out)
	}

	// An explicit flag still wins over the environment.
	out, _ = executeCommand(t, []string{"PRIMER_RUN_STOP_ON_FIRST_FAILURE=false"}, "run", "--no-builtin", "--no-save", "--stop-on-failure")
	if !strings.Contains(out, "1 passed, 1 failed") {
		t.Fatalf("expected flag to override env:\n%s", out)
	}
}

func TestRun_JSONFormat(t *testing.T) {
	workspace(t, map[string]string{"good.sql": allGood})

	out, err := executeCommand(t, nil, "run", "--no-builtin", "--no-save", "--format", "json")
	if err != nil {
		t.Fatalf("expected success, got %v\n%s", err, out)
	}

	var payload struct {
		Report domain.RunReport `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if payload.Report.Passed != 2 || payload.Report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", payload.Report)
	}
	if len(payload.Report.Results) != 2 || payload.Report.Results[0].Suite != "good" {
		t.Fatalf("unexpected results: %+v", payload.Report.Results)
	}
}

func TestRun_VerbosePrintsEveryExample(t *testing.T) {
	workspace(t, map[string]string{"good.sql": allGood})

	out, err := executeCommand(t, nil, "run", "--no-builtin", "--no-save", "-v")
	if err != nil {
		t.Fatalf("expected success, got %v\n%s", err, out)
	}
	if got := strings.Count(out, "✓ good/line"); got != 2 {
		t.Fatalf("expected 2 progress lines, got %d:\n%s", got, out)
	}
}

func TestRun_InvalidFilter(t *testing.T) {
	workspace(t, nil)

	_, err := executeCommand(t, nil, "run", "--run", "(", "--no-save")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}

func TestRun_ConflictingFlags(t *testing.T) {
	workspace(t, nil)

	if _, err := executeCommand(t, nil, "run", "--keep-going", "--stop-on-failure"); err == nil {
		t.Fatalf("expected an error for mutually exclusive flags")
	}
}

func TestRun_MissingDoctestsDir(t *testing.T) {
	workspace(t, nil)

	_, err := executeCommand(t, nil, "run", "--no-builtin", "--doctests", "nowhere")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRun_BuiltinLessonsPass(t *testing.T) {
	workspace(t, nil)

	out, err := executeCommand(t, nil, "run", "--no-save")
	if err != nil {
		t.Fatalf("expected built-in lessons to pass, got %v\n%s", err, out)
	}
	if strings.Contains(out, "FAIL") {
		t.Fatalf("unexpected failure:\n%s", out)
	}
}

// --- init / runs ---

func TestInitRunAndInspectReports(t *testing.T) {
	dir := workspace(t, nil)

	out, err := executeCommand(t, nil, "init")
	if err != nil {
		t.Fatalf("init error: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "primer.yaml")); err != nil {
		t.Fatalf("expected primer.yaml: %v", err)
	}

	out, err = executeCommand(t, nil, "run", "--run", "^example/")
	if err != nil {
		t.Fatalf("run error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "report saved as ") {
		t.Fatalf("expected saved report:\n%s", out)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "runs", "*.json"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one report file, got %v (err=%v)", matches, err)
	}
	id := strings.TrimSuffix(filepath.Base(matches[0]), ".json")

	out, err = executeCommand(t, nil, "runs", "list")
	if err != nil {
		t.Fatalf("runs list error: %v\n%s", err, out)
	}
	if !strings.Contains(out, id) {
		t.Fatalf("expected %s in runs list:\n%s", id, out)
	}

	out, err = executeCommand(t, nil, "runs", "show", id, "--format", "json")
	if err != nil {
		t.Fatalf("runs show error: %v\n%s", err, out)
	}
	var payload struct {
		Report domain.RunReport `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("show output is not JSON: %v\n%s", err, out)
	}
	if payload.Report.Passed != 4 {
		t.Fatalf("expected 4 passed doctests, got %+v", payload.Report)
	}

	if _, err := os.Stat(filepath.Join(dir, ".primer", "logs", "primer.log")); err != nil {
		t.Fatalf("expected log file inside the workspace: %v", err)
	}
}

// --- list / version ---

func TestList_FilterMatchesSuite(t *testing.T) {
	workspace(t, nil)

	out, err := executeCommand(t, nil, "list", "--run", "^flow/")
	if err != nil {
		t.Fatalf("list error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "labeled break") {
		t.Fatalf("expected flow examples:\n%s", out)
	}
	if strings.Contains(out, "block shadowing") {
		t.Fatalf("did not expect scope examples:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, nil, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "primer dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
