package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/libcoords/internal/bridge"
	"github.com/aalvaropc/libcoords/internal/domain"
)

// --- looksLikePath ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"sample", false},
		{"sample.yaml", false},
		{"./sample.yaml", true},
		{"documents/sample.yaml", true},
		{"/abs/path/sample.yaml", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- hasYAMLExt ---

func TestHasYAMLExt(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"sample.yaml", true},
		{"sample.yml", true},
		{"SAMPLE.YAML", true},
		{"sample.json", false},
		{"sample", false},
		{"", false},
	}
	for _, c := range cases {
		if got := hasYAMLExt(c.input); got != c.want {
			t.Errorf("hasYAMLExt(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- fileExists ---

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.txt")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
	if fileExists(filepath.Join(tmp, "not_there.txt")) {
		t.Error("expected fileExists=false for non-existent file")
	}
}

// --- countAssertionPassFail ---

func TestCountAssertionPassFail_Mixed(t *testing.T) {
	in := []domain.AssertionResult{
		{Passed: true},
		{Passed: false},
		{Passed: true},
	}
	pass, fail := countAssertionPassFail(in)
	if pass != 2 || fail != 1 {
		t.Errorf("expected pass=2 fail=1, got pass=%d fail=%d", pass, fail)
	}
}

// --- printReport ---

func sampleReport() domain.Report {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return domain.Report{
		DocumentName: "survey",
		DocumentPath: "/ws/documents/survey.yaml",
		StartedAt:    now,
		EndedAt:      now.Add(3 * time.Millisecond),
		Lengths: []domain.LengthResult{
			{
				Name:       "origin",
				Coordinate: "A(3) 4",
				Length:     5,
				Assertions: []domain.AssertionResult{{Name: "length", Passed: true, Message: "length 5"}},
			},
		},
		Midpoints: []domain.MidpointResult{
			{
				Name:   "clash",
				X:      "C(true) 0",
				Y:      "C(false) 0",
				Result: "A(0) 0",
				Error:  &domain.MidpointFailure{Domain: bridge.ErrorDomain, Code: 1, Name: "cantExist"},
			},
		},
	}
}

func TestPrintReport_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "abc123", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["report_id"] != "abc123" {
		t.Errorf("expected report_id=abc123, got %v", payload["report_id"])
	}
	if payload["report"] == nil {
		t.Error("expected 'report' key in JSON output")
	}
}

func TestPrintReport_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "run-42", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Document: survey",
		"Report ID: run-42",
		"- [OK  ] origin A(3) 4 = 5",
		"1 pass / 0 fail",
		"- [FAIL] clash: C(true) 0 + C(false) 0 -> A(0) 0",
		"error: LibCoordErrorDomain code=1 cantExist",
		"1 length(s), 1 midpoint(s), 1 failure(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pretty output, got:\n%s", want, out)
		}
	}
}

func TestPrintReport_ExpectedErrorIsNoted(t *testing.T) {
	r := sampleReport()
	r.Midpoints[0].Expected = true

	var buf bytes.Buffer
	printPrettyReport(&buf, r, "")
	out := buf.String()

	if !strings.Contains(out, "cantExist (expected)") || !strings.Contains(out, "[OK  ] clash") {
		t.Errorf("expected anticipated error to pass, got:\n%s", out)
	}
}

func TestPrintReport_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, domain.Report{}, "", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- printMidpoint ---

func TestPrintMidpoint_JSONCarriesSlot(t *testing.T) {
	var buf bytes.Buffer
	slot := &bridge.Error{Domain: bridge.ErrorDomain, Code: bridge.CodeWrongDimensions}
	if err := printMidpoint(&buf, bridge.Sentinel(), slot, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		Result string `json:"result"`
		Tag    string `json:"tag"`
		Error  struct {
			Domain string `json:"domain"`
			Code   int    `json:"code"`
			Name   string `json:"name"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload.Result != "A(0) 0" || payload.Tag != "A" {
		t.Errorf("expected sentinel, got %+v", payload)
	}
	if payload.Error.Domain != "LibCoordErrorDomain" || payload.Error.Code != 0 || payload.Error.Name != "wrongDimensions" {
		t.Errorf("unexpected error slot %+v", payload.Error)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"length", "midpoint", "eval", "validate", "documents", "query", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_BareRunsBrowser(t *testing.T) {
	cmd := newRootCmd()
	if cmd.RunE == nil || !cmd.Runnable() {
		t.Fatalf("expected bare root command to start the document browser")
	}

	// Stray words are still rejected rather than opening the browser.
	_, err := execute(t, "bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestEvalCmd_Flags(t *testing.T) {
	cmd := evalCmd()
	if cmd.Use != "eval" {
		t.Errorf("expected Use=eval, got %q", cmd.Use)
	}
	for _, flag := range []string{"document", "workspace", "no-save", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on eval command", flag)
		}
	}
}

func TestDocumentsCmd_HasListSubcommand(t *testing.T) {
	cmd := documentsCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Use == "list" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'list' subcommand under documents")
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

// --- end to end ---

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLengthCommand(t *testing.T) {
	out, err := execute(t, "length", "A(3) 4", "--name", "origin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "origin A(3) 4  length 5" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMidpointCommand(t *testing.T) {
	out, err := execute(t, "midpoint", "B(3) 3", "B(4) 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "B(5) 5" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = execute(t, "midpoint", "C(true) 1", "C(false) 1")
	var slot *bridge.Error
	if !errors.As(err, &slot) || slot.Code != bridge.CodeCantExist {
		t.Fatalf("expected cantExist slot, got %v", err)
	}
	if !strings.HasPrefix(out, "A(0) 0\n") {
		t.Fatalf("expected sentinel to be printed, got %q", out)
	}
}

func TestMidpointCommand_BadNotation(t *testing.T) {
	_, err := execute(t, "midpoint", "A(1.5) 0", "A(1) 0")
	if !domain.IsKind(err, domain.KindInvalidNotation) {
		t.Fatalf("expected KindInvalidNotation, got %v", err)
	}
}

func TestWorkspaceFlow(t *testing.T) {
	root := t.TempDir()

	if _, err := execute(t, "init", "--path", root); err != nil {
		t.Fatalf("init: %v", err)
	}

	out, err := execute(t, "documents", "list", "-w", root)
	if err != nil {
		t.Fatalf("documents list: %v", err)
	}
	if !strings.Contains(out, filepath.Join("documents", "sample.yaml")) {
		t.Fatalf("expected sample document listed, got:\n%s", out)
	}

	if out, err := execute(t, "validate", "-w", root, "-d", "sample"); err != nil || strings.TrimSpace(out) != "OK" {
		t.Fatalf("validate: out=%q err=%v", out, err)
	}

	out, err = execute(t, "eval", "-w", root, "-d", "sample", "--format", "json")
	if err != nil {
		t.Fatalf("eval: %v\n%s", err, out)
	}

	var payload struct {
		ReportID string        `json:"report_id"`
		Report   domain.Report `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("eval output is not JSON: %v\n%s", err, out)
	}
	if payload.ReportID == "" {
		t.Fatalf("expected report to be saved")
	}
	if payload.Report.Failures() != 0 {
		t.Fatalf("expected sample to pass, got %+v", payload.Report)
	}

	out, err = execute(t, "query", "-w", root, payload.ReportID, "$.midpoints[3].error.name")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if strings.TrimSpace(out) != "cantExist" {
		t.Fatalf("unexpected query output %q", out)
	}

	if _, err := os.Stat(filepath.Join(root, ".libcoords", "logs", "libcoords.log")); err != nil {
		t.Fatalf("expected workspace log file: %v", err)
	}
}

func TestRootCmd_TextLogFormat(t *testing.T) {
	root := t.TempDir()
	if _, err := execute(t, "init", "--path", root); err != nil {
		t.Fatalf("init: %v", err)
	}

	t.Setenv("LIBCOORDS_LOG_FORMAT", "text")
	if _, err := execute(t, "documents", "list", "-w", root); err != nil {
		t.Fatalf("documents list: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, ".libcoords", "logs", "libcoords.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "msg=logger.initialized") {
		t.Fatalf("expected key=value log records, got:\n%s", b)
	}
}
