package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/libcoords/internal/infra/fsworkspace"
	"github.com/aalvaropc/libcoords/internal/infra/workspacefinder"
)

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	msg := cmdInitWorkspaceHere(Deps{WorkspaceInitializer: fsworkspace.NewInitializer()}, root)()
	done, ok := msg.(initWorkspaceDoneMsg)
	if !ok || done.err != nil {
		t.Fatalf("init workspace: %#v", msg)
	}
	return root
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestCmdRefreshWorkspace(t *testing.T) {
	root := newWorkspace(t)
	chdir(t, filepath.Join(root, "documents"))

	msg := cmdRefreshWorkspace(Deps{WorkspaceLocator: workspacefinder.NewFinder()})().(workspaceRefreshedMsg)
	if !msg.found || msg.err != nil {
		t.Fatalf("expected workspace found, got %+v", msg)
	}
	if _, err := os.Stat(filepath.Join(msg.root, workspacefinder.ConfigFileName)); err != nil {
		t.Fatalf("expected root with config, got %q", msg.root)
	}

	msg = cmdRefreshWorkspace(Deps{})().(workspaceRefreshedMsg)
	if msg.found || msg.err == nil {
		t.Fatalf("expected error without a locator, got %+v", msg)
	}
}

func TestCmdInitWorkspaceHere_NoInitializer(t *testing.T) {
	msg := cmdInitWorkspaceHere(Deps{}, t.TempDir())().(initWorkspaceDoneMsg)
	if msg.err == nil {
		t.Fatalf("expected error without an initializer")
	}
}

func TestCmdLoadAndPreviewDocuments(t *testing.T) {
	root := newWorkspace(t)

	loaded := cmdLoadDocuments(root)().(documentsLoadedMsg)
	if loaded.err != nil {
		t.Fatalf("load documents: %v", loaded.err)
	}
	if len(loaded.refs) != 1 || filepath.Base(loaded.refs[0].Path) != "sample.yaml" {
		t.Fatalf("expected the sample document, got %+v", loaded.refs)
	}

	preview := cmdPreviewDocument(loaded.refs[0].Path)().(documentPreviewMsg)
	if preview.err != nil {
		t.Fatalf("preview: %v", preview.err)
	}
	for _, want := range []string{
		filepath.Base(root) + " sample",
		"origin  A(3) 4  (length 5)",
		"ridge",
		"integers  A(5) 3 + A(2) 4  (expect A(3) 5)",
		"clash  C(true) 1 + C(false) 1  (expect error cantExist)",
	} {
		if !strings.Contains(preview.preview, want) {
			t.Errorf("expected %q in preview:\n%s", want, preview.preview)
		}
	}

	missing := cmdPreviewDocument(filepath.Join(root, "documents", "nope.yaml"))().(documentPreviewMsg)
	if missing.err == nil {
		t.Fatalf("expected error for a missing document")
	}
}

func TestCmdLoadDocuments_NoConfig(t *testing.T) {
	msg := cmdLoadDocuments(t.TempDir())().(documentsLoadedMsg)
	if msg.err == nil {
		t.Fatalf("expected error outside a workspace")
	}
}

func TestCmdEvaluate(t *testing.T) {
	root := newWorkspace(t)
	path := filepath.Join(root, "documents", "sample.yaml")

	msg := cmdEvaluate(root, path, nil)().(evaluateDoneMsg)
	if msg.err != nil || msg.saveErr != nil {
		t.Fatalf("evaluate: err=%v saveErr=%v", msg.err, msg.saveErr)
	}
	if msg.report.Failures() != 0 {
		t.Fatalf("expected sample to pass, got %+v", msg.report)
	}
	if msg.id == "" {
		t.Fatalf("expected report to be saved")
	}
	if _, err := os.Stat(filepath.Join(root, "reports", msg.id+".json")); err != nil {
		t.Fatalf("expected saved report file: %v", err)
	}

	var clash bool
	for _, m := range msg.report.Midpoints {
		if m.Name == "clash" {
			clash = m.Error != nil && m.Error.Name == "cantExist" && m.Expected
		}
	}
	if !clash {
		t.Fatalf("expected clash to carry an expected cantExist slot")
	}
}

func TestCmdEvaluate_NoSave(t *testing.T) {
	root := newWorkspace(t)
	t.Setenv("LIBCOORDS_REPORTS_DIR", "archive")
	if err := os.WriteFile(filepath.Join(root, workspacefinder.ConfigFileName), []byte("libcoords:\n  reports:\n    save: false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	msg := cmdEvaluate(root, filepath.Join(root, "documents", "sample.yaml"), nil)().(evaluateDoneMsg)
	if msg.err != nil || msg.id != "" {
		t.Fatalf("expected unsaved report, got id=%q err=%v", msg.id, msg.err)
	}
	if _, err := os.Stat(filepath.Join(root, "archive")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written when save is off")
	}
}
