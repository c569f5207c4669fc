package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/libcoords/internal/bridge"
	"github.com/aalvaropc/libcoords/internal/domain"
)

func surveyDocument() domain.Document {
	return domain.Document{
		Name:      "Survey",
		Tolerance: domain.DefaultTolerance,
		Locations: []domain.LocationEntry{
			{Location: domain.NewLocation(coord(domain.A(3), 4), "origin"), ExpectLength: ptr(5.0)},
			{Location: domain.NewLocation(coord(domain.C(true), 2.5), "ridge")},
			{Location: domain.NewLocation(coord(domain.C(false), 9), "void"), ExpectLength: ptr(1.0)},
		},
		Midpoints: []domain.MidpointJob{
			{Name: "ab", X: coord(domain.A(5), 3), Y: coord(domain.A(2), 4), Expect: ptr(coord(domain.A(3), 5))},
			{Name: "bb", X: coord(domain.B(3), 0), Y: coord(domain.B(4), 0)},
			{Name: "cc", X: coord(domain.C(true), 1), Y: coord(domain.C(true), 1), Expect: ptr(coord(domain.C(true), math.Sqrt2))},
			{Name: "clash", X: coord(domain.C(true), 0), Y: coord(domain.C(false), 0), ExpectError: ptr(domain.CantExist)},
			{Name: "mixed", X: coord(domain.A(1), 0), Y: coord(domain.B(1), 0)},
		},
	}
}

func TestEvaluateDocument_Report(t *testing.T) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	uc := NewEvaluateDocument(fakeDocumentLoader{doc: surveyDocument()}, WithClock(now))
	report, err := uc.Execute(context.Background(), "survey.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.DocumentName != "Survey" || report.DocumentPath != "survey.yaml" {
		t.Fatalf("unexpected header: %+v", report)
	}
	if !report.EndedAt.After(report.StartedAt) {
		t.Fatalf("expected EndedAt after StartedAt")
	}

	if len(report.Lengths) != 3 {
		t.Fatalf("expected 3 lengths, got %d", len(report.Lengths))
	}
	if report.Lengths[0].Length != 5 || report.Lengths[0].Coordinate != "A(3) 4" {
		t.Fatalf("unexpected origin result %+v", report.Lengths[0])
	}
	if report.Lengths[1].Length != 2.5 || len(report.Lengths[1].Assertions) != 0 {
		t.Fatalf("unexpected ridge result %+v", report.Lengths[1])
	}
	if !report.Lengths[2].Failed() {
		t.Fatalf("expected void length assertion to fail")
	}

	byName := map[string]domain.MidpointResult{}
	for _, m := range report.Midpoints {
		byName[m.Name] = m
	}

	if r := byName["ab"]; r.Result != "A(3) 5" || r.Error != nil || r.Failed() {
		t.Fatalf("unexpected ab result %+v", r)
	}
	if r := byName["bb"]; r.Result != "B(5) 0" {
		t.Fatalf("unexpected bb result %+v", r)
	}
	if r := byName["cc"]; r.Failed() {
		t.Fatalf("expected cc to pass, got %+v", r)
	}

	clash := byName["clash"]
	if clash.Error == nil || clash.Error.Code != int(bridge.CodeCantExist) || clash.Error.Domain != bridge.ErrorDomain {
		t.Fatalf("unexpected clash error %+v", clash.Error)
	}
	if clash.Result != "A(0) 0" {
		t.Fatalf("expected sentinel result, got %q", clash.Result)
	}
	if !clash.Expected || clash.Failed() {
		t.Fatalf("expected anticipated clash error, got %+v", clash)
	}

	mixed := byName["mixed"]
	if mixed.Error == nil || mixed.Error.Name != "wrongDimensions" || mixed.Result != "A(0) 0" {
		t.Fatalf("unexpected mixed result %+v", mixed)
	}
	if !mixed.Failed() {
		t.Fatalf("expected unanticipated error to fail")
	}

	// void length mismatch + unanticipated mixed error
	if n := report.Failures(); n != 2 {
		t.Fatalf("Failures() = %d, want 2", n)
	}
}

func TestEvaluateDocument_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	uc := NewEvaluateDocument(fakeDocumentLoader{doc: surveyDocument()}, WithLogger(l))
	if _, err := uc.Execute(context.Background(), "survey.yaml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "msg=evaluate.midpoint_failed entry=clash code=1 err=cantExist expected=true") {
		t.Fatalf("expected clash failure log, got:\n%s", out)
	}
	if !strings.Contains(out, "msg=evaluate.done") || !strings.Contains(out, "failures=2") {
		t.Fatalf("expected summary log, got:\n%s", out)
	}
	if strings.Contains(out, "evaluate.length") {
		t.Fatalf("expected debug entries to be filtered, got:\n%s", out)
	}
}

func TestEvaluateDocument_LoadError(t *testing.T) {
	loadErr := errors.New("document not found")
	uc := NewEvaluateDocument(errDocumentLoader{err: loadErr})

	_, err := uc.Execute(context.Background(), "missing.yaml")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected loadErr, got %v", err)
	}
}

func TestEvaluateDocument_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewEvaluateDocument(fakeDocumentLoader{doc: surveyDocument()})
	_, err := uc.Execute(ctx, "survey.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEvaluateDocument_ZeroToleranceFallsBack(t *testing.T) {
	doc := domain.Document{
		Name: "tol",
		Locations: []domain.LocationEntry{
			{Location: domain.NewLocation(coord(domain.B(0.5), 1.2), "p"), ExpectLength: ptr(1.3)},
		},
	}

	report, err := NewEvaluateDocument(fakeDocumentLoader{doc: doc}).Execute(context.Background(), "tol.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Failures() != 0 {
		t.Fatalf("expected default tolerance to accept rounding, got %+v", report.Lengths)
	}
}
