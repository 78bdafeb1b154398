package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wolfy/internal/history"
	"github.com/five82/wolfy/internal/prefs"
	"github.com/five82/wolfy/internal/wolfram"
)

type fakeQuerier struct {
	mu     sync.Mutex
	calls  []string
	opts   []any
	answer string
	full   *wolfram.FullResponse
	simple *wolfram.SimpleResult
	err    error
}

func (f *fakeQuerier) record(name string, opts any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.opts = append(f.opts, opts)
}

func (f *fakeQuerier) Simple(_ context.Context, input string, opts wolfram.SimpleOptions) (*wolfram.SimpleResult, error) {
	f.record("simple:"+input, opts)
	return f.simple, f.err
}

func (f *fakeQuerier) ShortAnswer(_ context.Context, input string, opts wolfram.AnswerOptions) (string, error) {
	f.record("short:"+input, opts)
	return f.answer, f.err
}

func (f *fakeQuerier) Spoken(_ context.Context, input string, opts wolfram.AnswerOptions) (string, error) {
	f.record("spoken:"+input, opts)
	return f.answer, f.err
}

func (f *fakeQuerier) Full(_ context.Context, input string, opts wolfram.FullOptions) (*wolfram.FullResponse, error) {
	f.record("full:"+input, opts)
	return f.full, f.err
}

func newTestModel(t *testing.T, client wolfram.Querier) (Model, string) {
	t.Helper()
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Client:    client,
		Store:     history.NewStore(10),
		PrefsPath: prefsPath,
		Units:     wolfram.UnitsMetric,
		Timeout:   5,
		ImageDir:  t.TempDir(),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model), prefsPath
}

// collectResult runs cmd (and any batched children) and returns the query result.
func collectResult(t *testing.T, cmd tea.Cmd) queryResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("cmd is nil, want query command")
	}
	switch msg := cmd().(type) {
	case queryResultMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if res, ok := c().(queryResultMsg); ok {
				return res
			}
		}
	}
	t.Fatalf("no queryResultMsg produced")
	return queryResultMsg{}
}

func TestModel_SubmitRecordsAnswer(t *testing.T) {
	fq := &fakeQuerier{answer: "3.14159"}
	m, _ := newTestModel(t, fq)

	m.input.SetValue("  pi  ")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.pending || m.pendingInput != "pi" {
		t.Fatalf("pending = %v %q, want true pi", m.pending, m.pendingInput)
	}
	if m.input.Value() != "" {
		t.Fatalf("input not reset: %q", m.input.Value())
	}

	// A second enter while pending does nothing.
	m.input.SetValue("e")
	if _, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); again != nil {
		t.Fatalf("submit while pending returned a command")
	}

	res := collectResult(t, cmd)
	updated, _ = m.Update(res)
	m = updated.(Model)

	if m.pending {
		t.Fatalf("still pending after result")
	}
	if len(fq.calls) != 1 || fq.calls[0] != "short:pi" {
		t.Fatalf("calls = %v, want [short:pi]", fq.calls)
	}
	opts := fq.opts[0].(wolfram.AnswerOptions)
	if opts.Units != wolfram.UnitsMetric || opts.Timeout != 5 {
		t.Fatalf("AnswerOptions = %#v", opts)
	}
	latest, ok := m.snapshot.Latest()
	if !ok || latest.Answer != "3.14159" || latest.Endpoint != "short" || latest.Failed() {
		t.Fatalf("latest = %#v, %v", latest, ok)
	}
	if !strings.Contains(m.View(), "3.14159") {
		t.Fatalf("View() does not contain the answer")
	}
}

func TestModel_SubmitEmptyInputIsNoop(t *testing.T) {
	fq := &fakeQuerier{}
	m, _ := newTestModel(t, fq)
	m.input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("cmd = non-nil, want nil")
	}
	if updated.(Model).pending {
		t.Fatalf("pending after empty submit")
	}
}

func TestModel_FailedQueryShowsError(t *testing.T) {
	fq := &fakeQuerier{err: wolfram.NewAPIError(wolfram.ErrorBody{Status: 501, Message: "did not understand"})}
	m, _ := newTestModel(t, fq)
	m.input.SetValue("blorp")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated, _ := m.Update(collectResult(t, cmd))
	m = updated.(Model)

	if m.snapshot.Failures != 1 {
		t.Fatalf("Failures = %d, want 1", m.snapshot.Failures)
	}
	var apiErr *wolfram.APIError
	latest, _ := m.snapshot.Latest()
	if !errors.As(latest.Err, &apiErr) || apiErr.Status != 501 {
		t.Fatalf("latest.Err = %v, want APIError 501", latest.Err)
	}
	if !strings.Contains(m.View(), "did not understand") {
		t.Fatalf("View() does not contain the error message")
	}
}

func TestModel_TabCyclesEndpointAndSavesPrefs(t *testing.T) {
	m, prefsPath := newTestModel(t, &fakeQuerier{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.endpoint != EndpointSpoken {
		t.Fatalf("endpoint = %q, want spoken", m.endpoint)
	}
	if got := prefs.Load(prefsPath); got.Endpoint != "spoken" || got.Theme != "Nightfox" {
		t.Fatalf("prefs = %#v, want spoken/Nightfox", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.endpoint != EndpointShort {
		t.Fatalf("endpoint = %q, want short", m.endpoint)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m, prefsPath := newTestModel(t, &fakeQuerier{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(prefsPath); got.Theme != "Kanagawa" {
		t.Fatalf("prefs theme = %q, want Kanagawa", got.Theme)
	}
}

func TestModel_ClearHistory(t *testing.T) {
	store := history.NewStore(10)
	store.Add(history.Entry{Endpoint: "short", Input: "1+1", Answer: "2"})
	m := New(Options{Client: &fakeQuerier{}, Store: store, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if len(m.snapshot.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(m.snapshot.Entries))
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)
	if len(m.snapshot.Entries) != 0 || len(store.Snapshot().Entries) != 0 {
		t.Fatalf("history not cleared")
	}
}

func TestModel_QuitAndHelp(t *testing.T) {
	m, _ := newTestModel(t, &fakeQuerier{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if !m.showHelp || !strings.Contains(m.View(), "Cycle theme") {
		t.Fatalf("help not shown")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = updated.(Model)
	if m.showHelp {
		t.Fatalf("help still shown after key press")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("esc returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("esc did not quit")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestDispatch_FullFormatsPods(t *testing.T) {
	fq := &fakeQuerier{full: &wolfram.FullResponse{QueryResult: wolfram.QueryResult{
		Success: true,
		Pods: []wolfram.Pod{
			{Title: "Input", ID: "Input", SubPods: []wolfram.SubPod{{PlainText: "population of France"}}},
			{Title: "Result", ID: "Result", SubPods: []wolfram.SubPod{{PlainText: "68 million people"}}},
			{Title: "Image", ID: "Image"},
		},
	}}}

	got, err := dispatch(context.Background(), fq, EndpointFull, "population of France", querySettings{timeout: 9})
	if err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	want := "# Input\npopulation of France\n\n# Result\n68 million people"
	if got != want {
		t.Fatalf("dispatch = %q, want %q", got, want)
	}
	opts := fq.opts[0].(wolfram.FullOptions)
	if len(opts.Formats) != 1 || opts.Formats[0] != wolfram.FormatPlainText || opts.Timeout != 9 {
		t.Fatalf("FullOptions = %#v", opts)
	}
}

func TestFormatFull_NoResultListsSuggestions(t *testing.T) {
	got := formatFull(wolfram.QueryResult{
		DidYouMeans: wolfram.DidYouMeans{{Val: "population of France"}},
		Tips:        wolfram.Tips{{Text: "Check your spelling"}},
	})
	want := "No result\ndid you mean: population of France\ntip: Check your spelling"
	if got != want {
		t.Fatalf("formatFull = %q, want %q", got, want)
	}
}

func TestDispatch_SimpleSavesImage(t *testing.T) {
	dir := t.TempDir()
	fq := &fakeQuerier{simple: &wolfram.SimpleResult{Image: []byte("GIF89a"), ContentType: "image/gif", Ext: "gif"}}

	got, err := dispatch(context.Background(), fq, EndpointSimple, "moon", querySettings{imageDir: dir})
	if err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "wolfy-*.gif"))
	if len(matches) != 1 {
		t.Fatalf("saved files = %v, want one gif", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil || string(data) != "GIF89a" {
		t.Fatalf("saved image = %q, %v", data, err)
	}
	if !strings.Contains(got, "image/gif, 6 bytes saved to "+matches[0]) {
		t.Fatalf("dispatch = %q", got)
	}
}

func TestDispatch_SimpleNoResult(t *testing.T) {
	fq := &fakeQuerier{simple: &wolfram.SimpleResult{NoResult: "Wolfram|Alpha did not understand your input"}}
	got, err := dispatch(context.Background(), fq, EndpointSimple, "blorp", querySettings{imageDir: t.TempDir()})
	if err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	if got != "Wolfram|Alpha did not understand your input" {
		t.Fatalf("dispatch = %q", got)
	}
}

func TestDispatch_Spoken(t *testing.T) {
	fq := &fakeQuerier{answer: "The answer is 4"}
	got, err := dispatch(context.Background(), fq, EndpointSpoken, "2+2", querySettings{})
	if err != nil || got != "The answer is 4" {
		t.Fatalf("dispatch = %q, %v", got, err)
	}
	if fq.calls[0] != "spoken:2+2" {
		t.Fatalf("calls = %v", fq.calls)
	}
}
