package tui

import (
	"context"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/controller"
	"tasksync/internal/logging"
	"tasksync/internal/page"
	"tasksync/internal/service"
	"tasksync/internal/testutil"
)

func newModel(t *testing.T, store *testutil.FakeStore) *Model {
	t.Helper()
	ctl := controller.New(store, page.New(), testutil.NewScriptedPrompter(), logging.Discard())
	m := New(context.Background(), ctl)
	finish(t, m, m.Init())
	store.ResetCalls()
	return m
}

// finish runs a flow command synchronously and feeds its result back.
func finish(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	raw := cmd()
	msg, ok := raw.(flowDoneMsg)
	if !ok {
		t.Fatalf("expected flowDoneMsg, got %T", raw)
	}
	m.Update(msg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func assertCalls(t *testing.T, store *testutil.FakeStore, want ...string) {
	t.Helper()
	got := store.CallNames()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected calls %q, got %q", want, got)
	}
}

func TestInitLoads(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("Buy milk", false)
	store.AddTask("Walk dog", true)
	m := newModel(t, store)

	view := m.View()
	for _, want := range []string{"Buy milk", "Walk dog", "Total: 2 tasks", "Completed: 1", "[x]"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q\n%s", want, view)
		}
	}
	if m.busy {
		t.Error("expected not busy after load")
	}
}

func TestEmptyView(t *testing.T) {
	m := newModel(t, testutil.NewFakeStore())
	if !strings.Contains(m.View(), "No tasks yet. Add one above!") {
		t.Errorf("expected empty state\n%s", m.View())
	}
}

func TestAddFlow(t *testing.T) {
	store := testutil.NewFakeStore()
	m := newModel(t, store)

	press(m, runes("a"))
	if m.mode != modeInput {
		t.Fatalf("expected input mode, got %v", m.mode)
	}
	press(m, runes("Buy milk"))
	finish(t, m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	assertCalls(t, store, `Create("Buy milk")`, "FetchAll()")
	if m.mode != modeBrowse {
		t.Errorf("expected browse mode, got %v", m.mode)
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Errorf("expected new task in view\n%s", m.View())
	}
}

func TestAddEmptyShowsAlert(t *testing.T) {
	store := testutil.NewFakeStore()
	m := newModel(t, store)

	press(m, runes("a"))
	press(m, runes("   "))
	finish(t, m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	assertCalls(t, store)
	if m.status != controller.MsgEmptyTitle {
		t.Errorf("expected status %q, got %q", controller.MsgEmptyTitle, m.status)
	}
}

func TestTypingQDoesNotQuit(t *testing.T) {
	m := newModel(t, testutil.NewFakeStore())

	press(m, runes("a"))
	press(m, runes("q"))
	if m.quitting {
		t.Error("expected q to be typed into the input")
	}
	if m.input.Value() != "q" {
		t.Errorf("expected input %q, got %q", "q", m.input.Value())
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeBrowse {
		t.Errorf("expected browse mode after esc, got %v", m.mode)
	}
}

func TestCursorAndToggle(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("first", false)
	store.AddTask("second", false)
	m := newModel(t, store)

	press(m, runes("j"))
	press(m, runes("j"))
	if m.cursor != 1 {
		t.Fatalf("expected cursor clamped at 1, got %d", m.cursor)
	}
	press(m, runes("k"))
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}

	finish(t, m, press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	assertCalls(t, store, "SetCompleted(2, true)", "FetchAll()")

	store.ResetCalls()
	finish(t, m, press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	assertCalls(t, store, "SetCompleted(2, false)", "FetchAll()")
}

func TestToggleFailureShowsStatus(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("first", false)
	m := newModel(t, store)
	store.SetCompletedErr = service.ErrNetwork

	finish(t, m, press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	if !strings.Contains(m.status, "Could not toggle") {
		t.Errorf("expected failure status, got %q", m.status)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("first", false)
	store.AddTask("second", false)
	m := newModel(t, store)

	press(m, runes("j"))
	if cmd := press(m, runes("d")); cmd != nil {
		t.Fatal("expected no command before confirmation")
	}
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode, got %v", m.mode)
	}
	if !strings.Contains(m.View(), controller.MsgConfirmDelete) {
		t.Errorf("expected confirmation prompt\n%s", m.View())
	}
	assertCalls(t, store)

	finish(t, m, press(m, runes("y")))
	assertCalls(t, store, "Remove(2)", "FetchAll()")
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}
}

func TestDeleteDeclined(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("first", false)
	m := newModel(t, store)

	press(m, runes("d"))
	finish(t, m, press(m, runes("n")))

	assertCalls(t, store)
	if m.status != "Delete cancelled" {
		t.Errorf("expected cancelled status, got %q", m.status)
	}
}

func TestReload(t *testing.T) {
	store := testutil.NewFakeStore()
	m := newModel(t, store)
	store.AddTask("added elsewhere", false)

	finish(t, m, press(m, runes("r")))
	assertCalls(t, store, "FetchAll()")
	if !strings.Contains(m.View(), "added elsewhere") {
		t.Errorf("expected reloaded task\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newModel(t, testutil.NewFakeStore())
		cmd := press(m, key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", key)
		}
		if m.View() != "" {
			t.Errorf("%s: expected empty view after quit", key)
		}
	}
}

func TestKeysIgnoredOnEmptyList(t *testing.T) {
	store := testutil.NewFakeStore()
	m := newModel(t, store)

	if cmd := press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); cmd != nil {
		t.Error("expected no toggle on empty list")
	}
	press(m, runes("d"))
	if m.mode != modeBrowse {
		t.Error("expected no confirmation on empty list")
	}
	assertCalls(t, store)
}
