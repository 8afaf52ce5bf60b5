package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"tasksync/internal/controller"
	"tasksync/internal/logging"
	"tasksync/internal/page"
	"tasksync/internal/service"
	"tasksync/internal/testutil"
	"tasksync/internal/web"
)

func newServer(t *testing.T, store *testutil.FakeStore) http.Handler {
	t.Helper()
	// The base prompter declines; web flows confirm through their own form.
	ctl := controller.New(store, page.New(), testutil.NewScriptedPrompter(), logging.Discard())
	srv, err := web.NewServer(ctl, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func post(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
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

func TestIndexRendersPage(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("Buy milk", false)
	store.AddTask("<script>alert(1)</script>", true)
	h := newServer(t, store)

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		`id="taskInput"`,
		`<span class="task-title">Buy milk</span>`,
		`<span class="task-title">&lt;script&gt;alert(1)&lt;/script&gt;</span>`,
		`<span id="totalTasks">Total: 2 tasks</span>`,
		`<span id="completedTasks">Completed: 1</span>`,
		`<div id="emptyState" class="empty-state hidden">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q\n%s", want, body)
		}
	}
	if strings.Contains(body, "<script>alert(1)") {
		t.Errorf("title was not escaped:\n%s", body)
	}
	if strings.Contains(body, "onclick") || strings.Contains(body, "onchange") {
		t.Errorf("expected no inline handlers:\n%s", body)
	}
	assertCalls(t, store, "FetchAll()")

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff header, got %q", got)
	}
	if got := rec.Header().Get("Content-Security-Policy"); !strings.Contains(got, "default-src 'self'") {
		t.Errorf("expected CSP header, got %q", got)
	}
}

func TestIndexEmpty(t *testing.T) {
	h := newServer(t, testutil.NewFakeStore())

	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, `<div id="tasksList" class="tasks-list hidden">`) {
		t.Errorf("expected hidden list:\n%s", body)
	}
	if !strings.Contains(body, `<div id="emptyState" class="empty-state">`) {
		t.Errorf("expected visible empty state:\n%s", body)
	}
}

func TestIndexLoadFailureStillServesPage(t *testing.T) {
	store := testutil.NewFakeStore()
	store.FetchAllErr = service.ErrNetwork
	h := newServer(t, store)

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Total: 0 tasks") {
		t.Errorf("expected initial counters:\n%s", rec.Body.String())
	}
}

func TestAddTask(t *testing.T) {
	store := testutil.NewFakeStore()
	h := newServer(t, store)

	rec := post(t, h, "/tasks", url.Values{"title": {"Buy milk"}})
	assertRedirect(t, rec)
	assertCalls(t, store, `Create("Buy milk")`, "FetchAll()")

	if tasks := store.Tasks(); len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("expected Buy milk stored, got %+v", tasks)
	}
}

func TestAddEmptyTitleFlashes(t *testing.T) {
	store := testutil.NewFakeStore()
	h := newServer(t, store)

	rec := post(t, h, "/tasks", url.Values{"title": {"   "}})
	assertRedirect(t, rec)
	assertCalls(t, store)

	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, controller.MsgEmptyTitle) {
		t.Errorf("expected flash message:\n%s", body)
	}

	// Flash messages are shown once.
	body = get(t, h, "/").Body.String()
	if strings.Contains(body, controller.MsgEmptyTitle) {
		t.Errorf("expected flash to be consumed:\n%s", body)
	}
}

func TestAddFailureKeepsInput(t *testing.T) {
	store := testutil.NewFakeStore()
	store.CreateErr = service.ErrNetwork
	h := newServer(t, store)

	assertRedirect(t, post(t, h, "/tasks", url.Values{"title": {"Buy <milk>"}}))

	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, controller.MsgAddFailed) {
		t.Errorf("expected add failure flash:\n%s", body)
	}
	if !strings.Contains(body, `value="Buy &lt;milk&gt;"`) {
		t.Errorf("expected input to keep its text:\n%s", body)
	}
}

func TestToggleUsesRenderedRow(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("Buy milk", false)
	h := newServer(t, store)
	get(t, h, "/")
	store.ResetCalls()

	rec := post(t, h, "/tasks/1/toggle", url.Values{"completed": {"true"}})
	assertRedirect(t, rec)
	assertCalls(t, store, "SetCompleted(1, true)", "FetchAll()")
}

func TestToggleWithoutRenderFallsBack(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("Buy milk", true)
	h := newServer(t, store)

	rec := post(t, h, "/tasks/1/toggle", url.Values{"completed": {"false"}})
	assertRedirect(t, rec)
	assertCalls(t, store, "SetCompleted(1, false)", "FetchAll()")
}

func TestToggleRejectsBadValue(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("Buy milk", false)
	h := newServer(t, store)

	rec := post(t, h, "/tasks/1/toggle", url.Values{"completed": {"maybe"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	assertCalls(t, store)
}

func TestDeleteConfirmPage(t *testing.T) {
	h := newServer(t, testutil.NewFakeStore())

	rec := get(t, h, "/tasks/7/delete")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, controller.MsgConfirmDelete) {
		t.Errorf("expected confirmation text:\n%s", body)
	}
	if !strings.Contains(body, `action="/tasks/7/delete"`) {
		t.Errorf("expected form action:\n%s", body)
	}
}

func TestDeleteWithoutConfirmMakesNoCalls(t *testing.T) {
	for _, form := range []url.Values{{}, {"confirm": {"no"}}, {"confirm": {"YES!"}}} {
		store := testutil.NewFakeStore()
		store.AddTask("Buy milk", false)
		h := newServer(t, store)

		assertRedirect(t, post(t, h, "/tasks/1/delete", form))
		assertCalls(t, store)
		if len(store.Tasks()) != 1 {
			t.Errorf("form %v: expected task to remain", form)
		}
	}
}

func TestDeleteConfirmed(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("Buy milk", false)
	h := newServer(t, store)

	assertRedirect(t, post(t, h, "/tasks/1/delete", url.Values{"confirm": {"yes"}}))
	assertCalls(t, store, "Remove(1)", "FetchAll()")
}

func TestHealthz(t *testing.T) {
	rec := get(t, newServer(t, testutil.NewFakeStore()), "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("expected 200 ok, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	store := testutil.NewFakeStore()
	h := newServer(t, store)
	get(t, h, "/")

	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tasksync_flows_total") {
		t.Errorf("expected flow counter in metrics output")
	}
}

func TestStaticScriptAttachesListeners(t *testing.T) {
	rec := get(t, newServer(t, testutil.NewFakeStore()), "/static/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "dataset.taskId") || !strings.Contains(body, "addEventListener") {
		t.Errorf("expected listener wiring in script:\n%s", body)
	}
}
