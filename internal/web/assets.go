package web

const indexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Task Manager</title>
    <link rel="stylesheet" href="/static/app.css" />
    <script src="/static/app.js" defer></script>
  </head>
  <body>
    <main class="container">
      <h1>Task Manager</h1>
      {{range .Flash}}<div class="flash" role="alert">{{.}}</div>
      {{end}}
      <form id="addForm" method="post" action="/tasks">
{{.Page}}        <button type="submit" class="add-btn">Add Task</button>
      </form>
    </main>
  </body>
</html>
`

const confirmHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>Delete task</title>
    <link rel="stylesheet" href="/static/app.css" />
  </head>
  <body>
    <main class="container">
      <p>{{.Message}}</p>
      <form method="post" action="{{.Action}}">
        <button type="submit" name="confirm" value="yes">OK</button>
        <button type="submit" name="confirm" value="no">Cancel</button>
      </form>
    </main>
  </body>
</html>
`

// appJS attaches row listeners by data-task-id. Toggles post the new
// checked state; delete opens the confirmation page.
const appJS = `document.addEventListener("DOMContentLoaded", function () {
  var list = document.getElementById("tasksList");
  if (!list) return;

  list.querySelectorAll(".task-checkbox").forEach(function (box) {
    box.addEventListener("change", function () {
      var form = document.createElement("form");
      form.method = "post";
      form.action = "/tasks/" + encodeURIComponent(box.dataset.taskId) + "/toggle";
      var field = document.createElement("input");
      field.type = "hidden";
      field.name = "completed";
      field.value = box.checked ? "true" : "false";
      form.appendChild(field);
      document.body.appendChild(form);
      form.submit();
    });
  });

  list.querySelectorAll(".delete-btn").forEach(function (btn) {
    btn.addEventListener("click", function () {
      window.location.href = "/tasks/" + encodeURIComponent(btn.dataset.taskId) + "/delete";
    });
  });
});
`

const appCSS = `body { font-family: system-ui, sans-serif; background: #f5f5f5; }
.container { max-width: 640px; margin: 2rem auto; background: #fff; padding: 1.5rem; border-radius: 8px; }
.hidden { display: none; }
.flash { background: #fdecea; color: #611a15; padding: .5rem 1rem; margin-bottom: 1rem; border-radius: 4px; }
#taskInput { width: 70%; padding: .5rem; }
.task-item { display: flex; align-items: center; gap: .5rem; padding: .5rem 0; border-bottom: 1px solid #eee; }
.task-item.completed .task-title { text-decoration: line-through; color: #888; }
.task-title { flex: 1; }
.empty-state { color: #888; padding: 1rem 0; }
#totalTasks, #completedTasks { margin-right: 1rem; color: #555; }
`
