package server

// pageTemplate renders the explorer with server-held state. Every row is a
// form so the page works without script; the script only drives the resize.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body data-panel-min="{{.PanelMin}}" data-panel-max="{{.PanelMax}}">
  <div class="layout">
    <nav class="sidebar" id="sidebar" style="width: {{.PanelWidth}}px">
      <div class="sidebar-header">
        <span class="sidebar-title">Explorer</span>
        <form method="post" action="/nodes/collapse"><button type="submit" class="collapse-all" title="Collapse all">&#8863;</button></form>
      </div>
      <div class="sidebar-tree">
        <ul class="tree rows">
{{range .Rows}}{{if .Node.IsDir}}          <li class="dir{{if .Open}} open{{end}}">
            <form method="post" action="/nodes/toggle"><input type="hidden" name="path" value="{{.Node.Path}}">
              <button type="submit" class="row" style="padding-left: {{.Padding}}px"><span class="chevron" style="transform: rotate({{.Rotation}}deg)">&#8250;</span><span class="icon icon-dir"></span><span class="name">{{.Node.Name}}</span></button>
            </form>
          </li>
{{else}}          <li class="file{{if .Active}} active{{end}}">
            <form method="post" action="/nodes/select"><input type="hidden" name="path" value="{{.Node.Path}}">
              <button type="submit" class="row" style="padding-left: {{.Padding}}px"><span class="chevron-spacer"></span><span class="icon icon-file"></span><span class="name">{{.Node.Name}}</span></button>
            </form>
          </li>
{{end}}{{end}}        </ul>
      </div>
      <div class="resizer" id="resizer"></div>
    </nav>
    <main class="content">
{{if .Content.Empty}}      <div class="placeholder">
        <h2>{{.Title}}</h2>
        <p>{{.Placeholder}}</p>
      </div>
{{else}}      <div class="file-view">
        <header class="file-header">
          <span class="file-path">{{.Content.Path}}</span>
          {{if .Content.URL}}<a class="source-link" href="{{.Content.URL}}" target="_blank" rel="noopener noreferrer">View source</a>{{end}}
        </header>
        <div class="code">{{.Body}}</div>
      </div>
{{end}}    </main>
  </div>
  <script>
  (function() {
    var body = document.body;
    var min = parseInt(body.dataset.panelMin, 10);
    var max = parseInt(body.dataset.panelMax, 10);
    var sidebar = document.getElementById("sidebar");
    var resizer = document.getElementById("resizer");
    var dragging = false;
    var width = sidebar.offsetWidth;

    resizer.addEventListener("mousedown", function(e) {
      dragging = true;
      resizer.classList.add("dragging");
      body.classList.add("resizing");
      e.preventDefault();
    });
    window.addEventListener("mousemove", function(e) {
      if (!dragging) return;
      width = Math.min(max, Math.max(min, e.clientX));
      sidebar.style.width = width + "px";
    });
    window.addEventListener("mouseup", function() {
      if (!dragging) return;
      dragging = false;
      resizer.classList.remove("dragging");
      body.classList.remove("resizing");
      fetch("/api/panel", {
        method: "POST",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify({width: width})
      });
    });
  })();
  </script>
</body>
</html>
`

// liveCSS resets the row buttons and forms of the live page.
const liveCSS = `
.rows form { margin: 0; }
button.row {
  width: 100%;
  border: none;
  background: none;
  font: inherit;
  text-align: left;
}
.rows li.active .row { background: var(--row-active); color: var(--row-active-text); }
`
