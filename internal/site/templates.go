package site

// pageTemplate is the Go html/template for the explorer page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body data-storage-key="{{.StorageKey}}" data-panel-min="{{.Panel.Min}}" data-panel-max="{{.Panel.Max}}">
  <div class="layout">
    <nav class="sidebar" id="sidebar" style="width: {{.Panel.Default}}px">
      <div class="sidebar-header">
        <span class="sidebar-title">Explorer</span>
        <button type="button" class="collapse-all" id="collapse-all" title="Collapse all">&#8863;</button>
      </div>
      <div class="sidebar-tree" id="tree">
{{.TreeHTML}}
      </div>
      <div class="resizer" id="resizer" role="separator" aria-orientation="vertical"></div>
    </nav>
    <main class="content" id="content">
      <div class="placeholder">
        <h2>{{.Title}}</h2>
        <p>{{.Placeholder}}</p>
      </div>
    </main>
  </div>
{{range .Files}}  <template id="file-{{.ID}}">
    <div class="file-view">
      <header class="file-header">
        <span class="file-path">{{.Path}}</span>
        {{if .URL}}<a class="source-link" href="{{.URL}}" target="_blank" rel="noopener noreferrer">View source</a>{{end}}
      </header>
      <div class="code">{{.Body}}</div>
    </div>
  </template>
{{end}}  <script src="script.js"></script>
</body>
</html>
`

const darkPalette = `
:root {
  --bg: #000000;
  --bg-content: #0a0a0a;
  --bg-header: #000000;
  --text: #e5e5e5;
  --text-secondary: #a3a3a3;
  --text-muted: #525252;
  --border: rgba(38, 38, 38, 0.5);
  --row-hover: rgba(255, 255, 255, 0.03);
  --row-active: rgba(255, 255, 255, 0.06);
  --row-active-text: #ffffff;
  --icon-dir: rgba(245, 158, 11, 0.7);
  --icon-file: #38bdf8;
  --accent: #0ea5e9;
  --handle-hover: #404040;
}`

const lightPalette = `
:root {
  --bg: #f8f9fa;
  --bg-content: #ffffff;
  --bg-header: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --row-hover: rgba(0, 0, 0, 0.03);
  --row-active: #e7f5ff;
  --row-active-text: #1c7ed6;
  --icon-dir: #f08c00;
  --icon-file: #228be6;
  --accent: #228be6;
  --handle-hover: #ced4da;
}`

// cssContent is the theme-independent part of the stylesheet.
const cssContent = `* { box-sizing: border-box; }

html, body {
  margin: 0;
  height: 100%;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  overflow: hidden;
}

body.resizing { cursor: col-resize; user-select: none; }

.layout { display: flex; height: 100vh; width: 100%; }

/* ============ Sidebar ============ */
.sidebar {
  position: relative;
  flex-shrink: 0;
  display: flex;
  flex-direction: column;
  height: 100%;
  border-right: 1px solid var(--border);
  user-select: none;
}

.sidebar-header {
  height: 48px;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0 16px;
  border-bottom: 1px solid var(--border);
  flex-shrink: 0;
}

.sidebar-title { font-size: 14px; font-weight: 500; color: var(--text-secondary); }

.collapse-all {
  background: none;
  border: none;
  color: var(--text-muted);
  cursor: pointer;
  font-size: 14px;
}
.collapse-all:hover { color: var(--text); }

.sidebar-tree { flex: 1; overflow-y: auto; padding: 4px 0; }

.tree, .tree ul { list-style: none; margin: 0; padding: 0; }

.row {
  display: flex;
  align-items: center;
  padding: 4px 16px 4px 0;
  cursor: pointer;
  color: var(--text-secondary);
  font-size: 13px;
  white-space: nowrap;
  transition: background 0.15s, color 0.15s;
}
.row:hover { background: var(--row-hover); color: var(--text); }
li.active > .row { background: var(--row-active); color: var(--row-active-text); }

.chevron, .chevron-spacer {
  display: inline-block;
  width: 12px;
  margin-right: 6px;
  color: var(--text-muted);
  text-align: center;
  transition: transform 0.1s;
}
li.dir.open > .row .chevron { transform: rotate(90deg); }

.icon { display: inline-block; width: 14px; height: 14px; margin-right: 8px; border-radius: 2px; flex-shrink: 0; }
.icon-dir { background: var(--icon-dir); }
.icon-file { border: 2px solid var(--icon-file); }

.name { overflow: hidden; text-overflow: ellipsis; }

li.dir > ul { display: none; }
li.dir.open > ul { display: block; }

.resizer {
  position: absolute;
  top: 0;
  right: 0;
  width: 4px;
  height: 100%;
  cursor: col-resize;
  z-index: 50;
  background: transparent;
  transition: background 0.15s;
}
.resizer:hover { background: var(--handle-hover); }
.resizer.dragging { background: var(--accent); }

/* ============ Content ============ */
.content {
  flex: 1;
  min-width: 0;
  height: 100%;
  display: flex;
  flex-direction: column;
  background: var(--bg-content);
}

.placeholder {
  margin: auto;
  text-align: center;
  max-width: 24rem;
}
.placeholder h2 { font-size: 18px; font-weight: 500; color: var(--text); margin-bottom: 8px; }
.placeholder p { font-size: 14px; color: var(--text-muted); }

.file-view { display: flex; flex-direction: column; height: 100%; }

.file-header {
  height: 40px;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0 16px;
  background: var(--bg-header);
  border-bottom: 1px solid var(--border);
  flex-shrink: 0;
}
.file-path {
  font-family: "JetBrains Mono", "Fira Code", "SF Mono", Consolas, monospace;
  font-size: 12px;
  color: var(--text-muted);
  overflow: hidden;
  text-overflow: ellipsis;
}
.source-link { font-size: 12px; color: var(--text-secondary); text-decoration: none; }
.source-link:hover { color: var(--text); }

.code { flex: 1; overflow: auto; }
.code pre {
  margin: 0;
  padding: 1.5rem;
  font-family: "JetBrains Mono", "Fira Code", "SF Mono", Consolas, monospace;
  font-size: 13px;
  line-height: 1.7;
  background: transparent !important;
}
`

// jsContent drives the static explorer: selection, expansion mirrored into
// localStorage, and the panel drag.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var storageKey = body.dataset.storageKey;
  var panelMin = parseInt(body.dataset.panelMin, 10);
  var panelMax = parseInt(body.dataset.panelMax, 10);

  // ============ Expansion store ============
  function readOpened() {
    try {
      var stored = localStorage.getItem(storageKey);
      var parsed = stored ? JSON.parse(stored) : {};
      return parsed && typeof parsed === "object" && !Array.isArray(parsed) ? parsed : {};
    } catch (e) {
      return {};
    }
  }

  function setOpened(path, open) {
    try {
      var current = readOpened();
      if (open) {
        current[path] = true;
      } else {
        delete current[path];
      }
      localStorage.setItem(storageKey, JSON.stringify(current));
    } catch (e) {}
  }

  function clearOpened() {
    try { localStorage.removeItem(storageKey); } catch (e) {}
  }

  // ============ Tree ============
  var tree = document.getElementById("tree");
  var content = document.getElementById("content");
  var active = null;

  function setOpen(li, open) {
    li.classList.toggle("open", open);
    li.setAttribute("aria-expanded", open ? "true" : "false");
  }

  var opened = readOpened();
  tree.querySelectorAll("li.dir").forEach(function(li) {
    if (opened[li.dataset.path] === true) setOpen(li, true);
  });

  function select(li) {
    if (active) active.classList.remove("active");
    active = li;
    li.classList.add("active");
    var tpl = document.getElementById("file-" + li.dataset.id);
    if (tpl) content.replaceChildren(tpl.content.cloneNode(true));
  }

  tree.addEventListener("click", function(e) {
    var row = e.target.closest(".row");
    if (!row) return;
    var li = row.parentElement;
    if (li.classList.contains("dir")) {
      var open = !li.classList.contains("open");
      setOpen(li, open);
      setOpened(li.dataset.path, open);
    } else {
      select(li);
    }
  });

  document.getElementById("collapse-all").addEventListener("click", function() {
    tree.querySelectorAll("li.dir.open").forEach(function(li) { setOpen(li, false); });
    clearOpened();
  });

  // ============ Resize ============
  var sidebar = document.getElementById("sidebar");
  var resizer = document.getElementById("resizer");
  var dragging = false;

  function clamp(w) {
    return Math.min(panelMax, Math.max(panelMin, w));
  }

  resizer.addEventListener("mousedown", function(e) {
    dragging = true;
    resizer.classList.add("dragging");
    body.classList.add("resizing");
    e.preventDefault();
  });

  // Release can happen anywhere, so both listeners live on window.
  window.addEventListener("mousemove", function(e) {
    if (!dragging) return;
    sidebar.style.width = clamp(e.clientX) + "px";
  });

  window.addEventListener("mouseup", function() {
    if (!dragging) return;
    dragging = false;
    resizer.classList.remove("dragging");
    body.classList.remove("resizing");
  });
})();
`
