package network

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Score Entry</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
.msg { padding: .6rem 1rem; border-radius: .4rem; margin: 1rem 0; }
.success { background: #e6f4ea; color: #0e7c46; }
.error { background: #fdecea; color: #b3261e; }
.warning { background: #fff4e5; color: #8a5300; }
.info { background: #e8f0fe; color: #1a4fa0; }
.actions { display: flex; gap: .5rem; flex-wrap: wrap; }
.stats { display: flex; gap: 2rem; margin: 1rem 0; }
.stats div { font-size: 1.4rem; }
.all { display: grid; grid-template-columns: repeat(4, 1fr); gap: .25rem 1rem; }
table.grid td { text-align: center; font-size: .8em; padding: .2rem .4rem; }
.on { color: #0e7c46; } .off { color: #999; }
#fallback { width: 100%; height: 12rem; }
</style>
</head>
<body>
<h1>Score Entry</h1>

<details>
<summary>How to use</summary>
<ul>
<li>Type 4-5 digits: the first two are the seat number, the rest the score.</li>
<li><code>1025</code> sets seat 10 to 25.</li>
<li><code>45123</code> sets seat 45 to 123.</li>
<li>Show all lists every seat; copy all copies the scores in seat order; clear all resets every seat.</li>
</ul>
</details>

<h2>Enter score</h2>
<form method="post" action="/submit">
{{if .ShowAll}}<input type="hidden" name="show" value="1">{{end}}
<input type="text" name="code" maxlength="5" inputmode="numeric" autocomplete="off" autofocus placeholder="e.g. 1025 or 45123">
<button type="submit">Submit</button>
</form>

{{if .Message}}<div class="msg {{.Kind}}">{{.Message}}</div>{{end}}

<h2>Actions</h2>
<div class="actions">
{{if .ShowAll}}<a href="/"><button type="button">Hide list</button></a>{{else}}<a href="/?show=1"><button type="button">Show all</button></a>{{end}}
{{if .CanCopy}}<button type="button" id="copyBtn">Copy all values</button>{{else}}<button type="button" disabled>Copy all values</button>{{end}}
<form method="post" action="/clear">{{if .ShowAll}}<input type="hidden" name="show" value="1">{{end}}<button type="submit">Clear all values</button></form>
</div>
{{if .CanCopy}}
<div id="copyStatus"></div>
<details>
<summary>Manual copy (if the button does not work)</summary>
<textarea id="fallback" readonly>{{.Export}}</textarea>
</details>
{{else}}
<div class="msg warning">No values to copy</div>
{{end}}

{{if .ShowAll}}
<h2>All seats</h2>
<div class="all">
{{range .State.Entries}}<div><b>{{seat .Key}}</b> &rarr; {{val .Value}}</div>
{{end}}
</div>
{{end}}

<hr>
<div class="stats">
<div>Total<br>{{.State.Total}}</div>
<div>Filled<br>{{.State.Filled}}</div>
<div>Unfilled<br>{{.State.Unfilled}}</div>
</div>

<h2>Quick view</h2>
<p><span class="on">&#9679;</span> has a score, <span class="off">&#9675;</span> not set</p>
<table class="grid">
{{range .Grid}}<tr>{{range .}}<td>{{if .Value}}<span class="on">&#9679;</span>{{else}}<span class="off">&#9675;</span>{{end}} {{seat .Key}}</td>{{end}}</tr>
{{end}}
</table>

<script>
(function () {
  var btn = document.getElementById('copyBtn');
  var status = document.getElementById('copyStatus');
  var fallback = document.getElementById('fallback');
  if (btn) {
    btn.addEventListener('click', async function () {
      var ok = false;
      try {
        await navigator.clipboard.writeText(fallback.value);
        ok = true;
      } catch (e) {
        try {
          fallback.parentElement.open = true;
          fallback.select();
          fallback.setSelectionRange(0, 99999);
          ok = document.execCommand('copy');
        } catch (e2) {
          ok = false;
        }
      }
      status.className = 'msg ' + (ok ? 'success' : 'warning');
      status.textContent = ok ? 'Values copied to clipboard' : 'Copy failed, use the text box below';
    });
  }

  // reload when another tab or client changes the board
  var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
  var home = {{if .ShowAll}}'/?show=1'{{else}}'/'{{end}};
  var first = true;
  ws.onmessage = function (ev) {
    var env = JSON.parse(ev.data);
    if (env.t !== 'state') { return; }
    if (first) { first = false; return; }
    var input = document.querySelector('input[name=code]');
    if (!input || input.value === '') { location.replace(home); }
  };
})();
</script>
</body>
</html>
`
