package render

// pageScript applies container patches pushed over the WebSocket, forwards
// clicks on [data-action] elements to the server and mounts Chart.js on
// canvases carrying a data-chart config.
const pageScript = `
(function () {
  var charts = {};

  function mountCharts(root) {
    if (typeof Chart === 'undefined') return;
    root.querySelectorAll('canvas[data-chart]').forEach(function (canvas) {
      if (charts[canvas.id]) charts[canvas.id].destroy();
      charts[canvas.id] = new Chart(canvas.getContext('2d'), JSON.parse(canvas.getAttribute('data-chart')));
    });
  }

  function applyPatch(p) {
    var el = document.getElementById(p.target);
    if (!el) return;
    if (p.mode === 'outer') {
      el.outerHTML = p.html;
      el = document.getElementById(p.target);
    } else {
      el.innerHTML = p.html;
    }
    if (el) mountCharts(el);
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/ws');
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'container_update') applyPatch(msg.payload);
    };
    ws.onclose = function () { setTimeout(connect, 2000); };
  }

  function post(path) {
    return fetch(path, { method: 'POST', credentials: 'same-origin' });
  }

  document.addEventListener('click', function (e) {
    var el = e.target.closest('[data-action]');
    if (!el) return;
    e.preventDefault();
    switch (el.getAttribute('data-action')) {
      case 'prev':
        post('/ui/date/prev');
        break;
      case 'next':
        post('/ui/date/next').then(function (res) {
          if (res.status === 409) return res.json().then(function (body) { alert(body.message); });
        });
        break;
      case 'tab':
        post('/ui/tabs/' + encodeURIComponent(el.getAttribute('data-tab'))).then(function (res) {
          return res.json();
        }).then(function (body) {
          var target = body && document.getElementById(body.scroll_to);
          if (target) target.scrollIntoView({ behavior: 'smooth' });
        });
        break;
      case 'toggle':
        post('/ui/games/' + encodeURIComponent(el.getAttribute('data-game-id')) + '/toggle');
        break;
      case 'retry':
        post('/ui/containers/' + encodeURIComponent(el.getAttribute('data-container')) + '/retry');
        break;
    }
  });

  mountCharts(document);
  connect();
})();
`

const pageStyle = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f4f6f8; color: #222; }
header { background: #13294b; color: #fff; padding: 1rem 2rem; }
header nav ul { list-style: none; display: flex; gap: 1rem; padding: 0; }
header nav li.active a { border-bottom: 2px solid #fff; }
header nav a { color: #fff; text-decoration: none; }
.date-nav { display: flex; align-items: center; gap: 1rem; }
main { padding: 1rem 2rem; }
.summary, .summary-cards, .trend-stats, .charts-container { display: flex; gap: 1rem; flex-wrap: wrap; }
.summary-card, .trend-stat, .chart-box, .game-card, .best-bet { background: #fff; border-radius: 6px; padding: 1rem; }
.games-container { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1rem; }
.game-card.recommendation { border: 2px solid #2e7d32; }
.recommendation-badge { background: #2e7d32; color: #fff; font-weight: bold; padding: 0.25rem 0.5rem; }
.odds.highlight { background: #e8f5e9; font-weight: bold; }
.meter { background: #eee; height: 8px; border-radius: 4px; }
.meter .fill { background: #2e7d32; height: 100%; border-radius: 4px; }
.criteria.matched { color: #2e7d32; }
.check.failed, .criteria-result.no-match { color: #b71c1c; }
.check.passed, .criteria-result.match { color: #2e7d32; }
.best-bet { display: flex; gap: 1rem; margin-bottom: 0.5rem; }
.bet-rank { font-size: 1.5rem; font-weight: bold; }
.error-message { color: #b71c1c; }
.no-data, .loading { color: #666; padding: 1rem; }
`
