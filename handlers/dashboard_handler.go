package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

type dashboardData struct {
	Categories    []models.MetricCategory
	DefaultMetric string
}

// GetDashboard serves the dashboard page. The sidebar buttons are rendered
// from the fixed taxonomy; everything else is drawn client side from the
// choropleth and insights endpoints.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{
		Categories:    models.MetricCategories(),
		DefaultMetric: models.DefaultMetric(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Printf("GetDashboard: template execution failed: %v", err)
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>GeneSmart Dashboard</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<style>
  @import url('https://fonts.googleapis.com/css2?family=Outfit:wght@300;400;600;700&display=swap');
  :root { --primary: #008080; }
  * { box-sizing: border-box; }
  body {
    margin: 0;
    font-family: 'Outfit', sans-serif;
    background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%);
    color: #2d3748;
  }
  .layout { display: flex; min-height: 100vh; }
  .sidebar {
    width: 280px;
    padding: 20px;
    background: rgba(255, 255, 255, 0.9);
    border-right: 1px solid rgba(0,0,0,0.05);
  }
  .sidebar h1 { margin: 8px 0 0; }
  .sidebar .subtitle { color: #718096; font-size: 0.9em; margin-bottom: 16px; }
  .category { margin-bottom: 14px; }
  .category h3 { margin: 8px 0 6px; font-size: 0.95em; }
  .metric-btn {
    display: block;
    width: 100%;
    border: none;
    border-radius: 12px;
    background: white;
    color: #4a5568;
    padding: 10px 15px;
    margin-bottom: 4px;
    font-family: inherit;
    font-weight: 500;
    text-align: left;
    cursor: pointer;
    box-shadow: 0 2px 4px rgba(0,0,0,0.02);
    transition: all 0.2s ease;
  }
  .metric-btn:hover { background: var(--primary); color: white; }
  .metric-btn.selected { background: var(--primary); color: white; }
  .content { flex: 1; padding: 24px; }
  .header { display: flex; align-items: baseline; gap: 24px; flex-wrap: wrap; }
  .header h2 { margin: 0; text-transform: capitalize; }
  .callout {
    background: rgba(255, 255, 255, 0.7);
    border-radius: 14px;
    padding: 10px 18px;
  }
  .callout .label { color: #718096; font-size: 0.85em; }
  .callout .value { font-size: 1.3em; font-weight: 700; }
  .card {
    background: rgba(255, 255, 255, 0.7);
    border-radius: 20px;
    padding: 15px;
    margin-top: 18px;
    box-shadow: 0 8px 32px 0 rgba(31, 38, 135, 0.1);
  }
  #map { height: 650px; }
  .insights { display: flex; gap: 18px; flex-wrap: wrap; }
  .insights > div { flex: 1; min-width: 320px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #eef2f6; }
  .leader { background: #e6fffa; border-left: 4px solid #2ecc71; padding: 10px; margin: 8px 0; border-radius: 8px; }
  .laggard { background: #fffaf0; border-left: 4px solid #e74c3c; padding: 10px; margin: 8px 0; border-radius: 8px; }
  .legend li { margin-bottom: 6px; color: #4a5568; }
  .error-banner {
    background: #fed7d7;
    color: #742a2a;
    padding: 12px 18px;
    border-radius: 12px;
    margin-top: 18px;
    display: none;
  }
</style>
</head>
<body>
<div class="layout">
  <aside class="sidebar">
    <h1>GeneSmart</h1>
    <div class="subtitle">Plateforme de Visualisation Biotech</div>
    {{range .Categories}}
    <div class="category">
      <h3>{{.Label}}</h3>
      {{range .Metrics}}
      <button class="metric-btn" data-metric="{{.}}">{{.}}</button>
      {{end}}
    </div>
    {{end}}
  </aside>
  <main class="content">
    <div class="header">
      <h2 id="metric-title"></h2>
      <div class="callout"><div class="label">Moyenne</div><div class="value" id="mean"></div></div>
      <div class="callout"><div class="label">Total National</div><div class="value" id="total"></div></div>
    </div>
    <div class="error-banner" id="error-banner"></div>
    <div class="card"><div id="map"></div></div>
    <div class="card insights">
      <div>
        <h3>Classement des Régions</h3>
        <table>
          <thead><tr><th>Région</th><th>Valeur</th></tr></thead>
          <tbody id="ranking"></tbody>
        </table>
      </div>
      <div>
        <h3>💡 Insights</h3>
        <div class="leader" id="leader"></div>
        <div class="laggard" id="laggard"></div>
        <h4>Interprétation de la Carte</h4>
        <ul class="legend" id="legend"></ul>
      </div>
    </div>
  </main>
</div>
<script>
const apiBase = '/api/v1';
let currentMetric = {{.DefaultMetric}};

function showError(message) {
  const banner = document.getElementById('error-banner');
  banner.textContent = message;
  banner.style.display = 'block';
}

function clearError() {
  document.getElementById('error-banner').style.display = 'none';
}

async function fetchJSON(path) {
  const resp = await fetch(apiBase + path);
  if (!resp.ok) {
    const body = await resp.json().catch(() => ({}));
    throw new Error(body.error || ('HTTP ' + resp.status));
  }
  return resp.json();
}

function renderMap(d) {
  const regions = d.regions.map(r => r.region);
  const ratios = d.regions.map(r => r.ratio);
  const hover = d.regions.map(r => r.hover);
  Plotly.newPlot('map', [{
    type: 'choropleth',
    geojson: d.geojson,
    locations: regions,
    z: ratios,
    featureidkey: d.feature_id_key,
    colorscale: d.colorscale,
    zmin: d.zmin,
    zmax: d.zmax,
    text: hover,
    hoverinfo: 'text',
    marker: { line: { color: '#2D3748', width: 1.5 }, opacity: 1.0 },
    colorbar: {
      title: 'Performance',
      tickvals: [0.2, 1.0, 1.8],
      ticktext: ['Basse', 'Moyenne', 'Haute'],
      len: 0.6,
      thickness: 15
    }
  }], {
    geo: { fitbounds: 'geojson', visible: false, projection: { type: 'mercator' } },
    height: 650,
    margin: { r: 0, t: 30, l: 0, b: 0 },
    paper_bgcolor: 'rgba(0,0,0,0)'
  }, { responsive: true });
}

function renderInsights(s) {
  document.getElementById('mean').textContent = s.mean.toFixed(3);
  document.getElementById('total').textContent = s.total.toFixed(2);
  const ranking = document.getElementById('ranking');
  ranking.innerHTML = '';
  for (const rv of s.ranked) {
    const tr = document.createElement('tr');
    const name = document.createElement('td');
    name.textContent = rv.region;
    const value = document.createElement('td');
    value.textContent = rv.value.toFixed(3);
    tr.append(name, value);
    ranking.appendChild(tr);
  }
  document.getElementById('leader').textContent =
    '📍 Région Leader : ' + s.leader.region + ' avec ' + s.leader.value.toFixed(3);
  document.getElementById('laggard').textContent =
    '⚠️ Région en Retrait : ' + s.laggard.region + ' avec ' + s.laggard.value.toFixed(3);
  const legend = document.getElementById('legend');
  legend.innerHTML = '';
  for (const line of s.legend) {
    const li = document.createElement('li');
    li.textContent = line;
    legend.appendChild(li);
  }
}

async function selectMetric(metric) {
  currentMetric = metric;
  clearError();
  document.getElementById('metric-title').textContent = metric;
  for (const btn of document.querySelectorAll('.metric-btn')) {
    btn.classList.toggle('selected', btn.dataset.metric === metric);
  }
  try {
    const [map, insights] = await Promise.all([
      fetchJSON('/choropleth?metric=' + encodeURIComponent(metric)),
      fetchJSON('/insights?metric=' + encodeURIComponent(metric))
    ]);
    renderMap(map);
    renderInsights(insights);
  } catch (err) {
    showError("Impossible d'afficher la carte : " + err.message);
  }
}

for (const btn of document.querySelectorAll('.metric-btn')) {
  btn.addEventListener('click', () => selectMetric(btn.dataset.metric));
}
selectMetric(currentMetric);
</script>
</body>
</html>
`
