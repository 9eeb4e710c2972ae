package server

// dashboardHTML is the single-page dashboard: a scan button and a
// result table fed from /api/scan.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Stock 40% Target Scanner</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 64rem; color: #222; }
  h1 { margin-bottom: 0; }
  h2 { margin-top: 0.25rem; color: #666; font-weight: normal; font-size: 1.1rem; }
  button { padding: 0.6rem 1.4rem; font-size: 1rem; cursor: pointer; border: none; border-radius: 6px; background: #1668dc; color: #fff; }
  button:disabled { background: #9bb8e8; }
  table { border-collapse: collapse; margin-top: 1.5rem; width: 100%; }
  th, td { border: 1px solid #ddd; padding: 0.5rem 0.8rem; text-align: right; }
  th { background: #f5f5f5; }
  td:first-child, th:first-child { text-align: left; }
  #status { margin-top: 1rem; color: #666; }
</style>
</head>
<body>
<h1>&#128640; 1-Week Opportunity Scanner</h1>
<h2>Targeting 40% Gains via High Volatility</h2>
<button id="run">Run Scan</button>
<div id="status"></div>
<div id="result"></div>
<script>
const btn = document.getElementById("run");
const status = document.getElementById("status");
const result = document.getElementById("result");

btn.addEventListener("click", async () => {
  btn.disabled = true;
  status.textContent = "Scanning watchlist...";
  result.innerHTML = "";
  try {
    const resp = await fetch("/api/scan", { method: "POST" });
    const data = await resp.json();
    render(data);
  } catch (err) {
    status.textContent = "Scan failed: " + err;
  } finally {
    btn.disabled = false;
  }
});

function render(data) {
  status.textContent = data.records.length + "/" + data.watchlist +
    " tickers qualified (" + data.elapsed_seconds.toFixed(1) + "s)";
  if (data.records.length === 0) return;
  let html = "<table><tr><th>Ticker</th><th>Price</th><th>Volatility %</th>" +
    "<th>Expected Move</th><th>Target Price</th><th>Hold Time</th></tr>";
  for (const r of data.records) {
    html += "<tr><td>" + r.ticker + "</td><td>" + r.price.toFixed(2) +
      "</td><td>" + r.volatility_pct.toFixed(2) +
      "</td><td>" + r.expected_move.toFixed(2) +
      "</td><td>" + r.target_price.toFixed(2) +
      "</td><td>" + r.hold_time + "</td></tr>";
  }
  html += "</table>";
  result.innerHTML = html;
}
</script>
</body>
</html>
`
