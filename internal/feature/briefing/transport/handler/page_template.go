package handler

import "html/template"

// PageTemplate はダッシュボードページのテンプレートです。描画は素のHTMLに
// 留め、スタイリングとチャート描画はクライアント側の関心事とします。
var PageTemplate = template.Must(template.New("dashboard.html").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>Alpha Desk: Morning</title>
</head>
<body>
<header>
  <div class="date">{{.Date}}</div>
  <h2>🦅 Alpha Desk <span>| Morning Briefing</span></h2>
  <form method="post" action="/api/refresh"><button type="submit">🔄 최신 데이터 불러오기</button></form>
</header>

{{if .Weather}}
<section class="weather-card">
  <div class="location">{{.Weather.Location}}</div>
  <div class="temp">{{printf "%.1f" .Weather.CurrentTemp}}°</div>
  <div class="condition">{{.Weather.Condition}}</div>
</section>
{{end}}

<main>
{{range .Tickers}}
  <section class="ticker-card">
    <h3>{{.Name}}</h3>
    {{if .Error}}
      <div class="error">{{.Error}}</div>
    {{else}}
      <div class="updated">🕒 {{.UpdatedAt}}</div>
      <div class="price">${{printf "%.2f" .Price}}</div>
      <div class="change">{{printf "%+.2f" .Change}} ({{.ChangeLabel}})</div>
      <div class="insight-title">✨ AI Market Insight</div>
      <div class="insight">{{.InsightHTML}}</div>
    {{end}}
  </section>
{{end}}
</main>
</body>
</html>
`))
