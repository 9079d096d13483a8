package output

import (
	"bytes"
	"html/template"

	json "github.com/goccy/go-json"
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with both series and the
// last year's tax breakdown.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Projection {{.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
</style>
</head>
<body>
<h1>Projection {{.Name}}</h1>
{{if .Assumptions}}<h2>Key Assumptions</h2>
<ul>{{range .Assumptions}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h2>Summary</h2>
<ul>
<li>Net worth {{.Result.FirstYear}}: {{curr .Analysis.InitialNetWorth}}</li>
<li>Net worth {{.Result.LastYear}}: {{curr .Analysis.FinalNetWorth}} ({{pct .Analysis.PercentageChange}})</li>
<li>Taxes paid over the run: {{curr .Analysis.TotalTaxes}}</li>
</ul>
<h2>Balance Sheet</h2>
{{template "series" .BalanceSheet}}
<h2>Cash Flow</h2>
{{template "series" .CashFlow}}
<h2>Taxes {{.Result.LastYear}}</h2>
<table>
<tr><th>Category</th><th>Label</th><th>Amount</th></tr>
{{range .Result.Taxes.Tables}}{{$cat := .Name}}{{range .Values}}<tr><td>{{$cat}}</td><td>{{.Name}}</td><td>{{curr .Amount}}</td></tr>
{{end}}{{end}}</table>
<script>const netWorth = {{json .NetWorth}};</script>
</body>
</html>
{{define "series"}}<table>
<tr><th>Year</th>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><td>{{.Year}}</td>{{range .Amounts}}<td>{{curr .}}</td>{{end}}</tr>
{{end}}</table>{{end}}`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlRow struct {
	Year    int
	Amounts []decimal.Decimal
}

type htmlSeries struct {
	Headers []string
	Rows    []htmlRow
}

func newHTMLSeries[R seriesRow](rows []R, year func(R) int) htmlSeries {
	var s htmlSeries
	if len(rows) > 0 {
		s.Headers = rows[0].Headers()
	}
	for _, row := range rows {
		s.Rows = append(s.Rows, htmlRow{Year: year(row), Amounts: row.Amounts()})
	}
	return s
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if report.Result == nil {
		return nil, ErrNoResult
	}
	netWorth := make(map[int]string, len(report.Result.BalanceSheet))
	for _, l := range report.Result.BalanceSheet {
		netWorth[l.Year] = formatAmount(l.NetWorth())
	}
	data := struct {
		*Report
		Analysis     Analysis
		BalanceSheet htmlSeries
		CashFlow     htmlSeries
		NetWorth     map[int]string
	}{
		Report:       report,
		Analysis:     AnalyzeProjection(report.Result),
		BalanceSheet: newHTMLSeries(report.Result.BalanceSheet, func(l domain.BalanceSheetLine) int { return l.Year }),
		CashFlow:     newHTMLSeries(report.Result.CashFlow, func(l domain.CashFlowLine) int { return l.Year }),
		NetWorth:     netWorth,
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
