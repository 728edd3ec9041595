package render

import (
	"bytes"
	"html/template"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="id">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}{{if .Number}} {{.Number}}{{end}} - {{.Customer.Name}}</title>
  <style>
    * { box-sizing: border-box; }
    body { margin: 0; font-family: Arial, sans-serif; color: #111827; }
    .page { padding: 24px 32px; page-break-after: always; }
    .page:last-child { page-break-after: auto; }
    .header { display: flex; justify-content: space-between; border-bottom: 2px solid #111827; padding-bottom: 12px; }
    .header h2 { margin: 0 0 4px; }
    .doc-info { text-align: right; }
    .customer-info { display: flex; justify-content: space-between; margin: 16px 0; font-size: 13px; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th, td { padding: 6px 8px; border: 1px solid #d1d5db; text-align: left; }
    td.num, th.num { text-align: right; }
    .total { text-align: right; font-size: 16px; font-weight: bold; margin-top: 12px; }
    .signatures { display: flex; justify-content: space-around; margin-top: 48px; text-align: center; }
    .footer { margin-top: 32px; font-size: 11px; text-align: center; color: #6b7280; }
    .page-no { text-align: right; font-size: 10px; color: #6b7280; }
  </style>
</head>
<body>
{{range $i, $page := .Pages}}
  <section class="page">
    <div class="header">
      <div>
        <h2>{{$.Shop.Name}}</h2>
        <div>{{$.Shop.Tagline}}</div>
      </div>
      <div class="doc-info">
        <h3>{{$.Title}}</h3>
        {{if $.Number}}<div><strong>No:</strong> {{$.Number}}</div>{{end}}
        <div><strong>Date:</strong> {{$.Date}}</div>
      </div>
    </div>
    <div class="customer-info">
      <div>
        <div><strong>Customer:</strong> {{$.Customer.Name}}</div>
        <div><strong>Phone:</strong> {{$.Customer.Phone}}</div>
      </div>
      <div>
        <div><strong>Car:</strong> {{$.Customer.Car}}</div>
        <div><strong>Color:</strong> {{$.Customer.Color}}</div>
      </div>
      <div>
        <div><strong>License:</strong> {{$.Customer.License}}</div>
        <div><strong>Address:</strong> {{$.Customer.Address}}</div>
      </div>
    </div>
    <table>
      <thead>
        <tr><th>#</th><th>PANEL</th><th>SIZE</th><th class="num">QTY</th><th class="num">PRICE</th><th class="num">AMOUNT</th></tr>
      </thead>
      <tbody>
        {{range $page}}
        <tr><td>{{.Index}}</td><td><strong>{{.Label}}</strong></td><td>{{.Tier}}</td><td class="num">{{.Qty}}</td><td class="num">{{.Price}}</td><td class="num">{{.Amount}}</td></tr>
        {{end}}
      </tbody>
    </table>
    {{if isLast $i $.PageCount}}
    <div class="total">Total: {{$.Total}}</div>
    <div class="signatures">
      <div>( _______________________ )<br />{{$.Shop.Name}}</div>
      <div>( _______________________ )<br />CUSTOMER'S SIGNATURE</div>
    </div>
    <div class="footer">{{range $.Shop.Footer}}<div>{{.}}</div>{{end}}</div>
    {{end}}
    <div class="page-no">Page {{inc $i}} of {{$.PageCount}}</div>
  </section>
{{end}}
</body>
</html>
`

type htmlRenderer struct {
	tpl *template.Template
}

func newHTMLRenderer() *htmlRenderer {
	funcs := template.FuncMap{
		"inc":    func(i int) int { return i + 1 },
		"isLast": func(i, n int) bool { return i == n-1 },
	}
	return &htmlRenderer{
		tpl: template.Must(template.New("document").Funcs(funcs).Parse(documentHTMLTemplate)),
	}
}

func (r *htmlRenderer) render(view DocumentView) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
