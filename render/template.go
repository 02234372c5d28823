// Package render - results page markup
package render

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Product}} — ROI Quick Check</title>
<style>
body {font-family: system-ui, sans-serif; margin: 0; background: #f7f9fb; color: #222;}
.wrap {max-width: 1080px; margin: 0 auto; padding: 1.2rem;}
.sticky-box {position: sticky; top: 0; z-index: 999; margin-bottom: .75rem;
  border: 1px solid rgba(0,0,0,.1); border-radius: 10px; background: #eef6ff;
  box-shadow: 0 3px 10px rgba(0,0,0,.04);}
.sticky-inner {padding: .9rem 1rem;}
.sticky-title {font-weight: 700; font-size: .95rem; margin-bottom: .25rem;}
.sticky-body {font-size: .9rem; line-height: 1.35;}
.columns {display: flex; gap: 2rem; flex-wrap: wrap;}
.col-form {flex: 1 1 300px;}
.col-results {flex: 1.4 1 420px;}
.card {border: 1px solid rgba(0,0,0,.08); border-radius: 12px; background: #fff;
  padding: 1rem 1rem .75rem 1rem; box-shadow: 0 2px 8px rgba(0,0,0,.04);
  margin-bottom: 1rem;}
.card h4 {margin: 0 0 .35rem 0; font-size: 1.05rem;}
.kpi {font-weight: 800; font-size: 1.25rem;}
.kpi-sub {color: #555; font-size: .9rem;}
.badge {display: inline-block; padding: .2rem .5rem; border-radius: 999px; font-size: .75rem;}
.badge.green {background: #eaf7ea; color: #106a10; border: 1px solid #bfe1bf;}
.badge.amber {background: #fff6e6; color: #7a4b00; border: 1px solid #f2d49a;}
.badge.gray {background: #f2f2f2; color: #333; border: 1px solid #ddd;}
label {display: block; margin: .6rem 0 .2rem; font-size: .9rem; font-weight: 600;}
input, select {width: 100%; padding: .4rem; border: 1px solid #ccc; border-radius: 6px; box-sizing: border-box;}
input[type=checkbox] {width: auto;}
button {margin-top: 1rem; padding: .5rem 1.4rem; border: 0; border-radius: 8px;
  background: #1a66d0; color: #fff; font-weight: 700; cursor: pointer;}
.error {background: #fdecec; border: 1px solid #e7b4b4; color: #8a1f1f;
  border-radius: 8px; padding: .7rem 1rem; margin-bottom: 1rem;}
.quote {font-style: italic;}
.meta {color: #666; font-size: .85rem;}
.cta {display: inline-block; margin-top: .4rem; font-weight: 700;}
table {border-collapse: collapse; font-size: .9rem;}
td, th {padding: .25rem .6rem; text-align: left;}
</style>
</head>
<body>
<div class="wrap">

<div class="sticky-box"><div class="sticky-inner">
  <div class="sticky-title">Purpose</div>
  <div class="sticky-body">{{.Purpose}}</div>
  <div class="sticky-title" style="margin-top:.5rem;">Important</div>
  <div class="sticky-body">{{.Important}}</div>
</div></div>

<h1>🛡️ {{.Product}} — ROI Quick Check</h1>
<p class="meta">Healthcare SMB focus · Value-first conversation starter</p>

{{if .Error}}<div class="error">{{.Error}}</div>{{end}}

<div class="columns">
<div class="col-form">
  <h2>Your Organization</h2>
  <form method="get" action="/">
    <label for="staff">Number of staff (headcount)</label>
    <input id="staff" name="staff" type="number" min="1" value="{{.Form.Staff}}">

    <label for="it_staff">Dedicated IT/Security FTE</label>
    <input id="it_staff" name="it_staff" type="number" min="0" value="{{.Form.ITStaff}}">

    <label for="maturity">Current control maturity</label>
    <select id="maturity" name="maturity">
      {{$form := .Form}}
      {{range .Maturities}}
      <option value="{{.String}}" {{if eq .String $form.Maturity}}selected{{end}}>{{.Label}}</option>
      {{end}}
    </select>

    <label><input type="checkbox" name="hipaa" {{if .Form.HIPAA}}checked{{end}}> HIPAA applies</label>

    <label for="devices">Endpoints / devices (0 = estimate)</label>
    <input id="devices" name="devices" type="number" min="0" value="{{.Form.Devices}}">

    <label for="hourly">Blended labor cost ($/hour)</label>
    <input id="hourly" name="hourly" type="number" min="0" step="1" value="{{.Form.Hourly}}">

    <label for="loss">Loss per incident (USD)</label>
    <input id="loss" name="loss" type="number" min="1000" step="1000" value="{{.Form.Loss}}">

    <button type="submit">Go</button>
  </form>
</div>

<div class="col-results">
  <h2>Your Results</h2>
  {{with .Cards}}
  <div class="card">
    <h4>Recommended plan</h4>
    <div class="kpi">{{.PlanLabel}}</div>
    <div class="kpi-sub"><b>Why:</b>
      <ul>{{range .PlanReasons}}<li>{{.}}</li>{{end}}</ul>
    </div>
  </div>

  <div class="card">
    <h4>Monthly workload reduction</h4>
    <div class="kpi">{{.HoursSaved}}</div>
    <div class="kpi-sub">{{.LaborSavings}}/mo equivalent</div>
    <span class="badge {{.ReductionBadge}}">reduction: {{.ReductionRate}}</span>
  </div>

  <div class="card">
    <h4>Phishing risk reduction</h4>
    <div class="kpi">{{.PhishRate}}</div>
    <div class="kpi-sub">Improvement potential: <b>{{.PhishTone}}</b></div>
  </div>

  <div class="card">
    <h4>Annual avoided losses (estimate)</h4>
    <div class="kpi">{{.AvoidedLoss}}</div>
    <div class="kpi-sub">Baseline: ~{{.IncidentBaseline}} incidents/year</div>
  </div>

  <div class="card">
    <h4>Investment affordability (cap)</h4>
    <div class="kpi">{{.InvestmentCap}}/mo</div>
    <div class="kpi-sub">ROI &ge; 0 if monthly cost &le; this cap</div>
    <span class="badge gray">Value-based guide · Not our price</span>
    <div><a class="cta" href="{{.MailtoLink}}">Talk to our team →</a></div>
  </div>

  <div class="card">
    <h4>Inputs snapshot</h4>
    <table>
      <tr><th>Headcount</th><td>{{.Snapshot.Staff}}</td><th>Maturity</th><td>{{.Snapshot.Maturity}}</td></tr>
      <tr><th>IT/Sec FTE</th><td>{{.Snapshot.ITStaff}}</td><th>HIPAA</th><td>{{.Snapshot.HIPAA}}</td></tr>
      <tr><th>Devices</th><td>{{.Snapshot.Devices}}</td><th>Hourly cost</th><td>{{.Snapshot.HourlyCost}}</td></tr>
      <tr><th>Loss/incident</th><td>{{.Snapshot.LossIncident}}</td></tr>
    </table>
  </div>
  {{end}}
</div>
</div>

<h2>Similar organizations</h2>
<div class="columns">
  {{range .Testimonials}}
  <div class="card" style="flex:1 1 280px;">
    <h4>{{.Org}}</h4>
    <div class="meta">{{.Size}}</div>
    <div class="quote">“{{.Quote}}”</div>
  </div>
  {{end}}
</div>

<h2>Plans</h2>
<div class="columns">
  {{range .PlanTiers}}
  <div class="card" style="flex:1 1 280px;">
    <h4>{{.Name}}</h4>
    <div class="kpi-sub">{{.Description}}</div>
  </div>
  {{end}}
</div>

<h2 id="assumptions">Assumptions, formulas &amp; limitations</h2>
<div class="card">
  {{with .Assumptions}}
  <ul>
    <li><b>Current monthly ops hours</b>: 0.4 × staff + 8.0 × IT FTE + 0.03 × devices, floored at {{.FloorHours}} h/mo. Devices default to ~{{.DevicesPerStaff}} per staff if unspecified.</li>
    <li><b>Ops reduction rate</b> (by maturity): Minimum {{.OpsMin}}, Standard {{.OpsStd}}, Advanced {{.OpsAdv}}.</li>
    <li><b>Phishing reduction rate</b> (by maturity): Minimum {{.PhishMin}}, Standard {{.PhishStd}}, Advanced {{.PhishAdv}}.</li>
    <li><b>Baseline annual incidents</b>: staff / D, where D = {{.DivMin}} (Minimum), {{.DivStd}} (Standard), {{.DivAdv}} (Advanced). Clamped to {{.ClampLo}}–{{.ClampHi}}.</li>
    <li><b>Loss per incident</b> (default): {{.DefaultLoss}}, adjustable above.</li>
    <li><b>Annual avoided losses</b>: baseline × phishing reduction × loss/incident.</li>
    <li><b>Investment Cap (monthly)</b>: labor savings/mo + (annual avoided losses / 12). The ROI &ge; 0 boundary, not a price.</li>
  </ul>
  {{end}}
  <p class="meta">{{.Limitations}}</p>
</div>

<p class="meta">© {{.Product}} — for tailored proposals, please contact us.</p>
</div>
</body>
</html>
`
