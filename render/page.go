// Package render - results page handler
package render

import (
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"roicheck/core/output"
	"roicheck/core/roi"
	"roicheck/core/types"
	"roicheck/internal/logging"
	"roicheck/internal/metrics"

	"go.uber.org/zap"
)

// PageHandler serves the interactive results page. It owns the
// presentation-side cache: the last submitted profile and its result
// are memoized so redrawing the page does not re-evaluate.
type PageHandler struct {
	calc    *roi.Calculator
	product string
	contact string
	tmpl    *template.Template

	mu          sync.Mutex
	lastProfile types.OrganizationProfile
	lastResult  *types.ROIResult
	haveLast    bool
}

// NewPageHandler creates the page handler.
func NewPageHandler(calc *roi.Calculator, productName, contactEmail string) *PageHandler {
	return &PageHandler{
		calc:    calc,
		product: productName,
		contact: contactEmail,
		tmpl:    template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// formState carries the submitted (or default) form values back into
// the rendered form.
type formState struct {
	Staff    int
	ITStaff  int
	Maturity string
	HIPAA    bool
	Devices  int
	Hourly   string
	Loss     string
}

type assumptionsView struct {
	OpsMin, OpsStd, OpsAdv          string
	PhishMin, PhishStd, PhishAdv    string
	DivMin, DivStd, DivAdv          string
	ClampLo, ClampHi                string
	FloorHours                      string
	DevicesPerStaff                 string
	DefaultLoss                     string
}

type pageData struct {
	Product      string
	Purpose      string
	Important    string
	Limitations  string
	Form         formState
	Cards        *Cards
	Error        string
	Testimonials []Testimonial
	PlanTiers    []PlanTier
	Assumptions  assumptionsView
	Maturities   []types.MaturityLevel
}

// ServeHTTP renders the page. With no parameters it evaluates the
// default profile so the first view already shows results.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	profile, form, parseErr := h.profileFromQuery(r)

	data := pageData{
		Product:      h.product,
		Purpose:      PurposeNotice,
		Important:    ImportantNotice,
		Limitations:  LimitationsNotice,
		Form:         form,
		Testimonials: Testimonials(),
		PlanTiers:    PlanTiers(),
		Assumptions:  h.assumptionsView(),
		Maturities:   []types.MaturityLevel{types.MaturityMinimum, types.MaturityStandard, types.MaturityAdvanced},
	}

	if parseErr != nil {
		data.Error = parseErr.Error()
		metrics.EvaluationsTotal.WithLabelValues("web", "invalid_input").Inc()
	} else {
		result, err := h.evaluateCached(profile)
		if err != nil {
			data.Error = err.Error()
			metrics.EvaluationsTotal.WithLabelValues("web", "invalid_input").Inc()
		} else {
			data.Cards = BuildCards(result, h.product, h.contact)
			metrics.EvaluationsTotal.WithLabelValues("web", "success").Inc()
			metrics.RecommendedPlans.WithLabelValues(result.RecommendedPlan.String()).Inc()
		}
	}

	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		logging.Error("rendering results page", zap.Error(err))
	}
}

// evaluateCached reuses the last result when the profile is unchanged.
func (h *PageHandler) evaluateCached(profile types.OrganizationProfile) (*types.ROIResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.haveLast && profilesEqual(h.lastProfile, profile) {
		return h.lastResult, nil
	}

	result, err := h.calc.Evaluate(profile)
	if err != nil {
		return nil, err
	}

	h.lastProfile = profile
	h.lastResult = result
	h.haveLast = true
	return result, nil
}

func profilesEqual(a, b types.OrganizationProfile) bool {
	return a.Staff == b.Staff &&
		a.ITStaff == b.ITStaff &&
		a.Maturity == b.Maturity &&
		a.HIPAARequired == b.HIPAARequired &&
		a.DeviceCount == b.DeviceCount &&
		a.HourlyLaborCost.Equal(b.HourlyLaborCost) &&
		a.LossPerIncident.Equal(b.LossPerIncident)
}

// profileFromQuery maps form parameters to a profile, applying the
// input-surface defaults. An empty query is the first page view and
// gets the canonical default organization.
func (h *PageHandler) profileFromQuery(r *http.Request) (types.OrganizationProfile, formState, error) {
	a := h.calc.Assumptions()
	q := r.URL.Query()

	form := formState{
		Staff:    50,
		ITStaff:  1,
		Maturity: string(types.MaturityMinimum),
		HIPAA:    true,
		Devices:  0,
		Hourly:   a.DefaultHourlyLaborCost.String(),
		Loss:     a.DefaultLossPerIncident.String(),
	}

	submitted := len(q) > 0

	var firstErr error
	intParam := func(name string, fallback int) int {
		v := q.Get(name)
		if v == "" {
			return fallback
		}
		n, err := strconv.Atoi(v)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return n
	}
	decParam := func(name string, fallback decimal.Decimal) decimal.Decimal {
		v := q.Get(name)
		if v == "" {
			return fallback
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return fallback
		}
		return d
	}

	form.Staff = intParam("staff", form.Staff)
	form.ITStaff = intParam("it_staff", form.ITStaff)
	form.Devices = intParam("devices", form.Devices)
	if m := q.Get("maturity"); m != "" {
		form.Maturity = m
	}
	if submitted {
		// checkboxes are absent when unchecked
		v := q.Get("hipaa")
		form.HIPAA = v == "on" || v == "true" || v == "1"
	}
	hourly := decParam("hourly", a.DefaultHourlyLaborCost)
	loss := decParam("loss", a.DefaultLossPerIncident)
	form.Hourly = hourly.String()
	form.Loss = loss.String()

	if firstErr != nil {
		return types.OrganizationProfile{}, form, firstErr
	}

	maturity, err := types.ParseMaturityLevel(form.Maturity)
	if err != nil {
		return types.OrganizationProfile{}, form, err
	}

	return types.OrganizationProfile{
		Staff:           form.Staff,
		ITStaff:         form.ITStaff,
		Maturity:        maturity,
		HIPAARequired:   form.HIPAA,
		HourlyLaborCost: hourly,
		DeviceCount:     form.Devices,
		LossPerIncident: loss,
	}, form, nil
}

func (h *PageHandler) assumptionsView() assumptionsView {
	a := h.calc.Assumptions()
	return assumptionsView{
		OpsMin:          output.Percent(a.OpsReduction.Minimum),
		OpsStd:          output.Percent(a.OpsReduction.Standard),
		OpsAdv:          output.Percent(a.OpsReduction.Advanced),
		PhishMin:        output.Percent(a.PhishReduction.Minimum),
		PhishStd:        output.Percent(a.PhishReduction.Standard),
		PhishAdv:        output.Percent(a.PhishReduction.Advanced),
		DivMin:          a.IncidentDivisor.Minimum.String(),
		DivStd:          a.IncidentDivisor.Standard.String(),
		DivAdv:          a.IncidentDivisor.Advanced.String(),
		ClampLo:         a.MinIncidents.String(),
		ClampHi:         a.MaxIncidents.String(),
		FloorHours:      a.MinMonthlyOpsHours.String(),
		DevicesPerStaff: a.DevicesPerStaff.String(),
		DefaultLoss:     output.Currency(a.DefaultLossPerIncident),
	}
}
