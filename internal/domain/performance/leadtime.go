// Package performance evaluates delivery lead times per responsible party.
package performance

import (
	"math"
	"sort"
	"strings"
	"time"

	"gestao_compras/internal/domain/entities"
)

// Classification is the verdict for a responsible party's average lead time.
type Classification string

const (
	ClassExcellent Classification = "Excelente"
	ClassGood      Classification = "Bom"
	ClassAttention Classification = "Atenção"
	ClassUndefined Classification = "Indefinido"
)

// UndefinedLabel is shown instead of a classification when there is no history.
const UndefinedLabel = "Sem dados suficientes"

// Thresholds are SLA limits in days. Excellent < Good is expected but not enforced.
type Thresholds struct {
	Excellent float64 `json:"excellent" yaml:"excellent"`
	Good      float64 `json:"good" yaml:"good"`
}

// DefaultThresholds returns the out-of-the-box SLA limits.
func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: 5, Good: 10}
}

// ResponsibleStats summarises the requests assigned to one responsible party.
type ResponsibleStats struct {
	Responsible     string         `json:"responsible"`
	Total           int            `json:"total"`
	Completed       int            `json:"completed"`
	AvgLeadTimeDays *float64       `json:"avgLeadTimeDays"`
	Classification  Classification `json:"classification"`
}

// Evaluation is the full performance report.
type Evaluation struct {
	Parties                []ResponsibleStats `json:"parties"`
	Best                   *ResponsibleStats  `json:"best,omitempty"`
	Worst                  *ResponsibleStats  `json:"worst,omitempty"`
	AvgLeadTimeDays        *float64           `json:"avgLeadTimeDays"`
	AvgDaysToPurchaseOrder *float64           `json:"avgDaysToPurchaseOrder"`
	Thresholds             Thresholds         `json:"thresholds"`
}

// ParseDate accepts YYYY-MM-DD and RFC 3339 timestamps.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsCompleted reports whether the request counts towards lead-time averages:
// delivered status and both request and delivery dates present.
func IsCompleted(r entities.Request, deliveredStatus string) bool {
	if r.Status != deliveredStatus {
		return false
	}
	_, okReq := ParseDate(r.RequestDate)
	_, okDel := ParseDate(r.DeliveryDate)
	return okReq && okDel
}

// LeadTimeDays is ceil(|delivery - request|) in days.
func LeadTimeDays(r entities.Request) (int, bool) {
	req, ok := ParseDate(r.RequestDate)
	if !ok {
		return 0, false
	}
	del, ok := ParseDate(r.DeliveryDate)
	if !ok {
		return 0, false
	}
	days := math.Abs(del.Sub(req).Hours()) / 24
	return int(math.Ceil(days)), true
}

// DaysToPurchaseOrder is max(0, ceil((po - request) / 1 day)).
// Negative differences are data-entry errors and are clamped to zero.
func DaysToPurchaseOrder(r entities.Request) (int, bool) {
	req, ok := ParseDate(r.RequestDate)
	if !ok {
		return 0, false
	}
	po, ok := ParseDate(r.PurchaseOrderDate)
	if !ok {
		return 0, false
	}
	days := int(math.Ceil(po.Sub(req).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, true
}

// MeanDaysToPurchaseOrder averages DaysToPurchaseOrder over the requests that have both dates.
func MeanDaysToPurchaseOrder(requests []entities.Request) *float64 {
	sum, n := 0, 0
	for _, r := range requests {
		if d, ok := DaysToPurchaseOrder(r); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return round1(float64(sum) / float64(n))
}

// MeanLeadTime averages the lead time of completed requests.
func MeanLeadTime(requests []entities.Request, deliveredStatus string) *float64 {
	sum, n := 0, 0
	for _, r := range requests {
		if !IsCompleted(r, deliveredStatus) {
			continue
		}
		if d, ok := LeadTimeDays(r); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return round1(float64(sum) / float64(n))
}

// Classify maps an average lead time onto the thresholds.
func Classify(avg *float64, th Thresholds) Classification {
	if avg == nil {
		return ClassUndefined
	}
	switch {
	case *avg <= th.Excellent:
		return ClassExcellent
	case *avg <= th.Good:
		return ClassGood
	default:
		return ClassAttention
	}
}

// Evaluate groups requests by responsible party. Requests without a
// responsible party are ignored.
func Evaluate(requests []entities.Request, th Thresholds, deliveredStatus string) Evaluation {
	byParty := map[string][]entities.Request{}
	for _, r := range requests {
		name := strings.TrimSpace(r.Responsible)
		if name == "" {
			continue
		}
		byParty[name] = append(byParty[name], r)
	}

	parties := make([]ResponsibleStats, 0, len(byParty))
	for name, rs := range byParty {
		stats := ResponsibleStats{Responsible: name, Total: len(rs)}
		sum := 0
		for _, r := range rs {
			if !IsCompleted(r, deliveredStatus) {
				continue
			}
			d, _ := LeadTimeDays(r)
			sum += d
			stats.Completed++
		}
		if stats.Completed > 0 {
			stats.AvgLeadTimeDays = round1(float64(sum) / float64(stats.Completed))
		}
		stats.Classification = Classify(stats.AvgLeadTimeDays, th)
		parties = append(parties, stats)
	}
	sort.Slice(parties, func(i, j int) bool { return parties[i].Responsible < parties[j].Responsible })

	ev := Evaluation{
		Parties:                parties,
		AvgLeadTimeDays:        MeanLeadTime(requests, deliveredStatus),
		AvgDaysToPurchaseOrder: MeanDaysToPurchaseOrder(requests),
		Thresholds:             th,
	}
	for i := range parties {
		p := parties[i]
		if p.AvgLeadTimeDays == nil {
			continue
		}
		if ev.Best == nil || *p.AvgLeadTimeDays < *ev.Best.AvgLeadTimeDays {
			best := p
			ev.Best = &best
		}
		if ev.Worst == nil || *p.AvgLeadTimeDays > *ev.Worst.AvgLeadTimeDays {
			worst := p
			ev.Worst = &worst
		}
	}
	return ev
}

func round1(v float64) *float64 {
	r := math.Round(v*10) / 10
	return &r
}
