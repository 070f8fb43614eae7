// Package dashboard computes the statistics shown on the dashboard from an
// already visibility-filtered request list. Nothing here returns an error.
package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/performance"
)

const (
	MonthsInSeries     = 6
	TopSectorsLimit    = 6
	SmallSectorCatalog = 5
)

type StatusCount struct {
	Name  string               `json:"name"`
	Color entities.StatusColor `json:"color"`
	Count int                  `json:"count"`
}

type SectorCount struct {
	Sector string `json:"sector"`
	Total  int    `json:"total"`
	Urgent int    `json:"urgent"`
}

// MonthBucket holds the requests of one calendar month, keyed by YYYY-MM.
type MonthBucket struct {
	Month   string        `json:"month"`
	Total   int           `json:"total"`
	Urgent  int           `json:"urgent"`
	Sectors []SectorCount `json:"sectors"`
}

// Input is everything Build needs.
type Input struct {
	Requests        []entities.Request
	Statuses        []entities.Status
	Sectors         []entities.Sector
	Now             time.Time
	DeliveredStatus string
}

// Summary is the full dashboard payload.
type Summary struct {
	Total                  int           `json:"total"`
	StatusTally            []StatusCount `json:"statusTally"`
	Monthly                []MonthBucket `json:"monthly"`
	AxisMax                int           `json:"axisMax"`
	Sectors                []SectorCount `json:"sectors"`
	TopSectors             []SectorCount `json:"topSectors"`
	Urgent                 int           `json:"urgent"`
	UrgentRatio            float64       `json:"urgentRatio"`
	Pending                int           `json:"pending"`
	Overdue                int           `json:"overdue"`
	AvgDaysToPurchaseOrder *float64      `json:"avgDaysToPurchaseOrder"`
	AvgLeadTimeDays        *float64      `json:"avgLeadTimeDays"`
}

// StatusTally counts requests per configured status name. Unknown statuses
// are left out of every bucket.
func StatusTally(requests []entities.Request, statuses []entities.Status) []StatusCount {
	counts := make(map[string]int, len(statuses))
	for _, r := range requests {
		counts[r.Status]++
	}
	out := make([]StatusCount, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusCount{Name: s.Name, Color: s.Color, Count: counts[s.Name]})
	}
	return out
}

// MonthlySeries returns exactly six buckets, oldest first, ending at now's month.
func MonthlySeries(requests []entities.Request, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, MonthsInSeries)
	index := make(map[string]int, MonthsInSeries)
	for i := 0; i < MonthsInSeries; i++ {
		m := time.Date(now.Year(), now.Month()-time.Month(MonthsInSeries-1-i), 1, 0, 0, 0, 0, now.Location())
		key := m.Format("2006-01")
		buckets[i] = MonthBucket{Month: key, Sectors: []SectorCount{}}
		index[key] = i
	}

	perSector := make([]map[string]*SectorCount, MonthsInSeries)
	for _, r := range requests {
		if len(r.RequestDate) < 7 {
			continue
		}
		i, ok := index[r.RequestDate[:7]]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Total++
		if r.IsUrgent() {
			b.Urgent++
		}
		if perSector[i] == nil {
			perSector[i] = map[string]*SectorCount{}
		}
		name := sectorName(r)
		sc, ok := perSector[i][name]
		if !ok {
			sc = &SectorCount{Sector: name}
			perSector[i][name] = sc
		}
		sc.Total++
		if r.IsUrgent() {
			sc.Urgent++
		}
	}

	for i := range buckets {
		for _, sc := range perSector[i] {
			buckets[i].Sectors = append(buckets[i].Sectors, *sc)
		}
		sort.Slice(buckets[i].Sectors, func(a, b int) bool {
			return buckets[i].Sectors[a].Sector < buckets[i].Sectors[b].Sector
		})
		sortSectors(buckets[i].Sectors)
	}
	return buckets
}

// SectorSeries counts requests for every configured sector, plus a
// "Sem Setor" bucket when some requests carry no sector. Requests whose
// sector is not configured are not counted.
func SectorSeries(requests []entities.Request, sectors []entities.Sector) []SectorCount {
	out := make([]SectorCount, 0, len(sectors)+1)
	index := make(map[string]int, len(sectors))
	for _, s := range sectors {
		if _, dup := index[s.Name]; dup {
			continue
		}
		index[s.Name] = len(out)
		out = append(out, SectorCount{Sector: s.Name})
	}

	noSector := SectorCount{Sector: entities.NoSector}
	for _, r := range requests {
		var sc *SectorCount
		if strings.TrimSpace(r.Sector) == "" {
			sc = &noSector
		} else if i, ok := index[r.Sector]; ok {
			sc = &out[i]
		} else {
			continue
		}
		sc.Total++
		if r.IsUrgent() {
			sc.Urgent++
		}
	}
	if noSector.Total > 0 {
		out = append(out, noSector)
	}
	sortSectors(out)
	return out
}

// TopSectors trims a sorted sector series for the "top" chart. Small
// catalogs keep their empty sectors.
func TopSectors(series []SectorCount, configuredCount int) []SectorCount {
	out := make([]SectorCount, 0, TopSectorsLimit)
	for _, sc := range series {
		if configuredCount > SmallSectorCatalog && sc.Total < 1 {
			continue
		}
		out = append(out, sc)
		if len(out) == TopSectorsLimit {
			break
		}
	}
	return out
}

// AxisScale rounds the chart maximum up to a multiple of five, strictly above top.
func AxisScale(top int) int {
	return int(math.Ceil(float64(top+1)/5)) * 5
}

// Percent is value/top as a percentage; a zero top is treated as 1.
func Percent(value, top int) float64 {
	if top < 1 {
		top = 1
	}
	return float64(value) / float64(top) * 100
}

// IsOverdue reports whether a not-yet-delivered request has a delivery date before today.
func IsOverdue(r entities.Request, deliveredStatus string, now time.Time) bool {
	if r.Status == deliveredStatus {
		return false
	}
	d, ok := performance.ParseDate(r.DeliveryDate)
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// Build assembles the dashboard summary.
func Build(in Input) Summary {
	delivered := in.DeliveredStatus
	if delivered == "" {
		delivered = entities.DefaultDeliveredStatus
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	s := Summary{
		Total:                  len(in.Requests),
		StatusTally:            StatusTally(in.Requests, in.Statuses),
		Monthly:                MonthlySeries(in.Requests, now),
		Sectors:                SectorSeries(in.Requests, in.Sectors),
		AvgDaysToPurchaseOrder: performance.MeanDaysToPurchaseOrder(in.Requests),
		AvgLeadTimeDays:        performance.MeanLeadTime(in.Requests, delivered),
	}
	s.TopSectors = TopSectors(s.Sectors, len(in.Sectors))

	maxMonth := 0
	for _, b := range s.Monthly {
		if b.Total > maxMonth {
			maxMonth = b.Total
		}
	}
	s.AxisMax = AxisScale(maxMonth)

	for _, r := range in.Requests {
		if r.IsUrgent() {
			s.Urgent++
		}
		if r.Status != delivered {
			s.Pending++
		}
		if IsOverdue(r, delivered, now) {
			s.Overdue++
		}
	}
	s.UrgentRatio = math.Round(Percent(s.Urgent, s.Total)*10) / 10
	return s
}

func sectorName(r entities.Request) string {
	if strings.TrimSpace(r.Sector) == "" {
		return entities.NoSector
	}
	return r.Sector
}

func sortSectors(s []SectorCount) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Total > s[j].Total })
}
