package dashboard

import (
	"testing"
	"time"

	"gestao_compras/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func statuses() []entities.Status {
	return []entities.Status{
		{ID: 1, Name: "Pendente", Color: entities.StatusColorYellow},
		{ID: 2, Name: "Em Andamento", Color: entities.StatusColorBlue},
		{ID: 3, Name: "Entregue", Color: entities.StatusColorGreen},
	}
}

func TestStatusTally_UnknownStatusOnlyInTotal(t *testing.T) {
	requests := []entities.Request{
		{Status: "Pendente"},
		{Status: "Pendente"},
		{Status: "Entregue"},
		{Status: "entregue"},
		{Status: "Cancelado"},
	}

	tally := StatusTally(requests, statuses())
	require.Len(t, tally, 3)
	assert.Equal(t, 2, tally[0].Count)
	assert.Equal(t, 0, tally[1].Count)
	assert.Equal(t, 1, tally[2].Count)

	sum := 0
	for _, s := range tally {
		sum += s.Count
	}
	assert.Less(t, sum, len(requests))
}

func TestStatusTally_SumEqualsTotalWhenAllMatch(t *testing.T) {
	requests := []entities.Request{{Status: "Pendente"}, {Status: "Em Andamento"}, {Status: "Entregue"}}
	sum := 0
	for _, s := range StatusTally(requests, statuses()) {
		sum += s.Count
	}
	assert.Equal(t, len(requests), sum)
}

func TestMonthlySeries_AlwaysSixBucketsOldestFirst(t *testing.T) {
	for _, requests := range [][]entities.Request{nil, {{RequestDate: "2024-03-01"}}} {
		series := MonthlySeries(requests, now)
		require.Len(t, series, 6)
		assert.Equal(t, "2023-10", series[0].Month)
		assert.Equal(t, "2024-03", series[5].Month)
	}
}

func TestMonthlySeries_Buckets(t *testing.T) {
	requests := []entities.Request{
		{RequestDate: "2024-03-02", Sector: "TI", Urgency: entities.UrgencyHigh},
		{RequestDate: "2024-03-10", Sector: "RH"},
		{RequestDate: "2024-03-11", Sector: "TI"},
		{RequestDate: "2024-01-20T12:00:00Z"},
		{RequestDate: "2023-09-30", Sector: "TI"},
		{RequestDate: ""},
	}

	series := MonthlySeries(requests, now)
	march := series[5]
	assert.Equal(t, 3, march.Total)
	assert.Equal(t, 1, march.Urgent)
	require.Len(t, march.Sectors, 2)
	assert.Equal(t, SectorCount{Sector: "TI", Total: 2, Urgent: 1}, march.Sectors[0])
	assert.Equal(t, SectorCount{Sector: "RH", Total: 1}, march.Sectors[1])

	january := series[3]
	assert.Equal(t, "2024-01", january.Month)
	assert.Equal(t, 1, january.Total)
	assert.Equal(t, entities.NoSector, january.Sectors[0].Sector)

	total := 0
	for _, b := range series {
		total += b.Total
	}
	assert.Equal(t, 4, total, "out-of-window and undated requests are skipped")
}

func TestSectorSeries(t *testing.T) {
	sectors := []entities.Sector{{Name: "RH"}, {Name: "TI"}, {Name: "Compras"}}
	requests := []entities.Request{
		{Sector: "TI", Urgency: entities.UrgencyHigh},
		{Sector: "TI"},
		{Sector: "RH"},
		{Sector: ""},
		{Sector: "Desconhecido"},
	}

	series := SectorSeries(requests, sectors)
	require.Len(t, series, 4)
	assert.Equal(t, SectorCount{Sector: "TI", Total: 2, Urgent: 1}, series[0])
	assert.Equal(t, "RH", series[1].Sector)
	assert.Equal(t, entities.NoSector, series[2].Sector)
	assert.Equal(t, SectorCount{Sector: "Compras"}, series[3])

	withoutEmpty := SectorSeries([]entities.Request{{Sector: "RH"}}, sectors)
	for _, sc := range withoutEmpty {
		assert.NotEqual(t, entities.NoSector, sc.Sector)
	}
}

func TestTopSectors(t *testing.T) {
	t.Run("small catalog keeps zero-count sectors", func(t *testing.T) {
		series := []SectorCount{{Sector: "A", Total: 3}, {Sector: "B"}, {Sector: "C"}}
		assert.Len(t, TopSectors(series, 3), 3)
	})

	t.Run("large catalog drops empty and truncates to six", func(t *testing.T) {
		series := []SectorCount{
			{Sector: "A", Total: 9}, {Sector: "B", Total: 8}, {Sector: "C", Total: 7},
			{Sector: "D", Total: 6}, {Sector: "E", Total: 5}, {Sector: "F", Total: 4},
			{Sector: "G", Total: 3}, {Sector: "H"},
		}
		top := TopSectors(series, 8)
		require.Len(t, top, 6)
		assert.Equal(t, "F", top[5].Sector)

		top = TopSectors(series[5:], 8)
		assert.Len(t, top, 2)
	})
}

func TestAxisScaleAndPercent(t *testing.T) {
	cases := map[int]int{0: 5, 3: 5, 4: 5, 5: 10, 9: 10, 14: 15}
	for m, want := range cases {
		assert.Equal(t, want, AxisScale(m), "max=%d", m)
	}
	assert.Equal(t, 0.0, Percent(0, 0))
	assert.Equal(t, 300.0, Percent(3, 0))
	assert.Equal(t, 50.0, Percent(5, 10))
}

func TestBuild(t *testing.T) {
	in := Input{
		Requests: []entities.Request{
			{RequestDate: "2024-03-01", Sector: "TI", Status: "Pendente", Urgency: entities.UrgencyHigh, DeliveryDate: "2024-03-10"},
			{RequestDate: "2024-03-02", Sector: "TI", Status: "Entregue", PurchaseOrderDate: "2024-03-04", DeliveryDate: "2024-03-05"},
			{RequestDate: "2024-02-02", Sector: "RH", Status: "Em Andamento", DeliveryDate: "2024-03-20"},
		},
		Statuses: statuses(),
		Sectors:  []entities.Sector{{Name: "TI"}, {Name: "RH"}},
		Now:      now,
	}

	s := Build(in)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Urgent)
	assert.Equal(t, 33.3, s.UrgentRatio)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 5, s.AxisMax)
	require.NotNil(t, s.AvgDaysToPurchaseOrder)
	assert.Equal(t, 2.0, *s.AvgDaysToPurchaseOrder)
	require.NotNil(t, s.AvgLeadTimeDays)
	assert.Equal(t, 3.0, *s.AvgLeadTimeDays)
	assert.Len(t, s.TopSectors, 2)
}

func TestBuild_EmptyInput(t *testing.T) {
	s := Build(Input{Statuses: statuses(), Now: now})
	assert.Equal(t, 0, s.Total)
	assert.Len(t, s.Monthly, 6)
	assert.Equal(t, 5, s.AxisMax)
	assert.Equal(t, 0.0, s.UrgentRatio)
	assert.Empty(t, s.Sectors)
	assert.Nil(t, s.AvgLeadTimeDays)
	for _, st := range s.StatusTally {
		assert.Zero(t, st.Count)
	}
}
