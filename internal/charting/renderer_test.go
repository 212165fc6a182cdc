package charting

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func newTestRenderer() *Renderer {
	return NewRenderer(&config.Config{Dashboard: config.Dashboard{ChartWidth: 640, ChartHeight: 320}})
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func testDashboard() *domain.Dashboard {
	points := []domain.MonthlySales{
		domain.NewMonthlySales(month(2016, time.November), decimal.RequireFromString("993.9")),
		domain.NewMonthlySales(month(2016, time.December), decimal.Zero),
		domain.NewMonthlySales(month(2017, time.January), decimal.RequireFromString("48.86")),
	}

	return &domain.Dashboard{
		Selection: domain.Selection{Category: "Furniture"},
		CategoryAggregates: []domain.CategoryAggregate{
			{Category: "Furniture", Sales: decimal.RequireFromString("1042.76"), Profit: decimal.RequireFromString("233.75")},
		},
		MonthlySales: points,
		SubCategoryMonthly: []domain.SubCategorySeries{
			{SubCategory: "Chairs", Points: points},
			{SubCategory: "Tables", Points: []domain.MonthlySales{
				domain.NewMonthlySales(month(2016, time.November), decimal.Zero),
				domain.NewMonthlySales(month(2016, time.December), decimal.NewFromInt(120)),
				domain.NewMonthlySales(month(2017, time.January), decimal.Zero),
			}},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer := newTestRenderer()
	dashboard := testDashboard()

	for _, kind := range Kinds() {
		t.Run(kind+" png", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderer.Render(&buf, kind, FormatPNG, dashboard))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})

		t.Run(kind+" svg", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderer.Render(&buf, kind, FormatSVG, dashboard))
			assert.Contains(t, buf.String(), "<svg")
		})
	}
}

func TestRenderer_SingleMonth(t *testing.T) {
	renderer := newTestRenderer()
	dashboard := &domain.Dashboard{
		MonthlySales: []domain.MonthlySales{
			domain.NewMonthlySales(month(2017, time.March), decimal.NewFromInt(10)),
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, renderer.Render(&buf, ChartMonthlySales, FormatPNG, dashboard))
}

func TestRenderer_NoData(t *testing.T) {
	renderer := newTestRenderer()
	empty := &domain.Dashboard{}

	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			var buf bytes.Buffer
			err := renderer.Render(&buf, kind, FormatPNG, empty)
			assert.Equal(t, ErrNoChartData, errors.Cause(err))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestRenderer_UnknownChart(t *testing.T) {
	var buf bytes.Buffer
	err := newTestRenderer().Render(&buf, "pie", FormatPNG, testDashboard())
	assert.Equal(t, ErrUnknownChart, errors.Cause(err))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{" svg ", FormatSVG, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
			assert.NotEmpty(t, ContentType(format))
		})
	}
}

func TestValueRange(t *testing.T) {
	zeros := valueRange([]float64{0, 0})
	assert.Equal(t, 0.0, zeros.Min)
	assert.Greater(t, zeros.Max, zeros.Min)

	mixed := valueRange([]float64{-50, 100})
	assert.Equal(t, -50.0, mixed.Min)
	assert.InDelta(t, 115.0, mixed.Max, 0.0001)
}

func TestBarWidth(t *testing.T) {
	renderer := newTestRenderer()

	assert.Equal(t, maxBarWidth, renderer.barWidth(1))
	assert.Equal(t, minBarWidth, renderer.barWidth(500))
}
