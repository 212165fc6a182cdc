package charting

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Gráficos disponíveis no painel
const (
	ChartCategorySales    = "category-sales"
	ChartMonthlySales     = "monthly-sales"
	ChartSubCategorySales = "sub-category-sales"
)

// Formatos de saída suportados
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	ErrNoChartData    = errors.New("charting: seleção sem dados para o gráfico")
	ErrUnknownChart   = errors.New("charting: gráfico desconhecido")
	ErrUnknownFormat  = errors.New("charting: formato desconhecido")
	minBarWidth       = 12
	maxBarWidth       = 80
	barSpacing        = 16
	horizontalPadding = 120
)

// Kinds lista os gráficos na ordem em que aparecem no painel
func Kinds() []string {
	return []string{ChartCategorySales, ChartMonthlySales, ChartSubCategorySales}
}

// Renderer gera as imagens dos gráficos a partir de um painel já calculado
type Renderer struct {
	width  int
	height int
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		width:  cfg.Dashboard.ChartWidth,
		height: cfg.Dashboard.ChartHeight,
	}
}

// ParseFormat normaliza o formato pedido; vazio significa PNG
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// ContentType retorna o media type do formato
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render escreve o gráfico pedido em w
func (r *Renderer) Render(w io.Writer, kind, format string, dashboard *domain.Dashboard) error {
	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}

	var err error
	switch kind {
	case ChartCategorySales:
		err = r.renderCategorySales(w, provider, dashboard.CategoryAggregates)
	case ChartMonthlySales:
		err = r.renderMonthlySales(w, provider, dashboard.MonthlySales)
	case ChartSubCategorySales:
		err = r.renderSubCategorySales(w, provider, dashboard.SubCategoryMonthly)
	default:
		return errors.Wrapf(ErrUnknownChart, "%q", kind)
	}

	if err != nil && errors.Cause(err) != ErrNoChartData {
		logrus.WithError(err).WithFields(logrus.Fields{
			"chart":    kind,
			"format":   format,
			"category": dashboard.Selection.Category,
		}).Error("charting: erro ao renderizar gráfico")
	}

	return err
}

func (r *Renderer) renderCategorySales(w io.Writer, provider chart.RendererProvider, aggregates []domain.CategoryAggregate) error {
	if len(aggregates) == 0 {
		return ErrNoChartData
	}

	bars := make([]chart.Value, 0, len(aggregates))
	values := make([]float64, 0, len(aggregates))
	for i, aggregate := range aggregates {
		value := utils.RoundWithTwoDecimalPlace(aggregate.Sales.InexactFloat64())
		values = append(values, value)
		bars = append(bars, chart.Value{
			Label: aggregate.Category,
			Value: value,
			Style: chart.Style{
				FillColor:   chart.GetDefaultColor(i),
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1,
			},
		})
	}

	yRange := valueRange(values)
	graph := chart.BarChart{
		Title:      "Sales by Category",
		Width:      r.width,
		Height:     r.height,
		BarWidth:   r.barWidth(len(bars)),
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range:          yRange,
			ValueFormatter: currencyFormatter,
		},
		UseBaseValue: yRange.Min < 0,
		BaseValue:    0,
		Bars:         bars,
	}

	return errors.Wrap(graph.Render(provider, w), "charting: vendas por categoria")
}

func (r *Renderer) renderMonthlySales(w io.Writer, provider chart.RendererProvider, months []domain.MonthlySales) error {
	if len(months) == 0 {
		return ErrNoChartData
	}

	times, ys := monthlyPoints(months)
	graph := r.timeChart("Sales by Month", []chart.Series{
		chart.TimeSeries{
			Name:    "Sales",
			XValues: times,
			YValues: ys,
			Style:   lineStyle(chart.ColorBlue),
		},
	}, ys)

	return errors.Wrap(graph.Render(provider, w), "charting: vendas por mês")
}

func (r *Renderer) renderSubCategorySales(w io.Writer, provider chart.RendererProvider, series []domain.SubCategorySeries) error {
	if len(series) == 0 {
		return ErrNoChartData
	}

	chartSeries := make([]chart.Series, 0, len(series))
	allValues := make([]float64, 0)
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}

		times, ys := monthlyPoints(s.Points)
		allValues = append(allValues, ys...)
		chartSeries = append(chartSeries, chart.TimeSeries{
			Name:    s.SubCategory,
			XValues: times,
			YValues: ys,
			Style:   lineStyle(chart.GetDefaultColor(i)),
		})
	}

	if len(chartSeries) == 0 {
		return ErrNoChartData
	}

	graph := r.timeChart("Sales by Sub-Category per Month", chartSeries, allValues)

	return errors.Wrap(graph.Render(provider, w), "charting: vendas por subcategoria")
}

func (r *Renderer) timeChart(title string, series []chart.Series, values []float64) chart.Chart {
	graph := chart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 48}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(domain.PeriodFormat),
		},
		YAxis: chart.YAxis{
			Range:          valueRange(values),
			ValueFormatter: currencyFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph
}

func (r *Renderer) barWidth(bars int) int {
	available := (r.width - horizontalPadding) / bars
	width := available - barSpacing
	if width < minBarWidth {
		return minBarWidth
	}
	if width > maxBarWidth {
		return maxBarWidth
	}
	return width
}

// monthlyPoints converte a série para o eixo de tempo. Um único mês é
// duplicado no mês seguinte para que o eixo X tenha amplitude.
func monthlyPoints(points []domain.MonthlySales) ([]time.Time, []float64) {
	times := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	for _, point := range points {
		times = append(times, point.Month)
		ys = append(ys, utils.RoundWithTwoDecimalPlace(point.Sales.InexactFloat64()))
	}

	if len(times) == 1 {
		times = append(times, times[0].AddDate(0, 1, 0))
		ys = append(ys, ys[0])
	}

	return times, ys
}

// valueRange sempre inclui o zero e nunca tem amplitude nula
func valueRange(values []float64) *chart.ContinuousRange {
	minY, maxY := 0.0, 0.0
	for _, v := range values {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}

	if maxY <= minY {
		maxY = minY + 1
	}

	// Folga de 10% acima do maior valor
	return &chart.ContinuousRange{Min: minY, Max: maxY + (maxY-minY)*0.1}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

func currencyFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return "$" + humanize.FormatFloat("#,###.", f)
	}
	return ""
}
