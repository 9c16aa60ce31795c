package dashboard

import (
	"shopmonitor/models"
)

// Trend is the sales bar chart: one bar per sale, labelled by sale date.
type Trend struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

func SalesTrend(sales []models.Sale) Trend {
	t := Trend{Labels: make([]string, len(sales)), Data: make([]float64, len(sales))}
	for i, s := range sales {
		t.Labels[i] = s.SaleDate
		t.Data[i] = s.Total
	}
	return t
}

// Bar is one rectangle of a rendered chart, in SVG user units.
type Bar struct {
	X, Y, Width, Height float64
	Label               string
	Value               string
}

// Bars lays the series out in a width x height box with the y axis starting
// at zero. Negative values are drawn as empty bars.
func (t Trend) Bars(width, height float64) []Bar {
	if len(t.Data) == 0 {
		return nil
	}
	peak := 0.0
	for _, v := range t.Data {
		if v > peak {
			peak = v
		}
	}

	slot := width / float64(len(t.Data))
	bars := make([]Bar, len(t.Data))
	for i, v := range t.Data {
		h := 0.0
		if peak > 0 && v > 0 {
			h = v / peak * height
		}
		bars[i] = Bar{
			X:      float64(i)*slot + slot*0.1,
			Y:      height - h,
			Width:  slot * 0.8,
			Height: h,
			Label:  t.Labels[i],
			Value:  Dollars(v),
		}
	}
	return bars
}
