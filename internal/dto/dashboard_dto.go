package dto

// DashboardTotalsResponse carries the derived campus metrics. Every metric is
// recomputed fresh from the record set on each read.
type DashboardTotalsResponse struct {
	TotalStudents  int     `json:"total_students"`
	FeesCollected  float64 `json:"fees_collected"`
	Dues           float64 `json:"dues"`
	HostelOccupied int     `json:"hostel_occupied"`
	HostelFree     int     `json:"hostel_free"`
	PassRate       int     `json:"pass_rate"`
	BooksOut       int     `json:"books_out"`
	ActivePasses   int     `json:"active_passes"`
}

// ChartPoint is one labelled value for the dashboard chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DashboardResponse bundles the KPI tiles with the chart series.
type DashboardResponse struct {
	Totals DashboardTotalsResponse `json:"totals"`
	Chart  []ChartPoint            `json:"chart"`
}
