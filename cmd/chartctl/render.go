package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"finance-dashboard/internal/dto"

	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func renderChart(w io.Writer, resp dto.ChartResponse) error {
	switch r := resp.(type) {
	case *dto.LineChartResponse:
		renderLine(w, r)
	case *dto.BarChartResponse:
		renderBar(w, r)
	case *dto.PieChartResponse:
		renderPie(w, r)
	case *dto.TableChartResponse:
		renderTable(w, r)
	case *dto.KPIChartResponse:
		renderKPI(w, r)
	default:
		return fmt.Errorf("no renderer for %T", resp)
	}
	return nil
}

// renderLine prints one row per bucket and one column per series
func renderLine(w io.Writer, r *dto.LineChartResponse) {
	header := []string{r.Metadata.GroupBy}
	for _, s := range r.Series {
		header = append(header, s.Name)
	}
	table := newTable(w, header)

	if len(r.Series) > 0 {
		for i, point := range r.Series[0].Data {
			row := []string{point.X}
			for _, s := range r.Series {
				row = append(row, money(s.Data[i].Y))
			}
			table.Append(row)
		}
	}

	table.Render()

	fmt.Fprintf(w, "total %s, average %s, min %s, max %s\n",
		money(r.Metadata.Total), money(r.Metadata.Average), money(r.Metadata.Min), money(r.Metadata.Max))
}

func renderBar(w io.Writer, r *dto.BarChartResponse) {
	header := []string{r.Metadata.GroupBy}
	for _, s := range r.Series {
		header = append(header, s.Name)
	}
	table := newTable(w, header)

	for i, category := range r.Categories {
		row := []string{category}
		for _, s := range r.Series {
			row = append(row, money(s.Data[i]))
		}
		table.Append(row)
	}
	table.Render()
}

func renderPie(w io.Writer, r *dto.PieChartResponse) {
	table := newTable(w, []string{r.Metadata.GroupBy, r.Metadata.Metric, "%"})
	for _, slice := range r.Slices {
		table.Append([]string{slice.Label, money(slice.Value), money(slice.Percentage)})
	}
	table.SetFooter([]string{"total", money(r.Metadata.Total), "100.00"})
	table.Render()
}

func renderTable(w io.Writer, r *dto.TableChartResponse) {
	header := make([]string, 0, len(r.Columns))
	for _, col := range r.Columns {
		header = append(header, col.Label)
	}
	table := newTable(w, header)

	for _, row := range r.Rows {
		cells := make([]string, 0, len(r.Columns))
		for _, col := range r.Columns {
			cells = append(cells, formatCell(row[col.Key], col.Type))
		}
		table.Append(cells)
	}
	table.Render()

	fmt.Fprintf(w, "%d rows total", r.Total)
	if r.HasMore {
		fmt.Fprintf(w, ", next cursor: %s", r.Cursor)
	}
	fmt.Fprintln(w)
}

func formatCell(v interface{}, colType dto.ColumnType) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && colType == dto.ColumnTypeCurrency {
		return money(f)
	}
	return fmt.Sprint(v)
}

func renderKPI(w io.Writer, r *dto.KPIChartResponse) {
	fmt.Fprintf(w, "%s..%s vs %s..%s\n",
		r.Periods.Current.Start, r.Periods.Current.End, r.Periods.Previous.Start, r.Periods.Previous.End)

	table := newTable(w, []string{"KPI", "Current", "Previous", "Change", "Change %", "Trend"})
	for _, m := range r.Metrics {
		table.Append([]string{m.Label, money(m.Current), money(m.Previous), money(m.Change), money(m.ChangePercentage), m.Trend})
	}
	table.Render()
}

func renderSummary(w io.Writer, s *dto.DashboardSummaryResponse) {
	fmt.Fprintf(w, "%s..%s\n", s.Metadata.Period.Start, s.Metadata.Period.End)

	table := newTable(w, []string{"Card", "Value"})
	table.Append([]string{"Total revenue", money(s.TotalRevenue)})
	table.Append([]string{"Total expense", money(s.TotalExpense)})
	table.Append([]string{"Liquid profit", money(s.LiquidProfit)})
	table.Append([]string{"Overdue receivable", money(s.OverdueAccounts.Receivable)})
	table.Append([]string{"Overdue payable", money(s.OverdueAccounts.Payable)})
	table.Append([]string{"Upcoming receivable", money(s.UpcomingAccounts.Receivable)})
	table.Append([]string{"Upcoming payable", money(s.UpcomingAccounts.Payable)})
	table.Render()
}

func renderChartTypes(w io.Writer, types []dto.ChartMetadata) {
	table := newTable(w, []string{"Type", "Metrics", "Group by", "Paged", "Max age"})
	for _, t := range types {
		metrics := append([]string(nil), t.SupportedMetrics...)
		sort.Strings(metrics)
		table.Append([]string{
			t.Name,
			strings.Join(metrics, ","),
			strings.Join(t.SupportedGroupBy, ","),
			strconv.FormatBool(t.SupportsPagination),
			strconv.Itoa(t.CacheMaxAge) + "s",
		})
	}
	table.Render()
}
