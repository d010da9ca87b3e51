package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"market_snapshot/internal/feature/market/domain/entity"
	"market_snapshot/internal/feature/market/transport/handler"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	latestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// renderJSON writes the same document the HTTP endpoint serves.
func renderJSON(w io.Writer, snap entity.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(handler.ToMarketResponse(snap))
}

// renderTable writes one section per asset in configured order:
// the latest price followed by the trailing daily rows.
func renderTable(w io.Writer, assets []entity.Asset, snap entity.Snapshot) error {
	for i, a := range assets {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		rows := snap[a.Slug]

		header := titleStyle.Render(a.Label) + " " + mutedStyle.Render("("+a.Slug+")")
		if len(rows) > 0 {
			header += "  " + latestStyle.Render("latest "+formatMoney(rows[len(rows)-1].Price, 2))
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}

		if len(rows) == 0 {
			if _, err := fmt.Fprintln(w, mutedStyle.Render("no data")); err != nil {
				return err
			}
			continue
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Date", "Price (USD)", "Market Cap", "Volume (24h)")
		for _, r := range rows {
			t.Row(formatDate(r.Datetime), formatMoney(r.Price, 2), formatMoney(r.MarketCap, 0), formatMoney(r.Volume, 0))
		}
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	return nil
}

// formatMoney renders "$1,234.57"; an absent value renders "-".
func formatMoney(v *float64, digits int) string {
	if v == nil {
		return "-"
	}
	rounded := decimal.NewFromFloat(*v).Round(int32(digits)).InexactFloat64()
	return "$" + humanize.CommafWithDigits(rounded, digits)
}

// formatDate trims an ISO-8601 instant to its UTC calendar date.
func formatDate(datetime string) string {
	t, err := time.Parse(time.RFC3339Nano, datetime)
	if err != nil {
		return datetime
	}
	return t.UTC().Format("2006-01-02")
}
