package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jszwec/csvutil"
	"github.com/mtallentb/nes-outage-viewer/internal/models"
)

// clearScreen - ANSI: курсор в начало и очистка экрана
const clearScreen = "\033[H\033[2J"

// Renderer печатает результат проверки в терминал
type Renderer struct {
	out         io.Writer
	radiusMiles float64
	now         func() time.Time
}

func NewRenderer(out io.Writer, radiusMiles float64) *Renderer {
	return &Renderer{
		out:         out,
		radiusMiles: radiusMiles,
		now:         time.Now,
	}
}

// outageRow - строка CSV
type outageRow struct {
	ID          string    `csv:"id"`
	Distance    string    `csv:"distance_mi"`
	NumPeople   int       `csv:"num_people"`
	Status      string    `csv:"status"`
	LastUpdated time.Time `csv:"last_updated"`
	Lat         float64   `csv:"lat"`
	Lng         float64   `csv:"lng"`
	Cause       string    `csv:"cause,omitempty"`
}

// RenderText печатает таблицу событий и сводку по статусам
func (r *Renderer) RenderText(outages []models.NearbyOutage) {
	fmt.Fprintf(r.out, "\nNES Outage Tracker - Checking area within %s of home...\n\n",
		plural(r.radiusMiles, "mile"))

	if len(outages) == 0 {
		fmt.Fprint(r.out, "No outages found nearby.\n\n")
		return
	}

	fmt.Fprintf(r.out, "Found %d outage%s nearby:\n\n", len(outages), suffix(len(outages) != 1))

	now := r.now()
	assigned := 0
	for _, o := range outages {
		if o.Status == models.StatusAssigned {
			assigned++
		}
		fmt.Fprintf(r.out, "  #%s | %.1f mi | %6s people | %-10s | Updated %s\n",
			o.ID,
			o.Distance,
			humanize.Comma(int64(o.NumPeople)),
			o.Status,
			FormatTimeAgo(o.LastUpdated, now),
		)
	}

	fmt.Fprintf(r.out, "\nStatus: %d Assigned, %d Unassigned\n\n", assigned, len(outages)-assigned)
}

// RenderCSV печатает события в CSV с заголовком. Заголовок пишется и для пустого списка
func (r *Renderer) RenderCSV(outages []models.NearbyOutage) error {
	w := csv.NewWriter(r.out)
	enc := csvutil.NewEncoder(w)

	if len(outages) == 0 {
		if err := enc.EncodeHeader(outageRow{}); err != nil {
			return fmt.Errorf("failed to encode csv header: %w", err)
		}
	}

	for _, o := range outages {
		row := outageRow{
			ID:          o.ID,
			Distance:    strconv.FormatFloat(o.Distance, 'f', 2, 64),
			NumPeople:   o.NumPeople,
			Status:      o.Status,
			LastUpdated: o.LastUpdated,
			Lat:         o.Lat,
			Lng:         o.Lng,
			Cause:       o.Cause,
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to encode outage %s to csv: %w", o.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// WatchHeader очищает экран и печатает заголовок режима наблюдения
func (r *Renderer) WatchHeader(interval time.Duration, lastCheck time.Time) {
	fmt.Fprint(r.out, clearScreen)
	fmt.Fprintf(r.out, "Watch mode - checking every %s\n", plural(interval.Minutes(), "minute"))
	fmt.Fprintf(r.out, "Last check: %s\n", lastCheck.Format(time.Kitchen))
	fmt.Fprintln(r.out, "Press Ctrl+C to exit")
}

// FormatTimeAgo округляет прошедшее время вниз до минут, часов или дней
func FormatTimeAgo(updated, now time.Time) string {
	minutes := int(now.Sub(updated) / time.Minute)
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return fmt.Sprintf("%dd ago", minutes/(24*60))
	}
}

func plural(n float64, unit string) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + " " + unit + suffix(n != 1)
}

func suffix(many bool) string {
	if many {
		return "s"
	}
	return ""
}
