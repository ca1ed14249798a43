package advisor

import (
	"fmt"

	"github.com/go-analyze/charts"

	"gitlab.com/yelinaung/trip-workspace/internal/models"
)

// BreakdownChart renders a budget breakdown as a pie chart.
// Returns PNG image as bytes.
func BreakdownChart(b models.BudgetBreakdown) ([]byte, error) {
	if b.Total.IsZero() {
		return nil, fmt.Errorf("no budget to chart")
	}

	values := []float64{
		b.Transport.InexactFloat64(),
		b.Accommodation.InexactFloat64(),
		b.Food.InexactFloat64(),
		b.Activities.InexactFloat64(),
		b.Shopping.InexactFloat64(),
	}
	labels := []string{
		"Transport",
		"Hébergement",
		"Nourriture",
		"Activités",
		"Shopping",
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Répartition du budget - %s %s", b.Total.String(), b.Currency),
		}),
		charts.LegendLabelsOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}
