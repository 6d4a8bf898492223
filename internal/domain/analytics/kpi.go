package analytics

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// RawCounts are the store-side aggregates for one scope and period. Churn is
// counted over all history, not the period.
type RawCounts struct {
	NewClients            int64
	TotalAppointments     int64
	CancelledAppointments int64
	TotalClients          int64
	RecurringClients      int64
	FinalizedAppointments int64
	Revenue               decimal.Decimal
	ChurnCount            int64
}

const (
	QualityNoData = "SIN_DATOS"
	QualityLow    = "BAJA"
	QualityMedium = "MEDIA"
	QualityGood   = "BUENA"

	SeverityCritical = "critica"
	SeverityHigh     = "alta"
	SeverityMedium   = "media"
	SeverityNone     = "ninguna"
)

type Quality struct {
	Level    string   `json:"nivel"`
	Severity string   `json:"severidad"`
	Warnings []string `json:"advertencias"`
}

type PeriodInfo struct {
	Name  string `json:"nombre"`
	Start string `json:"inicio"`
	End   string `json:"fin"`
	Days  int    `json:"dias"`
}

type Overview struct {
	Period                PeriodInfo      `json:"periodo"`
	NewClients            int64           `json:"new_clients"`
	RecurrenceRate        float64         `json:"recurrence_rate"`
	ChurnCount            int64           `json:"churn_count"`
	AverageTicket         decimal.Decimal `json:"average_ticket"`
	TotalAppointments     int64           `json:"total_appointments"`
	CancelledAppointments int64           `json:"cancelled_appointments"`
	TotalClients          int64           `json:"total_clients"`
	Revenue               decimal.Decimal `json:"revenue"`
	Quality               Quality         `json:"calidad_datos"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compute derives the KPIs from raw counts. Zero denominators yield zero
// metrics, never an error.
func Compute(raw RawCounts, p Period) Overview {
	out := Overview{
		Period: PeriodInfo{
			Name:  p.Name,
			Start: p.StartDate.Format(dateLayout),
			End:   p.EndDate.Format(dateLayout),
			Days:  p.Days(),
		},
		NewClients:            raw.NewClients,
		ChurnCount:            raw.ChurnCount,
		TotalAppointments:     raw.TotalAppointments,
		CancelledAppointments: raw.CancelledAppointments,
		TotalClients:          raw.TotalClients,
		Revenue:               raw.Revenue.Round(2),
		AverageTicket:         decimal.Zero,
	}

	if raw.TotalClients > 0 {
		out.RecurrenceRate = round2(float64(raw.RecurringClients) / float64(raw.TotalClients) * 100)
	}
	if raw.FinalizedAppointments > 0 {
		out.AverageTicket = raw.Revenue.Div(decimal.NewFromInt(raw.FinalizedAppointments)).Round(2)
	}

	out.Quality = ClassifyQuality(out.Period.Days, out.TotalAppointments, out.TotalClients)
	return out
}

// ClassifyQuality grades how much the KPIs can be trusted. The first matching
// rule sets the level; every triggered rule is reported as a warning.
func ClassifyQuality(days int, totalAppointments, totalClients int64) Quality {
	var high []string
	if days < 7 {
		high = append(high, fmt.Sprintf("Periodo muy corto (%d días).", days))
	}
	if totalAppointments < 10 {
		high = append(high, fmt.Sprintf("Pocas citas en el periodo (%d).", totalAppointments))
	}
	if totalClients > 0 && totalClients < 5 {
		high = append(high, fmt.Sprintf("Pocos clientes en el periodo (%d).", totalClients))
	}

	switch {
	case totalAppointments == 0:
		return Quality{
			Level:    QualityNoData,
			Severity: SeverityCritical,
			Warnings: []string{"No hay citas en el periodo seleccionado."},
		}
	case len(high) > 0:
		return Quality{Level: QualityLow, Severity: SeverityHigh, Warnings: high}
	case days < 30:
		return Quality{
			Level:    QualityMedium,
			Severity: SeverityMedium,
			Warnings: []string{fmt.Sprintf("Periodo menor a 30 días (%d).", days)},
		}
	}
	return Quality{Level: QualityGood, Severity: SeverityNone, Warnings: []string{}}
}
