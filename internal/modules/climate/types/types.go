package types

// Measurement is one station's daily reading. Prcp and Tobs are NULL-able.
type Measurement struct {
	ID      int64    `json:"id"`
	Station string   `json:"station"`
	Date    string   `json:"date"`
	Prcp    *float64 `json:"prcp"`
	Tobs    *float64 `json:"tobs"`
}

// Station is a catalog entry. Only the identifier is read by the API.
type Station struct {
	ID        int64    `json:"id"`
	Station   string   `json:"station"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Elevation *float64 `json:"elevation"`
}

const (
	MeasurementTable = "measurement"
	StationTable     = "station"
)

// Columns the queries depend on.
var (
	MeasurementColumns = []string{"station", "date", "prcp", "tobs"}
	StationColumns     = []string{"station"}
)

// DatedValue is a single (date, value) row; Value is nil for NULL.
type DatedValue struct {
	Date  string
	Value *float64
}

// ValuesByDate maps a date to every non-null reading for it, in read order.
type ValuesByDate map[string][]float64

// StationList is the response of the stations endpoint.
type StationList struct {
	Station []string `json:"station"`
}

// TemperatureSummary is the min/avg/max of a date's temperature observations.
// Fields are nil when every observation for the date is NULL.
type TemperatureSummary struct {
	Min *float64 `json:"min"`
	Avg *float64 `json:"avg"`
	Max *float64 `json:"max"`
}

type DailySummary struct {
	Date string
	TemperatureSummary
}

// SummaryByDate maps a date to its temperature summary.
type SummaryByDate map[string]TemperatureSummary
