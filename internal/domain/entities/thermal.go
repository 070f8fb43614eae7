package entities

// ThermalStatus is the health of a monitored equipment.
type ThermalStatus string

const (
	ThermalStatusNormal   ThermalStatus = "Normal"
	ThermalStatusWarning  ThermalStatus = "Atenção"
	ThermalStatusCritical ThermalStatus = "Crítico"
)

// ThermalAnalysis tracks field temperature readings of one equipment.
// Measurements are append-only; Status reflects the latest reading.
type ThermalAnalysis struct {
	ID                int64         `json:"id"`
	Equipment         string        `json:"equipment"`
	Location          string        `json:"location"`
	TargetTemperature float64       `json:"targetTemperature"`
	Tolerance         float64       `json:"tolerance"`
	Status            ThermalStatus `json:"status"`
	Measurements      []Measurement `json:"measurements"`
}

// Measurement is one temperature reading.
type Measurement struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Responsible string  `json:"responsible"`
	Notes       string  `json:"notes,omitempty"`
}
