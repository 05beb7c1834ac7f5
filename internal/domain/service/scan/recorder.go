package scan

import "time"

// Recorder получает итог по каждому номеру и длительность пакета.
type Recorder interface {
	AccountProcessed(mode Mode, outcome string)
	BatchProcessed(mode Mode, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) AccountProcessed(Mode, string)      {}
func (nopRecorder) BatchProcessed(Mode, time.Duration) {}

// Метки исходов для decode и validate. Для repair метка берётся из entity.RepairOutcome.
const (
	OutcomeLegible   = "legible"
	OutcomeIllegible = "illegible"
	OutcomeValid     = "valid"
	OutcomeError     = "error"
)
