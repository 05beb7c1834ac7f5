package entity

import (
	"strings"

	"bankocr/internal/domain/value"
)

// RepairCandidate описывает цифру, которую даёт глиф после изменения одного сегмента.
type RepairCandidate struct {
	Digit byte
	Glyph value.GlyphKey
}

type RepairOutcome string

const (
	RepairUnchanged    RepairOutcome = "unchanged"
	RepairRepaired     RepairOutcome = "repaired"
	RepairAmbiguous    RepairOutcome = "ambiguous"
	RepairUnrepairable RepairOutcome = "unrepairable"
)

func (o RepairOutcome) String() string {
	return string(o)
}

// Repair хранит итог исправления одного номера.
// Candidates отсортированы по возрастанию и не содержат дублей.
type Repair struct {
	Status     AccountStatus
	Outcome    RepairOutcome
	Candidates []string
}

func (r Repair) String() string {
	switch r.Outcome {
	case RepairUnchanged:
		return r.Status.Account.Number
	case RepairRepaired:
		return r.Candidates[0]
	case RepairAmbiguous:
		return r.Status.Account.Number + " AMB ['" + strings.Join(r.Candidates, "', '") + "']"
	default:
		// Исправить не удалось: оставляем исходную пометку ILL/ERR.
		return r.Status.String()
	}
}
