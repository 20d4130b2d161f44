package launches

import (
	"encoding/json"
	"time"
)

// Launch is the domain view of one flight event. Values are built fresh per
// query response and never mutated afterwards.
type Launch struct {
	ID                 string    `json:"id"`
	LaunchTime         time.Time `json:"launch_time"`
	PayloadIDs         []string  `json:"payload_ids"`
	TotalPayloadMassKg *float64  `json:"total_payload_mass_kg,omitempty"`
}

// LaunchDoc is the raw record shape returned by the upstream query endpoint.
// DateUnix is a pointer so a missing timestamp can be told apart from epoch
// zero.
type LaunchDoc struct {
	ID       string       `json:"id"`
	DateUnix *int64       `json:"date_unix"`
	Payloads []PayloadRef `json:"payloads"`
}

// PayloadRef is a payload reference as the upstream returns it: either a
// bare identifier string, or an expanded record carrying id and mass.
type PayloadRef struct {
	ID     string
	MassKg *float64
}

func (r *PayloadRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = PayloadRef{ID: id}
		return nil
	}

	var expanded struct {
		ID     string      `json:"id"`
		MassKg interface{} `json:"mass_kg"`
	}
	if err := json.Unmarshal(data, &expanded); err != nil {
		return err
	}

	*r = PayloadRef{ID: expanded.ID}
	// Null, missing and non-numeric masses all collapse to "no mass".
	if mass, ok := expanded.MassKg.(float64); ok {
		r.MassKg = &mass
	}
	return nil
}

func (r PayloadRef) MarshalJSON() ([]byte, error) {
	if r.MassKg == nil {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID     string   `json:"id"`
		MassKg *float64 `json:"mass_kg"`
	}{ID: r.ID, MassKg: r.MassKg})
}

// Mass returns the reference's contribution to a launch's total payload
// mass: 0.0 for bare references and null/absent masses.
func (r PayloadRef) Mass() float64 {
	if r.MassKg == nil {
		return 0.0
	}
	return *r.MassKg
}

func payloadIDs(refs []PayloadRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

func totalMass(refs []PayloadRef) float64 {
	var total float64
	for _, ref := range refs {
		total += ref.Mass()
	}
	return total
}
