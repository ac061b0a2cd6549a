package fhir

type Encounter struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Meta         *Meta        `json:"meta,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Status       string       `json:"status,omitempty"`
	Subject      *Reference   `json:"subject,omitempty"`
}

// IdentifierValue returns the value of the first identifier under system,
// or "" when the encounter carries none.
func (e Encounter) IdentifierValue(system string) string {
	for _, id := range e.Identifier {
		if id.System == system {
			return id.Value
		}
	}
	return ""
}
