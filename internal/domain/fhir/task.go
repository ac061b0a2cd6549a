package fhir

// Task status codes from the FHIR R4 task-status value set. Only the codes
// the invoicing status vocabulary maps onto are listed.
const (
	TaskStatusReady      = "ready"
	TaskStatusInProgress = "in-progress"
	TaskStatusRequested  = "requested"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

type TaskInput struct {
	Type        CodeableConcept `json:"type"`
	ValueString string          `json:"valueString,omitempty"`
}

type Task struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id,omitempty"`
	Meta         *Meta            `json:"meta,omitempty"`
	Identifier   []Identifier     `json:"identifier,omitempty"`
	Status       string           `json:"status,omitempty"`
	Intent       string           `json:"intent,omitempty"`
	Code         *CodeableConcept `json:"code,omitempty"`
	Description  string           `json:"description,omitempty"`
	Encounter    *Reference       `json:"encounter,omitempty"`
	For          *Reference       `json:"for,omitempty"`
	AuthoredOn   string           `json:"authoredOn,omitempty"`
	LastModified string           `json:"lastModified,omitempty"`
	Input        []TaskInput      `json:"input,omitempty"`
	Note         []Annotation     `json:"note,omitempty"`
}
