// Package intake drives the multi-step candidate form: per-step validation,
// completion tracking and draft autosave.
package intake

type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldLocation    Field = "location"
	FieldLinkedInURL Field = "linkedinUrl"
	FieldNotes       Field = "notes"
	FieldTags        Field = "tags"
	FieldSkills      Field = "skills"
)

var scalarFields = map[Field]bool{
	FieldName:        true,
	FieldEmail:       true,
	FieldPhone:       true,
	FieldLocation:    true,
	FieldLinkedInURL: true,
	FieldNotes:       true,
}

type Step struct {
	ID          string
	Title       string
	Description string
	Fields      []Field
}

var Steps = []Step{
	{
		ID:          "basic",
		Title:       "Basic Information",
		Description: "Essential candidate details",
		Fields:      []Field{FieldName, FieldEmail},
	},
	{
		ID:          "contact",
		Title:       "Contact & Profile",
		Description: "Contact information and professional links",
		Fields:      []Field{FieldPhone, FieldLocation, FieldLinkedInURL},
	},
	{
		ID:          "details",
		Title:       "Skills & Notes",
		Description: "Additional details and internal notes",
		Fields:      []Field{FieldNotes, FieldTags, FieldSkills},
	},
}

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepActive    StepStatus = "active"
	StepCompleted StepStatus = "completed"
)
