package triage

import "slices"

// Result is the recommendation shown at the end of an assessment.
type Result struct {
	Level       Level    `json:"level"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// incompleteDescription replaces the self-care description when the
// assessment could not be run.
const incompleteDescription = "We could not complete your assessment. If you feel unwell or your symptoms get worse, contact a healthcare provider."

var templates = map[Level]Result{
	LevelEmergency: {
		Level:       LevelEmergency,
		Title:       "URGENT: Call Emergency Now",
		Description: "Based on your symptoms, you need immediate medical attention.",
		Actions: []string{
			"Call 911 or your local emergency number immediately",
			"Do not drive yourself",
			"Have someone stay with you",
		},
	},
	LevelUrgent: {
		Level:       LevelUrgent,
		Title:       "Seek Urgent Care",
		Description: "Your symptoms suggest you should be seen by a healthcare provider soon.",
		Actions: []string{
			"Visit urgent care within 24 hours",
			"Monitor your symptoms closely",
			"Call if symptoms worsen",
		},
	},
	LevelClinic: {
		Level:       LevelClinic,
		Title:       "Visit Campus Clinic",
		Description: "You should schedule an appointment with the campus health center.",
		Actions: []string{
			"Make an appointment during business hours",
			"Rest and stay hydrated",
			"Monitor your symptoms",
		},
	},
	LevelSelfCare: {
		Level:       LevelSelfCare,
		Title:       "Self-Care Recommended",
		Description: "Your symptoms can likely be managed with self-care.",
		Actions: []string{
			"Get plenty of rest",
			"Stay hydrated",
			"Use over-the-counter medications as needed",
		},
	},
}

// Template returns the fixed result for a level. Undefined levels get the
// self-care template.
func Template(l Level) Result {
	r, ok := templates[l]
	if !ok {
		r = templates[LevelSelfCare]
	}
	r.Actions = slices.Clone(r.Actions)
	return r
}

// Fallback returns the result used when an assessment cannot be evaluated.
// It is the least alarming template with a description saying so.
func Fallback() Result {
	r := Template(LevelSelfCare)
	r.Description = incompleteDescription
	return r
}
