package catalog

import "slices"

// Question is a single yes/no question within a category.
type Question struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsRedFlag bool   `json:"red_flag,omitempty"` // A "yes" alone indicates an emergency
}

// Category is a symptom category with its ordered question sequence.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the category.
func (c Category) Len() int {
	return len(c.Questions)
}

// Question returns the question with the given ID.
func (c Category) Question(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// RedFlags returns the red-flag questions in display order.
func (c Category) RedFlags() []Question {
	var flags []Question
	for _, q := range c.Questions {
		if q.IsRedFlag {
			flags = append(flags, q)
		}
	}
	return flags
}

// clone returns a copy that shares no backing array with c.
func (c Category) clone() Category {
	c.Questions = slices.Clone(c.Questions)
	return c
}
