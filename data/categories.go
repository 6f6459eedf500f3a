package data

import "strconv"

// Category defines a trivia category. Categories are seed data: the API
// surface reads them but never creates, updates or deletes them.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryMap converts a list of categories into the string-keyed
// id-to-type mapping the API embeds in listing responses.
func CategoryMap(categories []*Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, category := range categories {
		m[strconv.FormatInt(category.ID, 10)] = category.Type
	}
	return m
}
