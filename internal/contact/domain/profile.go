package domain

import "strings"

// ProfileFields holds the tracked field values extracted from a webhook event.
// Empty values mean "not provided" and never overwrite stored data.
type ProfileFields struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Company             string
	Position            string
	Industry            string
	Location            string
	ProfessionalSummary string
}

// FieldChange is one field's before/after pair produced by a reconciliation.
// Field carries the column name so it can drive both the update statement and
// the profile_updates row.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// fieldRule binds a tracked column to its incoming and stored accessors.
// Adding a tracked field means adding one entry here.
type fieldRule struct {
	column   string
	incoming func(*ProfileFields) string
	current  func(*Person) string
	assign   func(*Person, string)
}

var fieldRules = []fieldRule{
	{
		column:   "primary_email",
		incoming: func(f *ProfileFields) string { return f.Email },
		current:  func(p *Person) string { return p.PrimaryEmail },
		assign:   func(p *Person, v string) { p.PrimaryEmail = v },
	},
	{
		column:   "phone",
		incoming: func(f *ProfileFields) string { return f.Phone },
		current:  func(p *Person) string { return p.Phone },
		assign:   func(p *Person, v string) { p.Phone = v },
	},
	{
		column:   "company",
		incoming: func(f *ProfileFields) string { return f.Company },
		current:  func(p *Person) string { return p.Company },
		assign:   func(p *Person, v string) { p.Company = v },
	},
	{
		column:   "position",
		incoming: func(f *ProfileFields) string { return f.Position },
		current:  func(p *Person) string { return p.Position },
		assign:   func(p *Person, v string) { p.Position = v },
	},
	{
		column:   "industry",
		incoming: func(f *ProfileFields) string { return f.Industry },
		current:  func(p *Person) string { return p.Industry },
		assign:   func(p *Person, v string) { p.Industry = v },
	},
	{
		column:   "location",
		incoming: func(f *ProfileFields) string { return f.Location },
		current:  func(p *Person) string { return p.Location },
		assign:   func(p *Person, v string) { p.Location = v },
	},
	{
		column:   "professional_summary",
		incoming: func(f *ProfileFields) string { return f.ProfessionalSummary },
		current:  func(p *Person) string { return p.ProfessionalSummary },
		assign:   func(p *Person, v string) { p.ProfessionalSummary = v },
	},
}

// FullName combines first and last name, or returns "" when both are empty
func (f *ProfileFields) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}

// ApplyTo mutates the person with every non-empty incoming value that differs
// from the stored one and returns the resulting change set. AC wins only when
// it actually sent a value; no-op payloads return an empty slice.
func (f *ProfileFields) ApplyTo(p *Person) []FieldChange {
	var changes []FieldChange

	if f.FirstName != "" || f.LastName != "" {
		if name := f.FullName(); name != "" && name != p.Name {
			changes = append(changes, FieldChange{Field: "name", OldValue: p.Name, NewValue: name})
			p.Name = name
		}
	}

	for _, rule := range fieldRules {
		value := rule.incoming(f)
		if value == "" || value == rule.current(p) {
			continue
		}
		changes = append(changes, FieldChange{Field: rule.column, OldValue: rule.current(p), NewValue: value})
		rule.assign(p, value)
	}

	return changes
}

// CustomFieldRule maps an AC custom-field name fragment to a profile field.
// Matching is a case-insensitive substring check; the first matching rule wins
// for each fieldValues entry.
type CustomFieldRule struct {
	Keyword string
	Assign  func(*ProfileFields, string)
}

// DefaultCustomFieldRules covers the custom fields AC is known to send.
// New AC field names go here instead of inline string checks.
func DefaultCustomFieldRules() []CustomFieldRule {
	return []CustomFieldRule{
		{Keyword: "company", Assign: func(f *ProfileFields, v string) { f.Company = v }},
		{Keyword: "industry", Assign: func(f *ProfileFields, v string) { f.Industry = v }},
		{Keyword: "job", Assign: func(f *ProfileFields, v string) { f.Position = v }},
		{Keyword: "title", Assign: func(f *ProfileFields, v string) { f.Position = v }},
		{Keyword: "location", Assign: func(f *ProfileFields, v string) { f.Location = v }},
		{Keyword: "summary", Assign: func(f *ProfileFields, v string) { f.ProfessionalSummary = v }},
	}
}

// NormalizeEmail lower-cases and trims an email for comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
