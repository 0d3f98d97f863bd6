package domain

import "testing"

func TestApplyToEmptyProfile(t *testing.T) {
	person := &Person{ID: 1, Name: "John Doe", PrimaryEmail: "john@example.com", Phone: "555-1234"}

	changes := (&ProfileFields{}).ApplyTo(person)
	if len(changes) != 0 {
		t.Fatalf("Expected no changes, got %d", len(changes))
	}
	if person.Name != "John Doe" || person.PrimaryEmail != "john@example.com" {
		t.Error("Empty profile must not mutate the person")
	}
}

func TestApplyToIdenticalValues(t *testing.T) {
	person := &Person{ID: 1, Name: "John Doe", PrimaryEmail: "john@example.com", Company: "Acme"}

	profile := &ProfileFields{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Company:   "Acme",
	}
	changes := profile.ApplyTo(person)
	if len(changes) != 0 {
		t.Fatalf("Expected no changes for identical values, got %d: %v", len(changes), changes)
	}
}

func TestApplyToDifferingFields(t *testing.T) {
	person := &Person{
		ID:           1,
		Name:         "John Doe",
		PrimaryEmail: "john@example.com",
		Company:      "Acme",
		Location:     "Chicago",
	}

	profile := &ProfileFields{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Company:   "Initech",
	}
	changes := profile.ApplyTo(person)
	if len(changes) != 3 {
		t.Fatalf("Expected 3 changes, got %d: %v", len(changes), changes)
	}

	want := map[string][2]string{
		"name":          {"John Doe", "Jane"},
		"primary_email": {"john@example.com", "jane@example.com"},
		"company":       {"Acme", "Initech"},
	}
	for _, change := range changes {
		pair, ok := want[change.Field]
		if !ok {
			t.Errorf("Unexpected change for field %s", change.Field)
			continue
		}
		if change.OldValue != pair[0] || change.NewValue != pair[1] {
			t.Errorf("Field %s: got (%q, %q), want (%q, %q)", change.Field, change.OldValue, change.NewValue, pair[0], pair[1])
		}
	}

	if person.Name != "Jane" {
		t.Errorf("Expected name 'Jane', got %q", person.Name)
	}
	if person.Company != "Initech" {
		t.Errorf("Expected company 'Initech', got %q", person.Company)
	}
	if person.Location != "Chicago" {
		t.Error("Untouched field must keep its value")
	}
}

func TestApplyToEmptyIncomingNeverOverwrites(t *testing.T) {
	person := &Person{ID: 1, Name: "John Doe", Phone: "555-1234", Industry: "Finance"}

	profile := &ProfileFields{Company: "Acme"}
	changes := profile.ApplyTo(person)
	if len(changes) != 1 {
		t.Fatalf("Expected 1 change, got %d", len(changes))
	}
	if person.Phone != "555-1234" || person.Industry != "Finance" || person.Name != "John Doe" {
		t.Error("Empty incoming values must not overwrite stored data")
	}
}

func TestApplyToNameCombination(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		current  string
		wantName string
		wantDiff bool
	}{
		{"both parts", "Jane", "Smith", "John Doe", "Jane Smith", true},
		{"first only", "Jane", "", "John Doe", "Jane", true},
		{"last only", "", "Smith", "John Doe", "Smith", true},
		{"no parts", "", "", "John Doe", "John Doe", false},
		{"unchanged", "John", "Doe", "John Doe", "John Doe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := &Person{Name: tt.current}
			profile := &ProfileFields{FirstName: tt.first, LastName: tt.last}
			changes := profile.ApplyTo(person)

			if tt.wantDiff && len(changes) != 1 {
				t.Fatalf("Expected a name change, got %v", changes)
			}
			if !tt.wantDiff && len(changes) != 0 {
				t.Fatalf("Expected no change, got %v", changes)
			}
			if person.Name != tt.wantName {
				t.Errorf("Name: got %q, want %q", person.Name, tt.wantName)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	f := &ProfileFields{FirstName: "  Jane ", LastName: " Smith "}
	if got := f.FullName(); got != "Jane Smith" {
		t.Errorf("FullName: got %q", got)
	}
	if got := (&ProfileFields{}).FullName(); got != "" {
		t.Errorf("Empty FullName: got %q", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane@Example.COM "); got != "jane@example.com" {
		t.Errorf("NormalizeEmail: got %q", got)
	}
}
