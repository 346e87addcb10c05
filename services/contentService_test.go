package services

import (
	"errors"
	"testing"

	"voicecoach/db"
	"voicecoach/models"
)

func testCatalog() *ContentService {
	return NewContentService(&db.StaticContentRepository{
		Concepts: []models.Concept{
			{ID: "variables", Title: "Variables", Summary: "Named storage for values.", SampleQuestion: "What is a variable?"},
			{ID: "loops", Title: "Loops", Summary: "Repetition constructs.", SampleQuestion: "When would you use a for loop?"},
			{ID: "functions", Title: "Functions", Summary: "Reusable blocks of logic.", SampleQuestion: "Why extract a function?"},
		},
	})
}

func TestContentServiceFindByID(t *testing.T) {
	service := testCatalog()

	concept, err := service.FindByID("loops")
	if err != nil {
		t.Fatalf("FindByID() returned error: %v", err)
	}
	if concept.Title != "Loops" {
		t.Errorf("got %q, expected Loops", concept.Title)
	}

	_, err = service.FindByID("nonexistent")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContentServiceFindByTitle(t *testing.T) {
	service := testCatalog()

	tests := []struct {
		name       string
		query      string
		expectedID string
		wantErr    bool
	}{
		{
			name:       "case-insensitive substring",
			query:      "loop",
			expectedID: "loops",
		},
		{
			name:       "full title uppercased",
			query:      "FUNCTIONS",
			expectedID: "functions",
		},
		{
			name:       "first match wins in catalog order",
			query:      "s",
			expectedID: "variables",
		},
		{
			name:       "fuzzy fallback catches typos",
			query:      "varibles",
			expectedID: "variables",
		},
		{
			name:    "no match at all",
			query:   "zzzz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			concept, err := service.FindByTitle(tt.query)
			if tt.wantErr {
				if !errors.Is(err, models.ErrNotFound) {
					t.Errorf("expected ErrNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindByTitle(%q) returned error: %v", tt.query, err)
			}
			if concept.ID != tt.expectedID {
				t.Errorf("FindByTitle(%q) = %q, expected %q", tt.query, concept.ID, tt.expectedID)
			}
		})
	}
}

func TestContentServiceLookupPrefersID(t *testing.T) {
	service := testCatalog()

	concept, err := service.Lookup("variables")
	if err != nil {
		t.Fatalf("Lookup() returned error: %v", err)
	}
	if concept.ID != "variables" {
		t.Errorf("got %q, expected variables", concept.ID)
	}

	// Falls back to title matching when the identifier is not an ID.
	concept, err = service.Lookup("Loo")
	if err != nil {
		t.Fatalf("Lookup() returned error: %v", err)
	}
	if concept.ID != "loops" {
		t.Errorf("got %q, expected loops", concept.ID)
	}
}
