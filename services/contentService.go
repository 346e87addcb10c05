package services

import (
	"fmt"
	"log"
	"strings"

	"voicecoach/db"
	"voicecoach/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type ContentService struct {
	repo db.ContentRepository
}

func NewContentService(repo db.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) List() ([]models.Concept, error) {
	concepts, err := s.repo.All()
	if err != nil {
		log.Printf("[ERROR] Failed to load concept catalog: %v", err)
		return nil, fmt.Errorf("failed to load concept catalog: %w", err)
	}
	return concepts, nil
}

func (s *ContentService) FindByID(id string) (*models.Concept, error) {
	concepts, err := s.List()
	if err != nil {
		return nil, err
	}

	for _, concept := range concepts {
		if concept.ID == id {
			return &concept, nil
		}
	}

	return nil, fmt.Errorf("concept %q: %w", id, models.ErrNotFound)
}

// FindByTitle returns the first concept whose title contains the query,
// case-insensitive, in catalog order. When no title contains the query, a
// fuzzy pass picks the closest title, so "varibles" still finds Variables.
func (s *ContentService) FindByTitle(query string) (*models.Concept, error) {
	concepts, err := s.List()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	for _, concept := range concepts {
		if strings.Contains(strings.ToLower(concept.Title), q) {
			return &concept, nil
		}
	}

	best := -1
	bestDistance := 0
	for i, concept := range concepts {
		rank := fuzzy.RankMatchFold(query, concept.Title)
		if rank < 0 {
			continue
		}
		if best == -1 || rank < bestDistance {
			best = i
			bestDistance = rank
		}
	}
	if best >= 0 {
		return &concepts[best], nil
	}

	return nil, fmt.Errorf("concept titled %q: %w", query, models.ErrNotFound)
}

// Lookup resolves a concept identifier the way users say it: exact ID
// first, then title match.
func (s *ContentService) Lookup(identifier string) (*models.Concept, error) {
	if concept, err := s.FindByID(identifier); err == nil {
		return concept, nil
	}
	return s.FindByTitle(identifier)
}
