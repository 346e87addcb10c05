package db

import "voicecoach/models"

type ContentRepository interface {
	All() ([]models.Concept, error)
}

// FileContentRepository reads the externally curated concept catalog. The
// file is reread on every call rather than cached, so edits to the catalog
// show up mid-session. Missing or malformed files read as an empty catalog.
type FileContentRepository struct {
	path string
}

func NewFileContentRepository(path string) *FileContentRepository {
	return &FileContentRepository{path: path}
}

func (r *FileContentRepository) All() ([]models.Concept, error) {
	return readArray[models.Concept](r.path), nil
}
