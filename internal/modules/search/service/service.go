package search

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/pkg/logger"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const facultyIndex = "faculties"

// FacultyIndex keeps a full-text copy of faculties.
type FacultyIndex interface {
	IndexFaculty(faculty *entity.Faculty) error
	DeleteFaculty(id uint) error
	SearchFaculties(query string, limit int64) ([]uint, error)
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) FacultyIndex {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *meiliSearchService) initIndexes() {
	filterable := []any{"color"}
	if _, err := s.client.Index(facultyIndex).UpdateFilterableAttributes(&filterable); err != nil {
		logger.Warn().Err(err).Msg("failed to update faculties filterable attributes")
	}

	searchable := []string{"name", "color"}
	if _, err := s.client.Index(facultyIndex).UpdateSearchableAttributes(&searchable); err != nil {
		logger.Warn().Err(err).Msg("failed to update faculties searchable attributes")
	}

	logger.Info().Msg("meilisearch indexes initialized")
}

type meiliFacultyDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *meiliSearchService) cleanText(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	return strings.Join(strings.Fields(html.UnescapeString(sanitized)), " ")
}

func (s *meiliSearchService) IndexFaculty(faculty *entity.Faculty) error {
	doc := meiliFacultyDoc{
		ID:    strconv.FormatUint(uint64(faculty.ID), 10),
		Name:  s.cleanText(faculty.Name),
		Color: s.cleanText(faculty.Color),
	}

	task, err := s.client.Index(facultyIndex).AddDocuments([]meiliFacultyDoc{doc}, strPtr("id"))
	if err != nil {
		return fmt.Errorf("failed to index faculty %d: %w", faculty.ID, err)
	}
	logger.Debug().Uint("faculty_id", faculty.ID).Int64("task_uid", task.TaskUID).Msg("faculty indexed")
	return nil
}

func (s *meiliSearchService) DeleteFaculty(id uint) error {
	if _, err := s.client.Index(facultyIndex).DeleteDocument(strconv.FormatUint(uint64(id), 10)); err != nil {
		return fmt.Errorf("failed to remove faculty %d from index: %w", id, err)
	}
	return nil
}

func (s *meiliSearchService) SearchFaculties(query string, limit int64) ([]uint, error) {
	raw, err := s.client.Index(facultyIndex).SearchRaw(query, &meilisearch.SearchRequest{
		Limit:                limit,
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		return nil, fmt.Errorf("faculty search failed: %w", err)
	}

	return decodeHitIDs(*raw)
}

func decodeHitIDs(raw []byte) ([]uint, error) {
	var resp struct {
		Hits []struct {
			ID string `json:"id"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	ids := make([]uint, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		id, err := strconv.ParseUint(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func strPtr(s string) *string {
	return &s
}
