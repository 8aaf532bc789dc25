package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"campus-assistant/internal/models"
)

// ElasticFAQStore serves the FAQ category from an Elasticsearch index.
// The fetch is unfiltered and sorted by doc order so ranking in the executor
// sees the same stored order a SQL backend would give.
type ElasticFAQStore struct {
	client  *elasticsearch.Client
	index   string
	maxSize int
}

func NewElasticFAQStore(client *elasticsearch.Client, index string) *ElasticFAQStore {
	return &ElasticFAQStore{
		client:  client,
		index:   index,
		maxSize: 1000,
	}
}

func (s *ElasticFAQStore) ListFAQs(ctx context.Context) ([]models.FAQRecord, error) {
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(strings.NewReader(`{"query":{"match_all":{}},"sort":["_doc"]}`)),
		s.client.Search.WithSize(s.maxSize),
	)
	if err != nil {
		return nil, fmt.Errorf("search faqs: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search faqs: %s", res.Status())
	}

	var body struct {
		Hits struct {
			Hits []struct {
				Source models.FAQRecord `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode faq search response: %w", err)
	}

	records := make([]models.FAQRecord, 0, len(body.Hits.Hits))
	for _, hit := range body.Hits.Hits {
		records = append(records, hit.Source)
	}
	return records, nil
}
