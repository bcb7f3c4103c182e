// Package search maintains the full-text meal index behind the browse
// feature. The index is derived data: it is rebuilt from the meal store
// on startup and never consulted by the negotiation engine itself.
package search

import (
	"context"
	"fmt"

	"github.com/blugelabs/bluge"

	"mealmatch/domain"
)

type MealIndex struct {
	writer *bluge.Writer
}

// OpenMealIndex opens (or creates) the on-disk bluge index. An empty
// path gives an in-memory index, which the tests use.
func OpenMealIndex(path string) (*MealIndex, error) {
	var cfg bluge.Config
	if path == "" {
		cfg = bluge.InMemoryOnlyConfig()
	} else {
		cfg = bluge.DefaultConfig(path)
	}
	writer, err := bluge.OpenWriter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &MealIndex{writer: writer}, nil
}

func (i *MealIndex) Close() error {
	return i.writer.Close()
}

// Index upserts one meal document. Only searchable text goes in; the
// meal store remains the record of truth and search results are resolved
// back through it by id.
func (i *MealIndex) Index(meal domain.Meal) error {
	doc := bluge.NewDocument(meal.ID).
		AddField(bluge.NewTextField("name", meal.Name)).
		AddField(bluge.NewTextField("description", meal.Description)).
		AddField(bluge.NewTextField("category", meal.Category))
	for _, tag := range meal.Tags {
		doc.AddField(bluge.NewTextField("tags", tag))
	}
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of meals matching the query across name,
// description, category and tags, best match first.
func (i *MealIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("name")).
		AddShould(bluge.NewMatchQuery(query).SetField("description")).
		AddShould(bluge.NewMatchQuery(query).SetField("category")).
		AddShould(bluge.NewMatchQuery(query).SetField("tags"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var ids []string
	for match, err := iterator.Next(); match != nil; match, err = iterator.Next() {
		if err != nil {
			return nil, err
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
