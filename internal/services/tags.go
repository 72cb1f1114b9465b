package services

import (
	"strings"

	"inkwell/internal/models"
)

// TagStore is the slice of the tag repository the transformer needs.
type TagStore interface {
	FindOneByName(name string) (*models.Tag, error)
	Save(tag *models.Tag) error
}

// TagTransformer converts between the comma-separated tag string a
// form submits and the set of tag entities, creating missing tags on
// the fly.
type TagTransformer struct {
	store TagStore
}

func NewTagTransformer(store TagStore) *TagTransformer {
	return &TagTransformer{store: store}
}

// ToDisplayString joins tag names with commas in collection order.
func (t *TagTransformer) ToDisplayString(tags []*models.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ",")
}

// FromDisplayString splits the value on commas, trims each token and
// resolves it to a tag: an existing tag matched case-insensitively is
// reused, anything else becomes a new tag saved immediately. Empty
// tokens are dropped and duplicate tokens collapse to one tag.
func (t *TagTransformer) FromDisplayString(value string) ([]*models.Tag, error) {
	tokens := strings.Split(value, ",")

	tags := make([]*models.Tag, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))

	for _, token := range tokens {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		tag, err := t.store.FindOneByName(name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &models.Tag{Name: name}
			if err := t.store.Save(tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
