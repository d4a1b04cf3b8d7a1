package article

import (
	"fmt"
	"time"

	"inkpress/internal/shared/utils"
)

// Tag is a label attached to articles. Tags and articles have independent
// lifecycles: deleting either side never cascades to the other.
type Tag struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
	updatedAt time.Time
}

// NewTag creates a tag. When slug is empty it is derived from the name.
func NewTag(name, slug string) (*Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive slug from tag name %q", name)
	}

	now := time.Now().UTC()
	return &Tag{
		name:      name,
		slug:      slug,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTag reconstructs a tag from persistence.
func ReconstructTag(id uint, name, slug string, createdAt, updatedAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}

	return &Tag{
		id:        id,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Tag) ID() uint {
	return t.id
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) Slug() string {
	return t.slug
}

func (t *Tag) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tag) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the tag ID (only for persistence layer use)
func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}
