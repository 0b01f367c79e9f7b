package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Branch is a physical team location shown on the landing page. Branch rows
// are seeded once from embedded definitions and treated as static
// configuration afterwards; rendering never mutates them.
type Branch struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Position preserves the declaration order of the seed file. Listings
	// sort by it and never by name or recency.
	Position int `gorm:"default:0;index" json:"position"`
}

// Page is a public site page addressed by slug and composed of sections.
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string       `gorm:"not null" json:"title"`
	Slug        string       `gorm:"uniqueIndex;not null" json:"slug"`
	Path        string       `gorm:"uniqueIndex;not null" json:"path"`
	Description string       `json:"description"`
	Sections    PageSections `gorm:"type:jsonb" json:"sections"`
	Template    string       `gorm:"default:'page'" json:"template"`

	Order int `gorm:"default:0" json:"order"`
}

// PageSections stores the ordered section list as a jsonb column.
type PageSections []Section

type Section struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Title    string           `json:"title"`
	Order    int              `json:"order"`
	Settings JSONMap          `json:"settings,omitempty"`
	Elements []SectionElement `json:"elements,omitempty"`
}

type SectionElement struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Order   int         `json:"order"`
	Content interface{} `json:"content"`
}

type ParagraphContent struct {
	Text string `json:"text"`
}

// ImageContent describes a remote image with its locally provisioned
// fallback asset.
type ImageContent struct {
	URL         string `json:"url"`
	FallbackURL string `json:"fallback_url"`
	Alt         string `json:"alt"`
	Caption     string `json:"caption"`
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

func (ps *PageSections) Scan(value interface{}) error {
	if value == nil {
		*ps = PageSections{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PageSections")
	}

	return json.Unmarshal(bytes, ps)
}

func (ps PageSections) Value() (driver.Value, error) {
	if len(ps) == 0 {
		return nil, nil
	}
	return json.Marshal(ps)
}

// CreateBranchRequest is the shape of one embedded branch definition.
type CreateBranchRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Position    *int   `json:"position"`
}

// CreatePageRequest is the shape of one embedded page definition.
type CreatePageRequest struct {
	Title       string    `json:"title" validate:"required"`
	Slug        string    `json:"slug" validate:"omitempty,slug"`
	Path        string    `json:"path" validate:"required,abs_path"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	Template    string    `json:"template"`
	Order       int       `json:"order"`
}

// SiteSettings is the config-derived metadata injected into every page.
type SiteSettings struct {
	Name        string
	Description string
	URL         string
	Favicon     string
}
