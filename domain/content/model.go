package content

import (
	"time"
)

// Sections a record can belong to. Each one maps to a region of the
// public site.
const (
	SectionHero       = "hero"
	SectionSlideshow  = "slideshow"
	SectionLessons    = "lessons"
	SectionProjects   = "projects"
	SectionActivities = "activities"
	SectionAbout      = "about"
)

// Supported languages
const (
	LanguageEN = "en"
	LanguageAR = "ar"
)

// ValidSections is the closed set of accepted section values
var ValidSections = map[string]bool{
	SectionHero:       true,
	SectionSlideshow:  true,
	SectionLessons:    true,
	SectionProjects:   true,
	SectionActivities: true,
	SectionAbout:      true,
}

// ValidLanguages is the closed set of accepted language values
var ValidLanguages = map[string]bool{
	LanguageEN: true,
	LanguageAR: true,
}

// Content is a single labeled, ordered, language-tagged unit of
// displayable content. ID is opaque to callers: the MongoDB store
// issues ObjectID hex strings, the in-memory store a decimal counter.
type Content struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	ImageURL  string                 `json:"imageUrl"`
	Section   string                 `json:"section"`
	Order     int                    `json:"order"`
	Language  string                 `json:"language"`
	IsActive  bool                   `json:"isActive"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// CreateRequest is the payload for creating a record. Title, Body and
// Section are required; the rest default at the service boundary.
type CreateRequest struct {
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	ImageURL string                 `json:"imageUrl"`
	Section  string                 `json:"section"`
	Order    int                    `json:"order"`
	Language string                 `json:"language"`
	IsActive *bool                  `json:"isActive"`
	Metadata map[string]interface{} `json:"metadata"`
}

// UpdateRequest carries partial-update semantics: nil fields keep
// their stored values.
type UpdateRequest struct {
	Title    *string                `json:"title"`
	Body     *string                `json:"body"`
	ImageURL *string                `json:"imageUrl"`
	Section  *string                `json:"section"`
	Order    *int                   `json:"order"`
	Language *string                `json:"language"`
	IsActive *bool                  `json:"isActive"`
	Metadata map[string]interface{} `json:"metadata"`
}

// Filter narrows a listing. Empty string / nil fields are
// unconstrained; present fields must match exactly.
type Filter struct {
	Section  string
	Language string
	IsActive *bool
}
