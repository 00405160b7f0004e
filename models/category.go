package models

import "regexp"

// SlugPattern is the allowed shape of category and genre slugs
var SlugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

const (
	ClassifierNameMaxLength = 256
	SlugMaxLength           = 50
)

// Category groups titles by kind (film, book, music...)
type Category struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:256;not null"`
	Slug string `json:"slug" gorm:"size:50;uniqueIndex;not null"`
}

// Genre is a many-to-many classifier of titles
type Genre struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:256;not null"`
	Slug string `json:"slug" gorm:"size:50;uniqueIndex;not null"`
}
