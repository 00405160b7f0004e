package models

import "time"

const (
	MinScore = 1
	MaxScore = 10
)

// Review is a scored opinion of a user about a title, one per (title, author)
type Review struct {
	ID       uint      `gorm:"primaryKey"`
	TitleID  uint      `gorm:"not null;uniqueIndex:idx_review_title_author"`
	AuthorID uint      `gorm:"not null;uniqueIndex:idx_review_title_author;index"`
	Text     string    `gorm:"type:text;not null"`
	Score    int       `gorm:"not null"`
	PubDate  time.Time `gorm:"autoCreateTime;index"`

	// Relations
	Title    Title     `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// Comment is a reply to a review
type Comment struct {
	ID       uint      `gorm:"primaryKey"`
	ReviewID uint      `gorm:"not null;index"`
	AuthorID uint      `gorm:"not null;index"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"autoCreateTime;index"`

	// Relations
	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	Author User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
