package models

// Title is the reviewable content item
type Title struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:256;not null;index"`
	Year        int    `gorm:"not null;index"`
	Description string `gorm:"type:text"`
	CategoryID  *uint  `gorm:"index"`

	// Rating is the mean review score, filled only by queries that select it
	Rating *float64 `gorm:"->;-:migration"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Genres   []Genre   `gorm:"many2many:title_genres;constraint:OnDelete:CASCADE"`
	Reviews  []Review  `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
}
