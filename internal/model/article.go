package model

import "time"

// Article 对应于数据库中的 'articles' 表。
type Article struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(100);not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	AuthorID      uint      `gorm:"not null" json:"author_id"`
	PublishedDate time.Time `gorm:"autoCreateTime" json:"published_date"`
	Category      string    `gorm:"type:varchar(50)" json:"category"`
	ImageURL      string    `gorm:"type:varchar(255)" json:"image_url"`
}

// ArticleWithAuthor 是文章与作者用户名联查后的返回结构。
type ArticleWithAuthor struct {
	Article
	AuthorName string `json:"author_name"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Article) TableName() string {
	return "articles"
}
