// Package article 文章相关模型
package article

import (
	"time"

	"github.com/n1energy/wb-tech-blog/internal/model/user"
)

// Article 文章表
type Article struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 作者ID。可空：作者被删除时文章一并级联删除，但数据模型允许无主文章
	UserID *uint      `gorm:"index" json:"user"`
	Owner  *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title  string     `gorm:"type:varchar(100);not null" json:"title"`
	Body   string     `gorm:"type:text" json:"body"`
	// created 仅在创建时写入；updated 每次变更都会刷新，恒有 updated >= created
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// ReadArticle 用户-文章阅读状态关系表
// (user_id, article_id) 全局唯一；行在首次更新阅读状态时隐式创建（fetch-or-create），
// 用户或文章删除时级联删除
type ReadArticle struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_read_user_article" json:"user"`
	ArticleID uint       `gorm:"not null;uniqueIndex:idx_read_user_article" json:"article"`
	IsRead    bool       `gorm:"default:false" json:"is_read"`
	Reader    *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Article   *Article   `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}
