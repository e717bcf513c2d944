package domain

import (
	"context"

	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/google/uuid"
)

type Article struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Price   int64     `json:"price"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type ArticleWithOwner struct {
	Article Article `json:"article"`
	Owner   Account `json:"owner"`
}

// IsAvailable reports whether an article held by owner can still be sold.
// An article stays on sale while a seller holds it; once a buyer owns it the
// article counts as sold.
func IsAvailable(owner Account) bool {
	return owner.Role == RoleSeller
}

type ArticleLookup interface {
	GetArticleWithOwner(ctx context.Context, articleID uuid.UUID) (Article, Account, error)
}

type ArticleRepository interface {
	CreateArticle(ctx context.Context, article Article) (Article, error)
	DeleteAvailableArticle(ctx context.Context, executor database.QueryExecuter, articleID, ownerID uuid.UUID) error
}

type Registry interface {
	Reassign(ctx context.Context, executor database.QueryExecuter, articleID, expectedOwnerID, newOwnerID uuid.UUID) (Article, error)
}
