package http

import (
	"context"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/google/uuid"
)

type AccountService interface {
	CreateAccount(ctx context.Context, name string, role domain.Role) (domain.Account, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (domain.Account, error)
	Recharge(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error)
}

type ArticleService interface {
	CreateArticle(ctx context.Context, ownerID uuid.UUID, name string, price int64) (domain.ArticleWithOwner, error)
	GetArticle(ctx context.Context, articleID uuid.UUID) (domain.ArticleWithOwner, error)
	DeleteArticle(ctx context.Context, actorID, articleID uuid.UUID) error
}

type Purchaser interface {
	Purchase(ctx context.Context, articleID, buyerID uuid.UUID) (domain.PurchaseOutcome, error)
}
