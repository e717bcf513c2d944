package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ArticlesRepository struct {
	queryExecuter database.QueryExecuter
}

func NewArticlesRepository(queryExecuter database.QueryExecuter) *ArticlesRepository {
	return &ArticlesRepository{
		queryExecuter: queryExecuter,
	}
}

func (ar *ArticlesRepository) GetArticleWithOwner(ctx context.Context, articleID uuid.UUID) (domain.Article, domain.Account, error) {
	sql := `SELECT a.id, a.name, a.price, a.owner_id, o.id, o.name, o.role, o.balance
FROM articles a
JOIN accounts o ON o.id = a.owner_id
WHERE a.id = $1`

	var article domain.Article
	var owner domain.Account
	var role string
	err := ar.queryExecuter.QueryRow(ctx, sql, articleID).Scan(
		&article.ID, &article.Name, &article.Price, &article.OwnerID,
		&owner.ID, &owner.Name, &role, &owner.Balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, domain.Account{}, &domain.ArticleNotFoundError{Msg: fmt.Sprintf("article %s not found", articleID)}
		}

		return domain.Article{}, domain.Account{}, storeUnavailable("failed to fetch article", err)
	}
	owner.Role = domain.Role(role)

	return article, owner, nil
}

func (ar *ArticlesRepository) CreateArticle(ctx context.Context, article domain.Article) (domain.Article, error) {
	sql := `INSERT INTO articles (id, name, price, owner_id) VALUES ($1, $2, $3, $4)`

	_, err := ar.queryExecuter.Exec(ctx, sql, article.ID, article.Name, article.Price, article.OwnerID)
	if err != nil {
		if hasPgCode(err, foreignKeyViolationCode) {
			return domain.Article{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", article.OwnerID)}
		}
		if hasPgCode(err, checkViolationCode) {
			return domain.Article{}, &domain.InvalidAmountError{Msg: "article price must not be negative"}
		}

		return domain.Article{}, storeUnavailable("failed to insert article", err)
	}

	return article, nil
}

// DeleteAvailableArticle removes the article only while ownerID still holds it
// and the owner is a seller.
func (ar *ArticlesRepository) DeleteAvailableArticle(ctx context.Context, executor database.QueryExecuter, articleID, ownerID uuid.UUID) error {
	sql := `DELETE FROM articles a
USING accounts o
WHERE a.id = $1 AND a.owner_id = $2 AND o.id = a.owner_id AND o.role = 'seller'`

	tag, err := executor.Exec(ctx, sql, articleID, ownerID)
	if err != nil {
		return storeUnavailable("failed to delete article", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.ArticleAlreadySoldError{Msg: fmt.Sprintf("article %s is no longer available", articleID)}
	}

	return nil
}
