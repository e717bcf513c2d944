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

// Registry reassigns article ownership with a compare-and-swap on the owner.
type Registry struct{}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Reassign(ctx context.Context, executor database.QueryExecuter, articleID, expectedOwnerID, newOwnerID uuid.UUID) (domain.Article, error) {
	reassignSQL := `UPDATE articles a
SET owner_id = $3
FROM accounts o
WHERE a.id = $1 AND a.owner_id = $2 AND o.id = a.owner_id AND o.role = 'seller'
RETURNING a.id, a.name, a.price, a.owner_id`

	var article domain.Article
	err := executor.QueryRow(ctx, reassignSQL, articleID, expectedOwnerID, newOwnerID).
		Scan(&article.ID, &article.Name, &article.Price, &article.OwnerID)
	if err == nil {
		return article, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		if hasPgCode(err, foreignKeyViolationCode) {
			return domain.Article{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", newOwnerID)}
		}

		return domain.Article{}, storeUnavailable("failed to reassign article", err)
	}

	existsSQL := `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`

	var exists bool
	err = executor.QueryRow(ctx, existsSQL, articleID).Scan(&exists)
	if err != nil {
		return domain.Article{}, storeUnavailable("failed to check article", err)
	}

	if !exists {
		return domain.Article{}, &domain.ArticleNotFoundError{Msg: fmt.Sprintf("article %s not found", articleID)}
	}

	return domain.Article{}, &domain.ArticleAlreadySoldError{Msg: fmt.Sprintf("article %s already sold", articleID)}
}
