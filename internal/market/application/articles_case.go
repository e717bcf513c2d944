package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/google/uuid"
)

type ArticlesCase struct {
	articleRepository domain.ArticleRepository
	articleLookup     domain.ArticleLookup
	accountLookup     domain.AccountLookup
	locker            domain.Locker
	txManager         database.TxManager
	logger            logging.Logger
}

func NewArticlesCase(
	articleRepository domain.ArticleRepository,
	articleLookup domain.ArticleLookup,
	accountLookup domain.AccountLookup,
	locker domain.Locker,
	txManager database.TxManager,
	logger logging.Logger,
) *ArticlesCase {
	return &ArticlesCase{
		articleRepository: articleRepository,
		articleLookup:     articleLookup,
		accountLookup:     accountLookup,
		locker:            locker,
		txManager:         txManager,
		logger:            logger,
	}
}

// CreateArticle lists a new article owned by ownerID. Only sellers can list,
// an article owned by a buyer would be born sold.
func (ac *ArticlesCase) CreateArticle(ctx context.Context, ownerID uuid.UUID, name string, price int64) (domain.ArticleWithOwner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ArticleWithOwner{}, &domain.InvalidArgumentsError{Msg: "article name is required"}
	}

	if price < 0 {
		return domain.ArticleWithOwner{}, &domain.InvalidAmountError{Msg: fmt.Sprintf("price %d is negative", price)}
	}

	owner, err := ac.accountLookup.GetAccount(ctx, ownerID)
	if err != nil {
		return domain.ArticleWithOwner{}, err
	}

	if !domain.IsAvailable(owner) {
		return domain.ArticleWithOwner{}, &domain.InvalidArgumentsError{Msg: "only sellers can list articles"}
	}

	article, err := ac.articleRepository.CreateArticle(ctx, domain.Article{
		ID:      uuid.New(),
		Name:    name,
		Price:   price,
		OwnerID: owner.ID,
	})
	if err != nil {
		ac.logger.Error("failed to create article", "owner_id", ownerID.String(), "error", err.Error())
		return domain.ArticleWithOwner{}, err
	}

	ac.logger.Info("article listed", "article_id", article.ID.String(), "owner_id", owner.ID.String())

	return domain.ArticleWithOwner{Article: article, Owner: owner}, nil
}

func (ac *ArticlesCase) GetArticle(ctx context.Context, articleID uuid.UUID) (domain.ArticleWithOwner, error) {
	article, owner, err := ac.articleLookup.GetArticleWithOwner(ctx, articleID)
	if err != nil {
		if !domain.IsRejection(err) {
			ac.logger.Error("failed to get article", "article_id", articleID.String(), "error", err.Error())
		}
		return domain.ArticleWithOwner{}, err
	}

	return domain.ArticleWithOwner{Article: article, Owner: owner}, nil
}

// DeleteArticle removes an article that actorID still holds for sale. The
// delete takes the article lock key so it cannot interleave with a purchase.
func (ac *ArticlesCase) DeleteArticle(ctx context.Context, actorID, articleID uuid.UUID) error {
	article, owner, err := ac.articleLookup.GetArticleWithOwner(ctx, articleID)
	if err != nil {
		return err
	}

	if article.OwnerID != actorID {
		return &domain.NotOwnerError{Msg: fmt.Sprintf("article %s belongs to another account", articleID)}
	}

	if !domain.IsAvailable(owner) {
		return &domain.ArticleAlreadySoldError{Msg: fmt.Sprintf("article %s is already sold", articleID)}
	}

	err = ac.locker.WithLock(ctx, []string{domain.ArticleLockKey(articleID)}, func(ctx context.Context) error {
		return ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
			return ac.articleRepository.DeleteAvailableArticle(ctx, executor, articleID, actorID)
		})
	})
	if err != nil {
		err = domain.AsStoreFault(err)
		if !domain.IsRejection(err) {
			ac.logger.Error("failed to delete article", "article_id", articleID.String(), "error", err.Error())
		}
		return err
	}

	ac.logger.Info("article deleted", "article_id", articleID.String())

	return nil
}
