package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type PurchaseCase struct {
	accountLookup domain.AccountLookup
	articleLookup domain.ArticleLookup
	ledger        domain.Ledger
	registry      domain.Registry
	locker        domain.Locker
	txManager     database.TxManager
	logger        logging.Logger
}

func NewPurchaseCase(
	accountLookup domain.AccountLookup,
	articleLookup domain.ArticleLookup,
	ledger domain.Ledger,
	registry domain.Registry,
	locker domain.Locker,
	txManager database.TxManager,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		accountLookup: accountLookup,
		articleLookup: articleLookup,
		ledger:        ledger,
		registry:      registry,
		locker:        locker,
		txManager:     txManager,
		logger:        logger,
	}
}

// Purchase moves the article price from the buyer to the current seller and
// hands the article over to the buyer. Either both changes are committed or
// none of them is.
func (pc *PurchaseCase) Purchase(ctx context.Context, articleID, buyerID uuid.UUID) (domain.PurchaseOutcome, error) {
	buyer, article, seller, err := pc.resolve(ctx, articleID, buyerID)
	if err != nil {
		pc.logFailure(err, articleID, buyerID)
		return domain.PurchaseOutcome{}, err
	}

	if err = checkEligibility(buyer, article, seller); err != nil {
		pc.logFailure(err, articleID, buyerID)
		return domain.PurchaseOutcome{}, err
	}

	keys := []string{
		domain.ArticleLockKey(article.ID),
		domain.AccountLockKey(buyer.ID),
		domain.AccountLockKey(seller.ID),
	}

	var outcome domain.PurchaseOutcome
	err = pc.locker.WithLock(ctx, keys, func(ctx context.Context) error {
		return pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
			var commitErr error
			outcome, commitErr = pc.commit(ctx, executor, buyer, seller, article)
			return commitErr
		})
	})
	if err != nil {
		err = domain.AsStoreFault(err)
		pc.logFailure(err, articleID, buyerID)
		return domain.PurchaseOutcome{}, err
	}

	pc.logger.Info("purchase committed",
		"article_id", article.ID.String(),
		"buyer_id", buyer.ID.String(),
		"seller_id", seller.ID.String(),
		"price", article.Price,
	)

	return outcome, nil
}

func (pc *PurchaseCase) resolve(ctx context.Context, articleID, buyerID uuid.UUID) (domain.Account, domain.Article, domain.Account, error) {
	var (
		buyer   domain.Account
		article domain.Article
		seller  domain.Account
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		buyer, err = pc.accountLookup.GetAccount(groupCtx, buyerID)
		return err
	})

	group.Go(func() error {
		var err error
		article, seller, err = pc.articleLookup.GetArticleWithOwner(groupCtx, articleID)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.Account{}, domain.Article{}, domain.Account{}, err
	}

	return buyer, article, seller, nil
}

// checkEligibility is an early rejection on snapshots. The conditional writes
// inside the transaction re-check everything it looks at.
func checkEligibility(buyer domain.Account, article domain.Article, seller domain.Account) error {
	if !domain.IsAvailable(seller) {
		return &domain.ArticleAlreadySoldError{Msg: fmt.Sprintf("article %s is already sold", article.ID)}
	}

	if buyer.ID == seller.ID {
		return &domain.InvalidArgumentsError{Msg: "seller cannot buy its own article"}
	}

	if buyer.Balance < article.Price {
		return &domain.InsufficientFundsError{
			Msg: fmt.Sprintf("balance %d is lower than price %d", buyer.Balance, article.Price),
		}
	}

	return nil
}

func (pc *PurchaseCase) commit(
	ctx context.Context,
	executor database.QueryExecuter,
	buyer, seller domain.Account,
	article domain.Article,
) (domain.PurchaseOutcome, error) {
	if article.Price > 0 {
		balances, err := pc.ledger.Transfer(ctx, executor, buyer.ID, seller.ID, article.Price)
		if err != nil {
			return domain.PurchaseOutcome{}, err
		}

		buyer.Balance = balances.FromBalance
		seller.Balance = balances.ToBalance
	}

	updated, err := pc.registry.Reassign(ctx, executor, article.ID, seller.ID, buyer.ID)
	if err != nil {
		return domain.PurchaseOutcome{}, err
	}

	return domain.PurchaseOutcome{
		Buyer:   buyer,
		Seller:  seller,
		Article: updated,
	}, nil
}

func (pc *PurchaseCase) logFailure(err error, articleID, buyerID uuid.UUID) {
	if reason, ok := domain.Reason(err); ok {
		pc.logger.Info("purchase rejected",
			"reason", string(reason),
			"article_id", articleID.String(),
			"buyer_id", buyerID.String(),
			"error", err.Error(),
		)
		return
	}

	pc.logger.Error("purchase failed",
		"article_id", articleID.String(),
		"buyer_id", buyerID.String(),
		"error", err.Error(),
	)
}
