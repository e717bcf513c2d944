package postgres

import (
	"errors"
	"fmt"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolationCode = "23503"
	numericOutOfRangeCode   = "22003"
	checkViolationCode      = "23514"
)

func storeUnavailable(msg string, err error) error {
	return &domain.StoreUnavailableError{Err: fmt.Errorf("%s: %w", msg, err)}
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
