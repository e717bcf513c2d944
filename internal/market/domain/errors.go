package domain

import "errors"

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ArticleNotFoundError

type ArticleNotFoundError struct {
	Msg string
}

func (e *ArticleNotFoundError) Error() string {
	return e.Msg
}

func (e *ArticleNotFoundError) Is(target error) bool {
	_, ok := target.(*ArticleNotFoundError)
	return ok
}

//endregion

//region InvalidAmountError

type InvalidAmountError struct {
	Msg string
}

func (e *InvalidAmountError) Error() string {
	return e.Msg
}

func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region ArticleAlreadySoldError

type ArticleAlreadySoldError struct {
	Msg string
}

func (e *ArticleAlreadySoldError) Error() string {
	return e.Msg
}

func (e *ArticleAlreadySoldError) Is(target error) bool {
	_, ok := target.(*ArticleAlreadySoldError)
	return ok
}

//endregion

//region NotOwnerError

type NotOwnerError struct {
	Msg string
}

func (e *NotOwnerError) Error() string {
	return e.Msg
}

func (e *NotOwnerError) Is(target error) bool {
	_, ok := target.(*NotOwnerError)
	return ok
}

//endregion

//region StoreUnavailableError

// StoreUnavailableError marks an infrastructure failure of the record store.
// Unlike the rejections above the operation may succeed when retried.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	if e.Err == nil {
		return "store unavailable"
	}

	return "store unavailable: " + e.Err.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailableError) Is(target error) bool {
	_, ok := target.(*StoreUnavailableError)
	return ok
}

//endregion

type RejectionReason string

const (
	ReasonNotFound           RejectionReason = "not_found"
	ReasonInvalidAmount      RejectionReason = "invalid_amount"
	ReasonInvalidArguments   RejectionReason = "invalid_arguments"
	ReasonInsufficientFunds  RejectionReason = "insufficient_funds"
	ReasonArticleAlreadySold RejectionReason = "article_already_sold"
	ReasonNotOwner           RejectionReason = "not_owner"
)

// Reason classifies err as a business rejection. The second result is false
// for infrastructure failures and unknown errors.
func Reason(err error) (RejectionReason, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, &AccountNotFoundError{}), errors.Is(err, &ArticleNotFoundError{}):
		return ReasonNotFound, true
	case errors.Is(err, &InvalidAmountError{}):
		return ReasonInvalidAmount, true
	case errors.Is(err, &InvalidArgumentsError{}):
		return ReasonInvalidArguments, true
	case errors.Is(err, &InsufficientFundsError{}):
		return ReasonInsufficientFunds, true
	case errors.Is(err, &ArticleAlreadySoldError{}):
		return ReasonArticleAlreadySold, true
	case errors.Is(err, &NotOwnerError{}):
		return ReasonNotOwner, true
	default:
		return "", false
	}
}

func IsRejection(err error) bool {
	_, ok := Reason(err)
	return ok
}

// AsStoreFault returns err as a StoreUnavailableError unless it already is a
// rejection or a store fault. Transaction and lock failures come back untyped.
func AsStoreFault(err error) error {
	if err == nil || IsRejection(err) || errors.Is(err, &StoreUnavailableError{}) {
		return err
	}

	return &StoreUnavailableError{Err: err}
}
