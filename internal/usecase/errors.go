package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// エラー分類の共通コンストラクタ。
// 整合性エラー（外部キー切れなど）は詳細を隠して500を返し、
// 呼び出し側でログに残す
func newValidationError(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func newForbiddenError() error {
	return NewHTTPError(http.StatusForbidden, "Forbidden")
}

func newEmptyCartError() error {
	return NewHTTPError(http.StatusBadRequest, "Cart is empty")
}

func newIntegrityError() error {
	return NewHTTPError(http.StatusInternalServerError, "An error occurred")
}

func newInternalError() error {
	return NewHTTPError(http.StatusInternalServerError, "An error occurred")
}

func newOrderCreationFailedError() error {
	return NewHTTPError(http.StatusInternalServerError, "Order creation failed")
}
