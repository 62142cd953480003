package service

import "context"

// IAlerterService отправка операционных алертов (исчерпанные ретраи джоб)
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
