package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update records")
	ErrFailedToCommit = errors.New("failed to commit records")
)
