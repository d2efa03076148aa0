package changelog

import (
	"errors"
	"fmt"
)

var ErrTableNameTooLong = errors.New("table name too long for change-log table")

type InvalidError struct {
	ViewName string
	Err      error
}

func (err InvalidError) Error() string {
	return fmt.Sprintf("invalid subscription %q: %s", err.ViewName, err.Err)
}

func (err InvalidError) Unwrap() error {
	return err.Err
}

type NotFoundError struct {
	ViewName string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("no subscription found for view %q", err.ViewName)
}
