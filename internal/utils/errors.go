package utils

import "errors"

var ErrNoRowsInserted = errors.New("no rows were inserted")
