package service

import "errors"

var errEmptyID = errors.New("document id must not be empty")
