package ir

import "errors"

var (
	ErrParse   = errors.New("parse error")
	ErrBadPath = errors.New("bad fragment path")
)
