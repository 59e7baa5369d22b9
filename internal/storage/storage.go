package storage

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectTypeNotFound = errors.New("project type not found")
	ErrProjectTypeExists   = errors.New("project type already exists")
	ErrUnknownService      = errors.New("unknown service line")
	ErrNotFound            = errors.New("not found")
)
