package browse

import (
	"errors"

	"github.com/nomad-lab/go-archive/archive"
)

var (
	ErrUnknownDefinitionKind = errors.New("unknown definition kind")
	ErrUnknownChildKey       = errors.New("unknown child key")
	ErrIndexOutOfRange       = errors.New("index out of range")

	ErrUnresolvedReference = archive.ErrUnresolvedReference
)
