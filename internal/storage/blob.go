package storage

import (
	"errors"
	"io"
)

var ErrNotExist = errors.New("blob does not exist")

type BlobStore interface {
	Get(key string) (io.ReadCloser, error)
}
