package services

import "errors"

var ErrMissingCredentials = errors.New("missing credentials")
