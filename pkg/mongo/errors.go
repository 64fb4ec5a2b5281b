package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrMissingConnectionURL   = errors.New("mongo connection URL is not set")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
)
