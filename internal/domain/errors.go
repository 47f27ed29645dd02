package domain

import "errors"

var (
	ErrInvalidFilterSpec  = errors.New("invalid filter spec")
	ErrAdvertiserNotFound = errors.New("advertiser not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrSinkNotConfigured  = errors.New("sink URL not configured")
)
