package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("invalid parameters")
	ErrCategoryInvalid = errors.New("unknown category")
	ErrPostNotFound    = errors.New("post not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrGenerateLocked  = errors.New("a generation run is already in progress")
	ErrGenerateFailed  = errors.New("content generation failed")
	UnauthorizedError  = errors.New("permission denied")
	UnExpectedError    = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrCategoryInvalid: BadRequest,
	ErrPostNotFound:    NotFound,
	ErrTagNotFound:     NotFound,
	ErrGenerateLocked:  Conflict,
	ErrGenerateFailed:  InternalServerError,
	UnauthorizedError:  Unauthorized,
	UnExpectedError:    InternalServerError,
}
