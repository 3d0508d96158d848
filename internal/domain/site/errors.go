package site

import "errors"

var (
	ErrSiteNotFound   = errors.New("site not found")
	ErrSiteCodeExists = errors.New("site code already exists")
	ErrSiteNotActive  = errors.New("site is not active")
)
