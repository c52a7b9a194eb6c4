package schedule

import "errors"

var ErrInvalidInterval = errors.New("invalid interval")
