package tokens

import "errors"

var ErrTokenExpired = errors.New("token is expired")
