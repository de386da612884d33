package client

import "errors"

var ErrIncompleteApp = errors.New("client app needs a host and a ui")
