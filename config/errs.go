package config

import "errors"

var ErrConfig = errors.New("invalid config")
