package visitor

import "errors"

var ErrVisitorNotFound = errors.New("visitor not found")
