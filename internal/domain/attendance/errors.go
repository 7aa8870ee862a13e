package attendance

import "errors"

var ErrInvalidPersonType = errors.New("person type must be member or visitor")
