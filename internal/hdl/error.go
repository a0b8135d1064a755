package hdl

import "errors"

var ErrDecodeRequest = errors.New("decode request")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
