package quadboard

import "github.com/zeebo/errs"

var (
	// IndexError is the class of errors for indexes outside of [0, 64).
	IndexError = errs.Class("invalid index")

	// NibbleError is the class of errors for values outside of [0, 16).
	NibbleError = errs.Class("invalid nibble")
)
