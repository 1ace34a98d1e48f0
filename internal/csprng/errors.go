package csprng

import "errors"

// errNegativeCount is wrapped into the shared error taxonomy by NextBytes
// when asked for a negative number of bytes.
var errNegativeCount = errors.New("csprng: negative byte count requested")
