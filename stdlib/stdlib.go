package stdlib

import _ "embed"

// Source is the Simplex source of the bundled standard library, evaluated
// once by eval.New after the native built-ins are installed.
//
//go:embed lib.smplx
var Source []byte
