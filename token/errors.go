/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for table construction and resolution.
var (
	// ErrDuplicateName indicates a token name was defined twice.
	ErrDuplicateName = errors.New("duplicate token name")

	// ErrUnknownReference indicates an alias references a name that has not
	// been defined yet. Tokens may only reference earlier declarations.
	ErrUnknownReference = errors.New("unknown token reference")

	// ErrUnknownToken indicates a resolution was attempted for an absent name.
	ErrUnknownToken = errors.New("unknown token")

	// ErrCycle indicates an alias chain revisits a name.
	ErrCycle = errors.New("circular token reference")
)
