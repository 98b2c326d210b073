// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

// Errs keeps the first non-nil error it is given so that a sequence of
// fallible calls can be checked once at the end.
type Errs struct{ Err error }

// Errored reports whether any error has been recorded.
func (errs *Errs) Errored() bool { return errs.Err != nil }

// Add records the first non-nil error in [errors], unless an error was
// already recorded by a previous call.
func (errs *Errs) Add(errors ...error) {
	if errs.Err != nil {
		return
	}
	for _, err := range errors {
		if err != nil {
			errs.Err = err
			return
		}
	}
}
