// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package filmsuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the films use case.
type Option func(uc *UseCase) error

// WithSearchLimit option bounds the number of rows returned by the
// director and actor search operations. This option may be passed to
// the New() function.
func WithSearchLimit(limit int) Option {
	return func(uc *UseCase) error {
		if limit <= 0 {
			return fmt.Errorf("limit (%d) is not positive", limit)
		}
		if uc.searchLimit != 0 {
			return errors.New("limit is already configured")
		}
		uc.searchLimit = limit
		return nil
	}
}
