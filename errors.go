/*
Copyright © 2018 the Carbonate authors.
This file is part of Carbonate.

Carbonate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Carbonate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Carbonate.  If not, see <http://www.gnu.org/licenses/>.
*/

package carbonate

import "errors"

// The error kinds returned by this package. Errors are returned
// wrapped with additional context, so callers should test for them
// with errors.Is rather than by equality.
var (
	// ErrInvalidValue indicates a concentration or partial pressure
	// that is not physically meaningful, such as a negative amount.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidRange indicates a pH outside of the 0 to 14 scale.
	ErrInvalidRange = errors.New("value out of range")

	// ErrMissingInput indicates a required input that was not provided.
	ErrMissingInput = errors.New("missing input")

	// ErrConvergenceFailure indicates that the iterative equilibrium
	// solver could not reduce its error below the convergence
	// tolerance, either because the iteration limit was reached or
	// because the inputs do not admit a physical solution.
	ErrConvergenceFailure = errors.New("convergence failure")
)
