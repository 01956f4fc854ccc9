// This file is part of spc700.
//
// spc700 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spc700 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spc700.  If not, see <https://www.gnu.org/licenses/>.

// Package thomharte contains SPC700 single-step tests as created/maintained
// by Thom Harte.
//
// https://github.com/SingleStepTests/spc700
//
// The tests are large and are not included in the repository.
//
// Add the instructions you want to test from the spc700/v1 directory on
// Github to the spc700/v1 directory in this package. The test is skipped if
// there are no test files.
package thomharte
