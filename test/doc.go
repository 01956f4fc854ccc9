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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect* functions report a failure with t.Errorf() and return false,
// allowing the test to continue. The Demand* functions fail with t.Fatalf().
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. A nil value is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// The optional tags arguments are prefixed to any failure message. If the
// first tag is a string containing formatting verbs then the remaining tags
// are used as the arguments to that pattern.
//
// The RingWriter type implements io.Writer and should be used to capture the
// most recent output of a function under test.
package test
