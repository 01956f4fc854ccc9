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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/spc700/statsview"
	"github.com/jetsetilly/spc700/test"
)

func TestURL(t *testing.T) {
	test.ExpectEquality(t, statsview.URL(""), "http://localhost:12600/debug/statsview")
	test.ExpectEquality(t, statsview.URL("localhost:8080"), "http://localhost:8080/debug/statsview")
}
