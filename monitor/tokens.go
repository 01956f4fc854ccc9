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

package monitor

import (
	"fmt"
	"strconv"
	"strings"
)

// tokens is the result of dividing a line of input into its parts.
type tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *tokens) String() string {
	return tk.input
}

// isEnd returns true if we're at the end of the token list.
func (tk tokens) isEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// remaining returns the count of remaining tokens in the token list.
func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

// get returns the next token in the list, and a success boolean. if the end
// of the token list has been reached, the function returns false.
func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// number returns the next token as a number no larger than limit. if there are
// no more tokens the default value is returned.
func (tk *tokens) number(def uint64, limit uint64) (uint64, error) {
	s, ok := tk.get()
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	if n > limit {
		return 0, fmt.Errorf("value too large: %s", s)
	}
	return n, nil
}

// address returns the next token as a 16bit value.
func (tk *tokens) address(def uint16) (uint16, error) {
	n, err := tk.number(uint64(def), 0xffff)
	return uint16(n), err
}

// tokenise divides the input into tokens. excess white space is removed and
// $ hex notation is normalised to 0x notation.
func tokenise(input string) *tokens {
	input = strings.TrimSpace(input)

	tk := &tokens{
		input:  input,
		tokens: strings.Fields(input),
	}

	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}
