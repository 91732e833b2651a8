// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestStack(t *testing.T) {
	const n = 100

	s := newStack()
	ensure.True(t, s.empty())
	ensure.True(t, IsErrorCode(s.validateTop(), ErrEvalFalse))

	for i := 0; i < n; i++ {
		s.push(Operand{(byte)(i)})
	}
	ensure.DeepEqual(t, s.size(), n)

	_, err := s.topN(0)
	ensure.True(t, IsErrorCode(err, ErrStackUnderrun))
	for i := 0; i < n; i++ {
		o, err := s.topN(i + 1)
		ensure.Nil(t, err)
		ensure.DeepEqual(t, o, Operand{(byte)(n - i - 1)})
	}
	_, err = s.topN(n + 1)
	ensure.True(t, IsErrorCode(err, ErrStackUnderrun))

	for i := 0; i < n; i++ {
		if i < n-1 {
			ensure.Nil(t, s.validateTop())
		} else {
			ensure.NotNil(t, s.validateTop())
		}
		o, err := s.pop()
		ensure.Nil(t, err)
		ensure.DeepEqual(t, o, Operand{(byte)(n - i - 1)})
	}
	_, err = s.pop()
	ensure.True(t, IsErrorCode(err, ErrStackUnderrun))
}

func TestStackReorder(t *testing.T) {
	s := newStack()
	for i := 1; i <= 4; i++ {
		s.push(Operand{byte(i)})
	}

	// 1 2 3 4 -> 1 3 4 2
	o, err := s.removeN(3)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, o, Operand{2})
	s.push(o)
	ensure.DeepEqual(t, s.stk, []Operand{{1}, {3}, {4}, {2}})

	// 1 3 4 2 -> 1 3 2 4 2
	ensure.Nil(t, s.insertN(2, Operand{2}))
	ensure.DeepEqual(t, s.stk, []Operand{{1}, {3}, {2}, {4}, {2}})

	ensure.Nil(t, s.swap(1, 5))
	ensure.DeepEqual(t, s.stk, []Operand{{2}, {3}, {2}, {4}, {1}})
	ensure.True(t, IsErrorCode(s.swap(1, 6), ErrStackUnderrun))
	ensure.True(t, IsErrorCode(s.insertN(6, nil), ErrStackUnderrun))
	ensure.True(t, IsErrorCode(s.require(6), ErrStackUnderrun))
	ensure.Nil(t, s.require(5))

	c := s.copy()
	c.stk[0][0] = 9
	ensure.DeepEqual(t, s.stk[0], Operand{2})
}

func TestCastToBool(t *testing.T) {
	tests := []struct {
		v    []byte
		want bool
	}{
		{[]byte{}, false},
		{[]byte{0x00}, false},
		{[]byte{0x00, 0x00}, false},
		{[]byte{0x80}, false},
		{[]byte{0x00, 0x80}, false},
		{[]byte{0x80, 0x00}, true},
		{[]byte{0x01}, true},
		{[]byte{0x00, 0x01}, true},
		{[]byte{0x81}, true},
	}
	for _, tt := range tests {
		ensure.DeepEqual(t, castToBool(tt.v), tt.want)
	}
}
