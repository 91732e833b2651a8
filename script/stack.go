// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import "fmt"

// Operand represents stack operand when interpretting script
type Operand []byte

// Stack is used when interpretting script
type Stack struct {
	stk []Operand
}

// NewStack creates a clean stack
func newStack() *Stack {
	stk := make([]Operand, 0)
	return &Stack{stk}
}

func (s *Stack) size() int {
	return len(s.stk)
}

func (s *Stack) empty() bool {
	return len(s.stk) == 0
}

func (s *Stack) push(o Operand) {
	s.stk = append(s.stk, o)
}

func (s *Stack) pop() (Operand, error) {
	stackLen := len(s.stk)
	if stackLen == 0 {
		return nil, scriptError(ErrStackUnderrun, "attempt to pop an empty stack")
	}

	o := s.stk[stackLen-1]
	s.stk = s.stk[:stackLen-1]
	return o, nil
}

// topN returns the top n-th element, n starts from 1.
func (s *Stack) topN(n int) (Operand, error) {
	stackLen := len(s.stk)
	if n <= 0 || n > stackLen {
		return nil, scriptError(ErrStackUnderrun,
			fmt.Sprintf("index %d is invalid for stack size %d", n, stackLen))
	}
	return s.stk[stackLen-n], nil
}

// removeN removes and returns the top n-th element, n starts from 1.
func (s *Stack) removeN(n int) (Operand, error) {
	o, err := s.topN(n)
	if err != nil {
		return nil, err
	}
	idx := len(s.stk) - n
	s.stk = append(s.stk[:idx], s.stk[idx+1:]...)
	return o, nil
}

// insertN inserts o below the top n elements.
func (s *Stack) insertN(n int, o Operand) error {
	if n < 0 || n > len(s.stk) {
		return scriptError(ErrStackUnderrun,
			fmt.Sprintf("index %d is invalid for stack size %d", n, len(s.stk)))
	}
	idx := len(s.stk) - n
	s.stk = append(s.stk, nil)
	copy(s.stk[idx+1:], s.stk[idx:])
	s.stk[idx] = o
	return nil
}

// swap exchanges the top a-th and b-th elements, both counting from 1.
func (s *Stack) swap(a, b int) error {
	if a <= 0 || b <= 0 || a > len(s.stk) || b > len(s.stk) {
		return scriptError(ErrStackUnderrun,
			fmt.Sprintf("swap %d/%d is invalid for stack size %d", a, b, len(s.stk)))
	}
	l := len(s.stk)
	s.stk[l-a], s.stk[l-b] = s.stk[l-b], s.stk[l-a]
	return nil
}

// require fails unless the stack holds at least n elements.
func (s *Stack) require(n int) error {
	if len(s.stk) < n {
		return scriptError(ErrStackUnderrun,
			fmt.Sprintf("need %d stack elements, have %d", n, len(s.stk)))
	}
	return nil
}

// copy returns a deep copy of the stack.
func (s *Stack) copy() *Stack {
	c := &Stack{stk: make([]Operand, len(s.stk))}
	for i, o := range s.stk {
		c.stk[i] = append(Operand(nil), o...)
	}
	return c
}

// validateTop succeeds if top stack item is true
func (s *Stack) validateTop() error {
	if s.empty() {
		return scriptError(ErrEvalFalse, "stack empty at end of evaluation")
	}
	top, _ := s.topN(1)
	if !castToBool(top) {
		return scriptError(ErrEvalFalse, "false stack entry at end of evaluation")
	}
	return nil
}
