// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Chunk is a single element of a parsed script: either a bare op code or a
// data push. A push keeps the op code it was encoded with so that serializing
// parsed chunks reproduces the original bytes.
type Chunk struct {
	Op   OpCode
	Data []byte
}

// OpChunk returns a chunk for a bare op code.
func OpChunk(op OpCode) Chunk {
	return Chunk{Op: op}
}

// DataChunk returns a chunk pushing data with the smallest encoding. Empty
// data is pushed with OP_0.
func DataChunk(data []byte) Chunk {
	dataLen := len(data)
	switch {
	case dataLen == 0:
		return Chunk{Op: OP0}
	case dataLen < int(OPPUSHDATA1):
		return Chunk{Op: OpCode(dataLen), Data: data}
	case dataLen <= 0xff:
		return Chunk{Op: OPPUSHDATA1, Data: data}
	case dataLen <= 0xffff:
		return Chunk{Op: OPPUSHDATA2, Data: data}
	default:
		return Chunk{Op: OPPUSHDATA4, Data: data}
	}
}

// IsData reports whether the chunk pushes data.
func (c Chunk) IsData() bool {
	return c.Op > OP0 && c.Op <= OPPUSHDATA4
}

// equal compares by data for pushes and by op code otherwise.
func (c Chunk) equal(o Chunk) bool {
	if c.IsData() != o.IsData() {
		return false
	}
	if c.IsData() {
		return bytes.Equal(c.Data, o.Data)
	}
	return c.Op == o.Op
}

func (c Chunk) serializeSize() int {
	switch {
	case !c.IsData():
		return 1
	case c.Op < OPPUSHDATA1:
		return 1 + len(c.Data)
	case c.Op == OPPUSHDATA1:
		return 2 + len(c.Data)
	case c.Op == OPPUSHDATA2:
		return 3 + len(c.Data)
	default:
		return 5 + len(c.Data)
	}
}

func (c Chunk) appendTo(b []byte) []byte {
	b = append(b, byte(c.Op))
	switch {
	case !c.IsData():
		return b
	case c.Op == OPPUSHDATA1:
		b = append(b, byte(len(c.Data)))
	case c.Op == OPPUSHDATA2:
		var l [2]byte
		binary.LittleEndian.PutUint16(l[:], uint16(len(c.Data)))
		b = append(b, l[:]...)
	case c.Op == OPPUSHDATA4:
		var l [4]byte
		binary.LittleEndian.PutUint32(l[:], uint32(len(c.Data)))
		b = append(b, l[:]...)
	}
	return append(b, c.Data...)
}

// parseNextChunk reads the chunk starting at pc. It returns the chunk and the
// position right after it.
func parseNextChunk(script []byte, pc int) (Chunk, int, error) {
	scriptLen := len(script)
	if pc >= scriptLen {
		return Chunk{}, pc, scriptError(ErrMalformedPush, "program counter out of script bound")
	}

	opCode := OpCode(script[pc])
	pc++

	if opCode == OP0 || opCode > OPPUSHDATA4 {
		return Chunk{Op: opCode}, pc, nil
	}

	var operandSize int
	switch opCode {
	case OPPUSHDATA1:
		if scriptLen-pc < 1 {
			return Chunk{}, pc, opError(ErrMalformedPush, opCode, 0,
				"OP_PUSHDATA1 has not enough data")
		}
		// 1 byte after opcode encodes operand size
		operandSize = int(script[pc])
		pc++
	case OPPUSHDATA2:
		if scriptLen-pc < 2 {
			return Chunk{}, pc, opError(ErrMalformedPush, opCode, 0,
				"OP_PUSHDATA2 has not enough data")
		}
		// 2 bytes after opcode encodes operand size
		operandSize = int(binary.LittleEndian.Uint16(script[pc : pc+2]))
		pc += 2
	case OPPUSHDATA4:
		if scriptLen-pc < 4 {
			return Chunk{}, pc, opError(ErrMalformedPush, opCode, 0,
				"OP_PUSHDATA4 has not enough data")
		}
		// 4 bytes after opcode encodes operand size
		size := binary.LittleEndian.Uint32(script[pc : pc+4])
		if uint64(size) > uint64(scriptLen) {
			return Chunk{}, pc, opError(ErrMalformedPush, opCode, 0,
				"OP_PUSHDATA4 length %d exceeds script size", size)
		}
		operandSize = int(size)
		pc += 4
	default:
		// opcode itself encodes operand size
		operandSize = int(opCode)
	}

	if scriptLen-pc < operandSize {
		return Chunk{}, pc, opError(ErrMalformedPush, opCode, 0,
			"push of %d bytes exceeds remaining %d script bytes", operandSize, scriptLen-pc)
	}
	data := script[pc : pc+operandSize : pc+operandSize]
	pc += operandSize
	return Chunk{Op: opCode, Data: data}, pc, nil
}

// ParseChunks splits a serialized script into chunks. A truncated push fails
// the whole parse.
func ParseChunks(script []byte) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(script)/2+1)
	for pc := 0; pc < len(script); {
		chunk, newPc, err := parseNextChunk(script, pc)
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, chunk)
		pc = newPc
	}
	return chunks, nil
}

// SerializeChunks is the inverse of ParseChunks.
func SerializeChunks(chunks []Chunk) []byte {
	size := 0
	for i := range chunks {
		size += chunks[i].serializeSize()
	}
	b := make([]byte, 0, size)
	for i := range chunks {
		b = chunks[i].appendTo(b)
	}
	return b
}

// FindAndDelete returns a new chunk list without every chunk equal to target.
// chunks is left untouched.
func FindAndDelete(chunks []Chunk, target Chunk) []Chunk {
	result := make([]Chunk, 0, len(chunks))
	for i := range chunks {
		if !chunks[i].equal(target) {
			result = append(result, chunks[i])
		}
	}
	return result
}

// isPushOnly returns true if every chunk is a push or a small constant.
func isPushOnly(chunks []Chunk) bool {
	for i := range chunks {
		if chunks[i].Op > OP16 {
			return false
		}
	}
	return true
}

// String renders the chunk the way Disasm does.
func (c Chunk) String() string {
	if !c.IsData() {
		return c.Op.String()
	}
	if len(c.Data) == 0 {
		return "0"
	}
	return fmt.Sprintf("%x", c.Data)
}
