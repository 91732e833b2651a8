// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strings"
)

// OpCode enum
type OpCode byte

// These constants are based on bitcoin official opcodes
const (
	// push value
	OP0         OpCode = 0x00 // 0
	OPFALSE     OpCode = 0x00 // 0 - AKA OP0
	OPDATA20    OpCode = 0x14 // 20
	OPPUSHDATA1 OpCode = 0x4c // 76
	OPPUSHDATA2 OpCode = 0x4d // 77
	OPPUSHDATA4 OpCode = 0x4e // 78
	OP1NEGATE   OpCode = 0x4f // 79
	OPRESERVED  OpCode = 0x50 // 80
	OP1         OpCode = 0x51 // 81
	OPTRUE      OpCode = 0x51 // 81 - AKA OP1
	OP2         OpCode = 0x52 // 82
	OP3         OpCode = 0x53 // 83
	OP4         OpCode = 0x54 // 84
	OP5         OpCode = 0x55 // 85
	OP6         OpCode = 0x56 // 86
	OP7         OpCode = 0x57 // 87
	OP8         OpCode = 0x58 // 88
	OP9         OpCode = 0x59 // 89
	OP10        OpCode = 0x5a // 90
	OP11        OpCode = 0x5b // 91
	OP12        OpCode = 0x5c // 92
	OP13        OpCode = 0x5d // 93
	OP14        OpCode = 0x5e // 94
	OP15        OpCode = 0x5f // 95
	OP16        OpCode = 0x60 // 96

	// control
	OPNOP      OpCode = 0x61 // 97
	OPVER      OpCode = 0x62 // 98
	OPIF       OpCode = 0x63 // 99
	OPNOTIF    OpCode = 0x64 // 100
	OPVERIF    OpCode = 0x65 // 101
	OPVERNOTIF OpCode = 0x66 // 102
	OPELSE     OpCode = 0x67 // 103
	OPENDIF    OpCode = 0x68 // 104
	OPVERIFY   OpCode = 0x69 // 105
	OPRETURN   OpCode = 0x6a // 106

	// stack ops
	OPTOALTSTACK   OpCode = 0x6b // 107
	OPFROMALTSTACK OpCode = 0x6c // 108
	OP2DROP        OpCode = 0x6d // 109
	OP2DUP         OpCode = 0x6e // 110
	OP3DUP         OpCode = 0x6f // 111
	OP2OVER        OpCode = 0x70 // 112
	OP2ROT         OpCode = 0x71 // 113
	OP2SWAP        OpCode = 0x72 // 114
	OPIFDUP        OpCode = 0x73 // 115
	OPDEPTH        OpCode = 0x74 // 116
	OPDROP         OpCode = 0x75 // 117
	OPDUP          OpCode = 0x76 // 118
	OPNIP          OpCode = 0x77 // 119
	OPOVER         OpCode = 0x78 // 120
	OPPICK         OpCode = 0x79 // 121
	OPROLL         OpCode = 0x7a // 122
	OPROT          OpCode = 0x7b // 123
	OPSWAP         OpCode = 0x7c // 124
	OPTUCK         OpCode = 0x7d // 125

	// splice ops
	OPCAT    OpCode = 0x7e // 126
	OPSUBSTR OpCode = 0x7f // 127
	OPLEFT   OpCode = 0x80 // 128
	OPRIGHT  OpCode = 0x81 // 129
	OPSIZE   OpCode = 0x82 // 130

	// bit logic
	OPINVERT      OpCode = 0x83 // 131
	OPAND         OpCode = 0x84 // 132
	OPOR          OpCode = 0x85 // 133
	OPXOR         OpCode = 0x86 // 134
	OPEQUAL       OpCode = 0x87 // 135
	OPEQUALVERIFY OpCode = 0x88 // 136
	OPRESERVED1   OpCode = 0x89 // 137
	OPRESERVED2   OpCode = 0x8a // 138

	// numeric
	OP1ADD      OpCode = 0x8b // 139
	OP1SUB      OpCode = 0x8c // 140
	OP2MUL      OpCode = 0x8d // 141
	OP2DIV      OpCode = 0x8e // 142
	OPNEGATE    OpCode = 0x8f // 143
	OPABS       OpCode = 0x90 // 144
	OPNOT       OpCode = 0x91 // 145
	OP0NOTEQUAL OpCode = 0x92 // 146

	OPADD    OpCode = 0x93 // 147
	OPSUB    OpCode = 0x94 // 148
	OPMUL    OpCode = 0x95 // 149
	OPDIV    OpCode = 0x96 // 150
	OPMOD    OpCode = 0x97 // 151
	OPLSHIFT OpCode = 0x98 // 152
	OPRSHIFT OpCode = 0x99 // 153

	OPBOOLAND            OpCode = 0x9a // 154
	OPBOOLOR             OpCode = 0x9b // 155
	OPNUMEQUAL           OpCode = 0x9c // 156
	OPNUMEQUALVERIFY     OpCode = 0x9d // 157
	OPNUMNOTEQUAL        OpCode = 0x9e // 158
	OPLESSTHAN           OpCode = 0x9f // 159
	OPGREATERTHAN        OpCode = 0xa0 // 160
	OPLESSTHANOREQUAL    OpCode = 0xa1 // 161
	OPGREATERTHANOREQUAL OpCode = 0xa2 // 162
	OPMIN                OpCode = 0xa3 // 163
	OPMAX                OpCode = 0xa4 // 164

	OPWITHIN OpCode = 0xa5 // 165

	// crypto
	OPRIPEMD160           OpCode = 0xa6 // 166
	OPSHA1                OpCode = 0xa7 // 167
	OPSHA256              OpCode = 0xa8 // 168
	OPHASH160             OpCode = 0xa9 // 169
	OPHASH256             OpCode = 0xaa // 170
	OPCODESEPARATOR       OpCode = 0xab // 171
	OPCHECKSIG            OpCode = 0xac // 172
	OPCHECKSIGVERIFY      OpCode = 0xad // 173
	OPCHECKMULTISIG       OpCode = 0xae // 174
	OPCHECKMULTISIGVERIFY OpCode = 0xaf // 175

	// expansion
	OPNOP1  OpCode = 0xb0 // 176
	OPNOP2  OpCode = 0xb1 // 177
	OPNOP3  OpCode = 0xb2 // 178
	OPNOP4  OpCode = 0xb3 // 179
	OPNOP5  OpCode = 0xb4 // 180
	OPNOP6  OpCode = 0xb5 // 181
	OPNOP7  OpCode = 0xb6 // 182
	OPNOP8  OpCode = 0xb7 // 183
	OPNOP9  OpCode = 0xb8 // 184
	OPNOP10 OpCode = 0xb9 // 185

	OPINVALIDOPCODE OpCode = 0xff // 255
)


var opCodeNames = map[OpCode]string{
	// push value
	OP0:         "OP_0",
	OPPUSHDATA1: "OP_PUSHDATA1",
	OPPUSHDATA2: "OP_PUSHDATA2",
	OPPUSHDATA4: "OP_PUSHDATA4",
	OP1NEGATE:   "OP_1NEGATE",
	OPRESERVED:  "OP_RESERVED",
	OP1:         "OP_1",
	OP2:         "OP_2",
	OP3:         "OP_3",
	OP4:         "OP_4",
	OP5:         "OP_5",
	OP6:         "OP_6",
	OP7:         "OP_7",
	OP8:         "OP_8",
	OP9:         "OP_9",
	OP10:        "OP_10",
	OP11:        "OP_11",
	OP12:        "OP_12",
	OP13:        "OP_13",
	OP14:        "OP_14",
	OP15:        "OP_15",
	OP16:        "OP_16",

	// control
	OPNOP:      "OP_NOP",
	OPVER:      "OP_VER",
	OPIF:       "OP_IF",
	OPNOTIF:    "OP_NOTIF",
	OPVERIF:    "OP_VERIF",
	OPVERNOTIF: "OP_VERNOTIF",
	OPELSE:     "OP_ELSE",
	OPENDIF:    "OP_ENDIF",
	OPVERIFY:   "OP_VERIFY",
	OPRETURN:   "OP_RETURN",

	// stack ops
	OPTOALTSTACK:   "OP_TOALTSTACK",
	OPFROMALTSTACK: "OP_FROMALTSTACK",
	OP2DROP:        "OP_2DROP",
	OP2DUP:         "OP_2DUP",
	OP3DUP:         "OP_3DUP",
	OP2OVER:        "OP_2OVER",
	OP2ROT:         "OP_2ROT",
	OP2SWAP:        "OP_2SWAP",
	OPIFDUP:        "OP_IFDUP",
	OPDEPTH:        "OP_DEPTH",
	OPDROP:         "OP_DROP",
	OPDUP:          "OP_DUP",
	OPNIP:          "OP_NIP",
	OPOVER:         "OP_OVER",
	OPPICK:         "OP_PICK",
	OPROLL:         "OP_ROLL",
	OPROT:          "OP_ROT",
	OPSWAP:         "OP_SWAP",
	OPTUCK:         "OP_TUCK",

	// splice ops
	OPCAT:    "OP_CAT",
	OPSUBSTR: "OP_SUBSTR",
	OPLEFT:   "OP_LEFT",
	OPRIGHT:  "OP_RIGHT",
	OPSIZE:   "OP_SIZE",

	// bit logic
	OPINVERT:      "OP_INVERT",
	OPAND:         "OP_AND",
	OPOR:          "OP_OR",
	OPXOR:         "OP_XOR",
	OPEQUAL:       "OP_EQUAL",
	OPEQUALVERIFY: "OP_EQUALVERIFY",
	OPRESERVED1:   "OP_RESERVED1",
	OPRESERVED2:   "OP_RESERVED2",

	// numeric
	OP1ADD:               "OP_1ADD",
	OP1SUB:               "OP_1SUB",
	OP2MUL:               "OP_2MUL",
	OP2DIV:               "OP_2DIV",
	OPNEGATE:             "OP_NEGATE",
	OPABS:                "OP_ABS",
	OPNOT:                "OP_NOT",
	OP0NOTEQUAL:          "OP_0NOTEQUAL",
	OPADD:                "OP_ADD",
	OPSUB:                "OP_SUB",
	OPMUL:                "OP_MUL",
	OPDIV:                "OP_DIV",
	OPMOD:                "OP_MOD",
	OPLSHIFT:             "OP_LSHIFT",
	OPRSHIFT:             "OP_RSHIFT",
	OPBOOLAND:            "OP_BOOLAND",
	OPBOOLOR:             "OP_BOOLOR",
	OPNUMEQUAL:           "OP_NUMEQUAL",
	OPNUMEQUALVERIFY:     "OP_NUMEQUALVERIFY",
	OPNUMNOTEQUAL:        "OP_NUMNOTEQUAL",
	OPLESSTHAN:           "OP_LESSTHAN",
	OPGREATERTHAN:        "OP_GREATERTHAN",
	OPLESSTHANOREQUAL:    "OP_LESSTHANOREQUAL",
	OPGREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL",
	OPMIN:                "OP_MIN",
	OPMAX:                "OP_MAX",
	OPWITHIN:             "OP_WITHIN",

	// crypto
	OPRIPEMD160:           "OP_RIPEMD160",
	OPSHA1:                "OP_SHA1",
	OPSHA256:              "OP_SHA256",
	OPHASH160:             "OP_HASH160",
	OPHASH256:             "OP_HASH256",
	OPCODESEPARATOR:       "OP_CODESEPARATOR",
	OPCHECKSIG:            "OP_CHECKSIG",
	OPCHECKSIGVERIFY:      "OP_CHECKSIGVERIFY",
	OPCHECKMULTISIG:       "OP_CHECKMULTISIG",
	OPCHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",

	// expansion
	OPNOP1:  "OP_NOP1",
	OPNOP2:  "OP_NOP2",
	OPNOP3:  "OP_NOP3",
	OPNOP4:  "OP_NOP4",
	OPNOP5:  "OP_NOP5",
	OPNOP6:  "OP_NOP6",
	OPNOP7:  "OP_NOP7",
	OPNOP8:  "OP_NOP8",
	OPNOP9:  "OP_NOP9",
	OPNOP10: "OP_NOP10",

	OPINVALIDOPCODE: "OP_INVALIDOPCODE",
}

// nameToOpCode maps both the canonical names and the well known aliases back
// to op codes.
var nameToOpCode = func() map[string]OpCode {
	m := make(map[string]OpCode, len(opCodeNames)+2)
	for op, name := range opCodeNames {
		m[name] = op
	}
	m["OP_FALSE"] = OPFALSE
	m["OP_TRUE"] = OPTRUE
	return m
}()

// String returns the human readable name of the op code.
func (op OpCode) String() string {
	if name, ok := opCodeNames[op]; ok {
		return name
	}
	if op > OP0 && op < OPPUSHDATA1 {
		return fmt.Sprintf("OP_DATA_%d", op)
	}
	return fmt.Sprintf("OP_UNKNOWN%d", op)
}

// OpCodeFromName returns the op code of name. The OP_ prefix is optional and
// matching is case insensitive.
func OpCodeFromName(name string) (OpCode, bool) {
	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, "OP_") {
		name = "OP_" + name
	}
	op, ok := nameToOpCode[name]
	return op, ok
}

// isDisabled reports whether op belongs to the splice, bitwise and arithmetic
// groups rejected unless unsafe op codes are enabled.
func (op OpCode) isDisabled() bool {
	switch op {
	case OPCAT, OPSUBSTR, OPLEFT, OPRIGHT, OPINVERT, OPAND, OPOR, OPXOR,
		OP2MUL, OP2DIV, OPMUL, OPDIV, OPMOD, OPLSHIFT, OPRSHIFT:
		return true
	}
	return false
}

// isSmallInt returns whether op pushes a number in [0, 16].
func isSmallInt(op OpCode) bool {
	return op == OP0 || (op >= OP1 && op <= OP16)
}

// asSmallInt returns the value pushed by a small integer op code.
func asSmallInt(op OpCode) int {
	if op == OP0 {
		return 0
	}
	return int(op - (OP1 - 1))
}

// smallIntOp returns the op code pushing n, which must lie in [0, 16].
func smallIntOp(n int) OpCode {
	if n == 0 {
		return OP0
	}
	return OP1 + OpCode(n-1)
}
