// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"fmt"
	"math"
	"math/big"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
)

// maxShift bounds the shift amount of OP_LSHIFT and OP_RSHIFT.
const maxShift = 2048

// Interpreter executes the scripts guarding one input of a transaction. The
// value stack carries over from one Execute call to the next; everything else
// is reset for every script.
type Interpreter struct {
	tx       *types.Transaction
	txInIdx  int
	hashType SigHashType
	cfg      VerificationConfig
	stack    *Stack
}

// evalState is the per script part of the run state.
type evalState struct {
	chunks    []Chunk
	altStack  *Stack
	execStack []bool
	opCount   int
	// index of the chunk being executed plus one
	pc int
	// signatures commit to the chunks from hashStart on
	hashStart int
}

// executing reports whether every enclosing conditional branch is taken.
func (st *evalState) executing() bool {
	for _, v := range st.execStack {
		if !v {
			return false
		}
	}
	return true
}

// NewInterpreter creates an interpreter with an empty stack. tx and txInIdx
// locate the input being spent and may be left nil and 0 when the scripts
// contain no signature checks. hashType 0 takes the hash type from the
// trailing byte of each signature.
func NewInterpreter(tx *types.Transaction, txInIdx int, hashType SigHashType, cfg VerificationConfig) *Interpreter {
	return &Interpreter{
		tx:       tx,
		txInIdx:  txInIdx,
		hashType: hashType,
		cfg:      cfg,
		stack:    newStack(),
	}
}

// Stack returns a copy of the value stack, bottom first.
func (vm *Interpreter) Stack() [][]byte {
	items := make([][]byte, vm.stack.size())
	for i, o := range vm.stack.copy().stk {
		items[i] = o
	}
	return items
}

// Execute runs script on the value stack. It fails if the script is oversized,
// malformed, breaks a limit or a VERIFY, or ends inside a conditional. The
// caller is responsible for inspecting the resulting stack.
func (vm *Interpreter) Execute(script []byte) error {
	if len(script) > MaxScriptSize {
		return scriptError(ErrOversized,
			fmt.Sprintf("script size %d exceeds %d bytes", len(script), MaxScriptSize))
	}
	chunks, err := ParseChunks(script)
	if err != nil {
		return err
	}
	return vm.execute(chunks)
}

func (vm *Interpreter) execute(chunks []Chunk) error {
	st := &evalState{chunks: chunks, altStack: newStack()}
	for i := range chunks {
		st.pc = i + 1
		if err := vm.step(st, chunks[i]); err != nil {
			return vm.opFailed(err, chunks[i].Op)
		}
		if vm.stack.size()+st.altStack.size() > MaxStackSize {
			return vm.opFailed(scriptError(ErrStackOverflow,
				fmt.Sprintf("stack size exceeds %d elements", MaxStackSize)), chunks[i].Op)
		}
	}
	if len(st.execStack) != 0 {
		return scriptError(ErrUnbalancedControlFlow, "execution stack ended non-empty")
	}
	return nil
}

// opFailed attaches the failing op code and the stack depth to err.
func (vm *Interpreter) opFailed(err error, op OpCode) error {
	depth := vm.stack.size()
	if e, ok := err.(*Error); ok {
		e.OpCode = op
		e.Depth = depth
	}
	logger.Debugf("script failed at %s with stack depth %d: %v", op, depth, err)
	return err
}

func (vm *Interpreter) step(st *evalState, c Chunk) error {
	if c.IsData() && len(c.Data) > MaxScriptElementSize {
		return scriptError(ErrPushTooLarge,
			fmt.Sprintf("push of %d bytes exceeds %d", len(c.Data), MaxScriptElementSize))
	}
	if c.Op > OP16 {
		st.opCount++
		if st.opCount > MaxOpsPerScript {
			return scriptError(ErrOpCountExceeded,
				fmt.Sprintf("more than %d op codes", MaxOpsPerScript))
		}
	}
	if !vm.cfg.EnableUnsafeOpcodes && c.Op.isDisabled() {
		return scriptError(ErrDisabledOpcode, "encountered a disabled op code "+c.Op.String())
	}

	exec := st.executing()
	if c.IsData() {
		if exec {
			vm.stack.push(Operand(c.Data))
		}
		return nil
	}
	// conditionals run in untaken branches so that nesting is tracked
	if !exec && (c.Op < OPIF || c.Op > OPENDIF) {
		return nil
	}
	return vm.execOp(st, c.Op, exec)
}

func (vm *Interpreter) execOp(st *evalState, op OpCode, exec bool) error {
	if op == OP1NEGATE || (op >= OP1 && op <= OP16) {
		vm.stack.push(scriptNumFromInt(int64(op) - int64(OP1-1)))
		return nil
	}

	switch op {
	case OP0:
		vm.stack.push(Operand{})

	case OPNOP, OPNOP1, OPNOP2, OPNOP3, OPNOP4, OPNOP5,
		OPNOP6, OPNOP7, OPNOP8, OPNOP9, OPNOP10:

	// control
	case OPIF, OPNOTIF:
		value := false
		if exec {
			o, err := vm.stack.pop()
			if err != nil {
				return err
			}
			value = castToBool(o)
			if op == OPNOTIF {
				value = !value
			}
		}
		st.execStack = append(st.execStack, value)

	case OPELSE:
		if len(st.execStack) == 0 {
			return scriptError(ErrUnbalancedControlFlow, "OP_ELSE without OP_IF")
		}
		st.execStack[len(st.execStack)-1] = !st.execStack[len(st.execStack)-1]

	case OPENDIF:
		if len(st.execStack) == 0 {
			return scriptError(ErrUnbalancedControlFlow, "OP_ENDIF without OP_IF")
		}
		st.execStack = st.execStack[:len(st.execStack)-1]

	case OPVERIFY:
		top, err := vm.stack.topN(1)
		if err != nil {
			return err
		}
		if !castToBool(top) {
			return scriptError(ErrVerifyFailed, "OP_VERIFY failed")
		}
		vm.stack.pop()

	case OPRETURN:
		return scriptError(ErrEarlyReturn, "OP_RETURN encountered")

	// stack ops
	case OPTOALTSTACK:
		o, err := vm.stack.pop()
		if err != nil {
			return err
		}
		st.altStack.push(o)

	case OPFROMALTSTACK:
		o, err := st.altStack.pop()
		if err != nil {
			return scriptError(ErrStackUnderrun, "OP_FROMALTSTACK with empty alt stack")
		}
		vm.stack.push(o)

	case OP2DROP:
		if err := vm.stack.require(2); err != nil {
			return err
		}
		vm.stack.pop()
		vm.stack.pop()

	case OP2DUP, OP3DUP, OP2OVER:
		// copy n elements starting from the top from-th
		n, from := 2, 2
		switch op {
		case OP3DUP:
			n, from = 3, 3
		case OP2OVER:
			from = 4
		}
		if err := vm.stack.require(from); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			// the stack grows by one each round
			o, _ := vm.stack.topN(from)
			vm.stack.push(o)
		}

	case OP2ROT:
		if err := vm.stack.require(6); err != nil {
			return err
		}
		v1, _ := vm.stack.removeN(6)
		v2, _ := vm.stack.removeN(5)
		vm.stack.push(v1)
		vm.stack.push(v2)

	case OP2SWAP:
		if err := vm.stack.swap(4, 2); err != nil {
			return err
		}
		return vm.stack.swap(3, 1)

	case OPIFDUP:
		top, err := vm.stack.topN(1)
		if err != nil {
			return err
		}
		if castToBool(top) {
			vm.stack.push(top)
		}

	case OPDEPTH:
		vm.stack.push(scriptNumFromInt(int64(vm.stack.size())))

	case OPDROP:
		if _, err := vm.stack.pop(); err != nil {
			return err
		}

	case OPDUP:
		top, err := vm.stack.topN(1)
		if err != nil {
			return err
		}
		vm.stack.push(top)

	case OPNIP:
		if _, err := vm.stack.removeN(2); err != nil {
			return err
		}

	case OPOVER:
		o, err := vm.stack.topN(2)
		if err != nil {
			return err
		}
		vm.stack.push(o)

	case OPPICK, OPROLL:
		o, err := vm.stack.pop()
		if err != nil {
			return err
		}
		n := asInt(makeScriptNum(o))
		if n < 0 || n >= vm.stack.size() {
			return scriptError(ErrStackUnderrun,
				fmt.Sprintf("%s index %d out of stack of size %d", op, n, vm.stack.size()))
		}
		var v Operand
		if op == OPROLL {
			v, _ = vm.stack.removeN(n + 1)
		} else {
			v, _ = vm.stack.topN(n + 1)
		}
		vm.stack.push(v)

	case OPROT:
		if err := vm.stack.swap(3, 2); err != nil {
			return err
		}
		return vm.stack.swap(2, 1)

	case OPSWAP:
		return vm.stack.swap(2, 1)

	case OPTUCK:
		top, err := vm.stack.topN(1)
		if err != nil {
			return err
		}
		if err := vm.stack.require(2); err != nil {
			return err
		}
		return vm.stack.insertN(2, top)

	// splice ops
	case OPCAT:
		if err := vm.stack.require(2); err != nil {
			return err
		}
		v2, _ := vm.stack.pop()
		v1, _ := vm.stack.pop()
		out := make(Operand, 0, len(v1)+len(v2))
		out = append(append(out, v1...), v2...)
		vm.stack.push(out)

	case OPSUBSTR:
		if err := vm.stack.require(3); err != nil {
			return err
		}
		lo, _ := vm.stack.pop()
		so, _ := vm.stack.pop()
		buf, _ := vm.stack.pop()
		start, length := asInt(makeScriptNum(so)), asInt(makeScriptNum(lo))
		if start < 0 || length < 0 {
			return scriptError(ErrInvalidOperand, "OP_SUBSTR start < 0 or len < 0")
		}
		if int64(start)+int64(length) >= int64(len(buf)) {
			return scriptError(ErrInvalidOperand, "OP_SUBSTR range out of bounds")
		}
		vm.stack.push(append(Operand(nil), buf[start:start+length]...))

	case OPLEFT, OPRIGHT:
		if err := vm.stack.require(2); err != nil {
			return err
		}
		so, _ := vm.stack.pop()
		buf, _ := vm.stack.pop()
		size := asInt(makeScriptNum(so))
		if size < 0 {
			return scriptError(ErrInvalidOperand, fmt.Sprintf("%s size < 0", op))
		}
		if size > len(buf) {
			size = len(buf)
		}
		if op == OPLEFT {
			vm.stack.push(append(Operand(nil), buf[:size]...))
		} else {
			vm.stack.push(append(Operand(nil), buf[len(buf)-size:]...))
		}

	case OPSIZE:
		top, err := vm.stack.topN(1)
		if err != nil {
			return err
		}
		vm.stack.push(scriptNumFromInt(int64(len(top))))

	// bit logic
	case OPINVERT:
		o, err := vm.stack.pop()
		if err != nil {
			return err
		}
		out := make(Operand, len(o))
		for i, b := range o {
			out[i] = ^b
		}
		vm.stack.push(out)

	case OPAND, OPOR, OPXOR:
		if err := vm.stack.require(2); err != nil {
			return err
		}
		v2, _ := vm.stack.pop()
		v1, _ := vm.stack.pop()
		vm.stack.push(bitwise(op, v1, v2))

	case OPEQUAL, OPEQUALVERIFY:
		if err := vm.stack.require(2); err != nil {
			return err
		}
		v2, _ := vm.stack.pop()
		v1, _ := vm.stack.pop()
		// use bytes.Equal() instead of reflect.DeepEqual() for efficiency
		isEqual := bytes.Equal(v1, v2)
		if op == OPEQUALVERIFY {
			if !isEqual {
				return scriptError(ErrVerifyFailed, "OP_EQUALVERIFY failed")
			}
			return nil
		}
		vm.stack.push(fromBool(isEqual))

	// numeric
	case OP1ADD, OP1SUB, OP2MUL, OP2DIV, OPNEGATE, OPABS, OPNOT, OP0NOTEQUAL:
		o, err := vm.stack.pop()
		if err != nil {
			return err
		}
		out, err := unaryNum(op, makeScriptNum(o))
		if err != nil {
			return err
		}
		vm.stack.push(out)

	case OPADD, OPSUB, OPMUL, OPDIV, OPMOD, OPLSHIFT, OPRSHIFT,
		OPBOOLAND, OPBOOLOR, OPNUMEQUAL, OPNUMEQUALVERIFY, OPNUMNOTEQUAL,
		OPLESSTHAN, OPGREATERTHAN, OPLESSTHANOREQUAL, OPGREATERTHANOREQUAL,
		OPMIN, OPMAX:
		if err := vm.stack.require(2); err != nil {
			return err
		}
		o2, _ := vm.stack.pop()
		o1, _ := vm.stack.pop()
		out, err := binaryNum(op, makeScriptNum(o1), makeScriptNum(o2))
		if err != nil {
			return err
		}
		if op == OPNUMEQUALVERIFY {
			if !castToBool(out) {
				return scriptError(ErrVerifyFailed, "OP_NUMEQUALVERIFY failed")
			}
			return nil
		}
		vm.stack.push(out)

	case OPWITHIN:
		if err := vm.stack.require(3); err != nil {
			return err
		}
		o3, _ := vm.stack.pop()
		o2, _ := vm.stack.pop()
		o1, _ := vm.stack.pop()
		x, min, max := makeScriptNum(o1), makeScriptNum(o2), makeScriptNum(o3)
		vm.stack.push(numFromBool(x.Cmp(min) >= 0 && x.Cmp(max) < 0))

	// crypto
	case OPRIPEMD160, OPSHA1, OPSHA256, OPHASH160, OPHASH256:
		o, err := vm.stack.pop()
		if err != nil {
			return err
		}
		var hash []byte
		switch op {
		case OPRIPEMD160:
			hash = crypto.Ripemd160(o)
		case OPSHA1:
			hash = crypto.Sha1(o)
		case OPSHA256:
			hash = crypto.Sha256(o)
		case OPHASH160:
			hash = crypto.Hash160(o)
		default:
			hash = crypto.DoubleSha256(o)
		}
		vm.stack.push(hash)

	case OPCODESEPARATOR:
		// signatures commit to the chunks after the code separator
		st.hashStart = st.pc

	case OPCHECKSIG, OPCHECKSIGVERIFY:
		return vm.opCheckSig(st, op)

	case OPCHECKMULTISIG, OPCHECKMULTISIGVERIFY:
		return vm.opCheckMultiSig(st, op)

	default:
		return scriptError(ErrUnknownOpcode, "unknown op code "+op.String())
	}
	return nil
}

// sigChunk returns the push chunk removed from the signed subscript for sig.
// It is a data chunk even for an empty signature, so OP_0 is never removed.
func sigChunk(sig []byte) Chunk {
	return Chunk{Op: OPPUSHDATA1, Data: sig}
}

func (vm *Interpreter) opCheckSig(st *evalState, op OpCode) error {
	if err := vm.stack.require(2); err != nil {
		return err
	}
	sig, _ := vm.stack.topN(2)
	pubKey, _ := vm.stack.topN(1)

	// a signature cannot sign itself
	subscript := FindAndDelete(st.chunks[st.hashStart:], sigChunk(sig))

	if vm.cfg.strictEncoding() {
		if err := checkSignatureEncoding(sig, vm.cfg.VerifyEvenS); err != nil {
			return err
		}
	}

	vm.stack.pop()
	vm.stack.pop()
	isVerified := checkSig(sig, pubKey, subscript, vm.tx, vm.txInIdx, vm.hashType, vm.cfg.SigCache)
	if op == OPCHECKSIGVERIFY {
		if !isVerified {
			return scriptError(ErrVerifyFailed, "OP_CHECKSIGVERIFY failed")
		}
		return nil
	}
	vm.stack.push(fromBool(isVerified))
	return nil
}

// Format: e.g.,
// OP_0 <Signature B> <Signature C> | 2 <Public Key A> <Public Key B> <Public Key C> 3 CHECKMULTISIG
func (vm *Interpreter) opCheckMultiSig(st *evalState, op OpCode) error {
	o, err := vm.stack.pop()
	if err != nil {
		return err
	}
	keysCount := asInt(makeScriptNum(o))
	if keysCount < 0 || keysCount > MaxPubKeysPerMultiSig {
		return scriptError(ErrInvalidKeyCount,
			fmt.Sprintf("key count %d out of [0, %d]", keysCount, MaxPubKeysPerMultiSig))
	}
	st.opCount += keysCount
	if st.opCount > MaxOpsPerScript {
		return scriptError(ErrOpCountExceeded,
			fmt.Sprintf("more than %d op codes", MaxOpsPerScript))
	}
	keys := make([]Operand, keysCount)
	for i := range keys {
		if keys[i], err = vm.stack.pop(); err != nil {
			return err
		}
	}

	if o, err = vm.stack.pop(); err != nil {
		return err
	}
	sigsCount := asInt(makeScriptNum(o))
	if sigsCount < 0 || sigsCount > keysCount {
		return scriptError(ErrInvalidSigCount,
			fmt.Sprintf("signature count %d out of [0, %d]", sigsCount, keysCount))
	}
	sigs := make([]Operand, sigsCount)
	for i := range sigs {
		if sigs[i], err = vm.stack.pop(); err != nil {
			return err
		}
	}

	// one more element is consumed, as the reference client always did
	if _, err := vm.stack.pop(); err != nil {
		return err
	}

	subscript := st.chunks[st.hashStart:]
	for _, sig := range sigs {
		if vm.cfg.strictEncoding() {
			if err := checkSignatureEncoding(sig, vm.cfg.VerifyEvenS); err != nil {
				return err
			}
		}
		subscript = FindAndDelete(subscript, sigChunk(sig))
	}

	isVerified := true
	for isig, ikey := 0, 0; isVerified && sigsCount > 0; ikey++ {
		if checkSig(sigs[isig], keys[ikey], subscript, vm.tx, vm.txInIdx, vm.hashType, vm.cfg.SigCache) {
			isig++
			sigsCount--
		}
		keysCount--

		// More signatures left than keys means verification failure
		if sigsCount > keysCount {
			isVerified = false
		}
	}

	if op == OPCHECKMULTISIGVERIFY {
		if !isVerified {
			return scriptError(ErrVerifyFailed, "OP_CHECKMULTISIGVERIFY failed")
		}
		return nil
	}
	vm.stack.push(fromBool(isVerified))
	return nil
}

// asInt converts n to an int clamped to the int32 range. Every bound it is
// compared against is far inside that range.
func asInt(n *big.Int) int {
	if !n.IsInt64() {
		if n.Sign() < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	v := n.Int64()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

// bitwise combines v1 and v2 byte by byte, padding the shorter with zeros.
func bitwise(op OpCode, v1, v2 []byte) Operand {
	n := len(v1)
	if len(v2) > n {
		n = len(v2)
	}
	out := make(Operand, n)
	for i := range out {
		var a, b byte
		if i < len(v1) {
			a = v1[i]
		}
		if i < len(v2) {
			b = v2[i]
		}
		switch op {
		case OPAND:
			out[i] = a & b
		case OPOR:
			out[i] = a | b
		default:
			out[i] = a ^ b
		}
	}
	return out
}

// numResult encodes the result of an arithmetic op code, which may not grow
// past what a push could carry.
func numResult(op OpCode, r *big.Int) (Operand, error) {
	out := scriptNumBytes(r)
	if len(out) > MaxScriptElementSize {
		return nil, scriptError(ErrInvalidOperand,
			fmt.Sprintf("%s result of %d bytes exceeds %d", op, len(out), MaxScriptElementSize))
	}
	return out, nil
}

func unaryNum(op OpCode, n *big.Int) (Operand, error) {
	r := new(big.Int)
	switch op {
	case OP1ADD:
		r.Add(n, bigOne)
	case OP1SUB:
		r.Sub(n, bigOne)
	case OP2MUL:
		r.Lsh(n, 1)
	case OP2DIV:
		r.Quo(n, big.NewInt(2))
	case OPNEGATE:
		r.Neg(n)
	case OPABS:
		r.Abs(n)
	case OPNOT:
		return numFromBool(n.Sign() == 0), nil
	case OP0NOTEQUAL:
		return numFromBool(n.Sign() != 0), nil
	}
	return numResult(op, r)
}

func binaryNum(op OpCode, v1, v2 *big.Int) (Operand, error) {
	r := new(big.Int)
	switch op {
	case OPADD:
		r.Add(v1, v2)
	case OPSUB:
		r.Sub(v1, v2)
	case OPMUL:
		r.Mul(v1, v2)
	case OPDIV, OPMOD:
		if v2.Sign() == 0 {
			return nil, scriptError(ErrInvalidOperand, fmt.Sprintf("%s by zero", op))
		}
		if op == OPDIV {
			r.Quo(v1, v2)
		} else {
			r.Rem(v1, v2)
		}
	case OPLSHIFT, OPRSHIFT:
		if v2.Sign() < 0 || v2.Cmp(big.NewInt(maxShift)) > 0 {
			return nil, scriptError(ErrInvalidOperand, fmt.Sprintf("%s parameter out of bounds", op))
		}
		shift := uint(v2.Int64())
		if op == OPLSHIFT {
			r.Lsh(v1, shift)
		} else {
			// shift the magnitude, keep the sign
			r.Rsh(new(big.Int).Abs(v1), shift)
			if v1.Sign() < 0 {
				r.Neg(r)
			}
		}
	case OPBOOLAND:
		return numFromBool(v1.Sign() != 0 && v2.Sign() != 0), nil
	case OPBOOLOR:
		return numFromBool(v1.Sign() != 0 || v2.Sign() != 0), nil
	case OPNUMEQUAL, OPNUMEQUALVERIFY:
		return numFromBool(v1.Cmp(v2) == 0), nil
	case OPNUMNOTEQUAL:
		return numFromBool(v1.Cmp(v2) != 0), nil
	case OPLESSTHAN:
		return numFromBool(v1.Cmp(v2) < 0), nil
	case OPGREATERTHAN:
		return numFromBool(v1.Cmp(v2) > 0), nil
	case OPLESSTHANOREQUAL:
		return numFromBool(!(v1.Cmp(v2) > 0)), nil
	case OPGREATERTHANOREQUAL:
		return numFromBool(!(v1.Cmp(v2) < 0)), nil
	case OPMIN:
		if v1.Cmp(v2) < 0 {
			return scriptNumBytes(v1), nil
		}
		return scriptNumBytes(v2), nil
	case OPMAX:
		if v1.Cmp(v2) > 0 {
			return scriptNumBytes(v1), nil
		}
		return scriptNumBytes(v2), nil
	}
	return numResult(op, r)
}
