// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"sort"
	"strings"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/btcsuite/btcd/chaincfg"
)

var logger = log.NewLogger("script") // logger

// constants
const (
	p2PKHScriptLen = 25

	// MaxScriptSize is the maximum number of bytes a script may have.
	MaxScriptSize = 10000

	// MaxScriptElementSize is the maximum number of bytes a push may carry.
	MaxScriptElementSize = 520

	// MaxOpsPerScript is the maximum number of non push op codes in a script.
	MaxOpsPerScript = 201

	// MaxStackSize is the maximum number of elements the stack and alt stack
	// may hold together.
	MaxStackSize = 1000

	// MaxPubKeysPerMultiSig is the maximum number of keys CHECKMULTISIG accepts.
	MaxPubKeysPerMultiSig = 20
)

// ScriptClass is the structural class of a locking script.
type ScriptClass byte

// Classes of scripts known to the engine.
const (
	UnknownTy    ScriptClass = iota // None of the recognized forms.
	PubKeyTy                        // Pay pubkey.
	PubKeyHashTy                    // Pay pubkey hash.
	MultiSigTy                      // Bare multisig.
	ScriptHashTy                    // Pay to script hash.
)

var scriptClassToName = []string{
	UnknownTy:    "unknown",
	PubKeyTy:     "pubkey",
	PubKeyHashTy: "pubkeyhash",
	MultiSigTy:   "multisig",
	ScriptHashTy: "scripthash",
}

// String implements the Stringer interface by returning the name of
// the enum script class.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// PayToPubKeyScript creates a script paying to a bare public key.
func PayToPubKeyScript(pubKey []byte) *Script {
	return NewScript().AddOperand(pubKey).AddOpCode(OPCHECKSIG)
}

// PayToPubKeyHashScript creates a script to lock a transaction output to the specified address.
func PayToPubKeyHashScript(pubKeyHash []byte) *Script {
	return NewScript().AddOpCode(OPDUP).AddOpCode(OPHASH160).AddOperand(pubKeyHash).AddOpCode(OPEQUALVERIFY).AddOpCode(OPCHECKSIG)
}

// PayToScriptHashScript creates a script locking an output to the hash of a redeem script.
func PayToScriptHashScript(redeemScript []byte) *Script {
	return NewScript().AddOpCode(OPHASH160).AddOperand(crypto.Hash160(redeemScript)).AddOpCode(OPEQUAL)
}

// MultisigScript creates an m-of-n bare multisig script. With sortKeys the
// keys are ordered lexicographically first.
func MultisigScript(m int, pubKeys [][]byte, sortKeys bool) (*Script, error) {
	n := len(pubKeys)
	if m < 1 || m > n || n > 16 {
		return nil, ErrInvalidMultisigParams
	}
	keys := make([][]byte, n)
	copy(keys, pubKeys)
	if sortKeys {
		sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })
	}

	s := NewScript().AddOpCode(smallIntOp(m))
	for _, key := range keys {
		s.AddOperand(key)
	}
	return s.AddOpCode(smallIntOp(n)).AddOpCode(OPCHECKMULTISIG), nil
}

// SignatureScript creates a script to unlock a pay-to-pubkey-hash output. sig
// carries the trailing hash type byte.
func SignatureScript(sig []byte, pubKey []byte) *Script {
	return NewScript().AddOperand(sig).AddOperand(pubKey)
}

// Script represents scripts
type Script []byte

// NewScript returns an empty script
func NewScript() *Script {
	emptyBytes := make([]byte, 0, p2PKHScriptLen)
	return (*Script)(&emptyBytes)
}

// NewScriptFromBytes returns a script from byte slice
func NewScriptFromBytes(scriptBytes []byte) *Script {
	script := Script(scriptBytes)
	return &script
}

// AddOpCode adds an opcode to the script
func (s *Script) AddOpCode(opCode OpCode) *Script {
	*s = append(*s, byte(opCode))
	return s
}

// AddOperand adds an operand to the script
func (s *Script) AddOperand(operand []byte) *Script {
	chunk := DataChunk(operand)
	*s = chunk.appendTo(*s)
	return s
}

// AddInt pushes n as a script number, using the small integer op codes when possible.
func (s *Script) AddInt(n int64) *Script {
	switch {
	case n == -1:
		return s.AddOpCode(OP1NEGATE)
	case n >= 0 && n <= 16:
		return s.AddOpCode(smallIntOp(int(n)))
	}
	return s.AddOperand(scriptNumFromInt(n))
}

// Bytes returns the serialized script.
func (s *Script) Bytes() []byte {
	return []byte(*s)
}

// parses the entire script. On failure the chunks parsed up to the failure
// point are returned along with the error
func (s *Script) parse() ([]Chunk, error) {
	return ParseChunks(*s)
}

// Disasm disassembles script in human readable format. If the script fails to parse, the returned string will
// contain the disassembled script up to the failure point, appended by the string '[Error: error info]'
func (s *Script) Disasm() string {
	chunks, err := s.parse()
	str := make([]string, 0, len(chunks)+1)
	for _, c := range chunks {
		str = append(str, c.String())
	}
	if err != nil {
		str = append(str, "[Error: "+err.Error()+"]")
	}
	return strings.Join(str, " ")
}

// IsPushOnly returns true if the script only pushes data or small constants.
// A script that fails to parse is not push only.
func (s *Script) IsPushOnly() bool {
	chunks, err := s.parse()
	if err != nil {
		return false
	}
	return isPushOnly(chunks)
}

// IsPayToPubKeyHash returns if the script is p2pkh
func (s *Script) IsPayToPubKeyHash() bool {
	chunks, err := s.parse()
	return err == nil && isPubKeyHash(chunks)
}

// IsPayToScriptHash returns if the script is p2sh
func (s *Script) IsPayToScriptHash() bool {
	chunks, err := s.parse()
	return err == nil && isScriptHash(chunks)
}

// IsMultisig returns if the script is a bare multisig with a consistent key count.
func (s *Script) IsMultisig() bool {
	chunks, err := s.parse()
	return err == nil && isMultisig(chunks)
}

// IsPayToPubKey returns if the script pays to a bare public key.
func (s *Script) IsPayToPubKey() bool {
	chunks, err := s.parse()
	return err == nil && isPubKey(chunks)
}

func isPubKeyHash(chunks []Chunk) bool {
	return len(chunks) == 5 &&
		chunks[0].Op == OPDUP &&
		chunks[1].Op == OPHASH160 &&
		chunks[2].IsData() && len(chunks[2].Data) == crypto.Hash160Size &&
		chunks[3].Op == OPEQUALVERIFY &&
		chunks[4].Op == OPCHECKSIG
}

func isScriptHash(chunks []Chunk) bool {
	return len(chunks) == 3 &&
		chunks[0].Op == OPHASH160 &&
		chunks[1].IsData() && len(chunks[1].Data) == crypto.Hash160Size &&
		chunks[2].Op == OPEQUAL
}

// isMultisigShape matches <m> <push>... <n> CHECKMULTISIG without checking n.
func isMultisigShape(chunks []Chunk) bool {
	l := len(chunks)
	if l <= 3 {
		return false
	}
	if !isSmallInt(chunks[0].Op) || !isSmallInt(chunks[l-2].Op) || chunks[l-1].Op != OPCHECKMULTISIG {
		return false
	}
	for _, c := range chunks[1 : l-2] {
		if !c.IsData() {
			return false
		}
	}
	return true
}

func isMultisig(chunks []Chunk) bool {
	return isMultisigShape(chunks) && asSmallInt(chunks[len(chunks)-2].Op) == len(chunks)-3
}

func isPubKey(chunks []Chunk) bool {
	return len(chunks) == 2 && chunks[0].IsData() && chunks[1].Op == OPCHECKSIG
}

func classify(chunks []Chunk) ScriptClass {
	switch {
	case isPubKeyHash(chunks):
		return PubKeyHashTy
	case isScriptHash(chunks):
		return ScriptHashTy
	case isMultisig(chunks):
		return MultiSigTy
	case isPubKey(chunks):
		return PubKeyTy
	default:
		return UnknownTy
	}
}

// Class returns the structural class of the script. Scripts that fail to
// parse are UnknownTy.
func (s *Script) Class() ScriptClass {
	chunks, err := s.parse()
	if err != nil {
		return UnknownTy
	}
	return classify(chunks)
}

// Capture returns the keys or hashes embedded in a script of a known class:
// the key of a pubkey script, the hash of a p2pkh or p2sh script, or the keys
// of a multisig script. It returns nil for unknown scripts.
func (s *Script) Capture() [][]byte {
	chunks, err := s.parse()
	if err != nil {
		return nil
	}
	switch classify(chunks) {
	case PubKeyTy:
		return [][]byte{chunks[0].Data}
	case PubKeyHashTy:
		return [][]byte{chunks[2].Data}
	case ScriptHashTy:
		return [][]byte{chunks[1].Data}
	case MultiSigTy:
		keys := make([][]byte, 0, len(chunks)-3)
		for _, c := range chunks[1 : len(chunks)-2] {
			keys = append(keys, c.Data)
		}
		return keys
	}
	return nil
}

// MultisigInfo describes a bare multisig script.
type MultisigInfo struct {
	RequiredSigs int
	NumPubKeys   int
	PubKeys      [][]byte
}

// MultisigInfo returns the parameters of a multisig script. It fails if the
// script is not shaped like one or the declared key count disagrees with the
// listed keys.
func (s *Script) MultisigInfo() (*MultisigInfo, error) {
	chunks, err := s.parse()
	if err != nil {
		return nil, err
	}
	if !isMultisigShape(chunks) {
		return nil, ErrNotMultisigScript
	}
	info := &MultisigInfo{
		RequiredSigs: asSmallInt(chunks[0].Op),
		NumPubKeys:   asSmallInt(chunks[len(chunks)-2].Op),
	}
	for _, c := range chunks[1 : len(chunks)-2] {
		info.PubKeys = append(info.PubKeys, c.Data)
	}
	if len(info.PubKeys) != info.NumPubKeys {
		return nil, ErrMultisigKeyCountMismatch
	}
	return info, nil
}

// signatures returns the signature pushes of an unlocking script shaped as a
// bare multisig spend (OP_0 <sig>...), a p2sh spend (OP_0 <sig>... <redeem>)
// or a p2pkh spend (<sig> <pubkey>).
func signatures(chunks []Chunk) [][]byte {
	l := len(chunks)
	var sigs [][]byte
	switch {
	case l > 0 && chunks[0].Op == OP0 && isP2SHSpend(chunks):
		for _, c := range chunks[1 : l-1] {
			sigs = append(sigs, c.Data)
		}
	case l > 0 && chunks[0].Op == OP0:
		for _, c := range chunks[1:] {
			sigs = append(sigs, c.Data)
		}
	case l == 2 && chunks[0].IsData() && chunks[1].IsData():
		sigs = append(sigs, chunks[0].Data)
	}
	return sigs
}

// isP2SHSpend reports whether the last push parses as a script of a known class.
func isP2SHSpend(chunks []Chunk) bool {
	last := chunks[len(chunks)-1]
	if !last.IsData() {
		return false
	}
	redeem, err := ParseChunks(last.Data)
	return err == nil && classify(redeem) != UnknownTy
}

// CountSignatures returns how many signatures an unlocking script carries.
func (s *Script) CountSignatures() int {
	chunks, err := s.parse()
	if err != nil {
		return 0
	}
	return len(signatures(chunks))
}

// HashTypeOfSignatures returns the hash type shared by every signature of an
// unlocking script. ok is false when there are no signatures or they disagree.
func (s *Script) HashTypeOfSignatures() (hashType SigHashType, ok bool) {
	chunks, err := s.parse()
	if err != nil {
		return 0, false
	}
	sigs := signatures(chunks)
	for i, sig := range sigs {
		if len(sig) == 0 {
			return 0, false
		}
		ht := SigHashType(sig[len(sig)-1])
		if i > 0 && ht != hashType {
			return 0, false
		}
		hashType = ht
	}
	return hashType, len(sigs) > 0
}

// ExtractAddress returns the address a pubkey, p2pkh or p2sh script pays to
// on the given network.
func (s *Script) ExtractAddress(net *chaincfg.Params) (types.Address, error) {
	chunks, err := s.parse()
	if err != nil {
		return nil, err
	}
	var addr types.Address
	switch classify(chunks) {
	case PubKeyTy:
		addr, err = types.NewAddressFromPubKey(chunks[0].Data, net)
	case PubKeyHashTy:
		addr, err = types.NewAddressPubKeyHash(chunks[2].Data, net)
	case ScriptHashTy:
		addr, err = types.NewAddressScriptHashFromHash(chunks[1].Data, net)
	default:
		return nil, ErrAddressNotApplicable
	}
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// GetSigOpCount returns the number of signature operations of the script,
// counting a CHECKMULTISIG as its key count when preceded by a small integer
// and as MaxPubKeysPerMultiSig otherwise.
func (s *Script) GetSigOpCount() int {
	chunks, _ := s.parse()
	n := 0
	lastOp := OPINVALIDOPCODE
	for _, c := range chunks {
		switch c.Op {
		case OPCHECKSIG, OPCHECKSIGVERIFY:
			n++
		case OPCHECKMULTISIG, OPCHECKMULTISIGVERIFY:
			if lastOp >= OP1 && lastOp <= OP16 {
				n += asSmallInt(lastOp)
			} else {
				n += MaxPubKeysPerMultiSig
			}
		}
		lastOp = c.Op
	}
	return n
}

