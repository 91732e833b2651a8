// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/btcsuite/btcd/chaincfg"
)

// Address is an interface type for any type of destination a transaction output may spend to.
type Address interface {
	String() string
	EncodeAddress() string
	ScriptAddress() []byte
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH) transaction.
type AddressPubKeyHash struct {
	hash  [crypto.Hash160Size]byte
	netID byte
}

var _ Address = (*AddressPubKeyHash)(nil)

// NewAddressPubKeyHash returns a new AddressPubKeyHash. pkHash must be 20 bytes.
func NewAddressPubKeyHash(pkHash []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	if len(pkHash) != crypto.Hash160Size {
		return nil, ErrInvalidPKHash
	}
	addr := &AddressPubKeyHash{netID: net.PubKeyHashAddrID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressFromPubKey returns the pay-to-pubkey-hash address of a serialized
// public key, hashing the bytes exactly as given.
func NewAddressFromPubKey(pubKey []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	return NewAddressPubKeyHash(crypto.Hash160(pubKey), net)
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash address.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return crypto.Base58CheckEncodeVersion(a.netID, a.hash[:])
}

// ScriptAddress returns the bytes to be included in a txout script to pay to a pubkey hash.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH) transaction.
type AddressScriptHash struct {
	hash  [crypto.Hash160Size]byte
	netID byte
}

var _ Address = (*AddressScriptHash)(nil)

// NewAddressScriptHash returns the P2SH address of a serialized redeem script.
func NewAddressScriptHash(redeemScript []byte, net *chaincfg.Params) (*AddressScriptHash, error) {
	return NewAddressScriptHashFromHash(crypto.Hash160(redeemScript), net)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash. scriptHash must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, net *chaincfg.Params) (*AddressScriptHash, error) {
	if len(scriptHash) != crypto.Hash160Size {
		return nil, ErrInvalidScriptHash
	}
	addr := &AddressScriptHash{netID: net.ScriptHashAddrID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-script-hash address.
func (a *AddressScriptHash) EncodeAddress() string {
	return crypto.Base58CheckEncodeVersion(a.netID, a.hash[:])
}

// ScriptAddress returns the bytes to be included in a txout script to pay to a script hash.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// String returns a human-readable string for the pay-to-script-hash address.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// DecodeAddress decodes the Base58Check encoding of an address for the given
// network.
func DecodeAddress(addr string, net *chaincfg.Params) (Address, error) {
	version, payload, err := crypto.Base58CheckDecodeVersion(addr)
	if err != nil {
		return nil, err
	}
	if len(payload) != crypto.Hash160Size {
		return nil, ErrInvalidAddressLength
	}
	switch version {
	case net.PubKeyHashAddrID:
		return NewAddressPubKeyHash(payload, net)
	case net.ScriptHashAddrID:
		return NewAddressScriptHashFromHash(payload, net)
	default:
		return nil, ErrUnknownAddressType
	}
}

// NetParams returns the chain parameters registered under name. Accepted
// names are mainnet, testnet, regtest and simnet.
func NetParams(name string) (*chaincfg.Params, bool) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, true
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, true
	case "regtest":
		return &chaincfg.RegressionNetParams, true
	case "simnet":
		return &chaincfg.SimNetParams, true
	}
	return nil, false
}
