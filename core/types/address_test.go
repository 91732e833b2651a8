// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/util"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/facebookgo/ensure"
)

const genesisPubKeyHex = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"

func TestNewAddressPubKeyHash(t *testing.T) {
	pkHash, err := util.FromHex("62e907b15cbf27d5425399ebf6f0fb50ebb88f18")
	ensure.Nil(t, err)

	addr, err := NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, addr.String(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	ensure.DeepEqual(t, addr.ScriptAddress(), pkHash)

	pubKey, err := util.FromHex(genesisPubKeyHex)
	ensure.Nil(t, err)
	fromKey, err := NewAddressFromPubKey(pubKey, &chaincfg.MainNetParams)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, fromKey, addr)

	_, err = NewAddressPubKeyHash(pkHash[:19], &chaincfg.MainNetParams)
	ensure.DeepEqual(t, err, ErrInvalidPKHash)
}

func TestDecodeAddress(t *testing.T) {
	hash := crypto.Hash160([]byte("redeem"))
	p2sh, err := NewAddressScriptHash([]byte("redeem"), &chaincfg.MainNetParams)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, p2sh.ScriptAddress(), hash)
	ensure.DeepEqual(t, p2sh.String()[0], byte('3'))

	testnet, err := NewAddressPubKeyHash(hash, &chaincfg.TestNet3Params)
	ensure.Nil(t, err)
	first := testnet.String()[0]
	ensure.True(t, first == 'm' || first == 'n')

	tests := []struct {
		name string
		addr string
		net  *chaincfg.Params
		want Address
		err  error
	}{
		{"p2sh mainnet", p2sh.String(), &chaincfg.MainNetParams, p2sh, nil},
		{"p2pkh testnet", testnet.String(), &chaincfg.TestNet3Params, testnet, nil},
		{"wrong network", testnet.String(), &chaincfg.MainNetParams, nil, ErrUnknownAddressType},
		{"bad checksum", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb", &chaincfg.MainNetParams, nil, crypto.ErrInvalidBase58Checksum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAddress(tt.addr, tt.net)
			ensure.DeepEqual(t, err, tt.err)
			if tt.err == nil {
				ensure.DeepEqual(t, got, tt.want)
			}
		})
	}
}

func TestNetParams(t *testing.T) {
	net, ok := NetParams("")
	ensure.True(t, ok)
	ensure.DeepEqual(t, net.Name, chaincfg.MainNetParams.Name)
	net, ok = NetParams("testnet")
	ensure.True(t, ok)
	ensure.DeepEqual(t, net.Name, chaincfg.TestNet3Params.Name)
	_, ok = NetParams("nonet")
	ensure.False(t, ok)
}
