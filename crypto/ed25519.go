// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/hdevalence/ed25519consensus"
)

// A Seed holds the entropy needed to generate cryptographic keys.
type Seed [ed25519.SeedSize]byte

// A Signature is a cryptographic signature. It proves that a message was
// produced by a holder of a cryptographic secret.
type Signature [ed25519.SignatureSize]byte

// BlankSignature is an empty signature structure, containing nothing but zeroes
var BlankSignature = Signature{}

// A PublicKey is a cryptographic public key that can verify signatures.
type PublicKey [ed25519.PublicKeySize]byte

// A PrivateKey is a seed followed by its public key, the layout used by
// keypair files.
type PrivateKey [ed25519.PrivateKeySize]byte

// SignatureVerifier is a public key for signatures
type SignatureVerifier = PublicKey

// SignatureSecrets are used by an entity to produce unforgeable signatures over
// a message.
type SignatureSecrets struct {
	SignatureVerifier
	SK PrivateKey
}

// ErrBadSignature represents a bad signature
var ErrBadSignature = errors.New("invalid signature")

// GenerateSignatureSecrets creates SignatureSecrets from a source of entropy.
func GenerateSignatureSecrets(seed Seed) *SignatureSecrets {
	sk := ed25519.NewKeyFromSeed(seed[:])
	s := &SignatureSecrets{}
	copy(s.SK[:], sk)
	copy(s.SignatureVerifier[:], sk[ed25519.SeedSize:])
	return s
}

// SecretsFromPrivateKey rebuilds SignatureSecrets from a 64-byte private key and
// checks that its public half matches the seed.
func SecretsFromPrivateKey(raw []byte) (*SignatureSecrets, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key has %d bytes, expected %d", len(raw), ed25519.PrivateKeySize)
	}
	var seed Seed
	copy(seed[:], raw[:ed25519.SeedSize])
	s := GenerateSignatureSecrets(seed)
	if string(s.SignatureVerifier[:]) != string(raw[ed25519.SeedSize:]) {
		return nil, errors.New("private key public half does not match its seed")
	}
	return s, nil
}

// Sign produces a cryptographic Signature of a Hashable message, given
// cryptographic secrets.
func (s *SignatureSecrets) Sign(message Hashable) Signature {
	return s.SignBytes(HashRep(message))
}

// SignBytes signs a message directly, without first hashing.
func (s *SignatureSecrets) SignBytes(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(s.SK[:], message))
	return sig
}

// Verify verifies that some holder of a cryptographic secret authentically
// signed a Hashable message.
func (v SignatureVerifier) Verify(message Hashable, sig Signature) bool {
	return v.VerifyBytes(HashRep(message), sig)
}

// VerifyBytes verifies a signature over a raw message with the ZIP-215
// validation rules.
func (v SignatureVerifier) VerifyBytes(message []byte, sig Signature) bool {
	return ed25519consensus.Verify(v[:], message, sig[:])
}
