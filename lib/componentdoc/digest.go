// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest of resolved documentation. Equal
// digests mean byte-identical content, which lets an agent tell whether
// a component's documentation changed between two resolutions without
// comparing the documents.
type Digest [32]byte

// String returns the lowercase hex encoding of the digest.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// Short returns the first 12 hex characters, for display.
func (digest Digest) Short() string {
	return digest.String()[:12]
}

// Domain separation keys for BLAKE3 keyed hashing: the ASCII domain
// name, zero-padded to 32 bytes. Artifact text and schema JSON never
// share a digest even when their bytes coincide.
var (
	artifactDomainKey = [32]byte{
		'd', 'e', 's', 'i', 'g', 'n', 'd', 'o', 'c', '.',
		'a', 'r', 't', 'i', 'f', 'a', 'c', 't',
	}

	schemaDomainKey = [32]byte{
		'd', 'e', 's', 'i', 'g', 'n', 'd', 'o', 'c', '.',
		'p', 'r', 'o', 'p', 's', 'c', 'h', 'e', 'm', 'a',
	}
)

func keyedDigest(key [32]byte, data []byte) Digest {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		// NewKeyed only fails for keys that are not 32 bytes.
		panic("componentdoc: BLAKE3 keyed hasher: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}
