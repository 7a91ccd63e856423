// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"bytes"
	"encoding/json"
)

// Artifact is one documentation artifact that was found.
type Artifact struct {
	Candidate
	Content string `json:"content"`
}

// Digest returns the BLAKE3 digest of the artifact content.
func (artifact Artifact) Digest() Digest {
	return keyedDigest(artifactDomainKey, []byte(artifact.Content))
}

// ArtifactSet is the result of full-document resolution: every
// artifact that was found for one component, in candidate order. A
// resolver never returns an empty ArtifactSet; finding nothing is a
// [*NotFoundError].
type ArtifactSet struct {
	// Component is the requested component name.
	Component string

	// Artifacts holds the found artifacts in candidate order.
	Artifacts []Artifact
}

// Len returns the number of artifacts in the set.
func (set *ArtifactSet) Len() int {
	return len(set.Artifacts)
}

// Paths returns the artifact locations in order.
func (set *ArtifactSet) Paths() []string {
	paths := make([]string, len(set.Artifacts))
	for i, artifact := range set.Artifacts {
		paths[i] = artifact.Path
	}
	return paths
}

// Content returns the content stored at path and whether the set holds
// an artifact there.
func (set *ArtifactSet) Content(path string) (string, bool) {
	for _, artifact := range set.Artifacts {
		if artifact.Path == path {
			return artifact.Content, true
		}
	}
	return "", false
}

// Kind returns the first artifact of the given kind in candidate order:
// the component-category artifact when both categories have one.
func (set *ArtifactSet) Kind(kind ArtifactKind) (Artifact, bool) {
	for _, artifact := range set.Artifacts {
		if artifact.Kind == kind {
			return artifact, true
		}
	}
	return Artifact{}, false
}

// MarshalJSON encodes the set as a JSON object mapping each location to
// its content, with keys in candidate order.
func (set *ArtifactSet) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, artifact := range set.Artifacts {
		if i > 0 {
			buffer.WriteByte(',')
		}
		if err := writeJSONMember(&buffer, artifact.Path, artifact.Content); err != nil {
			return nil, err
		}
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// writeJSONMember writes `"key":value` to buffer.
func writeJSONMember(buffer *bytes.Buffer, key string, value any) error {
	encodedKey, err := json.Marshal(key)
	if err != nil {
		return err
	}
	encodedValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buffer.Write(encodedKey)
	buffer.WriteByte(':')
	buffer.Write(encodedValue)
	return nil
}
