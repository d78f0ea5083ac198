// Package fingerprint derives the content identifiers used as idempotency
// keys for every cloud resource the pipeline creates. The source file digest
// doubles as the S3 object key; the salted variant names snapshots that must
// be distinct even though the underlying bytes are identical.
package fingerprint

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// File computes the sha256 hexdigest of the file at path. The file is
// streamed through the hash so arbitrarily large images can be fingerprinted
// in constant memory.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening source file for fingerprinting: %s", err)
	}
	defer f.Close() //nolint:errcheck

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("fingerprinting %s: %s", path, err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// SnapshotName derives the snapshot name for an image from the source digest
// and the image configuration fields that require a separate snapshot.
//
// With no salting fields set the name is the source digest itself. With
// separateSnapshot set, the hexdigest of the image name is appended; each
// billing product appends its own hexdigest, in configuration order. The
// final name is then the hexdigest of the concatenation. Billing products
// are deliberately not sorted: already-published snapshots are keyed under
// the digest of the configured order.
func SnapshotName(sourceDigest string, imageName string, separateSnapshot bool, billingProducts []string) string {
	name := sourceDigest

	if separateSnapshot {
		name += hexdigest(imageName)
	}

	for _, bp := range billingProducts {
		name += hexdigest(bp)
	}

	if name == sourceDigest {
		return name
	}

	return hexdigest(name)
}

func hexdigest(s string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(s)))
}
