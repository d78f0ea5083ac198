package fingerprint_test

import (
	"os"
	"path/filepath"

	"ami-publisher/fingerprint"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("File", func() {
	It("computes the sha256 hexdigest of the file contents", func() {
		path := filepath.Join(GinkgoT().TempDir(), "source.vmdk")
		err := os.WriteFile(path, []byte("hello"), 0600)
		Expect(err).ToNot(HaveOccurred())

		digest, err := fingerprint.File(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(digest).To(Equal("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"))
	})

	It("computes the same digest for the same contents at different paths", func() {
		dir := GinkgoT().TempDir()
		pathOne := filepath.Join(dir, "one.vmdk")
		pathTwo := filepath.Join(dir, "two.vmdk")
		Expect(os.WriteFile(pathOne, []byte("image-bytes"), 0600)).To(Succeed())
		Expect(os.WriteFile(pathTwo, []byte("image-bytes"), 0600)).To(Succeed())

		digestOne, err := fingerprint.File(pathOne)
		Expect(err).ToNot(HaveOccurred())
		digestTwo, err := fingerprint.File(pathTwo)
		Expect(err).ToNot(HaveOccurred())

		Expect(digestOne).To(Equal(digestTwo))
	})

	It("errors for a file that can not be opened", func() {
		_, err := fingerprint.File(filepath.Join(GinkgoT().TempDir(), "does-not-exist"))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("opening source file"))
	})
})

var _ = Describe("SnapshotName", func() {
	const sourceDigest = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	It("is the source digest itself when nothing requires a separate snapshot", func() {
		name := fingerprint.SnapshotName(sourceDigest, "img-a", false, nil)
		Expect(name).To(Equal(sourceDigest))
	})

	It("derives a different name for images with a separate snapshot", func() {
		name := fingerprint.SnapshotName(sourceDigest, "img-a", true, nil)
		Expect(name).ToNot(Equal(sourceDigest))
		Expect(name).To(HaveLen(64))
	})

	It("derives distinct names for different image names with separate snapshots", func() {
		nameA := fingerprint.SnapshotName(sourceDigest, "img-a", true, nil)
		nameB := fingerprint.SnapshotName(sourceDigest, "img-b", true, nil)
		Expect(nameA).ToNot(Equal(nameB))
	})

	It("is deterministic", func() {
		first := fingerprint.SnapshotName(sourceDigest, "img-a", true, []string{"bp-1"})
		second := fingerprint.SnapshotName(sourceDigest, "img-a", true, []string{"bp-1"})
		Expect(first).To(Equal(second))
	})

	It("derives a different name per billing product set", func() {
		without := fingerprint.SnapshotName(sourceDigest, "img-a", false, nil)
		withOne := fingerprint.SnapshotName(sourceDigest, "img-a", false, []string{"bp-1"})
		withTwo := fingerprint.SnapshotName(sourceDigest, "img-a", false, []string{"bp-1", "bp-2"})

		Expect(withOne).ToNot(Equal(without))
		Expect(withTwo).ToNot(Equal(without))
		Expect(withTwo).ToNot(Equal(withOne))
	})

	It("keeps billing products in configuration order", func() {
		ordered := fingerprint.SnapshotName(sourceDigest, "img-a", false, []string{"bp-1", "bp-2"})
		reversed := fingerprint.SnapshotName(sourceDigest, "img-a", false, []string{"bp-2", "bp-1"})
		Expect(ordered).ToNot(Equal(reversed))
	})

	It("shares the name between images without separate snapshots", func() {
		nameA := fingerprint.SnapshotName(sourceDigest, "img-a", false, nil)
		nameB := fingerprint.SnapshotName(sourceDigest, "img-b", false, nil)
		Expect(nameA).To(Equal(nameB))
	})
})
