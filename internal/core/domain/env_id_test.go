package domain_test

import (
	"testing"

	"github.com/zbowling/depwise/internal/core/domain"
)

func TestFingerprint_Deterministic(t *testing.T) {
	dump := domain.NewImportDump()
	dump.Append(domain.CategoryStdlib, "json", "os")
	dump.Append(domain.CategorySitePackages, "numpy", "torch")

	id1 := domain.Fingerprint(dump)
	id2 := domain.Fingerprint(dump)
	if id1 != id2 {
		t.Errorf("Fingerprint() not deterministic: %s != %s", id1, id2)
	}
}

func TestFingerprint_Format(t *testing.T) {
	id := domain.Fingerprint(domain.NewImportDump())
	if len(id) != 16 {
		t.Errorf("Fingerprint() length = %d, want 16 (xxhash64 hex)", len(id))
	}
}

func TestFingerprint_ScanOrderIndependent(t *testing.T) {
	a := domain.NewImportDump()
	a.Append(domain.CategorySitePackages, "numpy", "torch")
	b := domain.NewImportDump()
	b.Append(domain.CategorySitePackages, "torch", "numpy")

	if domain.Fingerprint(a) != domain.Fingerprint(b) {
		t.Error("Fingerprint() should not depend on directory-scan order")
	}
}

func TestFingerprint_CategorySensitive(t *testing.T) {
	a := domain.NewImportDump()
	a.Append(domain.CategorySitePackages, "numpy")
	b := domain.NewImportDump()
	b.Append(domain.CategoryUserSitePackages, "numpy")

	if domain.Fingerprint(a) == domain.Fingerprint(b) {
		t.Error("Fingerprint() should distinguish which bucket a package is in")
	}
}

func TestFingerprint_ContentSensitive(t *testing.T) {
	a := domain.NewImportDump()
	a.Append(domain.CategoryStdlib, "os")
	b := domain.NewImportDump()
	b.Append(domain.CategoryStdlib, "sys")

	if domain.Fingerprint(a) == domain.Fingerprint(b) {
		t.Error("Fingerprint() produced same hash for different environments")
	}
}
