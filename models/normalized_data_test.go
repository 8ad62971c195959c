package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedDocumentDataMerge(t *testing.T) {
	base := NormalizedDocumentData{
		CaseNumber: "2:21-cv-04567",
		Court:      "Superior Court of California",
		Judge:      "Hon. Smith",
	}

	t.Run("newer non-empty fields win", func(t *testing.T) {
		merged := base.Merge(NormalizedDocumentData{
			CaseNumber: "CR12345678",
			State:      "CA",
		})
		assert.Equal(t, "CR12345678", merged.CaseNumber)
		assert.Equal(t, "CA", merged.State)
		// Fields the newer data does not carry are preserved
		assert.Equal(t, "Superior Court of California", merged.Court)
		assert.Equal(t, "Hon. Smith", merged.Judge)
	})

	t.Run("empty fields never clobber", func(t *testing.T) {
		merged := base.Merge(NormalizedDocumentData{})
		assert.Equal(t, base, merged)
	})

	t.Run("merge does not mutate the receiver", func(t *testing.T) {
		_ = base.Merge(NormalizedDocumentData{CaseNumber: "other"})
		assert.Equal(t, "2:21-cv-04567", base.CaseNumber)
	})
}

func TestStringListScan(t *testing.T) {
	var l StringList
	assert.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	var empty StringList
	assert.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
