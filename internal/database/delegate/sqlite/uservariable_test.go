package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredCatalogHashRoundTrip(t *testing.T) {
	clearTestEnvironment()
	s := openedTestDelegate(t)

	if storedHash, err := s.GetStoredCatalogHash(); err != nil {
		t.Fatal(err)
	} else {
		assert.Empty(t, storedHash)
	}

	catalogHash := []byte{0x01, 0x02, 0x03}
	if err := s.SetStoredCatalogHash(catalogHash); err != nil {
		t.Fatal(err)
	}

	if storedHash, err := s.GetStoredCatalogHash(); err != nil {
		t.Fatal(err)
	} else {
		assert.Equal(t, catalogHash, storedHash)
	}

	s.Close()
	clearTestEnvironment()
}
