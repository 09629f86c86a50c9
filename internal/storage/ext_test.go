package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtOK(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"a.json", true},
		{"a.JSON", true},
		{"report.txt", true},
		{"scan.pdf", true},
		{"a.exe", false},
		{"noext", false},
		{"trailingdot.", false},
		{"", false},
		{"archive.tar.gz", false},
		{"nested.name.txt", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtOK(tc.filename), "filename %q", tc.filename)
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, "json", Ext("a.JSON"))
	assert.Equal(t, "txt", Ext("some.file.txt"))
	assert.Equal(t, "", Ext("noext"))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("u1", "a/b.txt")
	assert.Contains(t, key, "users/u1/")
	assert.Contains(t, key, "_a_b.txt")
	assert.NotContains(t, key[len("users/u1/"):], "/b.txt")

	// random suffix keeps keys unique per upload
	assert.NotEqual(t, key, ObjectKey("u1", "a/b.txt"))
}
