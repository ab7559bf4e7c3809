// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package charset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// writeGBK encodes UTF-8 text as GBK bytes and writes it to a temp file.
func writeGBK(t *testing.T, text string) string {
	t.Helper()
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "input.htm")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadFileGBK(t *testing.T) {
	text := "<html><body><p>数据挖掘和数据分析</p></body></html>"
	path := writeGBK(t, text)

	content, used, err := ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, text, content)
	// cp936 is first in the default list and aliases to gbk.
	assert.Equal(t, "cp936", used)
}

func TestReadFileUTF8(t *testing.T) {
	text := "<p>复杂自然过程机理揭示</p>"
	path := filepath.Join(t.TempDir(), "input.htm")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	content, used, err := ReadFile(path, []string{"utf-8"})
	require.NoError(t, err)
	assert.Equal(t, text, content)
	assert.Equal(t, "utf-8", used)
}

func TestReadFileSkipsUnknownCandidates(t *testing.T) {
	text := "<p>plain ascii</p>"
	path := filepath.Join(t.TempDir(), "input.htm")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	content, used, err := ReadFile(path, []string{"no-such-charset", "utf-8"})
	require.NoError(t, err)
	assert.Equal(t, text, content)
	assert.Equal(t, "utf-8", used)
}

func TestReadFileNoUsableEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.htm")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, _, err := ReadFile(path, []string{"bogus", "also-bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable encoding")
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "absent.htm"), nil)
	require.Error(t, err)
}

func TestReadFileDropsUndecodableBytes(t *testing.T) {
	// 0xFF alone is not valid UTF-8; the lenient read drops it.
	path := filepath.Join(t.TempDir(), "input.htm")
	require.NoError(t, os.WriteFile(path, []byte("a\xffb"), 0o644))

	content, _, err := ReadFile(path, []string{"utf-8"})
	require.NoError(t, err)
	assert.Equal(t, "ab", content)
}
