package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBasic(t *testing.T) {
	path := writeTable(t, "ADM23247,AdminChange,addServer\nNET00017,NetworkEvent,linkDown\n")

	m := Load(path, zap.NewNop())
	require.Len(t, m, 2)

	typ, desc, ok := m.Lookup("ADM23247")
	require.True(t, ok)
	assert.Equal(t, "AdminChange", typ)
	assert.Equal(t, "addServer", desc)
}

func TestLoadTrimsFields(t *testing.T) {
	path := writeTable(t, " ADM23247 , AdminChange , addServer \n")
	m := Load(path, zap.NewNop())

	typ, desc, ok := m.Lookup("ADM23247")
	require.True(t, ok)
	assert.Equal(t, "AdminChange", typ)
	assert.Equal(t, "addServer", desc)
}

func TestLoadSkipsWrongColumnCount(t *testing.T) {
	path := writeTable(t, "TOO,FEW\nADM23247,AdminChange,addServer\nWAY,TOO,MANY,COLS\n")
	m := Load(path, zap.NewNop())
	assert.Len(t, m, 1)
}

func TestLoadSkipsEmptyCode(t *testing.T) {
	path := writeTable(t, " ,SomeType,SomeDesc\n")
	m := Load(path, zap.NewNop())
	assert.Empty(t, m)
}

func TestLoadDuplicateLastWins(t *testing.T) {
	path := writeTable(t, "ADM23247,First,one\nADM23247,Second,two\n")
	m := Load(path, zap.NewNop())

	typ, desc, ok := m.Lookup("ADM23247")
	require.True(t, ok)
	assert.Equal(t, "Second", typ)
	assert.Equal(t, "two", desc)
}

func TestLoadMissingFileReturnsEmptyMap(t *testing.T) {
	m := Load(filepath.Join(t.TempDir(), "nope.csv"), zap.NewNop())
	assert.NotNil(t, m)
	assert.Empty(t, m)

	_, _, ok := m.Lookup("ANY")
	assert.False(t, ok)
}
