package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLocalStorageCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "archivos")

	store, err := NewLocalStorage(base)
	assert.Nil(t, err)
	assert.NotNil(t, store)

	info, err := os.Stat(base)
	assert.Nil(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveBytesLayout(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.Nil(t, err)

	relPath, err := store.SaveBytes([]byte("contenido"), "recibo.pdf", "recibos")
	assert.Nil(t, err)

	// recibos/2006/01/recibo_xxxxxxxx.pdf
	wantPrefix := filepath.Join("recibos", time.Now().Format("2006/01")) + string(filepath.Separator)
	assert.True(t, strings.HasPrefix(relPath, wantPrefix), "ruta inesperada: %s", relPath)
	assert.True(t, strings.HasPrefix(filepath.Base(relPath), "recibo_"))
	assert.Equal(t, ".pdf", filepath.Ext(relPath))

	data, err := os.ReadFile(store.FullPath(relPath))
	assert.Nil(t, err)
	assert.Equal(t, []byte("contenido"), data)
}

func TestSaveBytesUniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.Nil(t, err)

	first, err := store.SaveBytes([]byte("a"), "bitacora.csv", "exportes")
	assert.Nil(t, err)
	second, err := store.SaveBytes([]byte("b"), "bitacora.csv", "exportes")
	assert.Nil(t, err)

	assert.NotEqual(t, first, second)
}

func TestOpenAndExists(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.Nil(t, err)

	relPath, err := store.SaveBytes([]byte("planilla"), "nomina.xlsx", "exportes")
	assert.Nil(t, err)

	assert.True(t, store.Exists(relPath))
	assert.False(t, store.Exists(filepath.Join("exportes", "no-existe.xlsx")))

	f, err := store.Open(relPath)
	assert.Nil(t, err)
	assert.Nil(t, f.Close())
}
