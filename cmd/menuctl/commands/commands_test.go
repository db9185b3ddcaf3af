package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestInitDBSeedsOnce(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dbPath := filepath.Join(t.TempDir(), "menu.db")

	out := run(t, "init-db", "--driver", "sqlite", "--database-url", dbPath)
	assert.Contains(t, out, "Seeded 3 menus, 2 categories, 2 dishes")

	out = run(t, "init-db", "--driver", "sqlite", "--database-url", dbPath)
	assert.Contains(t, out, "catalog left unchanged")
}

func TestSeedFromFileAndExport(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "menu.db")

	seedPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`phone: "+7 700 000 00 00"
menus:
  - slug: lunch
    title_ru: Обед
    title_kz: Түскі ас
    title_en: Lunch
    categories:
      - slug: soups
        name_ru: Супы
        name_kz: Сорпалар
        name_en: Soups
        dishes:
          - slug: borscht
            title_ru: Борщ
            title_kz: Борщ
            title_en: Borscht
            price: 2500
`), 0o644))

	out := run(t, "seed", "--file", seedPath, "--driver", "sqlite", "--database-url", dbPath)
	assert.Contains(t, out, "Seeded 1 menus, 1 categories, 1 dishes")

	xlsx := filepath.Join(dir, "out", "catalog.xlsx")
	out = run(t, "export", "--out", xlsx, "--driver", "sqlite", "--database-url", dbPath)
	assert.Contains(t, out, "Exported 1 menus, 1 categories, 1 dishes")

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Dishes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "borscht")
}

func TestMigrate(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	out := run(t, "migrate", "--driver", "sqlite", "--database-url", filepath.Join(t.TempDir(), "menu.db"))
	assert.Contains(t, out, "Migrations applied")
}

func TestSweepUploads(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0o755))
	orphan := filepath.Join(uploads, "orphan.png")
	require.NoError(t, os.WriteFile(orphan, []byte("x"), 0o644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(orphan, old, old))

	t.Setenv("UPLOAD_DIR", uploads)
	t.Setenv("UPLOAD_SWEEP_GRACE", "1h")

	out := run(t, "sweep-uploads", "--driver", "sqlite", "--database-url", filepath.Join(dir, "menu.db"))
	assert.Contains(t, out, "SUCCESS, 1 files removed")
	_, err := os.Stat(orphan)
	assert.True(t, os.IsNotExist(err))
}
