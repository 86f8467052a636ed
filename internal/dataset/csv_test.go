package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := sampleDataset(t)
	require.NoError(t, WriteAll(dir, d))

	got, err := ReadAll(dir)
	require.NoError(t, err)

	require.Equal(t, d, got)
	require.NoError(t, got.Validate())
}

func TestWriteAll_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, WriteAll(dir, sampleDataset(t)))

	for _, name := range FileForTable {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestCSVLayout_Golden(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, sampleDataset(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	customers, err := os.ReadFile(filepath.Join(dir, CustomersFile))
	require.NoError(t, err)
	g.Assert(t, "customers_csv", customers)

	payments, err := os.ReadFile(filepath.Join(dir, PaymentsFile))
	require.NoError(t, err)
	g.Assert(t, "payments_csv", payments)
}

func TestRead_BadHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, sampleDataset(t)))

	path := filepath.Join(dir, CustomersFile)
	require.NoError(t, os.WriteFile(path, []byte("id,name,email,city,country\n"), 0o644))

	_, err := ReadCustomers(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestRead_MalformedRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ItemsFile)
	content := "item_id,order_id,product_id,quantity\nITEM000001,ORD000001,PROD00001,zero\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadItems(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad quantity")
}

func TestRead_RejectsInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ItemsFile)
	content := "item_id,order_id,product_id,quantity\nITEM000001,ORD000001,PROD00001,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Quantity 0 parses but fails model validation at construction time.
	_, err := ReadItems(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive quantity")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := ReadAll(t.TempDir())
	require.Error(t, err)
}
