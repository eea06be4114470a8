package usecase

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUnresolvedReport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports", "unresolved_teams.json")

	written, err := WriteUnresolvedReport(path, nil)
	require.NoError(t, err)
	assert.False(t, written)
	assert.NoFileExists(t, path)

	rows := []UnresolvedRow{
		{Row: 4, HomeName: "Nowhere United", AwayName: "Fenerbahçe", AwayID: int64Ptr(12)},
	}
	written, err = WriteUnresolvedReport(path, rows)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.EqualValues(t, 4, decoded[0]["row"])
	assert.Equal(t, "Nowhere United", decoded[0]["homeName"])
	assert.Nil(t, decoded[0]["homeId"])
	assert.EqualValues(t, 12, decoded[0]["awayId"])
	assert.Contains(t, string(data), "\n  ", "report is indented for operators")
}

func TestWriteFailureReport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "import_failures.csv")
	written, err := WriteFailureReport(path, []FailedRow{
		{Row: 2, Reason: "missing core fields", Cells: map[string]string{"Ülke": "Türkiye"}},
		{Row: 9, Reason: "create player: timeout", Cells: map[string]string{"Soyadı": "Yılmaz", "Ülke": "Türkiye"}},
	})
	require.NoError(t, err)
	require.True(t, written)

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"row", "reason", "Soyadı", "Ülke"},
		{"2", "missing core fields", "", "Türkiye"},
		{"9", "create player: timeout", "Yılmaz", "Türkiye"},
	}, records)
}
