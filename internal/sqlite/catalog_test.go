package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

func attached(t *testing.T) (*Catalog, string) {
	t.Helper()
	dir := t.TempDir()
	c := NewCatalog()
	require.NoError(t, c.Attach(types.CatalogConfig{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { _ = c.Detach() })
	return c, dir
}

func record(name, typ string, reduction any) types.TransmissionInfo {
	return types.TransmissionInfo{
		Name:      name,
		Type:      typ,
		Joints:    []types.JointInfo{{Name: name + "_joint", Role: "joint1"}},
		Actuators: []types.ActuatorInfo{{Name: name + "_motor", MechanicalReduction: reduction}},
	}
}

const simpleType = "transmission_interface/SimpleTransmission"

func TestCatalogAttach(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog()
	cfg := types.CatalogConfig{Backend: types.BackendSQLite, DataDir: filepath.Join(dir, "nested")}

	require.NoError(t, c.Attach(cfg))
	assert.FileExists(t, filepath.Join(dir, "nested", "catalog.db"))
	assert.FileExists(t, filepath.Join(dir, "nested", transmissionsJSONL))
	assert.ErrorIs(t, c.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, c.Detach())
	require.NoError(t, c.Detach())
}

func TestCatalogAttachRejectsBadConfig(t *testing.T) {
	c := NewCatalog()
	assert.ErrorIs(t, c.Attach(types.CatalogConfig{DataDir: t.TempDir()}), types.ErrBackendEmpty)
	assert.ErrorIs(t, c.Attach(types.CatalogConfig{Backend: "dolt", DataDir: t.TempDir()}), types.ErrBackendUnknown)
}

func TestCatalogDetached(t *testing.T) {
	c := NewCatalog()
	_, err := c.Save(record("a", simpleType, 1))
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
	_, err = c.Get("x")
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
	_, err = c.GetByName("a")
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
	_, err = c.List("")
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
	assert.ErrorIs(t, c.Delete("x"), types.ErrCatalogDetached)
	_, err = c.Export(filepath.Join(t.TempDir(), "out.jsonl"))
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
}

func TestCatalogSaveAndGet(t *testing.T) {
	c, _ := attached(t)

	entry, err := c.Save(record("elbow", simpleType, "325.949"))
	require.NoError(t, err)
	assert.Len(t, entry.ID, 36)
	assert.False(t, entry.CreatedAt.IsZero())

	got, err := c.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "elbow", got.Info.Name)
	assert.Equal(t, "325.949", got.Info.Actuators[0].MechanicalReduction)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))

	byName, err := c.GetByName("elbow")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, byName.ID)

	_, err = c.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
	_, err = c.Get("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = c.GetByName("knee")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCatalogSaveReplacesByName(t *testing.T) {
	c, _ := attached(t)

	first, err := c.Save(record("wrist", simpleType, 10))
	require.NoError(t, err)
	second, err := c.Save(record("wrist", simpleType, 20))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))

	entries, err := c.List("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(20), entries[0].Info.Actuators[0].MechanicalReduction)
}

func TestCatalogSaveValidates(t *testing.T) {
	c, _ := attached(t)
	_, err := c.Save(types.TransmissionInfo{Type: simpleType})
	assert.ErrorIs(t, err, types.ErrNameEmpty)

	info := record("dup", simpleType, 1)
	info.Joints = append(info.Joints, info.Joints[0])
	_, err = c.Save(info)
	assert.ErrorIs(t, err, types.ErrDuplicateJoint)
}

func TestCatalogListFilterAndOrder(t *testing.T) {
	c, _ := attached(t)
	for _, info := range []types.TransmissionInfo{
		record("wrist", "transmission_interface/DifferentialTransmission", 1),
		record("elbow", simpleType, 1),
		record("ankle", simpleType, 1),
	} {
		_, err := c.Save(info)
		require.NoError(t, err)
	}

	all, err := c.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ankle", all[0].Info.Name)
	assert.Equal(t, "wrist", all[2].Info.Name)

	simple, err := c.List(simpleType)
	require.NoError(t, err)
	assert.Len(t, simple, 2)
}

func TestCatalogDelete(t *testing.T) {
	c, _ := attached(t)
	entry, err := c.Save(record("hip", simpleType, 1))
	require.NoError(t, err)

	require.NoError(t, c.Delete(entry.ID))
	assert.ErrorIs(t, c.Delete(entry.ID), types.ErrNotFound)
	assert.ErrorIs(t, c.Delete(""), types.ErrInvalidID)

	_, err = c.Get(entry.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCatalogPersistsAcrossAttach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.CatalogConfig{Backend: types.BackendSQLite, DataDir: dir}

	c := NewCatalog()
	require.NoError(t, c.Attach(cfg))
	entry, err := c.Save(record("shoulder", simpleType, 100))
	require.NoError(t, err)
	require.NoError(t, c.Detach())

	data, err := os.ReadFile(filepath.Join(dir, transmissionsJSONL))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transmission_id":"`+entry.ID+`"`)

	c = NewCatalog()
	require.NoError(t, c.Attach(cfg))
	defer c.Detach()
	got, err := c.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "shoulder", got.Info.Name)
}

func TestCatalogSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog()
	cfg := types.CatalogConfig{Backend: types.BackendSQLite, DataDir: dir}
	require.NoError(t, c.Attach(cfg))
	entry, err := c.Save(record("knee", simpleType, 1))
	require.NoError(t, err)
	require.NoError(t, c.Detach())

	path := filepath.Join(dir, transmissionsJSONL)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	corrupt := "{not json\n" + string(data) + `{"transmission_id":"x","info":{"name":""}}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0o644))

	require.NoError(t, c.Attach(cfg))
	defer c.Detach()
	entries, err := c.List("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestCatalogExportImport(t *testing.T) {
	src, _ := attached(t)
	for _, name := range []string{"a", "b"} {
		_, err := src.Save(record(name, simpleType, 2))
		require.NoError(t, err)
	}
	out := filepath.Join(t.TempDir(), "export.jsonl")
	n, err := src.Export(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)

	dst, _ := attached(t)
	n, err = dst.Import(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := dst.List("")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCatalogImportBareRecords(t *testing.T) {
	c, _ := attached(t)
	path := filepath.Join(t.TempDir(), "records.jsonl")
	lines := `{"name":"finger","type":"transmission_interface/FourBarLinkageTransmission","joints":[],"actuators":[]}
garbage
{"name":"","type":"x"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	n, err := c.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = c.GetByName("finger")
	assert.NoError(t, err)

	_, err = c.Import(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONLAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jsonl")
	require.NoError(t, writeJSONL(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	matches, err := filepath.Glob(filepath.Join(dir, ".jsonl-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
