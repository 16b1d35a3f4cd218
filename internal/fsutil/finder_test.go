package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/testutil"
)

var jinFilter = Filter{Prefix: "Jin", Extension: ".x3d"}

func TestFilter_Match(t *testing.T) {
	testCases := []struct {
		name  string
		match bool
	}{
		{"JinAB.x3d", true},
		{"JinAB.X3D", true},
		{"JinAB.X3d", true},
		{"jinAB.x3d", false},
		{"AnnAB.x3d", false},
		{"JinAB.x3dv", false},
		{"JinAB.x3d.bak", false},
		{"JinAB", false},
		{"Jin.x3d", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.match, jinFilter.Match(tc.name))
		})
	}

	// The extension may be given without its leading dot.
	assert.True(t, Filter{Prefix: "Jin", Extension: "x3d"}.Match("JinAB.x3d"))
}

func TestFindAssets_MixedTree(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	fsys := fstest.MapFS{
		"JinB.x3d":               {},
		"JinA.X3D":               {},
		"notes.txt":              {},
		"AnnA.x3d":               {},
		"deep/er/still/JinC.x3d": {},
		"deep/JinD.png":          {},
		"deep/er/JinE.x3d":       {},
		"Jin.x3d/child.txt":      {},
	}

	files, err := FindAssets(ctx, fsys, jinFilter)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"JinA.X3D",
		"JinB.x3d",
		"deep/er/JinE.x3d",
		"deep/er/still/JinC.x3d",
	}, files)
}

func TestFindAssets_Deterministic(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	fsys := fstest.MapFS{
		"b/Jin2.x3d": {},
		"a/Jin9.x3d": {},
		"Jin5.x3d":   {},
	}
	first, err := FindAssets(ctx, fsys, jinFilter)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := FindAssets(ctx, fsys, jinFilter)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"Jin5.x3d", "a/Jin9.x3d", "b/Jin2.x3d"}, first)
}

func TestFindAssets_EmptyTree(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	files, err := FindAssets(ctx, fstest.MapFS{"readme.md": {}}, jinFilter)
	require.NoError(t, err)
	assert.Empty(t, files)
}

// brokenFS fails to list one directory.
type brokenFS struct {
	fstest.MapFS
	broken string
}

func (b brokenFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == b.broken {
		return nil, fs.ErrPermission
	}
	return b.MapFS.ReadDir(name)
}

func TestFindAssets_UnreadableDirectory(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	fsys := brokenFS{
		MapFS: fstest.MapFS{
			"ok/JinA.x3d":     {},
			"locked/JinB.x3d": {},
		},
		broken: "locked",
	}

	files, err := FindAssets(ctx, fsys, jinFilter)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "locked", ioErr.Path)
}

func TestFindAssets_InvalidFilter(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	_, err := FindAssets(ctx, fstest.MapFS{}, Filter{Prefix: "", Extension: ".x3d"})
	assert.True(t, errors.Is(err, config.ErrInvalidInput))

	_, err = FindAssets(ctx, fstest.MapFS{}, Filter{Prefix: "Jin", Extension: ""})
	assert.True(t, errors.Is(err, config.ErrInvalidInput))
}

func TestScanDir(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, testutil.AssetFiles(
		"JinAB.x3d",
		"sub/JinCD.X3D",
		"sub/deeper/JinEF.x3d",
		"sub/AnnAB.x3d",
		"JinGH.txt",
	))

	assets, err := ScanDir(ctx, root, jinFilter)
	require.NoError(t, err)

	base := filepath.ToSlash(root)
	assert.Equal(t, []string{
		base + "/JinAB.x3d",
		base + "/sub/JinCD.X3D",
		base + "/sub/deeper/JinEF.x3d",
	}, assets)
	for _, a := range assets {
		assert.NotContains(t, a, `\`)
	}
}

func TestScanDir_MissingRoot(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	_, err := ScanDir(ctx, filepath.Join(t.TempDir(), "missing"), jinFilter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestScanDir_RootIsFile(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, testutil.AssetFiles("JinAB.x3d"))
	_, err := ScanDir(ctx, filepath.Join(root, "JinAB.x3d"), jinFilter)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestScanDir_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced here")
	}
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, testutil.AssetFiles("JinAB.x3d", "locked/JinCD.x3d"))
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := ScanDir(ctx, root, jinFilter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "locked")
}

func TestScanDir_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges here")
	}
	ctx, _ := testutil.NewContext(t)
	outside := testutil.WriteTree(t, testutil.AssetFiles("JinAB.x3d", "nested/JinEF.x3d"))
	root := testutil.WriteTree(t, testutil.AssetFiles("JinCD.x3d", "real/JinGH.x3d"))

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "JinGH.x3d"), filepath.Join(root, "JinIJ.x3d")))
	// A link back up the tree must not recurse forever.
	require.NoError(t, os.Symlink(root, filepath.Join(root, "real", "loop")))

	assets, err := ScanDir(ctx, root, jinFilter)
	require.NoError(t, err)

	base := filepath.ToSlash(root)
	assert.Equal(t, []string{
		base + "/JinCD.x3d",
		base + "/JinIJ.x3d",
		base + "/linked/JinAB.x3d",
		base + "/linked/nested/JinEF.x3d",
		base + "/real/JinGH.x3d",
	}, assets)
}

func TestScanDir_DanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges here")
	}
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, testutil.AssetFiles("JinCD.x3d"))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "JinXY.x3d")))

	_, err := ScanDir(ctx, root, jinFilter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "JinXY.x3d")
}
