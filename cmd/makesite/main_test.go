package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ancientlore/makesite/site"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_OutputHoldsRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "makesite.cfg"), []byte(`output = "."`+"\n"), 0o644))

	err := run(root, "makesite.cfg", "", zap.NewNop())
	require.ErrorIs(t, err, site.ErrUnsafeOutput)
	require.FileExists(t, filepath.Join(root, "makesite.cfg"))
}

func TestRun_UnknownEngine(t *testing.T) {
	err := run(t.TempDir(), "makesite.cfg", "pandoc", zap.NewNop())
	require.ErrorContains(t, err, `unknown engine "pandoc"`)
}

func TestRun_AbsoluteOutputHoldsRelativeRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "site")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "keep.txt"), []byte("keep"), 0o644))
	cfg := fmt.Sprintf("output = %q\n", parent)
	require.NoError(t, os.WriteFile(filepath.Join(root, "makesite.cfg"), []byte(cfg), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	defer func() { require.NoError(t, os.Chdir(wd)) }()

	err = run(".", "makesite.cfg", "", zap.NewNop())
	require.ErrorIs(t, err, site.ErrUnsafeOutput)
	require.FileExists(t, filepath.Join(parent, "keep.txt"))
	require.FileExists(t, filepath.Join(root, "makesite.cfg"))
}

func TestOutputDir(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "site")

	out, err := outputDir(root, "_site")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "_site"), out)

	out, err = outputDir(root, filepath.Join(parent, "public"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(parent, "public"), out)

	out, err = outputDir(root, "../public")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(parent, "public"), out)

	for _, output := range []string{".", "..", parent, root, string(filepath.Separator)} {
		_, err = outputDir(root, output)
		require.ErrorIs(t, err, site.ErrUnsafeOutput, "output %q", output)
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	_, err = outputDir(".", filepath.Dir(wd))
	require.ErrorIs(t, err, site.ErrUnsafeOutput)
}
