package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadImports(t *testing.T) {
	tests := []struct {
		imports, root, want string
	}{
		{"", "../", "\n"},
		{"main.css", "./", "\n" + `  <link rel="stylesheet" href="./css/main.css">`},
		{"reading.css tex.js", "../", "\n" +
			`  <link rel="stylesheet" href="../css/reading.css">` + "\n" +
			`  <script src="../js/tex.js"></script>`},
		{"  a.js\tb.js ", "", "\n" + `  <script src="js/a.js"></script>` + "\n" + `  <script src="js/b.js"></script>`},
	}
	for _, tt := range tests {
		got, err := HeadImports(tt.imports, tt.root)
		require.NoError(t, err, tt.imports)
		require.Equal(t, tt.want, got, tt.imports)
	}
}

func TestHeadImports_Unknown(t *testing.T) {
	_, err := HeadImports("main.css logo.png", "../")
	require.ErrorIs(t, err, ErrUnknownImport)
	require.ErrorContains(t, err, `"logo.png"`)
}
