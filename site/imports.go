package site

import (
	"fmt"
	"strings"
)

// HeadImports turns a space separated list of asset names into the tags that load
// them: ".js" files become script tags under root+"js/", ".css" files become
// stylesheet links under root+"css/".
func HeadImports(imports, root string) (string, error) {
	var lines []string
	for _, token := range strings.Fields(imports) {
		switch {
		case strings.HasSuffix(token, ".js"):
			lines = append(lines, fmt.Sprintf(`  <script src="%sjs/%s"></script>`, root, token))
		case strings.HasSuffix(token, ".css"):
			lines = append(lines, fmt.Sprintf(`  <link rel="stylesheet" href="%scss/%s">`, root, token))
		default:
			return "", fmt.Errorf("%w %q in %q", ErrUnknownImport, token, imports)
		}
	}
	return "\n" + strings.Join(lines, "\n"), nil
}
