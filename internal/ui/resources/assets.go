// Package resources provides static asset handling for the UI server.
package resources

import (
	"fmt"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// StaticPath returns the URL path for a static asset.
func StaticPath(name string) string {
	return "/static/" + name
}

var loaders = map[string]api.Loader{
	".css": api.LoaderCSS,
	".js":  api.LoaderJS,
}

// Minify shrinks a stylesheet or script with esbuild. Other files are
// returned unchanged.
func Minify(name string, src []byte) ([]byte, error) {
	loader, ok := loaders[path.Ext(name)]
	if !ok {
		return src, nil
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:            loader,
		Target:            api.ES2020,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Sourcefile:        name,
		LogLevel:          api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Text
		}
		return nil, fmt.Errorf("minify %s: %s", name, strings.Join(msgs, "; "))
	}
	return result.Code, nil
}
