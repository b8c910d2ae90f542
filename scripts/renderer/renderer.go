package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const templateDir = "templates/"

//go:embed templates/*.tmpl
var tplFS embed.FS

var tplCache sync.Map

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// Render merges the named template file with data. Parsed templates are
// cached; rendering is otherwise stateless.
func Render(name TemplateName, data any) (string, error) {
	strName := string(name)

	if tVal, ok := tplCache.Load(strName); ok {
		return execute(tVal.(*template.Template), data)
	}

	path := templateDir + strName
	t, err := template.New(strName).
		Funcs(sprig.TxtFuncMap()).
		ParseFS(tplFS, path)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", path, err)
	}

	tplCache.Store(strName, t)

	return execute(t, data)
}

// MustRender is Render for synth-time callers, where a malformed template
// is programmer error.
func MustRender(name TemplateName, data any) string {
	s, err := Render(name, data)
	if err != nil {
		panic(err)
	}
	return s
}
