package gen

import "text/template"

type widthData struct {
	Header   string
	Build    string
	Package  string
	Filename string
	Width    int
	Asserts  []assertion
	Methods  []conversion
	Funcs    []conversion
}

// assertion holds two constant expressions that must be equal.
type assertion struct {
	A, B string
}

type conversion struct {
	Doc  string
	Recv string
	Sig  string
	Body string
}

type unsupportedData struct {
	Header   string
	Build    string
	Package  string
	Filename string
}

var widthTemplate = template.Must(template.New("width").Parse(`{{.Header}}

//go:build {{.Build}}

package {{.Package}}

import "unsafe"

// PointerWidth is the bit width of uint, int and uintptr on this target.
const PointerWidth = {{.Width}}

// Each array length below overflows uintptr unless its two operands are
// equal, so a target whose size types disagree with PointerWidth fails to
// compile.
var (
{{- range .Asserts}}
	_ [{{.A}} - {{.B}}]struct{}
	_ [{{.B}} - {{.A}}]struct{}
{{- end}}
)
{{range .Methods}}
// {{.Doc}}
func {{.Recv}}{{.Sig}} {
	return {{.Body}}
}
{{end}}{{range .Funcs}}
// {{.Doc}}
func {{.Sig}} {
	return {{.Body}}
}
{{end}}`))

var unsupportedTemplate = template.Must(template.New("unsupported").Parse(`{{.Header}}

//go:build {{.Build}}

package {{.Package}}

// No conversion table matches this target's pointer width. The undefined
// identifier below makes the build fail here.
const _ = sizecastUnsupportedPointerWidth
`))
