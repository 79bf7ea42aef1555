package aip

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"sort"
	"text/template"

	"github.com/hetarchief/aip-services/models/sip"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// METSContext is everything the METS template needs to render one package
// document.
type METSContext struct {
	SidecarVersion  string
	CreateDate      string
	Profile         string
	PID             string
	Files           []*FileEntry
	DMDSections     []*DMDSection
	Entity          *sip.IntellectualEntity
	Events          []*PremisEventRecord
	ArchiveLocation string
	Sidecar         Mapping
}

// Renderer turns a render context into the METS document string. The
// production implementation is template-based; tests swap in stubs.
type Renderer interface {
	Render(name string, data *METSContext) (string, error)
}

// TemplateRenderer renders the embedded templates with text/template. XML
// escaping is explicit in the template via the xml function, so the
// html/template auto-escaper is not needed.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	templates, err := template.New("mets").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(name string, data *METSContext) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"xml": escapeXML,
		"str": stringify,
		"nl": func(strings []sip.LangString) string {
			value, _ := NLString(strings)
			return value
		},
		"notNil":     func(v interface{}) bool { return v != nil },
		"sortedKeys": sortedKeys,
		"get":        func(m Mapping, key string) interface{} { return m[key] },
		"mapping": func(v interface{}) Mapping {
			if m, ok := v.(Mapping); ok {
				return m
			}
			return nil
		},
		"isPairs": func(v interface{}) bool {
			_, ok := v.([]Pair)
			return ok
		},
		"asPairs": func(v interface{}) []Pair {
			pairs, _ := v.([]Pair)
			return pairs
		},
	}
}

func escapeXML(value string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(value)); err != nil {
		return value
	}
	return buf.String()
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	return fmt.Sprintf("%v", value)
}

// sortedKeys orders map keys so the rendered document is deterministic for
// a given sidecar.
func sortedKeys(m Mapping) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
