package tpladapter

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	_ "embed"

	"github.com/jgivc/docviewer/internal/entity"
)

const (
	templateNameListing  = "LISTING"
	templateNameDocument = "DOCUMENT"
	templateNameNotFound = "NOT_FOUND"
	templateNameError    = "ERROR"
)

//go:embed pages.html
var defaultTemplates string

type documentContext struct {
	Title       string
	Path        string
	Breadcrumbs []entity.Breadcrumb
	Content     template.HTML
}

type messageContext struct {
	Path    string
	Message string
}

type tplAdapter struct {
	tpl *template.Template
}

func NewTplAdapter(templateFileName string) (*tplAdapter, error) {
	src := defaultTemplates
	if templateFileName != "" {
		data, err := os.ReadFile(templateFileName)
		if err != nil {
			return nil, fmt.Errorf("cannot read template: %w", err)
		}

		src = string(data)
	}

	tpl, err := template.New("").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse template: %w", err)
	}

	a := &tplAdapter{tpl: tpl}
	for _, name := range []string{templateNameListing, templateNameDocument, templateNameNotFound, templateNameError} {
		if a.tpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %s must be defined", name)
		}
	}

	return a, nil
}

func (a *tplAdapter) RenderListing(lst *entity.Listing) (string, error) {
	return a.render(templateNameListing, lst)
}

func (a *tplAdapter) RenderDocument(doc *entity.Document) (string, error) {
	return a.render(templateNameDocument, &documentContext{
		Title:       doc.Title,
		Path:        doc.Path,
		Breadcrumbs: doc.Breadcrumbs,
		Content:     template.HTML(doc.HTML),
	})
}

func (a *tplAdapter) RenderNotFound(path string) (string, error) {
	return a.render(templateNameNotFound, &messageContext{Path: path})
}

func (a *tplAdapter) RenderError(path, message string) (string, error) {
	return a.render(templateNameError, &messageContext{Path: path, Message: message})
}

func (a *tplAdapter) render(name string, data any) (string, error) {
	tpl := a.tpl.Lookup(name)
	if tpl == nil {
		return "", fmt.Errorf("template %s must be defined", name)
	}

	buf := bytes.Buffer{}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("cannot execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
