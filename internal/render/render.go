package render

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrUnknownTemplate = errors.New("unknown template")

const (
	User       = "user.html"
	UserToken  = "user_token.html"
	Device     = "device.html"
	Sensor     = "sensor.html"
	SensorType = "sensor_type.html"
	Datapoint  = "datapoint.html"
)

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"date": formatDate,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named record template. Rich text fields are escaped, not
// trusted as markup.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	const fn = "Renderer:Render"
	t := r.templates.Lookup(name)
	if t == nil {
		return fmt.Errorf("%s:%w: %s", fn, ErrUnknownTemplate, name)
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
