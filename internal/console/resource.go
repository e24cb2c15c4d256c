package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/recordsync"
	"github.com/indocarisinternational/admin-caris/internal/shared/request"

	"github.com/gin-gonic/gin"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindURL      FieldKind = "url"
	KindDate     FieldKind = "date"
	KindNumber   FieldKind = "number"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindFile     FieldKind = "file"
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	// Accept limits file inputs, e.g. "image/*".
	Accept string
	// Options feeds select inputs; it is called once per render.
	Options func(ctx context.Context) ([]Option, error)
}

func staticOptions(opts ...Option) func(context.Context) ([]Option, error) {
	return func(context.Context) ([]Option, error) { return opts, nil }
}

type Cell struct {
	Text  string
	Image string
	Badge string
	Color string
}

type Row struct {
	ID    string
	Cells []Cell
}

func rowID(r Row) string { return r.ID }

// Values holds form input keyed by field name.
type Values map[string]string

// Resource describes the list, add and edit screens of one record type.
type Resource struct {
	// Slug is the singular route segment: /add/<slug>, /edit/<slug>/:id.
	Slug string
	// Plural is the list route segment: /<plural>.
	Plural string
	Title  string
	// Noun names the record inside toast messages.
	Noun    string
	Columns []string
	Fields  []Field
	// FileField is the upload input; its preview is shown on the edit screen.
	FileField string

	List   recordsync.ListFunc[Row]
	Delete recordsync.DeleteFunc
	Values func(ctx context.Context, id string) (Values, error)
	Create func(c *gin.Context) error
	Update func(c *gin.Context, id string) error
}

func (r Resource) ListPath() string { return "/" + r.Plural }
func (r Resource) AddPath() string  { return "/add/" + r.Slug }

func (r Resource) EditPath(id string) string {
	return "/edit/" + r.Slug + "/" + id
}

func (r Resource) DeletePath(id string) string {
	return "/" + r.Plural + "/" + id + "/delete"
}

// submit binds Req from the form, opens the optional upload and hands both to call.
func submit[Req any](c *gin.Context, fileField string, call func(ctx context.Context, req Req, f *attachment.File) error) error {
	var req Req
	if err := request.Bind(c, &req); err != nil {
		return err
	}

	var file *attachment.File
	if fileField != "" {
		f, done, err := request.File(c, fileField)
		if err != nil {
			return err
		}
		defer done()
		file = f
	}
	return call(c.Request.Context(), req, file)
}

// valuesOf flattens a response struct into form values through its json tags.
func valuesOf(v any) Values {
	data, err := json.Marshal(v)
	if err != nil {
		return Values{}
	}
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return Values{}
	}

	out := make(Values, len(raw))
	for k, val := range raw {
		switch t := val.(type) {
		case nil:
		case string:
			out[k] = t
		case json.Number:
			out[k] = t.String()
		case []any:
			parts := make([]string, 0, len(t))
			for _, p := range t {
				parts = append(parts, fmt.Sprint(p))
			}
			out[k] = strings.Join(parts, ", ")
		case map[string]any:
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}

// formValues echoes submitted input back into a re-rendered form.
func formValues(c *gin.Context) Values {
	out := Values{}
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		_ = c.Request.ParseForm()
	}
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
