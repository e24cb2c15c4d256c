package console

import (
	"context"
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/recordsync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type listBody struct {
	Resource Resource
	View     recordsync.View[Row]
	ColSpan  int
}

type renderedField struct {
	Field
	Value   string
	Options []Option
}

type formBody struct {
	Resource Resource
	Heading  string
	Action   string
	Editing  bool
	Fields   []renderedField
}

func (cs *Console) controller(res Resource) *recordsync.Controller[Row] {
	return recordsync.New(res.List, res.Delete, rowID, recordsync.Options{
		DeletedMessage: "Data " + res.Noun + " berhasil dihapus.",
		ToastDelay:     cs.opts.ToastDelay,
		Logger:         cs.logger,
	})
}

func (cs *Console) renderList(c *gin.Context, res Resource, ctrl *recordsync.Controller[Row], replaceURL string) {
	p := cs.page(c, res.Title, res.ListPath(), nil)
	view := ctrl.View()
	if view.Toast != nil {
		p.Toast = view.Toast
	}
	p.ReplaceURL = replaceURL
	p.Body = listBody{Resource: res, View: view, ColSpan: len(res.Columns) + 1}
	cs.render(c, http.StatusOK, "list.html", p)
}

func (cs *Console) list(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := cs.controller(res)
		defer ctrl.Close()

		if err := ctrl.Load(c.Request.Context()); err != nil {
			cs.logger.Warn("list load failed", zap.String("resource", res.Plural), zap.Error(err))
		}
		cs.renderList(c, res, ctrl, "")
	}
}

// delete loads the list once, removes the record and renders the spliced
// rows without fetching them again.
func (cs *Console) delete(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctrl := cs.controller(res)
		defer ctrl.Close()

		if err := ctrl.Load(ctx); err == nil {
			if err := ctrl.Delete(ctx, c.Param("id")); err != nil {
				cs.logger.Warn("delete failed", zap.String("resource", res.Plural), zap.String("id", c.Param("id")), zap.Error(err))
			}
		}
		cs.renderList(c, res, ctrl, res.ListPath())
	}
}

func (cs *Console) fields(ctx context.Context, res Resource, values Values) ([]renderedField, error) {
	out := make([]renderedField, len(res.Fields))
	var firstErr error
	for i, f := range res.Fields {
		out[i] = renderedField{Field: f, Value: values[f.Name]}
		if f.Options == nil {
			continue
		}
		opts, err := f.Options(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out[i].Options = opts
	}
	return out, firstErr
}

func (cs *Console) renderForm(c *gin.Context, status int, res Resource, id string, values Values, toast *recordsync.Toast) {
	editing := id != ""
	heading, action := "Tambah "+res.Title, res.AddPath()
	if editing {
		heading, action = "Edit "+res.Title, res.EditPath(id)
	}

	p := cs.page(c, heading, res.ListPath(), nil)
	if toast != nil {
		p.Toast = toast
	}

	fields, err := cs.fields(c.Request.Context(), res, values)
	if err != nil && p.Toast == nil {
		p.Toast = failure("Gagal mengambil data", err)
	}
	p.Body = formBody{
		Resource: res,
		Heading:  heading,
		Action:   action,
		Editing:  editing,
		Fields:   fields,
	}
	cs.render(c, status, "form.html", p)
}

func (cs *Console) addForm(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs.renderForm(c, http.StatusOK, res, "", Values{}, nil)
	}
}

func (cs *Console) addSubmit(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := res.Create(c); err != nil {
			cs.logger.Warn("create failed", zap.String("resource", res.Plural), zap.Error(err))
			cs.renderForm(c, statusOf(err), res, "", formValues(c), failure("Gagal menambahkan "+res.Noun, err))
			return
		}

		setFlash(c, cs.success("Data "+res.Noun+" berhasil ditambahkan!"))
		c.Redirect(http.StatusSeeOther, res.ListPath())
	}
}

// editForm never renders without its record: a failed fetch goes back to the
// list with an error dialog.
func (cs *Console) editForm(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		values, err := res.Values(c.Request.Context(), id)
		if err != nil {
			cs.logger.Warn("edit load failed", zap.String("resource", res.Plural), zap.String("id", id), zap.Error(err))
			setFlash(c, *failure("Error", err))
			c.Redirect(http.StatusSeeOther, res.ListPath())
			return
		}
		cs.renderForm(c, http.StatusOK, res, id, values, nil)
	}
}

func (cs *Console) editSubmit(res Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := res.Update(c, id); err != nil {
			cs.logger.Warn("update failed", zap.String("resource", res.Plural), zap.String("id", id), zap.Error(err))
			values := formValues(c)
			if res.FileField != "" {
				if prev, perr := res.Values(c.Request.Context(), id); perr == nil {
					values[res.FileField] = prev[res.FileField]
				}
			}
			cs.renderForm(c, statusOf(err), res, id, values, failure("Gagal memperbarui "+res.Noun, err))
			return
		}

		setFlash(c, cs.success("Data "+res.Noun+" berhasil diperbarui!"))
		c.Redirect(http.StatusSeeOther, res.ListPath())
	}
}
