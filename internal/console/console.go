// Package console serves the server-rendered back-office screens.
package console

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/auth"
	"github.com/indocarisinternational/admin-caris/internal/authgate"
	"github.com/indocarisinternational/admin-caris/internal/dashboard"
	"github.com/indocarisinternational/admin-caris/internal/recordsync"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
	"github.com/indocarisinternational/admin-caris/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const NotFoundPath = "/auth/404"

//go:embed templates/*.html
var templatesFS embed.FS

type NavItem struct {
	Name string
	URL  string
}

type NavSection struct {
	Heading string
	Items   []NavItem
}

var navigation = []NavSection{
	{Heading: "HOME", Items: []NavItem{{Name: "Dashboard", URL: "/"}}},
	{Heading: "PEGAWAI", Items: []NavItem{
		{Name: "Data Pegawai", URL: "/pegawais"},
		{Name: "Assignments", URL: "/assignments"},
	}},
	{Heading: "UTILITIES", Items: []NavItem{
		{Name: "Projects", URL: "/projects"},
		{Name: "Blogs", URL: "/blogs"},
		{Name: "Clients", URL: "/clients"},
	}},
}

// Page is the data every template receives.
type Page struct {
	Title      string
	Active     string
	UserName   string
	Nav        []NavSection
	Toast      *recordsync.Toast
	ReplaceURL string
	Body       any
}

type Options struct {
	Auth          auth.Service
	Gate          authgate.Source
	Dashboard     dashboard.Service
	Resources     []Resource
	SecureCookies bool
	ToastDelay    time.Duration
	Logger        *zap.Logger
}

type Console struct {
	opts   Options
	tmpl   *template.Template
	logger *zap.Logger
}

func New(opts Options) (*Console, error) {
	if opts.ToastDelay <= 0 {
		opts.ToastDelay = recordsync.DefaultToastDelay
	}
	l := opts.Logger
	if l == nil {
		l = zap.L()
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"ms": func(d time.Duration) int64 { return d.Milliseconds() },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Console{opts: opts, tmpl: tmpl, logger: l.Named("console")}, nil
}

func (cs *Console) Register(r *gin.Engine) {
	r.SetHTMLTemplate(cs.tmpl)

	public := r.Group("/auth")
	{
		public.GET("/login", cs.loginPage)
		public.POST("/login", cs.loginSubmit)
		public.GET("/register", cs.registerPage)
		public.POST("/register", cs.registerSubmit)
		public.GET("/verify", cs.verify)
		public.POST("/logout", cs.logout)
		public.GET("/logout", cs.logout)
		public.GET("/404", cs.notFound)
		public.GET("/session/stream", authgate.NewStreamHandler(cs.opts.Gate, cs.logger).Stream)
	}

	protected := r.Group("", authgate.Require(cs.opts.Gate, cs.logger))
	protected.GET("/", cs.dashboard)
	for _, res := range cs.opts.Resources {
		protected.GET(res.ListPath(), cs.list(res))
		protected.GET(res.AddPath(), cs.addForm(res))
		protected.POST(res.AddPath(), cs.addSubmit(res))
		protected.GET("/edit/"+res.Slug+"/:id", cs.editForm(res))
		protected.POST("/edit/"+res.Slug+"/:id", cs.editSubmit(res))
		protected.POST("/"+res.Plural+"/:id/delete", cs.delete(res))
	}

	r.NoRoute(cs.noRoute)
}

func (cs *Console) page(c *gin.Context, title, active string, body any) Page {
	p := Page{
		Title:  title,
		Active: active,
		Nav:    navigation,
		Toast:  takeFlash(c),
		Body:   body,
	}
	if sess, ok := authgate.SessionFrom(c); ok {
		p.UserName = sess.User.Name
	}
	return p
}

func (cs *Console) render(c *gin.Context, status int, name string, p Page) {
	c.HTML(status, name, p)
}

func (cs *Console) success(message string) recordsync.Toast {
	return recordsync.Toast{
		Kind:    recordsync.ToastSuccess,
		Title:   "Berhasil!",
		Message: message,
		Timer:   cs.opts.ToastDelay,
	}
}

// failure turns err into a dialog: validation problems warn, everything else
// is a blocking error showing the message as returned.
func failure(title string, err error) *recordsync.Toast {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == apperror.CodeValidation {
		return &recordsync.Toast{Kind: recordsync.ToastWarning, Title: "Warning", Message: apperror.Message(err)}
	}
	return &recordsync.Toast{Kind: recordsync.ToastError, Title: title, Message: apperror.Message(err)}
}

func statusOf(err error) int {
	return apperror.ToHTTP(err).Status
}

func (cs *Console) dashboard(c *gin.Context) {
	p := cs.page(c, "Dashboard", "/", nil)

	summary, err := cs.opts.Dashboard.Summary(c.Request.Context())
	if err != nil {
		cs.logger.Warn("dashboard load failed", zap.Error(err))
		p.Toast = failure("Gagal mengambil data", err)
	}
	p.Body = summary
	cs.render(c, http.StatusOK, "dashboard.html", p)
}

func (cs *Console) notFound(c *gin.Context) {
	cs.render(c, http.StatusNotFound, "404.html", cs.page(c, "Halaman tidak ditemukan", "", nil))
}

func (cs *Console) noRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.FromError(c, apperror.ErrNotFound)
		return
	}
	c.Redirect(http.StatusSeeOther, NotFoundPath)
}
