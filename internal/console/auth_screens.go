package console

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/auth"
	"github.com/indocarisinternational/admin-caris/internal/authgate"
	"github.com/indocarisinternational/admin-caris/internal/middleware"
	"github.com/indocarisinternational/admin-caris/internal/recordsync"
	"github.com/indocarisinternational/admin-caris/internal/shared/request"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type authBody struct {
	Email string
	Name  string
}

func (cs *Console) loginPage(c *gin.Context) {
	cs.render(c, http.StatusOK, "login.html", cs.page(c, "Login", "", authBody{}))
}

func (cs *Console) loginSubmit(c *gin.Context) {
	var req auth.LoginRequest
	body := authBody{Email: c.PostForm("email")}

	err := request.Bind(c, &req)
	if err == nil {
		var result auth.SignInResult
		result, err = cs.opts.Auth.SignIn(c.Request.Context(), req.Email, req.Password)
		if err == nil {
			auth.SetSessionCookie(c, result.AccessToken, result.Session.ExpiresAt, cs.opts.SecureCookies)
			setFlash(c, recordsync.Toast{
				Kind:    recordsync.ToastSuccess,
				Title:   "Login Berhasil",
				Message: "Selamat datang kembali!",
				Timer:   cs.opts.ToastDelay,
			})
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
	}

	cs.logger.Info("console login rejected", zap.String("email", body.Email), zap.Error(err))
	p := cs.page(c, "Login", "", body)
	p.Toast = failure("Login Gagal", err)
	cs.render(c, statusOf(err), "login.html", p)
}

func (cs *Console) registerPage(c *gin.Context) {
	cs.render(c, http.StatusOK, "register.html", cs.page(c, "Register", "", authBody{}))
}

func (cs *Console) registerSubmit(c *gin.Context) {
	var req auth.RegisterRequest
	body := authBody{Email: c.PostForm("email"), Name: c.PostForm("name")}

	err := request.Bind(c, &req)
	if err == nil {
		if req.RedirectTo == "" {
			req.RedirectTo = authgate.LoginPath
		}
		_, err = cs.opts.Auth.SignUp(c.Request.Context(), req)
		if err == nil {
			setFlash(c, recordsync.Toast{
				Kind:    recordsync.ToastSuccess,
				Title:   "Check Your Email",
				Message: "We have sent you a verification link. Please check your inbox.",
			})
			c.Redirect(http.StatusSeeOther, authgate.LoginPath)
			return
		}
	}

	p := cs.page(c, "Register", "", body)
	p.Toast = failure("Registration Failed", err)
	cs.render(c, statusOf(err), "register.html", p)
}

func (cs *Console) verify(c *gin.Context) {
	redirectTo, err := cs.opts.Auth.Verify(c.Request.Context(), c.Query("token"))
	if err != nil {
		setFlash(c, *failure("Verifikasi Gagal", err))
		c.Redirect(http.StatusSeeOther, authgate.LoginPath)
		return
	}

	setFlash(c, recordsync.Toast{
		Kind:    recordsync.ToastSuccess,
		Title:   "Email Terverifikasi",
		Message: "Silakan login dengan akun Anda.",
		Timer:   cs.opts.ToastDelay,
	})
	c.Redirect(http.StatusSeeOther, redirectTo)
}

func (cs *Console) logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c); token != "" {
		if err := cs.opts.Auth.SignOut(c.Request.Context(), token); err != nil {
			cs.logger.Warn("sign out failed", zap.Error(err))
		}
	}
	auth.ClearSessionCookie(c, cs.opts.SecureCookies)
	c.Redirect(http.StatusSeeOther, authgate.LoginPath)
}
