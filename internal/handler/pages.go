package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
	"menu-cms-svc/pkg/logger"
)

// pages is embedded by every page handler. It writes the session cookie
// before any body so flashes and the admin flag survive the response.
type pages struct {
	renderer render.Renderer
	sessions *session.Manager
	logger   *logger.Logger
}

func newPages(renderer render.Renderer, sessions *session.Manager, logger *logger.Logger) pages {
	return pages{
		renderer: renderer,
		sessions: sessions,
		logger:   logger,
	}
}

func (p *pages) saveSession(c *gin.Context) {
	if err := p.sessions.Save(c.Writer, session.FromContext(c)); err != nil {
		p.logger.WithError(err).Error("Failed to save session")
	}
}

// render pops the queued flashes and renders the named page
func (p *pages) render(c *gin.Context, status int, name, title string, data interface{}) {
	s := session.FromContext(c)
	flashes := s.PopFlashes()
	p.saveSession(c)
	p.renderer.Render(c, status, render.Page{
		Name:    name,
		Title:   title,
		Admin:   s.IsAdmin(),
		Flashes: flashes,
		Data:    data,
	})
}

// redirect answers a POST with 303 so a refresh does not resubmit it
func (p *pages) redirect(c *gin.Context, location string) {
	p.saveSession(c)
	c.Redirect(http.StatusSeeOther, location)
}

func (p *pages) flash(c *gin.Context, category, message string) {
	session.FromContext(c).AddFlash(category, message)
}

func (p *pages) notFound(c *gin.Context) {
	p.renderer.Error(c, http.StatusNotFound, "Не найдено", nil)
}

// fail answers an unexpected error; missing rows become 404, the rest 500
func (p *pages) fail(c *gin.Context, err error, message string) {
	if service.IsNotFound(err) {
		p.notFound(c)
		return
	}
	p.logger.WithError(err).WithField("path", c.Request.URL.Path).Error(message)
	p.renderer.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера", err)
}

// validationMessage returns the user-facing text of a validation error
func validationMessage(err error) (string, bool) {
	if !service.IsValidation(err) {
		return "", false
	}
	return err.Error(), true
}
