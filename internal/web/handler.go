package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/mckinzey/atrium/internal/auth"
	"github.com/mckinzey/atrium/internal/corpus"
	"github.com/mckinzey/atrium/pkg/formatting"
	"github.com/mckinzey/atrium/pkg/routes"
	"github.com/mckinzey/atrium/pkg/web"
)

const loginPath = "/login"

type handler struct {
	views  *web.TemplateSet
	auth   auth.System
	corpus corpus.System
	logger *slog.Logger
}

type loginData struct {
	Error string
}

type pageData struct {
	Employee *auth.Employee
}

type documentData struct {
	Employee *auth.Employee
	Document *corpus.Document
	Size     string
	Content  template.HTML
}

func newHandler(views *web.TemplateSet, authSys auth.System, corpusSys corpus.System, logger *slog.Logger) *handler {
	return &handler{
		views:  views,
		auth:   authSys,
		corpus: corpusSys,
		logger: logger,
	}
}

func (h *handler) routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.guardedPage(h.chatPage)},
			{Method: "GET", Pattern: "/login", Handler: h.loginPage},
			{Method: "GET", Pattern: "/logout", Handler: h.logout},
			{Method: "GET", Pattern: "/admin", Handler: h.guardedPage(h.adminPage)},
			{Method: "GET", Pattern: "/document/{identifier}", Handler: h.guardedPage(h.documentPage)},
		},
	}
}

func (h *handler) guardedPage(next http.HandlerFunc) http.HandlerFunc {
	return auth.RedirectUnauthenticated(h.auth, loginPath, next)
}

func (h *handler) loginPage(w http.ResponseWriter, r *http.Request) {
	data := loginData{Error: r.URL.Query().Get("error")}
	h.render(w, views["login"], http.StatusOK, data)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("logout failed", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, loginPath, http.StatusFound)
}

func (h *handler) chatPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Employee: auth.CurrentEmployee(r.Context())}
	h.render(w, views["chat"], http.StatusOK, data)
}

func (h *handler) adminPage(w http.ResponseWriter, r *http.Request) {
	emp := auth.CurrentEmployee(r.Context())
	if emp == nil || !emp.IsAdmin {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return
	}
	h.render(w, views["admin"], http.StatusOK, pageData{Employee: emp})
}

func (h *handler) documentPage(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	doc, err := h.corpus.Find(r.Context(), identifier)
	if err != nil {
		http.Error(w, "Document not found", corpus.MapHTTPStatus(err))
		return
	}

	text, err := h.corpus.Extract(r.Context(), identifier)
	if err != nil {
		h.logger.Error("document extraction failed", "document", identifier, "error", err)
		http.Error(w, "Document could not be read", http.StatusInternalServerError)
		return
	}

	data := documentData{
		Employee: auth.CurrentEmployee(r.Context()),
		Document: doc,
		Size:     formatting.FormatBytes(doc.SizeBytes, 1),
		Content:  renderContent(text, r.URL.Query().Get("highlight")),
	}
	h.render(w, views["document"], http.StatusOK, data)
}

// renderContent escapes document text for HTML, marks highlight matches,
// and converts newlines to line breaks.
func renderContent(text, highlight string) template.HTML {
	content := template.HTMLEscapeString(text)

	if highlight != "" {
		escaped := template.HTMLEscapeString(highlight)
		re, err := regexp.Compile("(?i)(" + regexp.QuoteMeta(escaped) + ")")
		if err == nil {
			content = re.ReplaceAllString(content, "<mark>$1</mark>")
		}
	}

	content = strings.ReplaceAll(content, "\n", "<br>")
	return template.HTML(content)
}

func (h *handler) render(w http.ResponseWriter, view web.ViewDef, status int, data any) {
	if err := h.views.RenderView(w, "base", view, status, data); err != nil {
		h.logger.Error("render failed", "template", view.Template, "error", err)
	}
}
