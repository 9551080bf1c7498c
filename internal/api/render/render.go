// Package render draws the single application page. It is the Observer the
// handlers hand every session Outcome to.
package render

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
	"github.com/samber/lo"

	"s3-audio-translate/internal/api/errors"
	"s3-audio-translate/internal/api/middleware"
	"s3-audio-translate/internal/app/model"
	"s3-audio-translate/internal/app/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// HelpSteps is the "How to use" list shown next to the workflow.
var HelpSteps = []string{
	"Register or log in.",
	"Select an audio file from S3.",
	"Choose a translation language (optional).",
	"Click 'Transcribe & Translate Audio'.",
	"Download the results.",
}

// Page is everything the template needs besides the Outcome.
type Page struct {
	Files            []string
	Languages        []string
	SelectedFile     string
	SelectedLanguage string
	Result           *model.TranscriptResult
	Artifacts        []model.Artifact
}

type pageData struct {
	Page
	Session    session.Session
	Notices    []session.Notice
	OfferLogin bool
	Help       []string
}

// pageJSON is the response body for clients sending Accept: application/json.
type pageJSON struct {
	Session    session.Session         `json:"session"`
	Notices    []session.Notice        `json:"notices,omitempty"`
	OfferLogin bool                    `json:"offer_login,omitempty"`
	Files      []string                `json:"files,omitempty"`
	Languages  []string                `json:"languages,omitempty"`
	Result     *model.TranscriptResult `json:"result,omitempty"`
	Artifacts  []string                `json:"artifacts,omitempty"`
}

// Renderer owns the parsed page template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"pathEscape": url.PathEscape}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Observer returns the Observer that draws page for c.
func (r *Renderer) Observer(c *gin.Context, page Page) session.Observer {
	return session.ObserverFunc(func(out session.Outcome) {
		r.Redraw(c, page, out)
	})
}

// Redraw writes the page for out. Workflow data is dropped whenever the
// session is not authenticated.
func (r *Renderer) Redraw(c *gin.Context, page Page, out session.Outcome) {
	if !out.Session.Authenticated {
		page = Page{}
	}

	if middleware.WantsJSON(c) {
		r.writeJSON(c, page, out)
		return
	}

	c.Render(http.StatusOK, ginrender.HTML{
		Template: r.tmpl,
		Name:     "page",
		Data: pageData{
			Page:       page,
			Session:    out.Session,
			Notices:    out.Notices,
			OfferLogin: out.OfferLogin,
			Help:       HelpSteps,
		},
	})
}

func (r *Renderer) writeJSON(c *gin.Context, page Page, out session.Outcome) {
	if out.Err != nil {
		apiErr := errors.FromDomain(out.Err, session.NoticeText(out.Err))
		apiErr.RequestID = c.GetString(middleware.RequestIDKey)
		c.JSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	c.JSON(http.StatusOK, pageJSON{
		Session:    out.Session,
		Notices:    out.Notices,
		OfferLogin: out.OfferLogin,
		Files:      page.Files,
		Languages:  page.Languages,
		Result:     page.Result,
		Artifacts: lo.Map(page.Artifacts, func(a model.Artifact, _ int) string {
			return a.Name
		}),
	})
}
