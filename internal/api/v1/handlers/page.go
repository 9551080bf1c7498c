package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"s3-audio-translate/internal/api/middleware"
	"s3-audio-translate/internal/api/render"
	"s3-audio-translate/internal/api/v1/dto"
	"s3-audio-translate/internal/app/language"
	"s3-audio-translate/internal/app/session"
	"s3-audio-translate/internal/app/workflow"
)

// PageHandler serves the single application page and its form posts
type PageHandler struct {
	machine   *session.Machine
	runner    *workflow.Runner
	languages *language.Table
	renderer  *render.Renderer
	logger    *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	machine *session.Machine,
	runner *workflow.Runner,
	languages *language.Table,
	renderer *render.Renderer,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		machine:   machine,
		runner:    runner,
		languages: languages,
		renderer:  renderer,
		logger:    logger,
	}
}

// Show handles GET /
func (h *PageHandler) Show(c *gin.Context) {
	rec := middleware.CurrentRecord(c)
	h.redraw(c, rec, session.Outcome{Session: rec.Session}, "")
}

// SwitchView handles POST /view
func (h *PageHandler) SwitchView(c *gin.Context) {
	rec := middleware.CurrentRecord(c)

	var form dto.ViewForm
	if err := middleware.ValidateRequest(c, &form); err != nil {
		h.redraw(c, rec, invalidForm(rec.Session, err), "")
		return
	}

	h.apply(c, rec, h.machine.SwitchView(rec.Session, form.Target()))
}

// Login handles POST /login
func (h *PageHandler) Login(c *gin.Context) {
	rec := middleware.CurrentRecord(c)

	var form dto.LoginForm
	if err := middleware.ValidateRequest(c, &form); err != nil {
		h.redraw(c, rec, invalidForm(rec.Session, err), "")
		return
	}

	h.apply(c, rec, h.machine.SubmitLogin(c.Request.Context(), rec.Session, form.Email, form.Password))
}

// Register handles POST /register
func (h *PageHandler) Register(c *gin.Context) {
	rec := middleware.CurrentRecord(c)

	var form dto.RegisterForm
	if err := middleware.ValidateRequest(c, &form); err != nil {
		h.redraw(c, rec, invalidForm(rec.Session, err), "")
		return
	}

	out := h.machine.SubmitRegister(c.Request.Context(), rec.Session, form.Email, form.Password, form.Confirm)
	h.apply(c, rec, out)
}

// apply stores the session carried by out and redraws.
func (h *PageHandler) apply(c *gin.Context, rec session.Record, out session.Outcome) {
	rec.Session = out.Session
	if err := middleware.SaveRecord(c, rec); err != nil {
		middleware.HandleError(c, err)
		return
	}
	h.redraw(c, rec, out, "")
}

// redraw builds the page for rec and hands out to the renderer. The file
// listing is only fetched for authenticated sessions.
func (h *PageHandler) redraw(c *gin.Context, rec session.Record, out session.Outcome, selectedLanguage string) {
	page := render.Page{}

	if out.Session.Authenticated {
		files, err := h.runner.ListAudioFiles(c.Request.Context(), out.Session)
		if err != nil {
			h.logger.Error("failed to list audio files",
				zap.Error(err),
				zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			)
			out.Notices = append(out.Notices, session.Notice{
				Level:   session.LevelError,
				Message: "Error: " + err.Error(),
			})
		}
		page.Files = files
		page.Languages = h.languages.Labels()
		page.SelectedLanguage = selectedLanguage
		if rec.Result != nil {
			page.Result = rec.Result
			page.SelectedFile = rec.Result.FileKey
			page.Artifacts = workflow.Artifacts(*rec.Result)
		}
	}

	h.renderer.Observer(c, page).Redraw(out)
}

func invalidForm(s session.Session, err error) session.Outcome {
	return session.Outcome{
		Session: s,
		Notices: []session.Notice{{Level: session.LevelWarning, Message: middleware.FirstDetail(err)}},
		Err:     err,
	}
}
