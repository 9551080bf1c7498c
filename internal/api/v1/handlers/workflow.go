package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"s3-audio-translate/internal/api/middleware"
	"s3-audio-translate/internal/api/v1/dto"
	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/session"
	"s3-audio-translate/internal/app/workflow"
)

// Transcribe handles POST /transcribe
func (h *PageHandler) Transcribe(c *gin.Context) {
	rec := middleware.CurrentRecord(c)

	var form dto.TranscribeForm
	if err := middleware.ValidateRequest(c, &form); err != nil {
		h.redraw(c, rec, invalidForm(rec.Session, err), form.Language)
		return
	}

	target, err := h.languages.Resolve(form.Language)
	if err != nil {
		h.redraw(c, rec, invalidForm(rec.Session, err), "")
		return
	}

	result, err := h.runner.Run(c.Request.Context(), rec.Session, form.FileKey, target)
	out := session.Outcome{Session: rec.Session}
	if err != nil {
		out.Err = err
		out.Notices = []session.Notice{{
			Level:   session.LevelError,
			Message: "Error: " + session.NoticeText(err),
		}}
		rec.Result = nil
	} else {
		out.Notices = []session.Notice{{Level: session.LevelSuccess, Message: "Transcription Complete!"}}
		rec.Result = result
	}

	if err := middleware.SaveRecord(c, rec); err != nil {
		middleware.HandleError(c, err)
		return
	}
	h.redraw(c, rec, out, form.Language)
}

// Download handles GET /download/:artifact
func (h *PageHandler) Download(c *gin.Context) {
	rec := middleware.CurrentRecord(c)
	name := c.Param("artifact")

	if rec.Result == nil {
		middleware.HandleError(c, apperrors.Wrapf(apperrors.ErrUnknownArtifact, "no result to download %q from", name))
		return
	}

	artifact, err := workflow.FindArtifact(*rec.Result, name)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	h.logger.Debug("serving artifact",
		zap.String("name", artifact.Name),
		zap.Int("bytes", len(artifact.Content)),
	)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", artifact.Content)
}
