package http

import (
	"github.com/gin-gonic/gin"

	"timeclerk/pkg/response"
)

// Parse godoc
// @Summary     Parse a natural language command
// @Description Converts a natural language command into validated time entries using the workspace catalog and the completion model.
// @Tags        Entries
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Command text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request - empty command or invalid model output"
// @Failure     429 {object} response.Resp "Too Many Requests - upstream rate limit"
// @Failure     502 {object} response.Resp "Bad Gateway - upstream API failure"
// @Router      /api/v1/entries/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Submit godoc
// @Summary     Submit time entries
// @Description Posts time entries to the workspace, resolving project and task names to IDs.
// @Tags        Entries
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Entries to submit"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized - missing or rejected workspace credential"
// @Failure     502 {object} response.Resp "Bad Gateway - workspace API failure"
// @Router      /api/v1/entries [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Import godoc
// @Summary     Import calendar meetings
// @Description Converts calendar meetings in a time range into entry candidates. All-day, free and declined meetings are skipped.
// @Tags        Entries
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Time range and provider"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar API failure"
// @Router      /api/v1/entries/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Transcribe godoc
// @Summary     Transcribe a voice command
// @Description Uploads an audio recording and returns the transcribed command text.
// @Tags        Transcriptions
// @Accept      multipart/form-data
// @Produce     json
// @Param       file     formData file   true  "Audio recording (max 25MB)"
// @Param       language formData string false "ISO 639-1 language hint"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - transcription API failure"
// @Router      /api/v1/transcriptions [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	input, cleanup, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer cleanup()

	output, err := h.uc.Transcribe(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, transcribeResp{Text: output.Text})
}

// Catalog godoc
// @Summary     Get the workspace catalog
// @Description Returns the workspace's projects with their tasks. Degrades to an empty catalog when the credential is missing or rejected.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} catalogResp
// @Router      /api/v1/catalog [GET]
func (h *handler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Catalog(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Catalog: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCatalogResp(output))
}
