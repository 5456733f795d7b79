package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeclerk/internal/entry"
)

const maxAudioBytes = 25 << 20 // Whisper upload limit

// processParseReq binds the parse command request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSubmitReq binds the submit request body and parses its timestamps.
func (h *handler) processSubmitReq(c *gin.Context) (entry.SubmitInput, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return entry.SubmitInput{}, err
	}
	return req.toInput()
}

// processImportReq binds the import request body and parses the range.
func (h *handler) processImportReq(c *gin.Context) (entry.ImportInput, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return entry.ImportInput{}, err
	}
	return req.toInput()
}

// processTranscribeReq pulls the audio file out of the multipart form.
func (h *handler) processTranscribeReq(c *gin.Context) (entry.TranscribeInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return entry.TranscribeInput{}, nil, errors.New("multipart field 'file' is required")
	}
	if fileHeader.Size > maxAudioBytes {
		return entry.TranscribeInput{}, nil, errors.New("audio file exceeds the 25MB limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return entry.TranscribeInput{}, nil, err
	}

	input := entry.TranscribeInput{
		Audio:    f,
		Filename: fileHeader.Filename,
		Language: c.PostForm("language"),
	}
	return input, func() { f.Close() }, nil
}
