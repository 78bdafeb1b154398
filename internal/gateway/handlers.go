package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/five82/wolfy/internal/wolfram"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSimple(c *gin.Context) {
	r := &queryReader{c: c}
	input := r.input("i", "input")
	if input == "" {
		respondError(c, http.StatusBadRequest, "missing query parameter i")
		return
	}
	opts, err := parseSimpleOptions(c)
	if err != nil {
		s.respondUpstream(c, err)
		return
	}

	res, err := s.client.Simple(c.Request.Context(), input, opts)
	if err != nil {
		s.respondUpstream(c, err)
		return
	}
	if !res.HasImage() {
		c.String(http.StatusOK, res.NoResult)
		return
	}
	c.Data(http.StatusOK, res.ContentType, res.Image)
}

func (s *Server) handleResult(c *gin.Context) {
	s.handleAnswer(c, s.client.ShortAnswer)
}

func (s *Server) handleSpoken(c *gin.Context) {
	s.handleAnswer(c, s.client.Spoken)
}

func (s *Server) handleAnswer(c *gin.Context, call func(ctx context.Context, input string, opts wolfram.AnswerOptions) (string, error)) {
	r := &queryReader{c: c}
	input := r.input("i", "input")
	if input == "" {
		respondError(c, http.StatusBadRequest, "missing query parameter i")
		return
	}
	opts, err := parseAnswerOptions(c)
	if err != nil {
		s.respondUpstream(c, err)
		return
	}

	answer, err := call(c.Request.Context(), input, opts)
	if err != nil {
		s.respondUpstream(c, err)
		return
	}
	c.String(http.StatusOK, answer)
}

func (s *Server) handleQuery(c *gin.Context) {
	r := &queryReader{c: c}
	input := r.input("input", "i")
	if input == "" {
		respondError(c, http.StatusBadRequest, "missing query parameter input")
		return
	}
	opts, err := parseFullOptions(c)
	if err != nil {
		s.respondUpstream(c, err)
		return
	}

	resp, err := s.client.Full(c.Request.Context(), input, opts)
	if err != nil {
		s.respondUpstream(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// respondUpstream maps client errors onto gateway responses.
func (s *Server) respondUpstream(c *gin.Context, err error) {
	var optErr *wolfram.OptionError
	var apiErr *wolfram.APIError

	switch {
	case errors.As(err, &optErr):
		respondError(c, http.StatusBadRequest, optErr.Error())
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		s.logger.Warn("upstream error",
			"status", apiErr.Status,
			"message", apiErr.Message,
			"request_id", requestID(c),
		)
		c.JSON(status, apiErr.Body())
	default:
		s.logger.Error("upstream request failed",
			"error", err,
			"request_id", requestID(c),
		)
		respondError(c, http.StatusBadGateway, "upstream request failed")
	}
}

// respondError writes a {status, message} body, the same shape the API uses.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, wolfram.ErrorBody{Status: status, Message: message})
}
