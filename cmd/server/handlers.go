package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	ajemi "github.com/baditaflorin/go_ajemi"
	"github.com/baditaflorin/go_ajemi/pkg/streaming"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// SuggestRequest carries the composition buffer.
type SuggestRequest struct {
	Letters string `json:"letters"`
}

// SegmentResponse is one matched spelling.
type SegmentResponse struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Spelling string `json:"spelling"`
	Glyph    string `json:"glyph"`
}

// SuggestResponse is the conversion of a composition buffer.
type SuggestResponse struct {
	Letters  string            `json:"letters"`
	Output   string            `json:"output"`
	Raw      string            `json:"raw"`
	Segments []SegmentResponse `json:"segments"`
	Dropped  []int             `json:"dropped,omitempty"`
}

// ConvertRequest carries a whole document.
type ConvertRequest struct {
	Text string `json:"text"`
}

// ConvertResponse is a converted document.
type ConvertResponse struct {
	Output string `json:"output"`
	streaming.StreamResult
}

// PunctRequest carries one typed character.
type PunctRequest struct {
	Char string `json:"char"`
}

// PunctResponse is the remapped character.
type PunctResponse struct {
	Char     string `json:"char"`
	Mapped   string `json:"mapped"`
	Remapped bool   `json:"remapped"`
}

// CandidateResponse describes what the dictionary holds for a key.
type CandidateResponse struct {
	Key        string   `json:"key"`
	Kind       string   `json:"kind"`
	Glyph      string   `json:"glyph,omitempty"`
	Alternates []string `json:"alternates,omitempty"`
	Homophones []string `json:"homophones,omitempty"`
}

// SchemaResponse describes the loaded dictionary.
type SchemaResponse struct {
	Dictionary string      `json:"dictionary"`
	Available  []string    `json:"available"`
	Stats      ajemi.Stats `json:"stats"`
}

// DictionaryRequest swaps the dictionary. Rime, when set, is the text of a
// Rime dictionary file loaded under Name with the punctuation and long glyph
// conventions of the built-in Script, which defaults to the dictionary the
// server started with.
type DictionaryRequest struct {
	Name   string `json:"name"`
	Rime   string `json:"rime,omitempty"`
	Script string `json:"script,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	ime       *ajemi.IME
	converter *streaming.Converter
	logger    l.Logger
	// script is the built-in dictionary Rime uploads borrow their tables from.
	script string
}

func newServer(ime *ajemi.IME, logger l.Logger, parallel bool) *server {
	var opts []streaming.StreamingOption
	opts = append(opts, streaming.WithStreamingLogger(logger))
	if parallel {
		opts = append(opts, streaming.WithParallel(0))
	}
	return &server{
		ime:       ime,
		converter: streaming.NewConverter(ime, opts...),
		logger:    logger,
		script:    ime.Dictionary(),
	}
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/suggest":
		s.handleSuggest(ctx)
	case "/convert":
		s.handleConvert(ctx)
	case "/punct":
		s.handlePunct(ctx)
	case "/candidates":
		s.handleCandidates(ctx)
	case "/schema":
		s.handleSchema(ctx)
	case "/dictionary":
		s.handleDictionary(ctx)
	default:
		s.writeJSONError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status":     "ok",
		"dictionary": s.ime.Dictionary(),
		"time":       time.Now().Format(time.RFC3339),
	})
}

// decodePost checks the method and decodes the JSON body into v. It writes
// the error response itself and reports whether the handler may continue.
func (s *server) decodePost(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if !ctx.IsPost() {
		s.writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		s.writeJSONError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func (s *server) handleSuggest(ctx *fasthttp.RequestCtx) {
	var req SuggestRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	comp, err := s.ime.Suggest(req.Letters)
	if err != nil {
		var alpha *ajemi.AlphabetError
		if errors.As(err, &alpha) {
			s.writeJSONError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
			return
		}
		s.writeJSONError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	resp := SuggestResponse{
		Letters:  comp.Letters,
		Output:   comp.Output,
		Raw:      comp.Raw,
		Segments: make([]SegmentResponse, 0, len(comp.Segments)),
		Dropped:  comp.Dropped,
	}
	for _, seg := range comp.Segments {
		resp.Segments = append(resp.Segments, SegmentResponse{
			Start:    seg.Start,
			End:      seg.End,
			Spelling: seg.Spelling,
			Glyph:    seg.Glyph,
		})
	}
	s.writeJSONResponse(ctx, resp)
}

func (s *server) handleConvert(ctx *fasthttp.RequestCtx) {
	var req ConvertRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	output, res, err := s.converter.ConvertString(c, req.Text)
	if err != nil {
		s.writeJSONError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSONResponse(ctx, ConvertResponse{
		Output:       output,
		StreamResult: res,
	})
}

func (s *server) handlePunct(ctx *fasthttp.RequestCtx) {
	var req PunctRequest
	if !s.decodePost(ctx, &req) {
		return
	}
	ch, size := utf8.DecodeRuneInString(req.Char)
	if size == 0 || size != len(req.Char) {
		s.writeJSONError(ctx, fasthttp.StatusBadRequest, "char must be exactly one character")
		return
	}
	s.writeJSONResponse(ctx, PunctResponse{
		Char:     req.Char,
		Mapped:   string(s.ime.RemapPunct(ch)),
		Remapped: s.ime.HasPunct(ch),
	})
}

func (s *server) handleCandidates(ctx *fasthttp.RequestCtx) {
	key := string(ctx.QueryArgs().Peek("key"))
	if key == "" {
		s.writeJSONError(ctx, fasthttp.StatusBadRequest, "key is required")
		return
	}
	cand, ok := s.ime.Lookup(key)
	if !ok {
		s.writeJSONError(ctx, fasthttp.StatusNotFound, "no candidate for "+key)
		return
	}
	s.writeJSONResponse(ctx, CandidateResponse{
		Key:        key,
		Kind:       cand.Kind.String(),
		Glyph:      cand.Glyph,
		Alternates: cand.Alternates,
		Homophones: s.ime.Homophones(key),
	})
}

func (s *server) handleSchema(ctx *fasthttp.RequestCtx) {
	s.writeJSONResponse(ctx, SchemaResponse{
		Dictionary: s.ime.Dictionary(),
		Available:  ajemi.Dictionaries(),
		Stats:      s.ime.Stats(),
	})
}

func (s *server) handleDictionary(ctx *fasthttp.RequestCtx) {
	var req DictionaryRequest
	if !s.decodePost(ctx, &req) {
		return
	}
	if req.Name == "" {
		s.writeJSONError(ctx, fasthttp.StatusBadRequest, "name is required")
		return
	}

	var err error
	if req.Rime != "" {
		script := req.Script
		if script == "" {
			script = s.script
		}
		err = s.ime.LoadRimeScript(script, req.Name, strings.NewReader(req.Rime))
	} else {
		err = s.ime.UseDictionary(req.Name)
	}
	switch {
	case errors.Is(err, ajemi.ErrUnknownDictionary):
		s.writeJSONError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	case err != nil:
		s.writeJSONError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	s.handleSchema(ctx)
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}
