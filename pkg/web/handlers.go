package web

import (
	"net/http"

	"github.com/mailwright/mailwright/pkg/delivery"
	"github.com/mailwright/mailwright/pkg/draft"
)

// iterateRequest carries the base request plus a structured edit.
type iterateRequest struct {
	Base    map[string]any `json:"base"`
	Updates draft.Update   `json:"updates"`
	Mode    string         `json:"mode,omitempty"`
}

// iterateNLRequest carries the base request plus a free-text instruction.
type iterateNLRequest struct {
	Base    map[string]any `json:"base"`
	Updates struct {
		Instructions string `json:"instructions"`
	} `json:"updates"`
	Mode string `json:"mode,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getVersion(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) getSettings(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.settings)
}

func (h *handler) draft(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if !h.decode(w, r, &raw) {
		return
	}
	d, err := h.svc.Draft(r.Context(), raw)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]string{
		"subject":   d.Subject,
		"body_text": d.BodyText,
	})
}

func (h *handler) mailPreview(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if !h.decode(w, r, &raw) {
		return
	}
	p, err := h.svc.Preview(r.Context(), conversationID(r), raw)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *handler) mailDeliver(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if !h.decode(w, r, &raw) {
		return
	}
	mode, err := delivery.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	res, err := h.svc.Deliver(r.Context(), conversationID(r), raw, nil, mode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}

func (h *handler) iteratePreview(w http.ResponseWriter, r *http.Request) {
	var req iterateRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.svc.PreviewWithUpdate(r.Context(), conversationID(r), req.Base, req.Updates)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *handler) iteratePreviewNL(w http.ResponseWriter, r *http.Request) {
	var req iterateNLRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.svc.PreviewWithInstruction(r.Context(), conversationID(r), req.Base, req.Updates.Instructions)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *handler) iterateDeliver(w http.ResponseWriter, r *http.Request) {
	var req iterateRequest
	if !h.decode(w, r, &req) {
		return
	}
	mode, err := delivery.ParseMode(req.Mode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	res, err := h.svc.Deliver(r.Context(), conversationID(r), req.Base, &req.Updates, mode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}

func (h *handler) iterateDeliverNL(w http.ResponseWriter, r *http.Request) {
	var req iterateNLRequest
	if !h.decode(w, r, &req) {
		return
	}
	mode, err := delivery.ParseMode(req.Mode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	res, err := h.svc.DeliverWithInstruction(r.Context(), conversationID(r), req.Base, req.Updates.Instructions, mode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}
