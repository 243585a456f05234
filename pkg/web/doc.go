// Package web exposes the drafting workflow over HTTP.
//
// The routes mirror the tool surface the conversational agent calls:
// stateless draft and preview endpoints, iterate endpoints that carry a
// structured update or a natural-language instruction alongside the base
// request, and deliver endpoints that commit through the configured mail
// provider. Callers scope iteration memory with the X-Conversation-ID
// header; without it all requests share a single default slot.
package web
